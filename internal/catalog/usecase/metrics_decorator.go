package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/catalog/domain"
	"github.com/allisson/karaoke/internal/metrics"
)

// songUseCaseWithMetrics decorates SongUseCase with metrics instrumentation.
type songUseCaseWithMetrics struct {
	next    SongUseCase
	metrics metrics.BusinessMetrics
}

// NewSongUseCaseWithMetrics wraps a SongUseCase with metrics recording.
func NewSongUseCaseWithMetrics(useCase SongUseCase, m metrics.BusinessMetrics) SongUseCase {
	return &songUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *songUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "catalog", operation, status)
	s.metrics.RecordDuration(ctx, "catalog", operation, time.Since(start), status)
}

// Create records metrics for song creation operations.
func (s *songUseCaseWithMetrics) Create(ctx context.Context, input SongInput) (*domain.Song, error) {
	start := time.Now()
	song, err := s.next.Create(ctx, input)
	s.record(ctx, "song_create", start, err)
	return song, err
}

// GetByID records metrics for song retrieval operations.
func (s *songUseCaseWithMetrics) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	start := time.Now()
	song, err := s.next.GetByID(ctx, id)
	s.record(ctx, "song_get", start, err)
	return song, err
}

// List records metrics for song listing operations.
func (s *songUseCaseWithMetrics) List(ctx context.Context, filter domain.SongFilter) ([]*domain.Song, error) {
	start := time.Now()
	songs, err := s.next.List(ctx, filter)
	s.record(ctx, "song_list", start, err)
	return songs, err
}

// Update records metrics for song update operations.
func (s *songUseCaseWithMetrics) Update(ctx context.Context, id uuid.UUID, input SongInput) (*domain.Song, error) {
	start := time.Now()
	song, err := s.next.Update(ctx, id, input)
	s.record(ctx, "song_update", start, err)
	return song, err
}

// Delete records metrics for song deletion operations.
func (s *songUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.record(ctx, "song_delete", start, err)
	return err
}

// RegisterPlay records metrics for playback registration operations.
func (s *songUseCaseWithMetrics) RegisterPlay(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.next.RegisterPlay(ctx, id)
	s.record(ctx, "song_play", start, err)
	return err
}

// Like records metrics for like registration operations.
func (s *songUseCaseWithMetrics) Like(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.next.Like(ctx, id)
	s.record(ctx, "song_like", start, err)
	return err
}
