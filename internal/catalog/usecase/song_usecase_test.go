package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/karaoke/internal/catalog/domain"
)

// MockTxManager is a mock implementation of database.TxManager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	// Execute the function to test the logic inside
	return fn(ctx)
}

// MockSongRepository is a mock implementation of SongRepository
type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Create(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongRepository) List(ctx context.Context, filter domain.SongFilter) ([]*domain.Song, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Song), args.Error(1)
}

func (m *MockSongRepository) Update(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSongRepository) IncrementPlays(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSongRepository) IncrementLikes(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockArtistTrackCounter is a mock implementation of ArtistTrackCounter
type MockArtistTrackCounter struct {
	mock.Mock
}

func (m *MockArtistTrackCounter) IncrementTracks(ctx context.Context, id uuid.UUID, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func newSongUseCase() (*DefaultSongUseCase, *MockTxManager, *MockSongRepository, *MockArtistTrackCounter) {
	txManager := &MockTxManager{}
	songRepo := &MockSongRepository{}
	artistRepo := &MockArtistTrackCounter{}
	return NewSongUseCase(txManager, songRepo, artistRepo), txManager, songRepo, artistRepo
}

func TestSongUseCase_Create_WithArtist(t *testing.T) {
	useCase, txManager, songRepo, artistRepo := newSongUseCase()
	ctx := context.Background()

	artistID := uuid.Must(uuid.NewV7())
	input := SongInput{
		Title:      "Bohemian Rhapsody",
		ArtistName: "Queen",
		ArtistID:   &artistID,
		Duration:   "5:55",
		Genre:      "rock",
		Language:   "en",
	}

	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	songRepo.On("Create", ctx, mock.AnythingOfType("*domain.Song")).Return(nil)
	artistRepo.On("IncrementTracks", ctx, artistID, int64(1)).Return(nil)

	song, err := useCase.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Bohemian Rhapsody", song.Title)
	assert.NotEqual(t, uuid.Nil, song.ID)
	songRepo.AssertExpectations(t)
	artistRepo.AssertExpectations(t)
}

func TestSongUseCase_Create_WithoutArtist(t *testing.T) {
	useCase, txManager, songRepo, artistRepo := newSongUseCase()
	ctx := context.Background()

	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	songRepo.On("Create", ctx, mock.AnythingOfType("*domain.Song")).Return(nil)

	_, err := useCase.Create(ctx, SongInput{Title: "Acapella", Duration: "2:10"})

	require.NoError(t, err)
	artistRepo.AssertNotCalled(t, "IncrementTracks", mock.Anything, mock.Anything, mock.Anything)
}

func TestSongUseCase_Update_MovesArtist(t *testing.T) {
	useCase, txManager, songRepo, artistRepo := newSongUseCase()
	ctx := context.Background()

	songID := uuid.Must(uuid.NewV7())
	oldArtist := uuid.Must(uuid.NewV7())
	newArtist := uuid.Must(uuid.NewV7())

	current := &domain.Song{ID: songID, Title: "Old Title", ArtistID: &oldArtist}
	updated := &domain.Song{ID: songID, Title: "New Title", ArtistID: &newArtist}

	songRepo.On("GetByID", ctx, songID).Return(current, nil).Once()
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	songRepo.On("Update", ctx, mock.AnythingOfType("*domain.Song")).Return(nil)
	artistRepo.On("IncrementTracks", ctx, oldArtist, int64(-1)).Return(nil)
	artistRepo.On("IncrementTracks", ctx, newArtist, int64(1)).Return(nil)
	songRepo.On("GetByID", ctx, songID).Return(updated, nil).Once()

	song, err := useCase.Update(ctx, songID, SongInput{Title: "New Title", ArtistID: &newArtist})

	require.NoError(t, err)
	assert.Equal(t, "New Title", song.Title)
	artistRepo.AssertExpectations(t)
}

func TestSongUseCase_Update_SameArtist(t *testing.T) {
	useCase, txManager, songRepo, artistRepo := newSongUseCase()
	ctx := context.Background()

	songID := uuid.Must(uuid.NewV7())
	artistID := uuid.Must(uuid.NewV7())
	current := &domain.Song{ID: songID, ArtistID: &artistID}

	songRepo.On("GetByID", ctx, songID).Return(current, nil)
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	songRepo.On("Update", ctx, mock.AnythingOfType("*domain.Song")).Return(nil)

	_, err := useCase.Update(ctx, songID, SongInput{Title: "Title", ArtistID: &artistID})

	require.NoError(t, err)
	artistRepo.AssertNotCalled(t, "IncrementTracks", mock.Anything, mock.Anything, mock.Anything)
}

func TestSongUseCase_Update_NotFound(t *testing.T) {
	useCase, _, songRepo, _ := newSongUseCase()
	ctx := context.Background()

	songID := uuid.Must(uuid.NewV7())
	songRepo.On("GetByID", ctx, songID).Return(nil, domain.ErrSongNotFound)

	song, err := useCase.Update(ctx, songID, SongInput{Title: "Title"})

	assert.Nil(t, song)
	assert.ErrorIs(t, err, domain.ErrSongNotFound)
}

func TestSongUseCase_Delete_DecrementsArtistTracks(t *testing.T) {
	useCase, txManager, songRepo, artistRepo := newSongUseCase()
	ctx := context.Background()

	songID := uuid.Must(uuid.NewV7())
	artistID := uuid.Must(uuid.NewV7())
	song := &domain.Song{ID: songID, ArtistID: &artistID}

	songRepo.On("GetByID", ctx, songID).Return(song, nil)
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	songRepo.On("Delete", ctx, songID).Return(nil)
	artistRepo.On("IncrementTracks", ctx, artistID, int64(-1)).Return(nil)

	err := useCase.Delete(ctx, songID)

	require.NoError(t, err)
	artistRepo.AssertExpectations(t)
}

func TestSongUseCase_Delete_ToleratesMissingArtist(t *testing.T) {
	useCase, txManager, songRepo, artistRepo := newSongUseCase()
	ctx := context.Background()

	songID := uuid.Must(uuid.NewV7())
	artistID := uuid.Must(uuid.NewV7())
	song := &domain.Song{ID: songID, ArtistID: &artistID}

	songRepo.On("GetByID", ctx, songID).Return(song, nil)
	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	songRepo.On("Delete", ctx, songID).Return(nil)
	artistRepo.On("IncrementTracks", ctx, artistID, int64(-1)).Return(domain.ErrArtistNotFound)

	err := useCase.Delete(ctx, songID)

	assert.NoError(t, err)
}

func TestSongUseCase_List(t *testing.T) {
	useCase, _, songRepo, _ := newSongUseCase()
	ctx := context.Background()

	filter := domain.SongFilter{Genre: "rock", Offset: 0, Limit: 50}
	songs := []*domain.Song{{ID: uuid.Must(uuid.NewV7())}}
	songRepo.On("List", ctx, filter).Return(songs, nil)

	got, err := useCase.List(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, songs, got)
}

func TestSongUseCase_RegisterPlayAndLike(t *testing.T) {
	useCase, _, songRepo, _ := newSongUseCase()
	ctx := context.Background()

	songID := uuid.Must(uuid.NewV7())
	songRepo.On("IncrementPlays", ctx, songID).Return(nil)
	songRepo.On("IncrementLikes", ctx, songID).Return(nil)

	assert.NoError(t, useCase.RegisterPlay(ctx, songID))
	assert.NoError(t, useCase.Like(ctx, songID))
	songRepo.AssertExpectations(t)
}
