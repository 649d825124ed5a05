// Package http provides HTTP handlers for catalog operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/catalog/domain"
	"github.com/allisson/karaoke/internal/catalog/http/dto"
	"github.com/allisson/karaoke/internal/catalog/usecase"
	"github.com/allisson/karaoke/internal/httputil"
)

// SongHandler handles song HTTP requests
type SongHandler struct {
	songUseCase usecase.SongUseCase
	logger      *slog.Logger
}

// NewSongHandler creates a new SongHandler
func NewSongHandler(songUseCase usecase.SongUseCase, logger *slog.Logger) *SongHandler {
	return &SongHandler{
		songUseCase: songUseCase,
		logger:      logger,
	}
}

// ListHandler lists songs with optional genre, language and artist filters.
// GET /api/songs?genre=&language=&artist_id=&offset=&limit=
func (h *SongHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	filter := domain.SongFilter{
		Genre:    c.Query("genre"),
		Language: c.Query("language"),
		Offset:   offset,
		Limit:    limit,
	}
	if artistIDStr := c.Query("artist_id"); artistIDStr != "" {
		artistID, err := uuid.Parse(artistIDStr)
		if err != nil {
			httputil.HandleBadRequestGin(c, fmt.Errorf("invalid artist_id parameter"), h.logger)
			return
		}
		filter.ArtistID = &artistID
	}

	songs, err := h.songUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToSongListResponse(songs, offset, limit))
}

// GetHandler retrieves a single song.
// GET /api/song/:id
func (h *SongHandler) GetHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	song, err := h.songUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToSongResponse(song))
}

// CreateHandler creates a new song.
// POST /api/song - Returns 201 Created.
func (h *SongHandler) CreateHandler(c *gin.Context) {
	var req dto.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	song, err := h.songUseCase.Create(c.Request.Context(), dto.ToSongInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSongResponse(song))
}

// UpdateHandler replaces the mutable fields of a song.
// PUT /api/song/:id
func (h *SongHandler) UpdateHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	song, err := h.songUseCase.Update(c.Request.Context(), id, dto.ToSongInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToSongResponse(song))
}

// DeleteHandler removes a song.
// DELETE /api/song/:id - Returns 204 No Content.
func (h *SongHandler) DeleteHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.songUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// PlayHandler registers a playback of a song.
// POST /api/song/:id/play
func (h *SongHandler) PlayHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.songUseCase.RegisterPlay(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Play registered"})
}

// LikeHandler registers a like for a song.
// POST /api/song/:id/like
func (h *SongHandler) LikeHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.songUseCase.Like(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Like registered"})
}

// parseIDParam parses the :id route parameter as a UUID.
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id parameter")
	}
	return id, nil
}
