package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/karaoke/internal/catalog/http/dto"
	"github.com/allisson/karaoke/internal/catalog/usecase"
	"github.com/allisson/karaoke/internal/httputil"
)

// ArtistHandler handles artist HTTP requests
type ArtistHandler struct {
	artistUseCase usecase.ArtistUseCase
	logger        *slog.Logger
}

// NewArtistHandler creates a new ArtistHandler
func NewArtistHandler(artistUseCase usecase.ArtistUseCase, logger *slog.Logger) *ArtistHandler {
	return &ArtistHandler{
		artistUseCase: artistUseCase,
		logger:        logger,
	}
}

// ListHandler lists artists with pagination.
// GET /api/artists?offset=&limit=
func (h *ArtistHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	artists, err := h.artistUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtistListResponse(artists, offset, limit))
}

// GetHandler retrieves a single artist.
// GET /api/artist/:id
func (h *ArtistHandler) GetHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	artist, err := h.artistUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtistResponse(artist))
}

// CreateHandler creates a new artist.
// POST /api/artist - Returns 201 Created.
func (h *ArtistHandler) CreateHandler(c *gin.Context) {
	var req dto.ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	artist, err := h.artistUseCase.Create(c.Request.Context(), dto.ToArtistInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToArtistResponse(artist))
}

// UpdateHandler replaces the mutable fields of an artist.
// PUT /api/artist/:id
func (h *ArtistHandler) UpdateHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	artist, err := h.artistUseCase.Update(c.Request.Context(), id, dto.ToArtistInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtistResponse(artist))
}

// DeleteHandler removes an artist.
// DELETE /api/artist/:id - Returns 204 No Content.
func (h *ArtistHandler) DeleteHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.artistUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
