package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/karaoke/internal/catalog/http/dto"
	"github.com/allisson/karaoke/internal/catalog/usecase"
	"github.com/allisson/karaoke/internal/httputil"
)

// LocationHandler handles karaoke venue HTTP requests
type LocationHandler struct {
	locationUseCase usecase.LocationUseCase
	logger          *slog.Logger
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locationUseCase usecase.LocationUseCase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		locationUseCase: locationUseCase,
		logger:          logger,
	}
}

// ListHandler lists locations with pagination.
// GET /api/locations?offset=&limit=
func (h *LocationHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	locations, err := h.locationUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationListResponse(locations, offset, limit))
}

// GetHandler retrieves a single location.
// GET /api/location/:id
func (h *LocationHandler) GetHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	location, err := h.locationUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// CreateHandler creates a new location.
// POST /api/location - Returns 201 Created.
func (h *LocationHandler) CreateHandler(c *gin.Context) {
	var req dto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	location, err := h.locationUseCase.Create(c.Request.Context(), dto.ToLocationInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLocationResponse(location))
}

// UpdateHandler replaces the mutable fields of a location.
// PUT /api/location/:id
func (h *LocationHandler) UpdateHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	location, err := h.locationUseCase.Update(c.Request.Context(), id, dto.ToLocationInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// DeleteHandler removes a location.
// DELETE /api/location/:id - Returns 204 No Content.
func (h *LocationHandler) DeleteHandler(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.locationUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
