package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// ExtrasHandler exposes CRUD endpoints for additional services.
type ExtrasHandler struct {
	svc *service.ExtrasService
}

// NewExtrasHandler constructs an ExtrasHandler.
func NewExtrasHandler(svc *service.ExtrasService) *ExtrasHandler {
	return &ExtrasHandler{svc: svc}
}

// List handles GET /v1/services.
func (h *ExtrasHandler) List(c echo.Context) error {
	services, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, services)
}

// Get handles GET /v1/services/:id.
func (h *ExtrasHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	svc, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, svc)
}

// Create handles POST /v1/services. Duplicate descriptions within the
// same reservation return a 409.
func (h *ExtrasHandler) Create(c echo.Context) error {
	var req model.AdditionalServiceCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	svc, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, svc)
}

// Update handles PATCH /v1/services/:id.
func (h *ExtrasHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var patch model.AdditionalServicePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	svc, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /v1/services/:id.
func (h *ExtrasHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	svc, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("service deleted: %d", svc.ID),
	})
}
