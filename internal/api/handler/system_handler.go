package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/entarch/systems-catalog/internal/core/ports"
)

// SystemHandler handles HTTP requests for catalog entries.
type SystemHandler struct {
	service ports.SystemService
}

func NewSystemHandler(service ports.SystemService) *SystemHandler {
	return &SystemHandler{service: service}
}

// List handles GET /api/systems.
//
// @Summary      List catalog entries
// @Tags         systems
// @Produce      json
// @Param        status  query     string  false  "Filter by status (active, inactive, pending)"
// @Param        search  query     string  false  "Case-insensitive match on name, description, or steward names"
// @Success      200     {array}   systemResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/systems [get]
func (h *SystemHandler) List(c echo.Context) error {
	systems, err := h.service.ListSystems(c.Request().Context(), ports.ListSystemsFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(systems))
}

// Get handles GET /api/systems/:system_id.
//
// @Summary      Get a catalog entry by id
// @Tags         systems
// @Produce      json
// @Param        system_id  path      string  true  "System id (e.g. SYS-ABC123-X9K2P)"
// @Success      200        {object}  systemResponse
// @Failure      404        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /api/systems/{system_id} [get]
func (h *SystemHandler) Get(c echo.Context) error {
	sys, err := h.service.GetSystem(c.Request().Context(), c.Param("system_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSystemResponse(sys))
}

// Create handles POST /api/systems.
//
// @Summary      Create a catalog entry
// @Tags         systems
// @Accept       json
// @Produce      json
// @Param        body  body      createSystemRequest  true  "System details"
// @Success      201   {object}  systemResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/systems [post]
func (h *SystemHandler) Create(c echo.Context) error {
	var req createSystemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sys, err := h.service.CreateSystem(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toSystemResponse(sys))
}

// Update handles PUT /api/systems/:system_id.
//
// @Summary      Partially update a catalog entry
// @Tags         systems
// @Accept       json
// @Produce      json
// @Param        system_id  path      string               true  "System id"
// @Param        body       body      updateSystemRequest  true  "Fields to update"
// @Success      200        {object}  systemResponse
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /api/systems/{system_id} [put]
func (h *SystemHandler) Update(c echo.Context) error {
	var req updateSystemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sys, err := h.service.UpdateSystem(c.Request().Context(), c.Param("system_id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSystemResponse(sys))
}

// Delete handles DELETE /api/systems/:system_id.
//
// @Summary      Delete a catalog entry
// @Tags         systems
// @Param        system_id  path  string  true  "System id"
// @Success      204        "entry removed"
// @Failure      404        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /api/systems/{system_id} [delete]
func (h *SystemHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteSystem(c.Request().Context(), c.Param("system_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
