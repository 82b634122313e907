package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roadworthy/pti-system/internal/core/ports"
)

// InspectionHandler handles HTTP requests for inspection records.
type InspectionHandler struct {
	service ports.InspectionService
}

func NewInspectionHandler(service ports.InspectionService) *InspectionHandler {
	return &InspectionHandler{service: service}
}

// Create records a new inspection.
//
// @Summary      Create an inspection record
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInspectionRequest  true  "Inspection details"
// @Success      200   {object}  domain.Inspection
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /inspections [post]
func (h *InspectionHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createInspectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inspection, err := h.service.Create(c.Request().Context(), user, toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, inspection)
}

// List returns the caller's visible inspections.
//
// @Summary      List inspections
// @Tags         inspections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Inspection
// @Failure      401  {object}  errorResponse
// @Router       /inspections [get]
func (h *InspectionHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	inspections, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, inspections)
}

// Search returns all inspections for a license plate.
//
// @Summary      Search inspections by license plate
// @Tags         inspections
// @Produce      json
// @Security     BearerAuth
// @Param        license_plate  path      string  true  "License plate"
// @Success      200            {array}   domain.Inspection
// @Failure      403            {object}  errorResponse
// @Router       /inspections/search/{license_plate} [get]
func (h *InspectionHandler) Search(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	inspections, err := h.service.Search(c.Request().Context(), user, c.Param("license_plate"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, inspections)
}

// Update applies a partial update to an inspection.
//
// @Summary      Update an inspection record
// @Tags         inspections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Inspection id"
// @Param        body  body      updateInspectionRequest  true  "Fields to change"
// @Success      200   {object}  domain.Inspection
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /inspections/{id} [put]
func (h *InspectionHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateInspectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inspection, err := h.service.Update(c.Request().Context(), user, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, inspection)
}

// Delete permanently removes an inspection.
//
// @Summary      Delete an inspection record
// @Tags         inspections
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Inspection id"
// @Success      200 {object}  messageResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /inspections/{id} [delete]
func (h *InspectionHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "inspection deleted"})
}

// ExpiringSoon returns the caller's inspections expiring within 30 days.
//
// @Summary      List inspections expiring within 30 days
// @Tags         inspections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Inspection
// @Failure      401  {object}  errorResponse
// @Router       /inspections/expiring/soon [get]
func (h *InspectionHandler) ExpiringSoon(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	inspections, err := h.service.ExpiringSoon(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, inspections)
}
