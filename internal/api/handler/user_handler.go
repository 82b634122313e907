package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roadworthy/pti-system/internal/core/ports"
)

// UserHandler handles car list management for client accounts.
type UserHandler struct {
	accounts ports.AccountService
}

func NewUserHandler(accounts ports.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// AddCar appends a license plate to the caller's car list.
//
// @Summary      Add a car to the caller's account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCarRequest  true  "License plate"
// @Success      200   {object}  carsResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /users/add-car [post]
func (h *UserHandler) AddCar(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cars, err := h.accounts.AddCar(c.Request().Context(), user, req.LicensePlate)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, carsResponse{Message: "car added", Cars: cars})
}

// RemoveCar removes a license plate from the caller's car list.
//
// @Summary      Remove a car from the caller's account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        license_plate  path      string  true  "License plate"
// @Success      200            {object}  carsResponse
// @Failure      403            {object}  errorResponse
// @Failure      404            {object}  errorResponse
// @Router       /users/remove-car/{license_plate} [delete]
func (h *UserHandler) RemoveCar(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	cars, err := h.accounts.RemoveCar(c.Request().Context(), user, c.Param("license_plate"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, carsResponse{Message: "car removed", Cars: cars})
}
