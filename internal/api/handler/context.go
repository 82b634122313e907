package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/roadworthy/pti-system/internal/core/domain"
)

// currentUser extracts the caller resolved by the Auth middleware and
// fast-fails before any service call: presence of the user proves the
// middleware ran and the token's subject still exists in the store.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, domain.ErrTokenInvalid
	}
	return user, nil
}
