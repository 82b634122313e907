package handler

import "github.com/roadworthy/pti-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"required"`
	Password string `json:"password" validate:"required"`
	// Inspector-only fields; the service enforces their presence and the
	// signup secret match.
	InspectorID               string `json:"inspector_id,omitempty"`
	InspectorCreationPassword string `json:"inspector_creation_password,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

type addCarRequest struct {
	LicensePlate string `json:"license_plate" validate:"required"`
}

type carsResponse struct {
	Message string   `json:"message"`
	Cars    []string `json:"cars"`
}
