package domain

import (
	"errors"
	"time"
)

const (
	RoleClient    = "client"
	RoleInspector = "inspector"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidRole = errors.New("invalid role")
var ErrMissingInspectorID = errors.New("inspector id is required")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateCar = errors.New("car already added")
var ErrCarNotFound = errors.New("car not found")

// Token resolution failure kinds. Kept distinct so the API can tell an
// expired token apart from a malformed one or one whose subject no
// longer resolves to a stored user.
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token invalid")
var ErrUnknownSubject = errors.New("token subject not found")

// User models an authenticated actor: either a client who owns cars or
// an inspector who records inspections.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Phone        string    `json:"phone" bson:"phone"`
	Email        string    `json:"email" bson:"email"`
	Role         string    `json:"role" bson:"role"`
	PasswordHash string    `json:"-" bson:"password"`
	InspectorID  string    `json:"inspector_id,omitempty" bson:"inspector_id,omitempty"`
	Cars         []string  `json:"cars" bson:"cars"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// ValidRole reports whether role is one of the two supported roles.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleInspector
}

// RequireRole gates an operation on the caller's role.
func RequireRole(u *User, role string) error {
	if u == nil || u.Role != role {
		return ErrForbidden
	}
	return nil
}

// HasCar reports whether the user's car list contains the given plate.
func (u *User) HasCar(plate string) bool {
	for _, p := range u.Cars {
		if p == plate {
			return true
		}
	}
	return false
}
