package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/services"
	"github.com/youone-its/bookstore-backend/internal/validator"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string, username *string) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Optional display name
	// example: john_doe
	Username *string `json:"username,omitempty"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.APIResponse "User successfully registered"
// @Failure 400 {object} handlers.APIResponse "Duplicate email or validation error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		v := validator.New()
		v.Check(req.Email != "", "email", "must be provided")
		v.Check(req.Email == "" || validator.Matches(req.Email, validator.EmailRX), "email", "must be a valid email address")
		v.Check(len(req.Password) >= 6, "password", "must be at least 6 characters")
		if !v.Valid() {
			writeValidationErrors(w, v.Errors)
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password, req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				writeError(w, http.StatusBadRequest, "Email already registered")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeData(w, http.StatusCreated, "User registered successfully", user)
	}
}
