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

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginData carries the token and profile of a successful login.
// swagger:model LoginData
type LoginData struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.APIResponse "Token and profile returned"
// @Failure 400 {object} handlers.APIResponse "Invalid request body"
// @Failure 401 {object} handlers.APIResponse "Invalid email or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		v := validator.New()
		v.Check(req.Email != "", "email", "must be provided")
		v.Check(req.Password != "", "password", "must be provided")
		if !v.Valid() {
			writeValidationErrors(w, v.Errors)
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeData(w, http.StatusOK, "Login successful", LoginData{
			Token: token,
			User:  user,
		})
	}
}
