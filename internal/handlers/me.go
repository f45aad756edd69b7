package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/middlewares"
	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/services"
)

// ProfileGetter defines the interface that the profile service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
}

// NewMeHandler returns an HTTP handler for the authenticated user's profile.
// @Summary Current user profile
// @Description Returns the profile of the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.APIResponse "User profile"
// @Failure 401 {object} handlers.APIResponse "Unauthorized"
// @Failure 404 {object} handlers.APIResponse "User not found"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: user})
	}
}
