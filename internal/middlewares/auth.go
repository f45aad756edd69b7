package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/jwt"
	"github.com/youone-its/bookstore-backend/internal/logger"
)

// Tokener defines the minimal token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware validates the bearer token and stores the authenticated
// user id in the request context. Any failure maps to 401.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, claims.UserID)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": "Unauthorized",
	})
}

type userIDKey struct{}

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext retrieves the authenticated user id from the context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
