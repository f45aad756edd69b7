package handlers

import (
	"context"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/middlewares"
	"github.com/youone-its/bookstore-backend/internal/models"
)

// OrderLister defines the interface that the service must implement.
type OrderLister interface {
	List(ctx context.Context, userID int64) ([]models.Order, error)
}

// NewTransactionListHandler returns an HTTP handler listing the caller's
// orders, newest first.
// @Summary List own orders
// @Description Lists the authenticated user's orders with their items, newest first.
// @Tags transactions
// @Produce json
// @Success 200 {object} handlers.APIResponse "Order list"
// @Failure 401 {object} handlers.APIResponse "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func NewTransactionListHandler(svc OrderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		orders, err := svc.List(r.Context(), userID)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: orders})
	}
}
