package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/middlewares"
	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/services"
)

// OrderGetter defines the interface that the service must implement.
type OrderGetter interface {
	Get(ctx context.Context, userID, orderID int64) (*models.Order, error)
}

// NewTransactionGetHandler returns an HTTP handler fetching one of the
// caller's orders. Orders of other users read as not found.
// @Summary Get an order
// @Description Returns one of the authenticated user's orders with its items.
// @Tags transactions
// @Produce json
// @Param transaction_id path int true "Transaction ID"
// @Success 200 {object} handlers.APIResponse "Order detail"
// @Failure 400 {object} handlers.APIResponse "Invalid transaction id"
// @Failure 401 {object} handlers.APIResponse "Unauthorized"
// @Failure 404 {object} handlers.APIResponse "Transaction not found"
// @Router /transactions/{transaction_id} [get]
// @Security BearerAuth
func NewTransactionGetHandler(svc OrderGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		orderID, err := readIDParam(r, "transaction_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid transaction id")
			return
		}

		order, err := svc.Get(r.Context(), userID, orderID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOrderNotFound):
				writeError(w, http.StatusNotFound, "Transaction not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: order})
	}
}
