package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/middlewares"
	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/services"
	"github.com/youone-its/bookstore-backend/internal/validator"
)

// OrderCreator defines the interface that the service must implement.
type OrderCreator interface {
	Create(ctx context.Context, userID int64, items []services.OrderItemRequest) (*models.Order, error)
}

// TransactionItemRequest is one line of an order request.
// swagger:model TransactionItemRequest
type TransactionItemRequest struct {
	// Book to order
	// required: true
	// example: 1
	BookID int64 `json:"book_id"`

	// Positive quantity
	// required: true
	// example: 2
	Quantity int `json:"quantity"`
}

// CreateTransactionRequest represents the JSON body for order placement.
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Order lines, at least one
	// required: true
	Items []TransactionItemRequest `json:"items"`
}

func (req *CreateTransactionRequest) validate() *validator.Validator {
	v := validator.New()
	v.Check(len(req.Items) > 0, "items", "must contain at least one item")
	for i, item := range req.Items {
		field := fmt.Sprintf("items.%d", i)
		v.Check(item.BookID >= 1, field+".book_id", "must be a valid book id")
		v.Check(item.Quantity >= 1, field+".quantity", "must be at least 1")
	}
	return v
}

// NewTransactionCreateHandler returns an HTTP handler placing an order.
// @Summary Place an order
// @Description Creates an order for the authenticated user, decrementing stock atomically. The order fails as a whole when any book is missing or short on stock.
// @Tags transactions
// @Accept json
// @Produce json
// @Param createTransactionRequest body handlers.CreateTransactionRequest true "Order request"
// @Success 201 {object} handlers.APIResponse "Order created"
// @Failure 400 {object} handlers.APIResponse "Validation error or insufficient stock"
// @Failure 401 {object} handlers.APIResponse "Unauthorized"
// @Failure 404 {object} handlers.APIResponse "Book not found"
// @Router /transactions [post]
// @Security BearerAuth
func NewTransactionCreateHandler(svc OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if v := req.validate(); !v.Valid() {
			writeValidationErrors(w, v.Errors)
			return
		}

		items := make([]services.OrderItemRequest, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, services.OrderItemRequest{
				BookID:   item.BookID,
				Quantity: item.Quantity,
			})
		}

		order, err := svc.Create(r.Context(), userID, items)
		if err != nil {
			var notFound *services.BookNotFoundError
			var noStock *services.InsufficientStockError
			switch {
			case errors.As(err, &notFound):
				writeError(w, http.StatusNotFound, fmt.Sprintf("Book with id %d not found", notFound.BookID))
			case errors.As(err, &noStock):
				writeError(w, http.StatusBadRequest, fmt.Sprintf("Insufficient stock for book %q, available: %d", noStock.Title, noStock.Available))
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeData(w, http.StatusCreated, "Transaction created successfully", order)
	}
}
