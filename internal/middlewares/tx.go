package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/youone-its/bookstore-backend/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction commits only when the handler reports a success status;
// any 4xx/5xx response or panic rolls every write back, which is what makes
// multi-step writes like order placement all-or-nothing.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			ctx := setTxToContext(r.Context(), tx)
			next.ServeHTTP(rw, r.WithContext(ctx))

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
			}
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
