package handlers

import (
	"context"
	"net/http"

	"github.com/youone-its/bookstore-backend/internal/models"
)

// StatisticsGetter defines the interface that the service must implement.
type StatisticsGetter interface {
	Statistics(ctx context.Context) (*models.Statistics, error)
}

// NewTransactionStatisticsHandler returns an HTTP handler computing sales
// statistics over all orders.
// @Summary Sales statistics
// @Description Returns transaction count, total and average revenue, most and least popular genres, and the per-genre breakdown.
// @Tags transactions
// @Produce json
// @Success 200 {object} handlers.APIResponse "Statistics"
// @Failure 401 {object} handlers.APIResponse "Unauthorized"
// @Router /transactions/statistics [get]
// @Security BearerAuth
func NewTransactionStatisticsHandler(svc StatisticsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Statistics(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: stats})
	}
}
