package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/youone-its/bookstore-backend/internal/logger"
)

// Pagination describes one page of a listing.
// swagger:model Pagination
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// APIResponse is the envelope wrapping every response body.
// swagger:model APIResponse
type APIResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       any               `json:"data,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func writePaged(w http.ResponseWriter, data any, pagination Pagination) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success:    true,
		Data:       data,
		Pagination: &pagination,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Message: message,
	})
}

func writeValidationErrors(w http.ResponseWriter, fieldErrors map[string]string) {
	writeJSON(w, http.StatusBadRequest, APIResponse{
		Success: false,
		Message: "Validation error",
		Errors:  fieldErrors,
	})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Server error")
}

// readIDParam extracts a positive integer URL parameter added by chi.
func readIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id parameter")
	}
	return id, nil
}

// readInt reads an integer query parameter, returning defaultValue when the
// key is absent or unparsable.
func readInt(qs url.Values, key string, defaultValue int) int {
	s := qs.Get(key)
	if s == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return i
}

// readString reads a string query parameter, returning defaultValue when the
// key is absent or empty.
func readString(qs url.Values, key, defaultValue string) string {
	s := qs.Get(key)
	if s == "" {
		return defaultValue
	}
	return s
}

// totalPages computes the page count for a listing.
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
