package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/repositories"
	"github.com/youone-its/bookstore-backend/internal/services"
)

func TestBookListByGenreHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		genreID         string
		target          string
		mockSetup       func(m *MockGenreBookLister)
		expectedCode    int
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:    "success",
			genreID: "2",
			target:  "/books/genre/2?limit=5",
			mockSetup: func(m *MockGenreBookLister) {
				m.EXPECT().
					ListByGenre(gomock.Any(), int64(2), repositories.BookFilter{Limit: 5, Offset: 0}).
					Return([]models.Book{{ID: 1, Title: "Dune"}}, int64(1), nil)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: true,
		},
		{
			name:            "invalid genre id",
			genreID:         "abc",
			target:          "/books/genre/abc",
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Invalid genre id",
		},
		{
			name:    "genre not found",
			genreID: "42",
			target:  "/books/genre/42",
			mockSetup: func(m *MockGenreBookLister) {
				m.EXPECT().
					ListByGenre(gomock.Any(), int64(42), gomock.Any()).
					Return(nil, int64(0), services.ErrGenreNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedSuccess: false,
			expectedMessage: "Genre not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGenreBookLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewBookListByGenreHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = withURLParam(req, "genre_id", tt.genreID)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp APIResponse
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedSuccess, resp.Success)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
