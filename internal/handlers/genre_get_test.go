package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/services"
)

func TestGenreGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	count := int64(7)

	tests := []struct {
		name            string
		genreID         string
		mockSetup       func(m *MockGenreGetter)
		expectedCode    int
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:    "success",
			genreID: "1",
			mockSetup: func(m *MockGenreGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(&models.Genre{ID: 1, Name: "Fantasy", BookCount: &count}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: true,
		},
		{
			name:            "invalid id",
			genreID:         "abc",
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Invalid genre id",
		},
		{
			name:    "not found",
			genreID: "42",
			mockSetup: func(m *MockGenreGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(42)).
					Return(nil, services.ErrGenreNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedSuccess: false,
			expectedMessage: "Genre not found",
		},
		{
			name:    "internal server error",
			genreID: "1",
			mockSetup: func(m *MockGenreGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedSuccess: false,
			expectedMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGenreGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewGenreGetHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/genre/"+tt.genreID, nil)
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
