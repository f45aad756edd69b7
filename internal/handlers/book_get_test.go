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

func TestBookGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		bookID          string
		mockSetup       func(m *MockBookGetter)
		expectedCode    int
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:   "success",
			bookID: "1",
			mockSetup: func(m *MockBookGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(&models.Book{ID: 1, Title: "Dune", Genre: &models.Genre{ID: 2, Name: "Science Fiction"}}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: true,
		},
		{
			name:            "invalid id",
			bookID:          "abc",
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Invalid book id",
		},
		{
			name:   "not found",
			bookID: "42",
			mockSetup: func(m *MockBookGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(42)).
					Return(nil, services.ErrBookNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedSuccess: false,
			expectedMessage: "Book not found",
		},
		{
			name:   "internal server error",
			bookID: "1",
			mockSetup: func(m *MockBookGetter) {
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
			mockSvc := NewMockBookGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewBookGetHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/books/"+tt.bookID, nil)
			req = withURLParam(req, "book_id", tt.bookID)

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
