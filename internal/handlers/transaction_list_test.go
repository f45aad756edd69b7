package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/youone-its/bookstore-backend/internal/middlewares"
	"github.com/youone-its/bookstore-backend/internal/models"
)

func TestTransactionListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		authenticated   bool
		mockSetup       func(m *MockOrderLister)
		expectedCode    int
		expectedSuccess bool
		expectedLen     int
	}{
		{
			name:          "success",
			authenticated: true,
			mockSetup: func(m *MockOrderLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return([]models.Order{
						{ID: 2, UserID: 7, Total: 25},
						{ID: 1, UserID: 7, Total: 12.5},
					}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: true,
			expectedLen:     2,
		},
		{
			name:          "empty history",
			authenticated: true,
			mockSetup: func(m *MockOrderLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return([]models.Order{}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: true,
			expectedLen:     0,
		},
		{
			name:            "no user in context",
			authenticated:   false,
			expectedCode:    http.StatusUnauthorized,
			expectedSuccess: false,
		},
		{
			name:          "internal server error",
			authenticated: true,
			mockSetup: func(m *MockOrderLister) {
				m.EXPECT().
					List(gomock.Any(), int64(7)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockOrderLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewTransactionListHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
			if tt.authenticated {
				req = req.WithContext(middlewares.WithUserID(req.Context(), 7))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp APIResponse
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedSuccess, resp.Success)

			if tt.expectedSuccess && tt.expectedLen > 0 {
				data, ok := resp.Data.([]any)
				assert.True(t, ok)
				assert.Len(t, data, tt.expectedLen)
			}
		})
	}
}
