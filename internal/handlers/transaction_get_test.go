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
	"github.com/youone-its/bookstore-backend/internal/services"
)

func TestTransactionGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		transactionID   string
		authenticated   bool
		mockSetup       func(m *MockOrderGetter)
		expectedCode    int
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:          "success",
			transactionID: "10",
			authenticated: true,
			mockSetup: func(m *MockOrderGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(7), int64(10)).
					Return(&models.Order{ID: 10, UserID: 7, Total: 25}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: true,
		},
		{
			name:            "no user in context",
			transactionID:   "10",
			authenticated:   false,
			expectedCode:    http.StatusUnauthorized,
			expectedSuccess: false,
			expectedMessage: "Unauthorized",
		},
		{
			name:            "invalid id",
			transactionID:   "abc",
			authenticated:   true,
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Invalid transaction id",
		},
		{
			name:          "not found or not owned",
			transactionID: "99",
			authenticated: true,
			mockSetup: func(m *MockOrderGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(7), int64(99)).
					Return(nil, services.ErrOrderNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedSuccess: false,
			expectedMessage: "Transaction not found",
		},
		{
			name:          "internal server error",
			transactionID: "10",
			authenticated: true,
			mockSetup: func(m *MockOrderGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(7), int64(10)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedSuccess: false,
			expectedMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockOrderGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewTransactionGetHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/transactions/"+tt.transactionID, nil)
			req = withURLParam(req, "transaction_id", tt.transactionID)
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
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
