package handlers

import (
	"bytes"
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

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		reqBody         LoginRequest
		rawBody         string
		mockSetup       func(m *MockLoginer)
		expectedCode    int
		expectedSuccess bool
		expectedMessage string
		expectToken     string
	}{
		{
			name:    "success",
			reqBody: LoginRequest{Email: "john@example.com", Password: "secret123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return("token-123", &models.User{ID: 1, Email: "john@example.com"}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: true,
			expectedMessage: "Login successful",
			expectToken:     "token-123",
		},
		{
			name:    "invalid credentials",
			reqBody: LoginRequest{Email: "john@example.com", Password: "wrong"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedSuccess: false,
			expectedMessage: "Invalid email or password",
		},
		{
			name:            "missing fields",
			reqBody:         LoginRequest{},
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Validation error",
		},
		{
			name:            "invalid json",
			rawBody:         "{invalid json}",
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Invalid request body",
		},
		{
			name:    "internal server error",
			reqBody: LoginRequest{Email: "john@example.com", Password: "secret123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret123").
					Return("", nil, errors.New("database failure"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedSuccess: false,
			expectedMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp APIResponse
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedSuccess, resp.Success)
			assert.Equal(t, tt.expectedMessage, resp.Message)

			if tt.expectToken != "" {
				data, ok := resp.Data.(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, tt.expectToken, data["token"])
			}
		})
	}
}
