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
	"github.com/youone-its/bookstore-backend/internal/repositories"
)

func TestBookListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		target         string
		mockSetup      func(m *MockBookLister)
		expectedCode   int
		expectedFilter repositories.BookFilter
		expectedPages  int
	}{
		{
			name:   "defaults",
			target: "/books",
			mockSetup: func(m *MockBookLister) {
				m.EXPECT().
					List(gomock.Any(), repositories.BookFilter{Limit: 10, Offset: 0}).
					Return([]models.Book{{ID: 1, Title: "Dune"}}, int64(1), nil)
			},
			expectedCode:  http.StatusOK,
			expectedPages: 1,
		},
		{
			name:   "page and limit",
			target: "/books?page=3&limit=5",
			mockSetup: func(m *MockBookLister) {
				m.EXPECT().
					List(gomock.Any(), repositories.BookFilter{Limit: 5, Offset: 10}).
					Return([]models.Book{}, int64(12), nil)
			},
			expectedCode:  http.StatusOK,
			expectedPages: 3,
		},
		{
			name:   "search and sort",
			target: "/books?search=guin&sortBy=price",
			mockSetup: func(m *MockBookLister) {
				m.EXPECT().
					List(gomock.Any(), repositories.BookFilter{Search: "guin", SortBy: "price", Limit: 10, Offset: 0}).
					Return([]models.Book{}, int64(0), nil)
			},
			expectedCode:  http.StatusOK,
			expectedPages: 0,
		},
		{
			name:   "negative page falls back to first",
			target: "/books?page=-2",
			mockSetup: func(m *MockBookLister) {
				m.EXPECT().
					List(gomock.Any(), repositories.BookFilter{Limit: 10, Offset: 0}).
					Return([]models.Book{}, int64(0), nil)
			},
			expectedCode:  http.StatusOK,
			expectedPages: 0,
		},
		{
			name:   "internal server error",
			target: "/books",
			mockSetup: func(m *MockBookLister) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					Return(nil, int64(0), errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBookLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewBookListHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp APIResponse
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)

			if tt.expectedCode == http.StatusOK {
				assert.True(t, resp.Success)
				assert.NotNil(t, resp.Pagination)
				assert.Equal(t, tt.expectedPages, resp.Pagination.TotalPages)
			} else {
				assert.False(t, resp.Success)
			}
		})
	}
}
