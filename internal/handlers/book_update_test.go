package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/youone-its/bookstore-backend/internal/models"
	"github.com/youone-its/bookstore-backend/internal/services"
)

func TestBookUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newTitle := "Dune Messiah"
	badPrice := -3.0
	emptyTitle := ""

	tests := []struct {
		name            string
		bookID          string
		reqBody         UpdateBookRequest
		rawBody         string
		mockSetup       func(m *MockBookUpdater)
		expectedCode    int
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:    "success",
			bookID:  "1",
			reqBody: UpdateBookRequest{Title: &newTitle},
			mockSetup: func(m *MockBookUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(1), gomock.Any()).
					Return(&models.Book{ID: 1, Title: "Dune Messiah"}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedSuccess: true,
			expectedMessage: "Book updated successfully",
		},
		{
			name:            "invalid id",
			bookID:          "abc",
			reqBody:         UpdateBookRequest{Title: &newTitle},
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Invalid book id",
		},
		{
			name:    "book not found",
			bookID:  "42",
			reqBody: UpdateBookRequest{Title: &newTitle},
			mockSetup: func(m *MockBookUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(42), gomock.Any()).
					Return(nil, services.ErrBookNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedSuccess: false,
			expectedMessage: "Book not found",
		},
		{
			name:    "genre not found",
			bookID:  "1",
			reqBody: UpdateBookRequest{GenreID: ptrInt64(99)},
			mockSetup: func(m *MockBookUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, services.ErrGenreNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedSuccess: false,
			expectedMessage: "Genre not found",
		},
		{
			name:    "duplicate title",
			bookID:  "1",
			reqBody: UpdateBookRequest{Title: &newTitle},
			mockSetup: func(m *MockBookUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, services.ErrBookTitleTaken)
			},
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Book with this title already exists",
		},
		{
			name:            "empty title rejected",
			bookID:          "1",
			reqBody:         UpdateBookRequest{Title: &emptyTitle},
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Validation error",
		},
		{
			name:            "negative price rejected",
			bookID:          "1",
			reqBody:         UpdateBookRequest{Price: &badPrice},
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Validation error",
		},
		{
			name:            "invalid json",
			bookID:          "1",
			rawBody:         "{invalid json}",
			expectedCode:    http.StatusBadRequest,
			expectedSuccess: false,
			expectedMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBookUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewBookUpdateHandler(mockSvc)

			var body *bytes.Buffer
			if tt.rawBody != "" {
				body = bytes.NewBufferString(tt.rawBody)
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				body = bytes.NewBuffer(bodyBytes)
			}

			req := httptest.NewRequest(http.MethodPut, "/books/"+tt.bookID, body)
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

func ptrInt64(v int64) *int64 { return &v }
