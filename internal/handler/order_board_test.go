package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodcart-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBoardService is a mock implementation of the BoardService interface
type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) Board(ctx context.Context) ([]service.BoardEntry, error) {
	args := m.Called(ctx)
	board, _ := args.Get(0).([]service.BoardEntry)
	return board, args.Error(1)
}

func TestOrderBoardHandler_Board(t *testing.T) {
	gin.SetMode(gin.TestMode)

	board := []service.BoardEntry{
		{
			ID:            1,
			Firstname:     "Ivan",
			Lastname:      "Petrov",
			Phonenumber:   "+79001112233",
			Address:       "Moscow, Tverskaya 7",
			TotalPrice:    600,
			Status:        "Created",
			PaymentMethod: "Cash",
			AvailableRestaurants: []service.RestaurantOption{
				{Restaurant: "Central", Distance: "2.35 km"},
				{Restaurant: "North", Distance: "coordinates unavailable"},
			},
		},
	}

	tests := []struct {
		name           string
		mockBoard      []service.BoardEntry
		mockError      error
		expectedStatus int
	}{
		{
			name:           "renders board with mixed distance outcomes",
			mockBoard:      board,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty board",
			mockBoard:      []service.BoardEntry{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "service error",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockBoardService)
			mockSvc.On("Board", mock.Anything).Return(tt.mockBoard, tt.mockError)
			handler := NewOrderBoardHandler(mockSvc)

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/api/orders/board", nil)
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.Board(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.mockError == nil {
				var actual []service.BoardEntry
				err := json.Unmarshal(w.Body.Bytes(), &actual)
				assert.NoError(t, err)
				assert.Equal(t, tt.mockBoard, actual)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
