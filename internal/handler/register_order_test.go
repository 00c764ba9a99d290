package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodcart-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderService is a mock implementation of the OrderService interface
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Register(ctx context.Context, cmd service.IntakeCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func TestRegisterOrderHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validPayload := `{
		"firstname": "Ivan",
		"lastname": "Petrov",
		"phonenumber": "+79001112233",
		"address": "Moscow, Tverskaya 7",
		"products": [{"product": 10, "quantity": 2}]
	}`

	tests := []struct {
		name           string
		payload        string
		mockID         int64
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "valid order",
			payload:        validPayload,
			mockID:         42,
			expectService:  true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "products missing",
			payload:        `{"firstname": "Ivan", "lastname": "Petrov", "phonenumber": "+79001112233", "address": "x"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "products not a list",
			payload:        `{"firstname": "Ivan", "lastname": "Petrov", "phonenumber": "+79001112233", "address": "x", "products": "burger"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero quantity",
			payload:        `{"firstname": "Ivan", "lastname": "Petrov", "phonenumber": "+79001112233", "address": "x", "products": [{"product": 10, "quantity": 0}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed json",
			payload:        `{"firstname":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service validation failure",
			payload:        validPayload,
			mockError:      fmt.Errorf("%w: unknown product 10", service.ErrInvalidOrder),
			expectService:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service failure",
			payload:        validPayload,
			mockError:      assert.AnError,
			expectService:  true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockOrderService)
			if tt.expectService {
				mockSvc.On("Register", mock.Anything, mock.Anything).Return(tt.mockID, tt.mockError)
			}
			handler := NewRegisterOrderHandler(mockSvc)

			// Create request
			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.Register(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var body map[string]int64
				err := json.Unmarshal(w.Body.Bytes(), &body)
				assert.NoError(t, err)
				assert.Equal(t, tt.mockID, body["id"])
			}
			if !tt.expectService {
				mockSvc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRegisterOrderHandler_PassesPaymentAndComments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockOrderService)
	mockSvc.On("Register", mock.Anything, mock.MatchedBy(func(cmd service.IntakeCommand) bool {
		return cmd.PaymentMethod == "card" && cmd.Comments == "no onions" &&
			len(cmd.Items) == 1 && cmd.Items[0].ProductID == 10 && cmd.Items[0].Quantity == 2
	})).Return(int64(7), nil)
	handler := NewRegisterOrderHandler(mockSvc)

	payload := `{
		"firstname": "Ivan",
		"lastname": "Petrov",
		"phonenumber": "+79001112233",
		"address": "Moscow, Tverskaya 7",
		"payment_method": "card",
		"comments": "no onions",
		"products": [{"product": 10, "quantity": 2}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}
