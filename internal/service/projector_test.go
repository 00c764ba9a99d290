package service

import (
	"testing"

	"foodcart-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestProjectOrders(t *testing.T) {
	orders := []models.Order{
		{ID: 9, Status: models.StatusCreated},
		{ID: 2, Status: models.StatusPacked},
		{ID: 7, Status: models.StatusDelivered},
		{ID: 3, Status: models.StatusAccepted},
		{ID: 1, Status: models.StatusCreated},
		{ID: 5, Status: models.StatusAccepted},
		{ID: 4, Status: models.StatusDelivered},
	}

	projected := ProjectOrders(orders)

	var got []int64
	for _, o := range projected {
		got = append(got, o.ID)
	}
	// created ascending, then accepted, then packed; delivered gone.
	assert.Equal(t, []int64{1, 9, 3, 5, 2}, got)
}

func TestProjectOrders_Empty(t *testing.T) {
	assert.Empty(t, ProjectOrders(nil))
	assert.Empty(t, ProjectOrders([]models.Order{{ID: 1, Status: models.StatusDelivered}}))
}

func TestOrderTotalPrice(t *testing.T) {
	order := models.Order{
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2, Cost: 150.50},
			{ProductID: 2, Quantity: 1, Cost: 99.90},
		},
	}

	assert.InDelta(t, 400.90, order.TotalPrice(), 0.001)
}
