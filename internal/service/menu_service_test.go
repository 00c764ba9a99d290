package service

import (
	"context"
	"testing"

	"foodcart-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of the ProductRepository interface
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *MockProductRepository) ListAvailableProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func TestMenuService_AvailableProducts(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Burger", Price: 250},
		{ID: 2, Name: "Fries", Price: 120},
	}

	mockProducts := new(MockProductRepository)
	mockProducts.On("ListAvailableProducts", mock.Anything).Return(products, nil)

	svc := NewMenuService(mockProducts, new(MockMenuRepository))

	got, err := svc.AvailableProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestMenuService_Matrix(t *testing.T) {
	restaurants := []models.Restaurant{
		{ID: 1, Name: "Central"},
		{ID: 2, Name: "North"},
	}
	products := []models.Product{
		{ID: 10, Name: "Burger", Price: 250},
		{ID: 11, Name: "Fries", Price: 120},
	}
	entries := []models.MenuEntry{
		{RestaurantID: 1, ProductID: 10, Availability: true},
		{RestaurantID: 1, ProductID: 11, Availability: false},
		{RestaurantID: 2, ProductID: 11, Availability: true},
	}

	mockProducts := new(MockProductRepository)
	mockMenu := new(MockMenuRepository)
	mockProducts.On("ListProducts", mock.Anything).Return(products, nil)
	mockMenu.On("ListRestaurants", mock.Anything).Return(restaurants, nil)
	mockMenu.On("ListMenuEntries", mock.Anything).Return(entries, nil)

	svc := NewMenuService(mockProducts, mockMenu)

	matrix, err := svc.Matrix(context.Background())

	require.NoError(t, err)
	assert.Equal(t, restaurants, matrix.Restaurants)
	require.Len(t, matrix.Products, 2)

	// Burger: only Central. Fries: only North; no entry reads as unavailable.
	assert.Equal(t, []bool{true, false}, matrix.Products[0].Availability)
	assert.Equal(t, []bool{false, true}, matrix.Products[1].Availability)
}

func TestMenuService_Matrix_RepositoryError(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockMenu := new(MockMenuRepository)
	mockMenu.On("ListRestaurants", mock.Anything).Return([]models.Restaurant(nil), assert.AnError)

	svc := NewMenuService(mockProducts, mockMenu)

	_, err := svc.Matrix(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}
