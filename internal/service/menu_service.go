package service

import (
	"context"
	"fmt"

	"foodcart-api/internal/models"
)

// ProductRepository loads products for the storefront and admin screens.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListAvailableProducts(ctx context.Context) ([]models.Product, error)
}

// ProductAvailability is one matrix row: a product and its availability per
// restaurant, ordered the same way as the matrix restaurant columns.
type ProductAvailability struct {
	Product      models.Product `json:"product"`
	Availability []bool         `json:"availability"`
}

// AvailabilityMatrix is the product × restaurant availability view.
type AvailabilityMatrix struct {
	Restaurants []models.Restaurant   `json:"restaurants"`
	Products    []ProductAvailability `json:"products"`
}

// MenuService serves product listings and the availability matrix.
type MenuService struct {
	products ProductRepository
	menu     MenuRepository
}

// NewMenuService creates a new menu service.
func NewMenuService(products ProductRepository, menu MenuRepository) *MenuService {
	return &MenuService{products: products, menu: menu}
}

// AvailableProducts lists products at least one restaurant can prepare.
func (s *MenuService) AvailableProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.ListAvailableProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list available products: %w", err)
	}
	return products, nil
}

// Matrix builds the product × restaurant availability matrix. A product with
// no menu entry for some restaurant reads as unavailable there.
func (s *MenuService) Matrix(ctx context.Context) (AvailabilityMatrix, error) {
	restaurants, err := s.menu.ListRestaurants(ctx)
	if err != nil {
		return AvailabilityMatrix{}, fmt.Errorf("service: failed to load restaurants: %w", err)
	}
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return AvailabilityMatrix{}, fmt.Errorf("service: failed to load products: %w", err)
	}
	entries, err := s.menu.ListMenuEntries(ctx)
	if err != nil {
		return AvailabilityMatrix{}, fmt.Errorf("service: failed to load menu entries: %w", err)
	}

	index := BuildAvailabilityIndex(entries)
	matrix := AvailabilityMatrix{Restaurants: restaurants}
	for _, product := range products {
		row := ProductAvailability{
			Product:      product,
			Availability: make([]bool, len(restaurants)),
		}
		for i, restaurant := range restaurants {
			if available, ok := index[restaurant.ID]; ok {
				_, row.Availability[i] = available[product.ID]
			}
		}
		matrix.Products = append(matrix.Products, row)
	}
	return matrix, nil
}
