package service

import (
	"context"
	"errors"
	"fmt"

	"foodcart-api/internal/models"
)

// ErrInvalidOrder marks intake payloads that fail validation. Handlers map
// it to a 400 response.
var ErrInvalidOrder = errors.New("invalid order")

// OrderStore is the storage slice the intake path needs.
type OrderStore interface {
	GetProductsByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error)
	CreateOrder(ctx context.Context, order models.Order) (int64, error)
}

// IntakeItem is one requested order line.
type IntakeItem struct {
	ProductID int64
	Quantity  int
}

// IntakeCommand is a validated-enough order request from the storefront.
type IntakeCommand struct {
	Firstname     string
	Lastname      string
	Phonenumber   string
	Address       string
	PaymentMethod string
	Comments      string
	Items         []IntakeItem
}

// OrderService accepts new delivery orders.
type OrderService struct {
	store OrderStore
}

// NewOrderService creates a new order intake service.
func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

// Register validates the intake command, captures current product prices as
// line costs, and persists the order in the created status.
func (s *OrderService) Register(ctx context.Context, cmd IntakeCommand) (int64, error) {
	if len(cmd.Items) == 0 {
		return 0, fmt.Errorf("%w: products must not be empty", ErrInvalidOrder)
	}
	ids := make([]int64, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		if item.Quantity <= 0 {
			return 0, fmt.Errorf("%w: quantity must be positive for product %d", ErrInvalidOrder, item.ProductID)
		}
		ids = append(ids, item.ProductID)
	}

	payment := models.PaymentMethod(cmd.PaymentMethod)
	if payment == "" {
		payment = models.PaymentCash
	}
	if payment != models.PaymentCash && payment != models.PaymentCard {
		return 0, fmt.Errorf("%w: unknown payment method %q", ErrInvalidOrder, cmd.PaymentMethod)
	}

	products, err := s.store.GetProductsByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("service: failed to load products: %w", err)
	}

	order := models.Order{
		Firstname:     cmd.Firstname,
		Lastname:      cmd.Lastname,
		Phonenumber:   cmd.Phonenumber,
		Address:       cmd.Address,
		Status:        models.StatusCreated,
		PaymentMethod: payment,
		Comments:      cmd.Comments,
	}
	for _, item := range cmd.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return 0, fmt.Errorf("%w: unknown product %d", ErrInvalidOrder, item.ProductID)
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Cost:      product.Price,
		})
	}

	id, err := s.store.CreateOrder(ctx, order)
	if err != nil {
		return 0, fmt.Errorf("service: failed to create order: %w", err)
	}
	return id, nil
}
