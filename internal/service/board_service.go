package service

import (
	"context"
	"fmt"

	"foodcart-api/internal/models"
)

// OrderRepository loads orders for the board.
type OrderRepository interface {
	ListOpenOrders(ctx context.Context) ([]models.Order, error)
}

// MenuRepository loads restaurants and their menus.
type MenuRepository interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	ListMenuEntries(ctx context.Context) ([]models.MenuEntry, error)
}

// LocationResolver is the injected coordinate cache.
type LocationResolver interface {
	Resolve(ctx context.Context, address string) (models.Location, error)
}

// RestaurantOption is one restaurant able to prepare an order, annotated
// with the distance between the restaurant and the delivery address.
type RestaurantOption struct {
	Restaurant string `json:"restaurant"`
	Distance   string `json:"distance"`
}

// BoardEntry is the stable field set the presentation layer consumes.
type BoardEntry struct {
	ID                   int64              `json:"id"`
	Firstname            string             `json:"firstname"`
	Lastname             string             `json:"lastname"`
	Phonenumber          string             `json:"phonenumber"`
	Address              string             `json:"address"`
	TotalPrice           float64            `json:"total_price"`
	Status               string             `json:"status"`
	PaymentMethod        string             `json:"payment_method"`
	Comments             string             `json:"comments"`
	CookedBy             string             `json:"cooked_by,omitempty"`
	AvailableRestaurants []RestaurantOption `json:"available_restaurants"`
}

// BoardService assembles the manager order board: open orders in workflow
// order, each with its eligible restaurants and geocoded distances.
type BoardService struct {
	orders   OrderRepository
	menu     MenuRepository
	resolver LocationResolver
}

// NewBoardService creates a new order board service.
func NewBoardService(orders OrderRepository, menu MenuRepository, resolver LocationResolver) *BoardService {
	return &BoardService{orders: orders, menu: menu, resolver: resolver}
}

// Board runs one full matching pass. Geocoding happens inline; addresses the
// provider cannot resolve keep their entries with an unavailable distance
// marker instead of failing the whole board.
func (s *BoardService) Board(ctx context.Context) ([]BoardEntry, error) {
	orders, err := s.orders.ListOpenOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load orders: %w", err)
	}
	restaurants, err := s.menu.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load restaurants: %w", err)
	}
	entries, err := s.menu.ListMenuEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load menu entries: %w", err)
	}

	index := BuildAvailabilityIndex(entries)
	restaurantsByID := make(map[int64]models.Restaurant, len(restaurants))
	for _, r := range restaurants {
		restaurantsByID[r.ID] = r
	}

	board := make([]BoardEntry, 0, len(orders))
	for _, order := range ProjectOrders(orders) {
		orderLoc, err := s.resolver.Resolve(ctx, order.Address)
		if err != nil {
			return nil, err
		}

		var options []RestaurantOption
		for _, restaurant := range restaurants {
			if !index.CanFulfill(restaurant.ID, order) {
				continue
			}
			restaurantLoc, err := s.resolver.Resolve(ctx, restaurant.Address)
			if err != nil {
				return nil, err
			}
			options = append(options, RestaurantOption{
				Restaurant: restaurant.Name,
				Distance:   DistanceBetween(restaurantLoc, orderLoc).Label(),
			})
		}

		entry := BoardEntry{
			ID:                   order.ID,
			Firstname:            order.Firstname,
			Lastname:             order.Lastname,
			Phonenumber:          order.Phonenumber,
			Address:              order.Address,
			TotalPrice:           order.TotalPrice(),
			Status:               order.Status.Label(),
			PaymentMethod:        order.PaymentMethod.Label(),
			Comments:             order.Comments,
			AvailableRestaurants: options,
		}
		if order.CookedBy != nil {
			if cooking, ok := restaurantsByID[*order.CookedBy]; ok {
				entry.CookedBy = cooking.Name
			}
		}
		board = append(board, entry)
	}
	return board, nil
}
