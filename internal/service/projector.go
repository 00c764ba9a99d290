package service

import (
	"sort"

	"foodcart-api/internal/models"
)

// ProjectOrders arranges open orders into workflow order for the board:
// delivered orders are dropped, the rest sort by status rank (created,
// accepted, packed) and then by ID ascending.
func ProjectOrders(orders []models.Order) []models.Order {
	projected := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == models.StatusDelivered {
			continue
		}
		projected = append(projected, o)
	}

	sort.Slice(projected, func(i, j int) bool {
		if projected[i].Status.Rank() != projected[j].Status.Rank() {
			return projected[i].Status.Rank() < projected[j].Status.Rank()
		}
		return projected[i].ID < projected[j].ID
	})
	return projected
}
