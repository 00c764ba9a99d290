package service

import "foodcart-api/internal/models"

// ProductSet is the set of product IDs a restaurant can currently prepare.
type ProductSet map[int64]struct{}

// AvailabilityIndex maps each referenced restaurant to its available product
// set. Restaurants whose every menu entry is unavailable still appear, with
// an empty set.
type AvailabilityIndex map[int64]ProductSet

// BuildAvailabilityIndex folds raw menu rows into a per-restaurant set of
// products with availability turned on.
func BuildAvailabilityIndex(entries []models.MenuEntry) AvailabilityIndex {
	index := make(AvailabilityIndex)
	for _, entry := range entries {
		if _, ok := index[entry.RestaurantID]; !ok {
			index[entry.RestaurantID] = make(ProductSet)
		}
		if entry.Availability {
			index[entry.RestaurantID][entry.ProductID] = struct{}{}
		}
	}
	return index
}

// CanFulfill reports whether the restaurant's available set covers every
// distinct product the order requires. Partial fulfillment is not offered.
func (idx AvailabilityIndex) CanFulfill(restaurantID int64, order models.Order) bool {
	available, ok := idx[restaurantID]
	if !ok {
		return false
	}
	for productID := range order.RequiredProducts() {
		if _, ok := available[productID]; !ok {
			return false
		}
	}
	return true
}

// MatchOrder returns the IDs of restaurants able to prepare the whole order,
// recomputed fresh on every call. Result order is unspecified; the caller
// may sort by distance afterwards.
func MatchOrder(order models.Order, index AvailabilityIndex) []int64 {
	var eligible []int64
	for restaurantID := range index {
		if index.CanFulfill(restaurantID, order) {
			eligible = append(eligible, restaurantID)
		}
	}
	return eligible
}
