package models

// Restaurant represents a branch that can prepare and hand orders to couriers.
type Restaurant struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

// Product is a menu item sold through the storefront.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Description   string  `json:"description,omitempty"`
	SpecialStatus bool    `json:"special_status"`
}

// MenuEntry links a restaurant to a product it may sell. A pair is unique;
// Availability tells whether the restaurant can currently prepare the product.
type MenuEntry struct {
	RestaurantID int64 `json:"restaurant_id"`
	ProductID    int64 `json:"product_id"`
	Availability bool  `json:"availability"`
}
