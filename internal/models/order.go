package models

// OrderStatus is the workflow state of an order. Transitions are driven by the
// management UI; this service only reads the status for filtering and sorting.
type OrderStatus string

const (
	StatusCreated   OrderStatus = "created"
	StatusAccepted  OrderStatus = "accepted"
	StatusPacked    OrderStatus = "packed"
	StatusDelivered OrderStatus = "delivered"
)

// Rank returns the workflow position used to sort the order board.
// Delivered orders never reach the board, so their rank sorts last.
func (s OrderStatus) Rank() int {
	switch s {
	case StatusCreated:
		return 1
	case StatusAccepted:
		return 2
	case StatusPacked:
		return 3
	default:
		return 4
	}
}

// Label returns the human-readable status shown on the order board.
func (s OrderStatus) Label() string {
	switch s {
	case StatusCreated:
		return "Created"
	case StatusAccepted:
		return "Accepted"
	case StatusPacked:
		return "Packed"
	case StatusDelivered:
		return "Delivered"
	default:
		return string(s)
	}
}

// PaymentMethod records how the customer chose to pay. Payment itself is
// handled elsewhere; only the chosen method is stored.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Label returns the human-readable payment method shown on the order board.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Cash"
	case PaymentCard:
		return "Card"
	default:
		return string(m)
	}
}

// OrderItem is a single order line. Cost is the unit price captured when the
// order was placed, so later product price changes do not rewrite history.
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Cost      float64 `json:"cost"`
}

// Order is a delivery order accepted through the storefront intake API.
type Order struct {
	ID            int64         `json:"id"`
	Firstname     string        `json:"firstname"`
	Lastname      string        `json:"lastname"`
	Phonenumber   string        `json:"phonenumber"`
	Address       string        `json:"address"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Comments      string        `json:"comments,omitempty"`
	CookedBy      *int64        `json:"cooked_by,omitempty"`
	Items         []OrderItem   `json:"items"`
}

// TotalPrice sums quantity times captured unit cost over all order lines.
func (o Order) TotalPrice() float64 {
	var total float64
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.Cost
	}
	return total
}

// RequiredProducts returns the distinct product IDs the order needs prepared.
func (o Order) RequiredProducts() map[int64]struct{} {
	required := make(map[int64]struct{}, len(o.Items))
	for _, item := range o.Items {
		required[item.ProductID] = struct{}{}
	}
	return required
}
