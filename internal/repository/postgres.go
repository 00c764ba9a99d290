package repository

import (
	"context"
	"fmt"
	"time"

	"foodcart-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements Postgres access for all record types.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetOrCreateLocation atomically fetches the cache row for an address,
// creating an unresolved one on first sight. The no-op upsert makes RETURNING
// yield the existing row under concurrent inserts of the same address.
func (r *Repository) GetOrCreateLocation(ctx context.Context, address string) (models.Location, error) {
	sql := `
		INSERT INTO locations (address, last_fetched)
		VALUES ($1, now())
		ON CONFLICT (address) DO UPDATE SET address = EXCLUDED.address
		RETURNING address, lon, lat, last_fetched
	`

	var loc models.Location
	var lon, lat *float64
	err := r.db.QueryRow(ctx, sql, address).Scan(&loc.Address, &lon, &lat, &loc.LastFetched)
	if err != nil {
		return models.Location{}, fmt.Errorf("repository: failed to get or create location: %w", err)
	}
	if lon != nil && lat != nil {
		loc.Coords = &models.Coordinates{Lon: *lon, Lat: *lat}
	}
	return loc, nil
}

// UpdateLocationCoordinates stores a successful geocoding result. Last write
// wins when concurrent requests resolve the same address.
func (r *Repository) UpdateLocationCoordinates(ctx context.Context, address string, coords models.Coordinates, fetchedAt time.Time) error {
	sql := `UPDATE locations SET lon = $2, lat = $3, last_fetched = $4 WHERE address = $1`

	_, err := r.db.Exec(ctx, sql, address, coords.Lon, coords.Lat, fetchedAt)
	if err != nil {
		return fmt.Errorf("repository: failed to update location coordinates: %w", err)
	}
	return nil
}

// ListRestaurants returns all restaurants ordered by name.
func (r *Repository) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	sql := `SELECT id, name, address, contact_phone FROM restaurants ORDER BY name`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var rest models.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone); err != nil {
			return nil, fmt.Errorf("repository: failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating restaurants: %w", err)
	}
	return restaurants, nil
}

// ListMenuEntries returns every (restaurant, product, availability) row.
func (r *Repository) ListMenuEntries(ctx context.Context) ([]models.MenuEntry, error) {
	sql := `SELECT restaurant_id, product_id, availability FROM restaurant_menu_items`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query menu entries: %w", err)
	}
	defer rows.Close()

	var entries []models.MenuEntry
	for rows.Next() {
		var entry models.MenuEntry
		if err := rows.Scan(&entry.RestaurantID, &entry.ProductID, &entry.Availability); err != nil {
			return nil, fmt.Errorf("repository: failed to scan menu entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating menu entries: %w", err)
	}
	return entries, nil
}

// ListOpenOrders returns all orders that are not yet delivered, with their
// line items attached.
func (r *Repository) ListOpenOrders(ctx context.Context) ([]models.Order, error) {
	sql := `
		SELECT id, firstname, lastname, phonenumber, address, status, payment_method, comments, cooked_by
		FROM orders
		WHERE status <> $1
	`

	rows, err := r.db.Query(ctx, sql, string(models.StatusDelivered))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	var ids []int64
	for rows.Next() {
		var o models.Order
		var status, payment string
		if err := rows.Scan(&o.ID, &o.Firstname, &o.Lastname, &o.Phonenumber, &o.Address, &status, &payment, &o.Comments, &o.CookedBy); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		o.Status = models.OrderStatus(status)
		o.PaymentMethod = models.PaymentMethod(payment)
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.listOrderItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (r *Repository) listOrderItems(ctx context.Context, orderIDs []int64) (map[int64][]models.OrderItem, error) {
	sql := `
		SELECT order_id, product_id, quantity, cost
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query order items: %w", err)
	}
	defer rows.Close()

	items := make(map[int64][]models.OrderItem)
	for rows.Next() {
		var orderID int64
		var item models.OrderItem
		if err := rows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.Cost); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		items[orderID] = append(items[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating order items: %w", err)
	}
	return items, nil
}

// ListAvailableProducts returns products at least one restaurant can prepare.
func (r *Repository) ListAvailableProducts(ctx context.Context) ([]models.Product, error) {
	sql := `
		SELECT DISTINCT p.id, p.name, p.price, p.description, p.special_status
		FROM products p
		JOIN restaurant_menu_items m ON m.product_id = p.id
		WHERE m.availability = true
		ORDER BY p.id
	`
	return r.queryProducts(ctx, sql)
}

// ListProducts returns every product ordered by name.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	sql := `SELECT id, name, price, description, special_status FROM products ORDER BY name`
	return r.queryProducts(ctx, sql)
}

func (r *Repository) queryProducts(ctx context.Context, sql string) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.SpecialStatus); err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}
	return products, nil
}

// GetProductsByIDs fetches the given products keyed by ID. Missing IDs are
// simply absent from the result; the caller decides whether that is an error.
func (r *Repository) GetProductsByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error) {
	sql := `SELECT id, name, price, description, special_status FROM products WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query products by id: %w", err)
	}
	defer rows.Close()

	products := make(map[int64]models.Product, len(ids))
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.SpecialStatus); err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}
	return products, nil
}

// CreateOrder inserts an order with its line items in one transaction and
// returns the new order ID.
func (r *Repository) CreateOrder(ctx context.Context, order models.Order) (int64, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (firstname, lastname, phonenumber, address, status, payment_method, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, order.Firstname, order.Lastname, order.Phonenumber, order.Address,
		string(order.Status), string(order.PaymentMethod), order.Comments).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, cost)
			VALUES ($1, $2, $3, $4)
		`, id, item.ProductID, item.Quantity, item.Cost)
		if err != nil {
			return 0, fmt.Errorf("repository: failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit order: %w", err)
	}
	return id, nil
}
