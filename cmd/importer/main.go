package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"foodcart-api/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

// MenuRecord is one row of the menu CSV: a restaurant, one of its products,
// and whether the restaurant can currently prepare it.
type MenuRecord struct {
	RestaurantName    string
	RestaurantAddress string
	RestaurantPhone   string
	ProductName       string
	ProductPrice      float64
	Availability      bool
}

func main() {
	file := flag.String("file", "", "Path to the menu CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	_ = godotenv.Load()

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	// Ensure schema exists
	err = createTablesIfNotExist(conn)
	if err != nil {
		fmt.Printf("Error creating tables: %v\n", err)
		os.Exit(1)
	}

	// Insert records
	err = importRecords(conn, records)
	if err != nil {
		fmt.Printf("Error importing records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	err = verifyImport(conn, records)
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", len(records))
}

func parseCSV(filePath string) ([]MenuRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []MenuRecord
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 6 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 6 columns", len(record))
		}

		price, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price: %s", record[4])
		}

		availability, err := strconv.ParseBool(record[5])
		if err != nil {
			return nil, fmt.Errorf("invalid availability: %s", record[5])
		}

		records = append(records, MenuRecord{
			RestaurantName:    record[0],
			RestaurantAddress: record[1],
			RestaurantPhone:   record[2],
			ProductName:       record[3],
			ProductPrice:      price,
			Availability:      availability,
		})
	}

	return records, nil
}

func createTablesIfNotExist(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		address TEXT NOT NULL UNIQUE,
		lon DOUBLE PRECISION,
		lat DOUBLE PRECISION,
		last_fetched TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK ((lon IS NULL) = (lat IS NULL))
	);
	CREATE TABLE IF NOT EXISTS restaurants (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL UNIQUE,
		address VARCHAR(100) NOT NULL DEFAULT '',
		contact_phone VARCHAR(50) NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL UNIQUE,
		price NUMERIC(8,2) NOT NULL CHECK (price >= 0),
		description TEXT NOT NULL DEFAULT '',
		special_status BOOLEAN NOT NULL DEFAULT false
	);
	CREATE TABLE IF NOT EXISTS restaurant_menu_items (
		id BIGSERIAL PRIMARY KEY,
		restaurant_id BIGINT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		availability BOOLEAN NOT NULL DEFAULT true,
		UNIQUE (restaurant_id, product_id)
	);
	CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		firstname VARCHAR(100) NOT NULL,
		lastname VARCHAR(100) NOT NULL,
		phonenumber VARCHAR(50) NOT NULL,
		address TEXT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'created',
		payment_method VARCHAR(20) NOT NULL DEFAULT 'cash',
		comments TEXT NOT NULL DEFAULT '',
		cooked_by BIGINT REFERENCES restaurants(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS orders_status_idx ON orders (status);
	CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		cost NUMERIC(7,2) NOT NULL CHECK (cost >= 0)
	);
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func importRecords(conn *pgx.Conn, records []MenuRecord) error {
	ctx := context.Background()

	// Stage rows with CopyFrom, then upsert into the real tables so the
	// importer can be re-run on an updated menu.
	_, err := conn.Exec(ctx, `
		CREATE TEMP TABLE menu_import (
			restaurant_name VARCHAR(50),
			restaurant_address VARCHAR(100),
			restaurant_phone VARCHAR(50),
			product_name VARCHAR(50),
			product_price NUMERIC(8,2),
			availability BOOLEAN
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create staging table: %w", err)
	}

	_, err = conn.CopyFrom(
		ctx,
		pgx.Identifier{"menu_import"},
		[]string{"restaurant_name", "restaurant_address", "restaurant_phone", "product_name", "product_price", "availability"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			return []interface{}{r.RestaurantName, r.RestaurantAddress, r.RestaurantPhone, r.ProductName, r.ProductPrice, r.Availability}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to stage records: %w", err)
	}

	_, err = conn.Exec(ctx, `
		INSERT INTO restaurants (name, address, contact_phone)
		SELECT DISTINCT restaurant_name, restaurant_address, restaurant_phone FROM menu_import
		ON CONFLICT (name) DO UPDATE
			SET address = EXCLUDED.address, contact_phone = EXCLUDED.contact_phone;

		INSERT INTO products (name, price)
		SELECT DISTINCT product_name, product_price FROM menu_import
		ON CONFLICT (name) DO UPDATE SET price = EXCLUDED.price;

		INSERT INTO restaurant_menu_items (restaurant_id, product_id, availability)
		SELECT r.id, p.id, mi.availability
		FROM menu_import mi
		JOIN restaurants r ON r.name = mi.restaurant_name
		JOIN products p ON p.name = mi.product_name
		ON CONFLICT (restaurant_id, product_id) DO UPDATE
			SET availability = EXCLUDED.availability;
	`)
	if err != nil {
		return fmt.Errorf("failed to upsert records: %w", err)
	}
	return nil
}

func verifyImport(conn *pgx.Conn, records []MenuRecord) error {
	pairs := make(map[string]struct{}, len(records))
	for _, r := range records {
		pairs[r.RestaurantName+"\x00"+r.ProductName] = struct{}{}
	}

	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM restaurant_menu_items").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count menu items: %w", err)
	}

	if count < len(pairs) {
		return fmt.Errorf("menu item count mismatch: expected at least %d, got %d", len(pairs), count)
	}

	fmt.Printf("Menu now holds %d items\n", count)
	return nil
}
