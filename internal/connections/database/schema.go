package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Tables lists every table in the schema, in dependency order.
var Tables = []string{
	"customers", "employees", "tables", "categories",
	"menu_items", "reservations", "shifts", "orders", "order_items",
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS customers (
    customer_id  BIGSERIAL PRIMARY KEY,
    first_name   TEXT NOT NULL,
    last_name    TEXT NOT NULL,
    phone        TEXT,
    email        TEXT UNIQUE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS employees (
    employee_id  BIGSERIAL PRIMARY KEY,
    first_name   TEXT NOT NULL,
    last_name    TEXT NOT NULL,
    role         TEXT NOT NULL CHECK (role IN ('Manager','Host','Server','Bartender','Cook')),
    phone        TEXT,
    email        TEXT UNIQUE,
    hire_date    DATE NOT NULL DEFAULT CURRENT_DATE,
    hourly_wage  NUMERIC(6,2) NOT NULL CHECK (hourly_wage >= 0),
    manager_id   BIGINT REFERENCES employees(employee_id)
);

CREATE TABLE IF NOT EXISTS tables (
    table_id     BIGSERIAL PRIMARY KEY,
    table_number TEXT NOT NULL UNIQUE,
    capacity     INT NOT NULL CHECK (capacity > 0),
    location     TEXT NOT NULL,
    is_active    BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS categories (
    category_id  BIGSERIAL PRIMARY KEY,
    name         TEXT NOT NULL UNIQUE,
    description  TEXT
);

CREATE TABLE IF NOT EXISTS menu_items (
    item_id      BIGSERIAL PRIMARY KEY,
    name         TEXT NOT NULL,
    description  TEXT,
    price        NUMERIC(8,2) NOT NULL CHECK (price > 0),
    category_id  BIGINT NOT NULL REFERENCES categories(category_id),
    is_available BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS reservations (
    reservation_id   BIGSERIAL PRIMARY KEY,
    customer_id      BIGINT NOT NULL REFERENCES customers(customer_id),
    table_id         BIGINT NOT NULL REFERENCES tables(table_id),
    reservation_date DATE NOT NULL,
    reservation_time TIME NOT NULL,
    party_size       INT NOT NULL CHECK (party_size >= 1),
    status           TEXT NOT NULL DEFAULT 'Confirmed'
                     CHECK (status IN ('Confirmed','Seated','Cancelled','No-Show')),
    special_requests TEXT,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS shifts (
    shift_id    BIGSERIAL PRIMARY KEY,
    employee_id BIGINT NOT NULL REFERENCES employees(employee_id),
    shift_date  DATE NOT NULL,
    start_time  TIME NOT NULL,
    end_time    TIME NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    order_id    BIGSERIAL PRIMARY KEY,
    customer_id BIGINT REFERENCES customers(customer_id),
    employee_id BIGINT NOT NULL REFERENCES employees(employee_id),
    table_id    BIGINT REFERENCES tables(table_id),
    order_type  TEXT NOT NULL CHECK (order_type IN ('Dine-In','Takeout','Bar')),
    status      TEXT NOT NULL DEFAULT 'Open'
                CHECK (status IN ('Open','In Progress','Completed','Cancelled')),
    order_date  DATE NOT NULL DEFAULT CURRENT_DATE,
    order_time  TIME NOT NULL,
    subtotal    NUMERIC(10,2) NOT NULL DEFAULT 0,
    tax         NUMERIC(10,2) NOT NULL DEFAULT 0,
    tip         NUMERIC(10,2) NOT NULL DEFAULT 0,
    total       NUMERIC(10,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS order_items (
    order_item_id        BIGSERIAL PRIMARY KEY,
    order_id             BIGINT NOT NULL REFERENCES orders(order_id),
    item_id              BIGINT NOT NULL REFERENCES menu_items(item_id),
    quantity             INT NOT NULL CHECK (quantity >= 1),
    unit_price           NUMERIC(8,2) NOT NULL,
    special_instructions TEXT
);

CREATE INDEX IF NOT EXISTS idx_reservations_slot
    ON reservations (table_id, reservation_date);
CREATE INDEX IF NOT EXISTS idx_orders_date ON orders (order_date);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id);
`

// Migrate applies the schema. Statements are idempotent, so running it
// against an initialized database is a no-op.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Reset drops every table and reapplies the schema.
func Reset(ctx context.Context, db *sql.DB) error {
	drop := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", strings.Join(Tables, ", "))
	if _, err := db.ExecContext(ctx, drop); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return Migrate(ctx, db)
}

// Initialized reports whether the schema has been applied.
func Initialized(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM information_schema.tables
		 WHERE table_schema = 'public' AND table_name = 'orders'`).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// TableCounts returns the row count of every schema table.
func TableCounts(ctx context.Context, db *sql.DB) (map[string]int, error) {
	counts := make(map[string]int, len(Tables))
	for _, t := range Tables {
		var n int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", t, err)
		}
		counts[t] = n
	}
	return counts, nil
}
