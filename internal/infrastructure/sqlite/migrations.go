package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaV1 esquema completo de la tienda. IDs uuid en TEXT; montos en NUMERIC
// escaneados como shopspring/decimal.
const schemaV1 = `
CREATE TABLE IF NOT EXISTS products (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    category      TEXT NOT NULL,
    price         NUMERIC NOT NULL CHECK (price >= 0),
    description   TEXT NOT NULL DEFAULT '',
    image_url     TEXT NOT NULL DEFAULT '',
    is_available  BOOLEAN NOT NULL DEFAULT 1,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category, name);

CREATE TABLE IF NOT EXISTS product_options (
    id             TEXT PRIMARY KEY,
    product_id     TEXT NOT NULL REFERENCES products(id),
    option_name    TEXT NOT NULL,
    option_value   TEXT NOT NULL,
    price_modifier NUMERIC NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_product_options_product ON product_options(product_id, option_name, option_value);

CREATE TABLE IF NOT EXISTS customers (
    id             TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    email          TEXT NOT NULL UNIQUE,
    phone          TEXT NOT NULL DEFAULT '',
    loyalty_points INTEGER NOT NULL DEFAULT 0,
    created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS orders (
    id             TEXT PRIMARY KEY,
    customer_id    TEXT REFERENCES customers(id),
    order_number   TEXT NOT NULL UNIQUE,
    subtotal       NUMERIC NOT NULL,
    tax            NUMERIC NOT NULL,
    total          NUMERIC NOT NULL,
    payment_method TEXT NOT NULL CHECK (payment_method IN ('cash','card','mobile')),
    status         TEXT NOT NULL DEFAULT 'completed',
    cashier_name   TEXT NOT NULL DEFAULT '',
    created_at     TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS order_items (
    id             TEXT PRIMARY KEY,
    order_id       TEXT NOT NULL REFERENCES orders(id),
    product_id     TEXT NOT NULL REFERENCES products(id),
    quantity       INTEGER NOT NULL CHECK (quantity > 0),
    unit_price     NUMERIC NOT NULL,
    customizations TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);

CREATE TABLE IF NOT EXISTS inventory (
    id             TEXT PRIMARY KEY,
    product_id     TEXT NOT NULL UNIQUE REFERENCES products(id),
    current_stock  INTEGER NOT NULL CHECK (current_stock >= 0),
    min_stock      INTEGER NOT NULL DEFAULT 10,
    max_stock      INTEGER NOT NULL DEFAULT 100,
    last_restocked TIMESTAMP
);

CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    full_name     TEXT NOT NULL,
    role          TEXT NOT NULL CHECK (role IN ('admin','cashier','manager')),
    is_active     BOOLEAN NOT NULL DEFAULT 1,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Migrate aplica el esquema. Idempotente (IF NOT EXISTS en todo el DDL).
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("aplicar esquema v1: %w", err)
	}
	return nil
}
