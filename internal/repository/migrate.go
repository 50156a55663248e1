package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createBookingTableSQL = `
CREATE TABLE IF NOT EXISTS booking (
    booking_id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    resource_key TEXT NOT NULL,
    resource_descriptor TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    total_price_cents BIGINT NOT NULL,
    status TEXT NOT NULL,
    payment_id TEXT NOT NULL REFERENCES payment (payment_id),
    check_in TIMESTAMP WITH TIME ZONE,
    check_out TIMESTAMP WITH TIME ZONE,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
);`

const createPaymentTableSQL = `
CREATE TABLE IF NOT EXISTS payment (
    payment_id TEXT PRIMARY KEY,
    amount_cents BIGINT NOT NULL,
    method TEXT NOT NULL,
    status TEXT NOT NULL,
    transaction_ref TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
);`

const createInventoryTableSQL = `
CREATE TABLE IF NOT EXISTS inventory (
    resource_key TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    total_units INTEGER NOT NULL,
    available_units INTEGER NOT NULL,
    unit_price_cents BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
    CHECK (available_units >= 0 AND available_units <= total_units)
);`

const createSessionLogTableSQL = `
CREATE TABLE IF NOT EXISTS session_log (
    id BIGSERIAL PRIMARY KEY,
    event_type TEXT NOT NULL,
    owner_id TEXT NOT NULL,
    details TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
);`

// RunMigrations creates the engine's tables. Order matters: booking
// references payment.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range []string{
		createPaymentTableSQL,
		createBookingTableSQL,
		createInventoryTableSQL,
		createSessionLogTableSQL,
	} {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}
	return nil
}
