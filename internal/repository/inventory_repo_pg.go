package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/domain"
	"go.uber.org/zap"
)

type InventoryRepository interface {
	TryDebit(ctx context.Context, resourceKey string, quantity int) (bool, error)
	Credit(ctx context.Context, resourceKey string, quantity int) error
	GetByKey(ctx context.Context, resourceKey string) (*domain.InventoryRecord, error)
	List(ctx context.Context) ([]domain.InventoryRecord, error)
	Upsert(ctx context.Context, record *domain.InventoryRecord) error
}

type PGInventoryRepository struct {
	db     Querier
	logger *zap.Logger
}

func NewInventoryRepository(db Querier, logger *zap.Logger) InventoryRepository {
	return &PGInventoryRepository{db: db, logger: logger}
}

// TryDebit decrements available units only when enough remain. The guard and
// the decrement are one statement, so concurrent debits against the same
// resource serialize on the row and can never drive the count negative.
func (r *PGInventoryRepository) TryDebit(ctx context.Context, resourceKey string, quantity int) (bool, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE inventory SET available_units = available_units - $2, updated_at = now() WHERE resource_key=$1 AND available_units >= $2`, resourceKey, quantity)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// Credit restores units, clamped at total_units. A credit that would exceed
// the total indicates an upstream bookkeeping bug and is logged, not applied.
func (r *PGInventoryRepository) Credit(ctx context.Context, resourceKey string, quantity int) error {
	var available, total int
	row := r.db.QueryRow(ctx, `SELECT available_units, total_units FROM inventory WHERE resource_key=$1 FOR UPDATE`, resourceKey)
	if err := row.Scan(&available, &total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	next := available + quantity
	if next > total {
		if r.logger != nil {
			r.logger.Warn("inventory credit clamped",
				zap.String("resource_key", resourceKey),
				zap.Int("available", available),
				zap.Int("credit", quantity),
				zap.Int("total", total))
		}
		next = total
	}

	_, err := r.db.Exec(ctx, `UPDATE inventory SET available_units=$2, updated_at=now() WHERE resource_key=$1`, resourceKey, next)
	return err
}

func (r *PGInventoryRepository) GetByKey(ctx context.Context, resourceKey string) (*domain.InventoryRecord, error) {
	row := r.db.QueryRow(ctx, `SELECT resource_key, name, total_units, available_units, unit_price_cents, created_at, updated_at FROM inventory WHERE resource_key=$1`, resourceKey)
	var rec domain.InventoryRecord
	if err := row.Scan(&rec.ResourceKey, &rec.Name, &rec.TotalUnits, &rec.AvailableUnits, &rec.UnitPriceCents, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *PGInventoryRepository) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT resource_key, name, total_units, available_units, unit_price_cents, created_at, updated_at FROM inventory ORDER BY resource_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.InventoryRecord, 0)
	for rows.Next() {
		var rec domain.InventoryRecord
		if err := rows.Scan(&rec.ResourceKey, &rec.Name, &rec.TotalUnits, &rec.AvailableUnits, &rec.UnitPriceCents, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PGInventoryRepository) Upsert(ctx context.Context, record *domain.InventoryRecord) error {
	return r.db.QueryRow(ctx, `INSERT INTO inventory (resource_key, name, total_units, available_units, unit_price_cents)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (resource_key) DO UPDATE SET name=EXCLUDED.name, total_units=EXCLUDED.total_units, available_units=EXCLUDED.available_units, unit_price_cents=EXCLUDED.unit_price_cents, updated_at=now()
		RETURNING created_at, updated_at`,
		record.ResourceKey, record.Name, record.TotalUnits, record.AvailableUnits, record.UnitPriceCents).
		Scan(&record.CreatedAt, &record.UpdatedAt)
}

var _ InventoryRepository = (*PGInventoryRepository)(nil)
