package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrPaymentNotPending    = errors.New("payment is not pending")
	ErrPaymentNotRefundable = errors.New("payment is not refundable")
	ErrNonPositiveAmount    = errors.New("payment amount must be positive")
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// same repository code serves both plain reads and transactional flows.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store hands out repositories bound to the shared pool, and opens units of
// work whose repositories all ride one transaction.
type Store interface {
	Begin(ctx context.Context) (UnitOfWork, error)
	Bookings() BookingRepository
	Payments() PaymentRepository
	Inventory() InventoryRepository
}

// UnitOfWork groups the repositories participating in one atomic flow.
// Everything obtained from it commits together or not at all.
type UnitOfWork interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	Inventory() InventoryRepository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PGStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewStore(pool *pgxpool.Pool, logger *zap.Logger) *PGStore {
	return &PGStore{pool: pool, logger: logger}
}

func (s *PGStore) Begin(ctx context.Context) (UnitOfWork, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	return &pgUnitOfWork{tx: tx, logger: s.logger}, nil
}

func (s *PGStore) Bookings() BookingRepository {
	return NewBookingRepository(s.pool)
}

func (s *PGStore) Payments() PaymentRepository {
	return NewPaymentRepository(s.pool)
}

func (s *PGStore) Inventory() InventoryRepository {
	return NewInventoryRepository(s.pool, s.logger)
}

type pgUnitOfWork struct {
	tx     pgx.Tx
	logger *zap.Logger
}

func (u *pgUnitOfWork) Bookings() BookingRepository {
	return NewBookingRepository(u.tx)
}

func (u *pgUnitOfWork) Payments() PaymentRepository {
	return NewPaymentRepository(u.tx)
}

func (u *pgUnitOfWork) Inventory() InventoryRepository {
	return NewInventoryRepository(u.tx, u.logger)
}

func (u *pgUnitOfWork) Commit(ctx context.Context) error {
	return u.tx.Commit(ctx)
}

// Rollback after a successful Commit is a no-op, so callers can defer it.
func (u *pgUnitOfWork) Rollback(ctx context.Context) error {
	err := u.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

var _ Store = (*PGStore)(nil)
var _ UnitOfWork = (*pgUnitOfWork)(nil)
