package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	SetStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type PGBookingRepository struct {
	db Querier
}

func NewBookingRepository(db Querier) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	booking.Status = domain.BookingStatusPending
	return r.db.QueryRow(ctx, `INSERT INTO booking (booking_id, owner_id, resource_key, resource_descriptor, quantity, total_price_cents, status, payment_id, check_in, check_out)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		booking.ID, booking.OwnerID, booking.ResourceKey, booking.ResourceDescriptor, booking.Quantity, booking.TotalPriceCents, booking.Status, booking.PaymentID, booking.CheckIn, booking.CheckOut).
		Scan(&booking.CreatedAt, &booking.UpdatedAt)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT booking_id, owner_id, resource_key, resource_descriptor, quantity, total_price_cents, status, payment_id, check_in, check_out, created_at, updated_at FROM booking WHERE booking_id=$1`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.OwnerID, &b.ResourceKey, &b.ResourceDescriptor, &b.Quantity, &b.TotalPriceCents, &b.Status, &b.PaymentID, &b.CheckIn, &b.CheckOut, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// SetStatus overwrites the status unconditionally; transition rules live in
// the coordinating service, not here.
func (r *PGBookingRepository) SetStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	cmd, err := r.db.Exec(ctx, `UPDATE booking SET status=$1, updated_at=now() WHERE booking_id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGBookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT booking_id, owner_id, resource_key, resource_descriptor, quantity, total_price_cents, status, payment_id, check_in, check_out, created_at, updated_at FROM booking WHERE owner_id=$1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.ResourceKey, &b.ResourceDescriptor, &b.Quantity, &b.TotalPriceCents, &b.Status, &b.PaymentID, &b.CheckIn, &b.CheckOut, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM booking WHERE booking_id=$1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
