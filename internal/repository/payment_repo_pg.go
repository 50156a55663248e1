package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/domain"
)

type PaymentRepository interface {
	CreatePending(ctx context.Context, payment *domain.Payment) error
	Settle(ctx context.Context, id string, amountDueCents, amountTenderedCents int64) (domain.PaymentStatus, error)
	Refund(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type PGPaymentRepository struct {
	db Querier
}

func NewPaymentRepository(db Querier) PaymentRepository {
	return &PGPaymentRepository{db: db}
}

func (r *PGPaymentRepository) CreatePending(ctx context.Context, payment *domain.Payment) error {
	if payment.AmountCents <= 0 {
		return ErrNonPositiveAmount
	}
	payment.Status = domain.PaymentStatusPending
	payment.TransactionRef = transactionRef(payment.ID)
	return r.db.QueryRow(ctx, `INSERT INTO payment (payment_id, amount_cents, method, status, transaction_ref, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		payment.ID, payment.AmountCents, payment.Method, payment.Status, payment.TransactionRef, payment.Description).
		Scan(&payment.CreatedAt, &payment.UpdatedAt)
}

// Settle moves a PENDING payment to its terminal state: COMPLETED when the
// tendered amount covers the amount due, FAILED otherwise. There is no
// partial-payment state.
func (r *PGPaymentRepository) Settle(ctx context.Context, id string, amountDueCents, amountTenderedCents int64) (domain.PaymentStatus, error) {
	status := domain.PaymentStatusFailed
	if amountTenderedCents >= amountDueCents {
		status = domain.PaymentStatusCompleted
	}
	cmd, err := r.db.Exec(ctx, `UPDATE payment SET status=$1, updated_at=now() WHERE payment_id=$2 AND status=$3`, status, id, domain.PaymentStatusPending)
	if err != nil {
		return "", err
	}
	if cmd.RowsAffected() == 0 {
		return "", ErrPaymentNotPending
	}
	return status, nil
}

// Refund is reachable only from COMPLETED; anything else is reported, not
// silently accepted.
func (r *PGPaymentRepository) Refund(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE payment SET status=$1, updated_at=now() WHERE payment_id=$2 AND status=$3`, domain.PaymentStatusRefunded, id, domain.PaymentStatusCompleted)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrPaymentNotRefundable
	}
	return nil
}

func (r *PGPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx, `SELECT payment_id, amount_cents, method, status, transaction_ref, description, created_at, updated_at FROM payment WHERE payment_id=$1`, id)
	var p domain.Payment
	if err := row.Scan(&p.ID, &p.AmountCents, &p.Method, &p.Status, &p.TransactionRef, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPaymentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payment WHERE payment_id=$1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func transactionRef(paymentID string) string {
	return fmt.Sprintf("TXN-%s-%s", time.Now().UTC().Format("20060102150405"), paymentID)
}

var _ PaymentRepository = (*PGPaymentRepository)(nil)
