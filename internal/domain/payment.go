package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type Payment struct {
	ID             string
	AmountCents    int64
	Method         string
	Status         PaymentStatus
	TransactionRef string
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
