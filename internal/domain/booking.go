package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusFailed    BookingStatus = "FAILED"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ConsumedInventory reports whether a booking in this status holds debited
// inventory units. CONFIRMED is written by manager-side tooling, never by
// this engine, but a cancelled CONFIRMED booking must still release units.
func (s BookingStatus) ConsumedInventory() bool {
	return s == BookingStatusCompleted || s == BookingStatusConfirmed
}

type Booking struct {
	ID                 string
	OwnerID            string
	ResourceKey        string
	ResourceDescriptor string
	Quantity           int
	TotalPriceCents    int64
	Status             BookingStatus
	PaymentID          string
	CheckIn            *time.Time
	CheckOut           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
