package booking

import "errors"

var (
	// ErrInvalidInput rejects a request before any transaction opens.
	ErrInvalidInput = errors.New("invalid booking input")

	// ErrResourceNotFound means the requested resource key has no inventory record.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrBookingNotFound covers both an absent booking and an owner mismatch.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCancelled enforces idempotence by rejecting repeat cancellation.
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// ErrInsufficientInventory is an expected business outcome, not a fault:
	// the resource does not have enough available units.
	ErrInsufficientInventory = errors.New("insufficient inventory")
)
