package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusConsumedInventory(t *testing.T) {
	assert.True(t, BookingStatusCompleted.ConsumedInventory())
	assert.True(t, BookingStatusConfirmed.ConsumedInventory())
	assert.False(t, BookingStatusPending.ConsumedInventory())
	assert.False(t, BookingStatusFailed.ConsumedInventory())
	assert.False(t, BookingStatusCancelled.ConsumedInventory())
}
