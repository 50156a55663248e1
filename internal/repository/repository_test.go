package repository

import (
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewStore(t *testing.T) {
	store := NewStore(&pgxpool.Pool{}, zap.NewNop())

	assert.NotNil(t, store)
	assert.NotNil(t, store.Bookings())
	assert.NotNil(t, store.Payments())
	assert.NotNil(t, store.Inventory())
}

func TestNewBookingRepository(t *testing.T) {
	repo := NewBookingRepository(&pgxpool.Pool{})
	assert.NotNil(t, repo)
}

func TestNewPaymentRepository(t *testing.T) {
	repo := NewPaymentRepository(&pgxpool.Pool{})
	assert.NotNil(t, repo)
}

func TestNewInventoryRepository(t *testing.T) {
	repo := NewInventoryRepository(&pgxpool.Pool{}, zap.NewNop())
	assert.NotNil(t, repo)
}

func TestNewSessionLogRepository(t *testing.T) {
	repo := NewSessionLogRepository(&pgxpool.Pool{})
	assert.NotNil(t, repo)
}

func TestTransactionRef(t *testing.T) {
	ref := transactionRef("7779876543")

	assert.True(t, strings.HasPrefix(ref, "TXN-"))
	assert.True(t, strings.HasSuffix(ref, "-7779876543"))

	parts := strings.SplitN(ref, "-", 3)
	assert.Len(t, parts, 3)
	assert.Len(t, parts[1], 14)
}
