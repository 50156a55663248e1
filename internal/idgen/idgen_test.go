package idgen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func neverExists(context.Context, string) (bool, error) { return false, nil }

func TestAllocate_DigitBounds(t *testing.T) {
	ctx := context.Background()

	for _, digits := range []int{-1, 0, 1, 19, 100} {
		_, err := Allocate(ctx, digits, 5, neverExists)
		assert.ErrorIs(t, err, ErrInvalidDigits, "digits=%d", digits)
	}
}

func TestAllocate_Length(t *testing.T) {
	ctx := context.Background()

	for _, digits := range []int{MinDigits, 6, 10, MaxDigits} {
		id, err := Allocate(ctx, digits, 5, neverExists)
		assert.NoError(t, err)
		assert.Len(t, id, digits)
		assert.NotEqual(t, byte('0'), id[0])
	}
}

func TestAllocate_RetriesOnCollision(t *testing.T) {
	ctx := context.Background()

	calls := 0
	exists := func(context.Context, string) (bool, error) {
		calls++
		return calls == 1, nil
	}

	id, err := Allocate(ctx, 8, 5, exists)

	assert.NoError(t, err)
	assert.Len(t, id, 8)
	assert.Equal(t, 2, calls)
}

func TestAllocate_ExhaustedAttemptsFallsBack(t *testing.T) {
	ctx := context.Background()

	calls := 0
	alwaysTaken := func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	}

	// With every check claiming a collision, the allocator still hands out a
	// final candidate and lets the primary key arbitrate.
	id, err := Allocate(ctx, 8, 3, alwaysTaken)

	assert.NoError(t, err)
	assert.Len(t, id, 8)
	assert.Equal(t, 3, calls)
}

func TestAllocate_ExistsError(t *testing.T) {
	ctx := context.Background()

	boom := errors.New("connection reset")
	exists := func(context.Context, string) (bool, error) { return false, boom }

	_, err := Allocate(ctx, 8, 5, exists)

	assert.ErrorIs(t, err, boom)
}

func TestAllocate_NilExists(t *testing.T) {
	_, err := Allocate(context.Background(), 8, 5, nil)
	assert.Error(t, err)
}
