package idgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
)

const (
	MinDigits = 2
	MaxDigits = 18
)

var ErrInvalidDigits = errors.New("digit count must be between 2 and 18")

// ExistsFunc checks whether a candidate identifier is already taken in the
// target collection. Binding the allocator to a concrete repository method
// instead of a string-keyed table name means a misspelled collection cannot
// compile.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// Allocate returns a random numeric identifier of exactly digits digits that
// did not exist at check time, retrying up to maxAttempts on collision. If
// every attempt collides it returns one final candidate without checking; the
// caller's primary-key constraint turns the vanishingly rare residual
// duplicate into a failed transaction rather than silent corruption.
func Allocate(ctx context.Context, digits, maxAttempts int, exists ExistsFunc) (string, error) {
	if digits < MinDigits || digits > MaxDigits {
		return "", ErrInvalidDigits
	}
	if exists == nil {
		return "", errors.New("exists check is required")
	}

	for i := 0; i < maxAttempts; i++ {
		id := randomDigits(digits)
		taken, err := exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check id: %w", err)
		}
		if !taken {
			return id, nil
		}
	}
	return randomDigits(digits), nil
}

func randomDigits(n int) string {
	low := int64(1)
	for i := 1; i < n; i++ {
		low *= 10
	}
	return strconv.FormatInt(low+rand.Int64N(9*low), 10)
}
