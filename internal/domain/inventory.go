package domain

import "time"

// InventoryRecord is the per-resource unit pool (e.g. a hotel's rooms).
// Invariant: 0 <= AvailableUnits <= TotalUnits.
type InventoryRecord struct {
	ResourceKey    string
	Name           string
	TotalUnits     int
	AvailableUnits int
	UnitPriceCents int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
