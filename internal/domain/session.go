package domain

import "time"

// Session is process-local state; the session_log table only records
// lifecycle events, it is never read back as authoritative state.
type Session struct {
	OwnerID    string
	Role       string
	Token      string
	CreatedAt  time.Time
	LastActive time.Time
}
