package repository

import "context"

// SessionLogRepository is an append-only audit of session lifecycle events.
// The engine only ever writes to it.
type SessionLogRepository interface {
	Append(ctx context.Context, eventType, ownerID, details string) error
}

type PGSessionLogRepository struct {
	db Querier
}

func NewSessionLogRepository(db Querier) SessionLogRepository {
	return &PGSessionLogRepository{db: db}
}

func (r *PGSessionLogRepository) Append(ctx context.Context, eventType, ownerID, details string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO session_log (event_type, owner_id, details) VALUES ($1, $2, $3)`, eventType, ownerID, details)
	return err
}

var _ SessionLogRepository = (*PGSessionLogRepository)(nil)
