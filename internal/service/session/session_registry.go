package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/domain"
	"go.uber.org/zap"
)

// EventLog receives session lifecycle events. It is a side log: append
// failures are reported but never fail the session operation itself.
type EventLog interface {
	Append(ctx context.Context, eventType, ownerID, details string) error
}

// Registry holds at most one live session per identity, guarded by a mutex
// since logins, validations and timer-driven sweeps run concurrently.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]*domain.Session
	idleTimeout time.Duration
	log         EventLog
	logger      *zap.Logger
}

func NewRegistry(idleTimeout time.Duration, log EventLog, logger *zap.Logger) *Registry {
	return &Registry{
		sessions:    make(map[string]*domain.Session),
		idleTimeout: idleTimeout,
		log:         log,
		logger:      logger,
	}
}

// Create evicts any prior session for the same identity, then issues a fresh
// opaque token.
func (r *Registry) Create(ctx context.Context, ownerID, role string) (*domain.Session, error) {
	r.mu.Lock()
	_, hadPrior := r.sessions[ownerID]
	now := time.Now()
	s := &domain.Session{
		OwnerID:    ownerID,
		Role:       role,
		Token:      uuid.NewString(),
		CreatedAt:  now,
		LastActive: now,
	}
	r.sessions[ownerID] = s
	r.mu.Unlock()

	if hadPrior {
		r.append(ctx, "session_evicted", ownerID, "replaced by new login")
	}
	r.append(ctx, "session_created", ownerID, "role="+role)
	return s, nil
}

// Validate checks the token for the identity and refreshes the last-activity
// time on success. An idle-expired session is removed on the spot.
func (r *Registry) Validate(ctx context.Context, ownerID, token string) bool {
	r.mu.Lock()
	s, ok := r.sessions[ownerID]
	if !ok || s.Token != token {
		r.mu.Unlock()
		return false
	}
	if time.Since(s.LastActive) > r.idleTimeout {
		delete(r.sessions, ownerID)
		r.mu.Unlock()
		r.append(ctx, "session_expired", ownerID, "expired on validate")
		return false
	}
	s.LastActive = time.Now()
	r.mu.Unlock()
	return true
}

func (r *Registry) Destroy(ctx context.Context, ownerID string) bool {
	r.mu.Lock()
	_, ok := r.sessions[ownerID]
	delete(r.sessions, ownerID)
	r.mu.Unlock()

	if ok {
		r.append(ctx, "session_destroyed", ownerID, "logout")
	}
	return ok
}

// SweepExpired removes every session idle past the timeout and returns how
// many were dropped.
func (r *Registry) SweepExpired(ctx context.Context) int {
	cutoff := time.Now().Add(-r.idleTimeout)

	r.mu.Lock()
	var expired []string
	for ownerID, s := range r.sessions {
		if s.LastActive.Before(cutoff) {
			expired = append(expired, ownerID)
			delete(r.sessions, ownerID)
		}
	}
	r.mu.Unlock()

	for _, ownerID := range expired {
		r.append(ctx, "session_expired", ownerID, "idle timeout sweep")
	}
	return len(expired)
}

func (r *Registry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) append(ctx context.Context, eventType, ownerID, details string) {
	if r.log == nil {
		return
	}
	if err := r.log.Append(ctx, eventType, ownerID, details); err != nil && r.logger != nil {
		r.logger.Warn("failed to append session log", zap.String("event", eventType), zap.String("owner_id", ownerID), zap.Error(err))
	}
}
