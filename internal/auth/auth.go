package auth

import (
	"context"
	"errors"

	"github.com/parthodeb03/Project-Comfy-Go-sub000/config"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is what the engine needs from authentication; how credentials are
// verified is the collaborator's business.
type Identity struct {
	OwnerID     string
	Role        string
	DisplayName string
}

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*Identity, error)
}

// StaticAuthenticator verifies against the user list in the config file.
// Deployments with a real identity provider swap in their own Authenticator.
type StaticAuthenticator struct {
	users map[string]config.AuthUser
}

func NewStaticAuthenticator(cfg config.AuthConfig) *StaticAuthenticator {
	users := make(map[string]config.AuthUser, len(cfg.Users))
	for _, u := range cfg.Users {
		users[u.Username] = u
	}
	return &StaticAuthenticator{users: users}
}

func (a *StaticAuthenticator) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	u, ok := a.users[username]
	if !ok || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return &Identity{OwnerID: u.OwnerID, Role: u.Role, DisplayName: u.DisplayName}, nil
}

var _ Authenticator = (*StaticAuthenticator)(nil)
