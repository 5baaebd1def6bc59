package auth

import (
	"context"

	"github.com/de-tools/columbo-connector/pkg/models/domain"
	"github.com/de-tools/columbo-connector/pkg/store/credentials"
)

// Gate guards data access behind a presence-only credential check. It
// never contacts the remote service to verify that the stored credentials
// are actually accepted.
type Gate struct {
	store credentials.Store
}

func NewGate(store credentials.Store) *Gate {
	return &Gate{store: store}
}

// IsAuthorized reports whether both credential parts are stored and
// non-empty. A partial state, username without token or the reverse,
// counts as unauthorized.
func (g *Gate) IsAuthorized(ctx context.Context) bool {
	creds, err := g.store.Get(ctx)
	if err != nil {
		return false
	}
	return creds.Valid()
}

// SetCredentials persists the candidate only when it would pass the
// presence check; otherwise it reports rejection without touching the
// store.
func (g *Gate) SetCredentials(ctx context.Context, candidate domain.Credentials) (bool, error) {
	if !candidate.Valid() {
		return false, nil
	}
	if err := g.store.Set(ctx, candidate); err != nil {
		return false, err
	}
	return true, nil
}

// Reset deletes any stored credentials. Safe to call repeatedly.
func (g *Gate) Reset(ctx context.Context) error {
	return g.store.Delete(ctx)
}
