package auth

import (
	"context"
	"time"
)

// RepositoryInterface defines the interface for authorized-user repository operations
type RepositoryInterface interface {
	IsAuthorized(ctx context.Context, email string) (bool, error)
	// RegisterIfRoom stores email when fewer than max users are registered.
	// It reports whether email is registered afterwards.
	RegisterIfRoom(ctx context.Context, email, name string, max int) (bool, error)
	TouchLogin(ctx context.Context, email string, at time.Time) error
	List(ctx context.Context) ([]AuthorizedUser, error)
}

// TokenVerifier validates a Google ID token for this site's client ID
type TokenVerifier interface {
	Verify(ctx context.Context, credential string) (*Identity, error)
}

// RevocationStore remembers logged-out session IDs until they expire
type RevocationStore interface {
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}
