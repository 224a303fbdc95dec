package ports

import (
	"context"
	"time"

	"nestodo/internal/core/domain"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

type TokenIssuer interface {
	// Issue signs a fresh access/refresh pair; the refresh token gets a new jti.
	Issue(payload domain.UserPayload) (domain.TokenPair, error)
	ParseAccess(token string) (domain.UserPayload, error)
	ParseRefresh(token string) (domain.RefreshClaims, error)
}

// RevocationStore is a key/value store with per-key TTL keyed by token jti.
type RevocationStore interface {
	// Revoke marks jti as revoked for ttl. It reports false when jti was
	// already revoked, which callers treat as a replay.
	Revoke(ctx context.Context, jti string, ttl time.Duration) (bool, error)
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
