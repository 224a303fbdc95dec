package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
)

// minRevocationTTL keeps a revocation entry alive for tokens that are about
// to expire anyway, so the entry is never written with a zero TTL.
const minRevocationTTL = time.Second

// AuthService manages the session lifecycle: stateless short-lived access
// tokens and rotating refresh tokens tracked by jti in a revocation store.
type AuthService struct {
	users       ports.UserRepository
	hasher      ports.PasswordHasher
	tokens      ports.TokenIssuer
	revocations ports.RevocationStore
	now         func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	revocations ports.RevocationStore,
) *AuthService {
	return &AuthService{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		revocations: revocations,
		now:         time.Now,
	}
}

// WithClock replaces the time source used to compute revocation TTLs.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.TokenPair, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Username = strings.TrimSpace(input.Username)

	if err := s.ensureFree(s.users.FindByEmail(ctx, input.Email)); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.TokenPair{}, domain.ErrEmailTaken
		}
		return domain.TokenPair{}, err
	}
	if err := s.ensureFree(s.users.FindByUsername(ctx, input.Username)); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.TokenPair{}, domain.ErrUsernameTaken
		}
		return domain.TokenPair{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.TokenPair{}, err
	}

	user, err := s.users.Create(ctx, domain.CreateUserInput{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
	})
	if err != nil {
		return domain.TokenPair{}, err
	}

	return s.tokens.Issue(payloadFor(user))
}

func (s *AuthService) ensureFree(_ domain.User, err error) error {
	if err == nil {
		return domain.ErrConflict
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil
	}
	return err
}

func (s *AuthService) Login(ctx context.Context, credentials domain.Credentials) (domain.TokenPair, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(credentials.Username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.TokenPair{}, domain.ErrInvalidCredentials
		}
		return domain.TokenPair{}, err
	}
	if !s.hasher.Verify(user.PasswordHash, credentials.Password) {
		return domain.TokenPair{}, domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(payloadFor(user))
}

// VerifyAccess checks signature and expiry only. Access tokens are not
// looked up in the revocation store.
func (s *AuthService) VerifyAccess(_ context.Context, token string) (domain.UserPayload, error) {
	return s.tokens.ParseAccess(token)
}

// RefreshTokens rotates a refresh token. The presented jti is revoked before
// the new pair is issued, so presenting the same token twice fails.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if revoked {
		zap.L().Warn("revoked refresh token presented", zap.Uint64("user_id", claims.UserID), zap.String("jti", claims.JTI))
		return domain.TokenPair{}, domain.ErrTokenRevoked
	}

	first, err := s.revocations.Revoke(ctx, claims.JTI, s.remaining(claims))
	if err != nil {
		return domain.TokenPair{}, err
	}
	if !first {
		zap.L().Warn("concurrent refresh token reuse", zap.Uint64("user_id", claims.UserID), zap.String("jti", claims.JTI))
		return domain.TokenPair{}, domain.ErrTokenRevoked
	}

	return s.tokens.Issue(claims.UserPayload)
}

// Logout revokes the refresh token when it is still valid. An unusable token
// leaves nothing to revoke and is not an error.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil
	}
	_, err = s.revocations.Revoke(ctx, claims.JTI, s.remaining(claims))
	return err
}

func (s *AuthService) remaining(claims domain.RefreshClaims) time.Duration {
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl < minRevocationTTL {
		return minRevocationTTL
	}
	return ttl
}

func payloadFor(user domain.User) domain.UserPayload {
	return domain.UserPayload{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}
}

var _ ports.AuthService = (*AuthService)(nil)
