package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"nestodo/internal/core/domain"
	"nestodo/internal/core/ports"
)

type tokenClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTIssuer signs access and refresh tokens with HS256 under two distinct
// secrets, so a token of one kind never verifies as the other.
type JWTIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTIssuer {
	return &JWTIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// WithClock replaces the time source used for iat/exp and validation.
func (i *JWTIssuer) WithClock(now func() time.Time) *JWTIssuer {
	i.now = now
	return i
}

func (i *JWTIssuer) Issue(payload domain.UserPayload) (domain.TokenPair, error) {
	issuedAt := i.now()

	access, err := i.sign(payload, "", issuedAt, i.accessTTL, i.accessSecret)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := i.sign(payload, uuid.NewString(), issuedAt, i.refreshTTL, i.refreshSecret)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (i *JWTIssuer) ParseAccess(token string) (domain.UserPayload, error) {
	claims, err := i.parse(token, i.accessSecret)
	if err != nil {
		return domain.UserPayload{}, err
	}
	return claims.payload()
}

func (i *JWTIssuer) ParseRefresh(token string) (domain.RefreshClaims, error) {
	claims, err := i.parse(token, i.refreshSecret)
	if err != nil {
		return domain.RefreshClaims{}, err
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return domain.RefreshClaims{}, domain.ErrInvalidToken
	}

	payload, err := claims.payload()
	if err != nil {
		return domain.RefreshClaims{}, err
	}

	return domain.RefreshClaims{
		UserPayload: payload,
		JTI:         claims.ID,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

func (i *JWTIssuer) sign(payload domain.UserPayload, jti string, issuedAt time.Time, ttl time.Duration, secret []byte) (string, error) {
	claims := tokenClaims{
		Email:    payload.Email,
		Username: payload.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(payload.UserID, 10),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (i *JWTIssuer) parse(token string, secret []byte) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token expired: %w", domain.ErrInvalidToken)
		}
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

func (c *tokenClaims) payload() (domain.UserPayload, error) {
	userID, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || userID == 0 {
		return domain.UserPayload{}, domain.ErrInvalidToken
	}
	return domain.UserPayload{UserID: userID, Email: c.Email, Username: c.Username}, nil
}
