package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"nestodo/internal/config"
	"nestodo/internal/core/ports"
)

const blacklistPrefix = "blacklist:"

func NewClient(conf *config.Config) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%s", conf.RedisHost, conf.RedisPort),
		Password: conf.RedisPassword,
		DB:       conf.RedisDB,
	})
}

// RevocationStore blacklists refresh token ids under blacklist:<jti> until
// the token would have expired anyway.
type RevocationStore struct {
	client goredis.Cmdable
}

var _ ports.RevocationStore = (*RevocationStore)(nil)

func NewRevocationStore(client goredis.Cmdable) *RevocationStore {
	return &RevocationStore{client: client}
}

func (s *RevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	created, err := s.client.SetNX(ctx, blacklistPrefix+jti, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("revoke token: %w", err)
	}
	return created, nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check token revocation: %w", err)
	}
	return n > 0, nil
}
