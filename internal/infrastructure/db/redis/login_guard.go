package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	guardTTL    = 15 * time.Minute
	maxFailures = 5
)

// LoginGuard throttles repeated failed logins per email, backed by Redis.
// Key format: login_fail:<email>
type LoginGuard struct {
	client *redis.Client
}

// NewLoginGuard creates a LoginGuard wrapping the given Redis client.
func NewLoginGuard(client *redis.Client) *LoginGuard {
	return &LoginGuard{client: client}
}

// TooManyFailures reports whether the email has exhausted its failure budget.
func (g *LoginGuard) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Get(ctx, g.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login guard check: %w", err)
	}
	return n >= maxFailures, nil
}

// RecordFailure increments the failure counter. The window restarts on every
// failure (the TTL is refreshed).
func (g *LoginGuard) RecordFailure(ctx context.Context, email string) error {
	key := g.key(email)
	if err := g.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("login guard incr: %w", err)
	}
	return g.client.Expire(ctx, key, guardTTL).Err()
}

// Clear resets the counter after a successful login.
func (g *LoginGuard) Clear(ctx context.Context, email string) error {
	return g.client.Del(ctx, g.key(email)).Err()
}

func (g *LoginGuard) key(email string) string {
	return "login_fail:" + email
}
