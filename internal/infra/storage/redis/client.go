// Package redis backs the short-lived coordination state of the service:
// webhook signature claims and per-chat send budgets.
package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	redis "github.com/redis/go-redis/v9"
)

const keyPrefix = "solwatch"

type client struct {
	conn    *redis.Client
	limiter *redis_rate.Limiter

	doneRetention time.Duration
	sendLimit     redis_rate.Limit
}

func (c *client) Close() error {
	return c.conn.Close()
}

type config struct {
	doneRetention time.Duration
	sendLimit     redis_rate.Limit
}

// Option configures the client.
type Option func(*config)

// WithDoneRetention sets how long a completed signature is remembered.
func WithDoneRetention(d time.Duration) Option {
	return func(c *config) {
		c.doneRetention = d
	}
}

// WithSendRate sets how many messages a chat may receive per second.
func WithSendRate(perSecond int) Option {
	return func(c *config) {
		c.sendLimit = redis_rate.PerSecond(perSecond)
	}
}

func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{
		doneRetention: defaultDoneRetention,
		sendLimit:     redis_rate.PerSecond(defaultSendRatePerSecond),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{
		conn:          conn,
		limiter:       redis_rate.NewLimiter(conn),
		doneRetention: cfg.doneRetention,
		sendLimit:     cfg.sendLimit,
	}, nil
}
