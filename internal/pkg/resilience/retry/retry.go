// Package retry runs operations that may fail temporarily, such as RPC calls
// against a Solana node that has not indexed a transaction yet.
//
// It wraps avast/retry-go behind a small interface configured with
// functional options. Delays between attempts grow exponentially.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return fetch(ctx)
//	})
//
// Retrying only transient failures:
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithDelay(250*time.Millisecond),
//	    retry.WithRetryIf(isTransient),
//	)
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations with automatic retries.
type Retry interface {
	// Execute runs operation until it returns nil or a stop condition is
	// reached.
	//
	// Retrying stops when the attempts are exhausted, when the retry
	// predicate rejects the returned error, or when ctx is done. In the last
	// case the context error is returned.
	//
	// The operation may run more than once, so it must be idempotent.
	//
	// Parameters:
	//   - ctx: bounds the whole retry loop, including the waits.
	//   - operation: the work to run.
	//
	// Returns:
	//   - nil once an attempt succeeds, the final error otherwise.
	Execute(ctx context.Context, operation func() error) error
}

// config holds the retry settings.
type config struct {
	attempts    uint             // total attempts, including the first
	delay       time.Duration    // base delay before the first retry
	maxDelay    time.Duration    // cap on the backoff
	lastErrOnly bool             // return only the final error
	retryIf     func(error) bool // which errors are worth retrying
}

// Option configures a Retry built by New. Options apply in order.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New creates a Retry configured with the provided options.
//
// Default configuration:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second, doubled on each retry
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - retryIf:     every error is retried
//
// Example:
//
//	r := retry.New(retry.WithAttempts(4), retry.WithMaxDelay(2*time.Second))
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		retryIf:     func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry. The first attempt runs immediately; later ones
// wait with exponential backoff.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(r.cfg.retryIf),
		retry.Context(ctx),
	)
}

// WithAttempts sets the maximum number of attempts, including the first one.
// Default: 3.
//
// Example:
//
//	// 1 initial attempt + 4 retries
//	retry.New(retry.WithAttempts(5))
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay before the first retry. Later retries double
// it up to the maximum delay.
// Default: 1 second.
//
// Example:
//
//	retry.New(retry.WithDelay(500 * time.Millisecond))
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts so the backoff cannot grow
// without bound.
// Default: 5 seconds.
//
// Example:
//
//	retry.New(retry.WithMaxDelay(10 * time.Second))
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls what Execute returns after the final attempt.
// When true only the last error is returned. When false the errors of every
// attempt are joined.
// Default: true.
//
// Example:
//
//	retry.New(retry.WithLastErrorOnly(false))
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf limits retries to errors accepted by fn. A rejected error ends
// the loop at once and is returned as is.
// Default: every error is retried.
//
// Example:
//
//	retry.New(retry.WithRetryIf(func(err error) bool {
//	    return !errors.Is(err, ErrNotFound)
//	}))
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}
