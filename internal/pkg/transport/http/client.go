// Package http builds retrying HTTP clients for outbound calls such as the
// Telegram Bot API. It wraps hashicorp's retryablehttp.Client and exposes
// functional options for timeouts, backoff and the retry policy.
//
// Example:
//
//	client := http.NewClient(
//	    http.WithTimeout(10*time.Second),
//	    http.WithRetryMax(3),
//	    http.WithErrorHandler(retryablehttp.PassthroughErrorHandler),
//	)
package http

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds the client settings.
type config struct {
	timeout      time.Duration              // cap on a single request
	retryWaitMin time.Duration              // shortest backoff
	retryWaitMax time.Duration              // longest backoff
	retryMax     int                        // retries after the first attempt
	checkRetry   retryablehttp.CheckRetry   // decides whether a response is retried
	errorHandler retryablehttp.ErrorHandler // shapes the result once retries run out
}

// Option configures the client built by NewClient.
type Option func(*config)

// NewClient creates a retryablehttp.Client configured with the provided
// options. The client's own logger is disabled.
//
// Default configuration:
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
//   - checkRetry:   retryablehttp.DefaultRetryPolicy (connection errors, 429 and 5xx)
//   - errorHandler: none, exhausted retries return an error
//
// Returns:
//   - A ready to use *retryablehttp.Client. Call StandardClient on it when a
//     plain *http.Client is needed.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
		checkRetry:   retryablehttp.DefaultRetryPolicy,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.CheckRetry = cfg.checkRetry
	client.ErrorHandler = cfg.errorHandler
	return client
}

// WithTimeout sets the maximum duration of a single HTTP request. Each retry
// gets the full timeout again.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts. A
// Retry-After header on a 429 or 503 response takes precedence.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried after the
// first attempt. Zero disables retries.
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithCheckRetry replaces the policy deciding whether a response or error
// is retried.
//
// Parameters:
//   - fn: receives the request context, the response (possibly nil) and the
//     transport error. It returns whether to retry, and an error that stops
//     retrying when non-nil.
//
// Default: retryablehttp.DefaultRetryPolicy.
func WithCheckRetry(fn retryablehttp.CheckRetry) Option {
	return func(c *config) {
		c.checkRetry = fn
	}
}

// WithErrorHandler sets what the client returns once retries are exhausted.
//
// Example:
//
//	// Hand back the last response as is, so the caller can read the API's
//	// error description instead of a generic "giving up" error.
//	http.NewClient(http.WithErrorHandler(retryablehttp.PassthroughErrorHandler))
//
// Default: none.
func WithErrorHandler(fn retryablehttp.ErrorHandler) Option {
	return func(c *config) {
		c.errorHandler = fn
	}
}
