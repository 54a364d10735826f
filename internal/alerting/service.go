// Package alerting evaluates alert thresholds and owns the send primitive
// every outbound chat message goes through.
package alerting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/metrics"
	"github.com/gabapcia/solwatch/internal/txingest"
	"github.com/gabapcia/solwatch/internal/walletregistry"
)

var (
	// ErrReplyTargetNotFound is returned by a Messenger when the message being
	// replied to no longer exists.
	ErrReplyTargetNotFound = errors.New("reply target message not found")

	// ErrRateLimited is returned by Send when the chat's send budget did not
	// free up within the maximum wait.
	ErrRateLimited = errors.New("chat send rate exceeded")

	// ErrDeliveryFailed wraps every failure Send surfaces to its caller.
	ErrDeliveryFailed = errors.New("message delivery failed")
)

// Message is one outbound chat message. Text is HTML.
type Message struct {
	ChatID    int64
	Text      string
	ReplyToID *int64
}

// Messenger delivers a message through the messaging API.
type Messenger interface {
	// SendMessage returns ErrReplyTargetNotFound (wrapped) when ReplyToID
	// points at a message that does not exist anymore.
	SendMessage(ctx context.Context, msg Message) error
}

// RateLimiter bounds outbound sends per chat.
type RateLimiter interface {
	// ReserveSend consumes one unit of the chat's budget. A positive wait
	// means the budget is exhausted and nothing was consumed; the caller
	// should try again after it.
	ReserveSend(ctx context.Context, chatID int64) (wait time.Duration, err error)
}

// Service is the alert dispatcher.
type Service interface {
	// Send delivers msg. A missing reply target is retried once without the
	// reply id and the outcome of that retry is returned.
	//
	// Any failure is returned wrapped with ErrDeliveryFailed.
	Send(ctx context.Context, msg Message) error

	// NotifyMatches sends an alert to every wallet whose threshold tx reaches
	// and returns how many were delivered. Failures are logged, not returned.
	NotifyMatches(ctx context.Context, tx txingest.TransactionRecord, wallets []walletregistry.Wallet) int
}

const defaultMaxRateLimitWait = 10 * time.Second

type service struct {
	messenger        Messenger
	rateLimiter      RateLimiter
	maxRateLimitWait time.Duration
}

var (
	_ Service                = (*service)(nil)
	_ txingest.AlertNotifier = (*service)(nil)
)

type config struct {
	rateLimiter      RateLimiter
	maxRateLimitWait time.Duration
}

// Option configures the dispatcher.
type Option func(*config)

// WithRateLimiter enables per-chat send limiting.
func WithRateLimiter(l RateLimiter) Option {
	return func(c *config) {
		c.rateLimiter = l
	}
}

// WithMaxRateLimitWait bounds how long Send waits for the chat's budget
// before giving up with ErrRateLimited.
func WithMaxRateLimitWait(d time.Duration) Option {
	return func(c *config) {
		c.maxRateLimitWait = d
	}
}

// New creates the alert dispatcher.
func New(messenger Messenger, opts ...Option) *service {
	cfg := config{
		rateLimiter:      nopRateLimiter{},
		maxRateLimitWait: defaultMaxRateLimitWait,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		messenger:        messenger,
		rateLimiter:      cfg.rateLimiter,
		maxRateLimitWait: cfg.maxRateLimitWait,
	}
}

func (s *service) Send(ctx context.Context, msg Message) error {
	if err := s.waitForBudget(ctx, msg.ChatID); err != nil {
		metrics.MessageSends.WithLabelValues("rate_limited").Inc()
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	err := s.messenger.SendMessage(ctx, msg)
	if msg.ReplyToID != nil && errors.Is(err, ErrReplyTargetNotFound) {
		logger.Info(ctx, "reply target missing, resending without reply", "chat.id", msg.ChatID, "reply_to", *msg.ReplyToID)
		metrics.MessageSends.WithLabelValues("reply_fallback").Inc()

		msg.ReplyToID = nil
		err = s.messenger.SendMessage(ctx, msg)
	}

	if err != nil {
		metrics.MessageSends.WithLabelValues("failed").Inc()
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	metrics.MessageSends.WithLabelValues("ok").Inc()
	return nil
}

func (s *service) NotifyMatches(ctx context.Context, tx txingest.TransactionRecord, wallets []walletregistry.Wallet) int {
	var sent int
	for _, w := range wallets {
		eval := Evaluate(w, tx)
		if !eval.Triggered {
			continue
		}

		err := s.Send(ctx, Message{ChatID: w.ChatID, Text: FormatAlert(w, tx)})
		if err != nil {
			metrics.Alerts.WithLabelValues("failed").Inc()
			logger.Error(ctx, "alert delivery failed",
				"chat.id", w.ChatID,
				"wallet.address", w.Address,
				"error", err,
			)
			continue
		}

		metrics.Alerts.WithLabelValues("sent").Inc()
		sent++
	}

	return sent
}

// waitForBudget blocks until the chat may receive a message. Limiter errors
// let the send through.
func (s *service) waitForBudget(ctx context.Context, chatID int64) error {
	var waited time.Duration
	for {
		wait, err := s.rateLimiter.ReserveSend(ctx, chatID)
		if err != nil {
			logger.Warn(ctx, "send rate limiter unavailable, sending anyway", "chat.id", chatID, "error", err)
			return nil
		}
		if wait <= 0 {
			return nil
		}

		if waited+wait > s.maxRateLimitWait {
			return ErrRateLimited
		}
		waited += wait

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w: %w", ErrRateLimited, ctx.Err())
		case <-timer.C:
		}
	}
}

type nopRateLimiter struct{}

func (nopRateLimiter) ReserveSend(context.Context, int64) (time.Duration, error) {
	return 0, nil
}
