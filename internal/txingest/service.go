// Package txingest turns webhook deliveries into persisted transactions and
// threshold alerts. Each payload of a delivery is normalized, matched against
// the wallet registry, stored idempotently by signature and handed to the
// alert notifier, independently of the other payloads of the batch.
package txingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/metrics"
	"github.com/gabapcia/solwatch/internal/pkg/types"
	"github.com/gabapcia/solwatch/internal/walletregistry"
)

const defaultMaxProcessingTime = 2 * time.Minute

var (
	// ErrStore wraps failures of the transaction store.
	ErrStore = errors.New("transaction store failure")

	// ErrRegistryUnavailable is returned by IngestBatch when every registry
	// lookup of the batch failed. Callers should answer with a server error.
	ErrRegistryUnavailable = errors.New("wallet registry unavailable")
)

// WalletRegistry finds the wallets monitoring a set of addresses.
type WalletRegistry interface {
	FindByAddresses(ctx context.Context, addresses []string) ([]walletregistry.Wallet, error)
}

// TransactionStorage persists records keyed by signature.
type TransactionStorage interface {
	// SaveTransaction inserts rec unless its signature is already stored.
	//
	// Returns:
	//   - true if a new row was created.
	//   - false with a nil error if the signature already existed.
	SaveTransaction(ctx context.Context, rec TransactionRecord) (bool, error)
}

// AlertNotifier evaluates and delivers alerts for a freshly stored transaction.
type AlertNotifier interface {
	// NotifyMatches alerts every wallet whose threshold the record reaches and
	// returns how many alerts were delivered. Delivery failures are handled by
	// the notifier and never returned.
	NotifyMatches(ctx context.Context, rec TransactionRecord, wallets []walletregistry.Wallet) int
}

// Service ingests webhook deliveries.
type Service interface {
	// IngestBatch processes every payload of one delivery.
	//
	// Payload failures are logged and reported, never returned. The only error
	// is ErrRegistryUnavailable, when no payload could be matched because the
	// registry lookup failed each time it was attempted.
	IngestBatch(ctx context.Context, payloads []Payload) (BatchReport, error)
}

type service struct {
	maxProcessingTime time.Duration
	idempotencyGuard  IdempotencyGuard

	normalizer *Normalizer
	registry   WalletRegistry
	storage    TransactionStorage
	notifier   AlertNotifier
}

var _ Service = (*service)(nil)

type config struct {
	maxProcessingTime time.Duration
	idempotencyGuard  IdempotencyGuard
	signatureParser   SignatureParser
}

// Option configures the ingestion service.
type Option func(*config)

// WithMaxProcessingTime sets how long a signature claim is held.
func WithMaxProcessingTime(d time.Duration) Option {
	return func(c *config) {
		c.maxProcessingTime = d
	}
}

// WithIdempotencyGuard installs a guard checked before each payload is normalized.
func WithIdempotencyGuard(g IdempotencyGuard) Option {
	return func(c *config) {
		c.idempotencyGuard = g
	}
}

// WithSignatureParser sets the decoder used for payloads that only carry a signature.
func WithSignatureParser(p SignatureParser) Option {
	return func(c *config) {
		c.signatureParser = p
	}
}

// New creates the ingestion service.
func New(registry WalletRegistry, storage TransactionStorage, notifier AlertNotifier, opts ...Option) *service {
	cfg := config{
		maxProcessingTime: defaultMaxProcessingTime,
		idempotencyGuard:  nopIdempotencyGuard{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		maxProcessingTime: cfg.maxProcessingTime,
		idempotencyGuard:  cfg.idempotencyGuard,
		normalizer:        NewNormalizer(cfg.signatureParser),
		registry:          registry,
		storage:           storage,
		notifier:          notifier,
	}
}

func (s *service) IngestBatch(ctx context.Context, payloads []Payload) (BatchReport, error) {
	report := BatchReport{Results: make([]PayloadResult, 0, len(payloads))}

	var lookups, lookupFailures int
	for _, p := range payloads {
		res := s.processPayload(ctx, p)

		if res.lookedUp {
			lookups++
			if errors.Is(res.Err, ErrRegistryUnavailable) {
				lookupFailures++
			}
		}

		report.add(res)
		metrics.IngestPayloads.WithLabelValues(string(res.Outcome)).Inc()
	}

	if lookups > 0 && lookupFailures == lookups {
		return report, ErrRegistryUnavailable
	}

	return report, nil
}

// processPayload runs one payload through claim, normalize, match, persist and alert.
func (s *service) processPayload(ctx context.Context, p Payload) (res PayloadResult) {
	ctx = logger.Derive(ctx, "signature", p.Signature)
	res = PayloadResult{Signature: p.Signature}

	if p.Signature != "" {
		switch err := s.idempotencyGuard.ClaimSignature(ctx, p.Signature, s.maxProcessingTime); {
		case errors.Is(err, ErrAlreadyFinished), errors.Is(err, ErrStillInProgress):
			return res.skip(SkipReasonDuplicate)
		case err != nil:
			logger.Warn(ctx, "idempotency claim failed, relying on store uniqueness", "error", err)
		}

		defer s.settleClaim(ctx, p.Signature, &res)
	}

	rec, err := s.normalizer.Normalize(ctx, p)
	if err != nil {
		var skip *SkippedError
		if errors.As(err, &skip) {
			logger.Debug(ctx, "payload skipped", "reason", skip.Reason)
			return res.skip(skip.Reason)
		}

		logger.Error(ctx, "payload normalization failed", "kind", ClassifyPayload(p).String(), "error", err)
		return res.fail(err)
	}

	candidates := types.NewOrderedSet(ExtractAddresses(p)...)
	if rec.WalletAddress != "" {
		candidates.Add(rec.WalletAddress)
	}

	res.lookedUp = true
	wallets, err := s.registry.FindByAddresses(ctx, candidates.ToSlice())
	if err != nil {
		logger.Error(ctx, "wallet registry lookup failed", "error", err)
		return res.fail(fmt.Errorf("%w: %w", ErrRegistryUnavailable, err))
	}

	if len(wallets) == 0 {
		return res.skip(SkipReasonNoMatch)
	}

	rec.WalletAddress = attributedWallet(rec.WalletAddress, candidates.ToSlice(), wallets)

	inserted, err := s.storage.SaveTransaction(ctx, rec)
	if err != nil {
		logger.Error(ctx, "transaction persistence failed", "wallet.address", rec.WalletAddress, "error", err)
		return res.fail(fmt.Errorf("%w: %w", ErrStore, err))
	}

	if !inserted {
		logger.Info(ctx, "transaction already recorded")
		return res.skip(SkipReasonDuplicate)
	}

	res.Outcome = OutcomeProcessed
	res.Matched = len(wallets)
	res.AlertsSent = s.notifier.NotifyMatches(ctx, rec, wallets)
	return res
}

// settleClaim marks the signature complete unless processing failed, in
// which case the claim is released so a redelivery can retry.
func (s *service) settleClaim(ctx context.Context, signature string, res *PayloadResult) {
	if res.Outcome == OutcomeFailed {
		if err := s.idempotencyGuard.ReleaseSignature(ctx, signature); err != nil {
			logger.Warn(ctx, "error releasing signature claim", "error", err)
		}
		return
	}

	if err := s.idempotencyGuard.MarkSignatureComplete(ctx, signature); err != nil {
		logger.Error(ctx, "error marking signature as complete", "error", err)
	}
}

// attributedWallet picks the address the record is stored under: the
// normalized wallet when it is monitored, else the first monitored candidate.
func attributedWallet(current string, candidates []string, wallets []walletregistry.Wallet) string {
	monitored := types.NewSet[string]()
	for _, w := range wallets {
		monitored.Add(w.Address)
	}

	if monitored.Has(current) {
		return current
	}

	for _, c := range candidates {
		if monitored.Has(c) {
			return c
		}
	}

	return wallets[0].Address
}
