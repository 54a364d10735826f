package txingest

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrStillInProgress indicates another worker is handling the signature.
	ErrStillInProgress = errors.New("processing still in progress")

	// ErrAlreadyFinished indicates the signature was fully handled before.
	ErrAlreadyFinished = errors.New("processing already finished")
)

// IdempotencyGuard short-circuits webhook redeliveries before the payload is
// normalized, so a redelivered bare signature does not hit the parser again.
//
// It complements, and never replaces, the uniqueness of the signature in the
// transaction store: guard failures only cost an extra parse.
type IdempotencyGuard interface {
	// ClaimSignature reserves signature for ttl.
	//
	// Returns:
	//   - nil if the claim was acquired.
	//   - ErrStillInProgress if another claim is live.
	//   - ErrAlreadyFinished if the signature was marked complete.
	ClaimSignature(ctx context.Context, signature string, ttl time.Duration) error

	// MarkSignatureComplete records that signature needs no further processing.
	MarkSignatureComplete(ctx context.Context, signature string) error

	// ReleaseSignature drops a claim so a later redelivery can retry.
	ReleaseSignature(ctx context.Context, signature string) error
}

// nopIdempotencyGuard lets every delivery through.
type nopIdempotencyGuard struct{}

var _ IdempotencyGuard = (*nopIdempotencyGuard)(nil)

func (nopIdempotencyGuard) ClaimSignature(context.Context, string, time.Duration) error {
	return nil
}

func (nopIdempotencyGuard) MarkSignatureComplete(context.Context, string) error {
	return nil
}

func (nopIdempotencyGuard) ReleaseSignature(context.Context, string) error {
	return nil
}
