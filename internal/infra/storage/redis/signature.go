package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/solwatch/internal/txingest"

	"github.com/redis/go-redis/v9"
)

const (
	// signatureDone is the terminal value of a signature claim.
	signatureDone = "done"

	defaultDoneRetention = 7 * 24 * time.Hour
)

func signatureKey(signature string) string {
	return fmt.Sprintf("%s:signature:%s", keyPrefix, signature)
}

// ClaimSignature reserves a webhook signature for processing.
//
// Behavior:
//   - If the key is already marked as "done", it returns ErrAlreadyFinished.
//   - If the key exists but is not "done", it returns ErrStillInProgress.
//   - Otherwise, it sets an empty value with TTL to reserve the claim.
func (c *client) ClaimSignature(ctx context.Context, signature string, ttl time.Duration) error {
	key := signatureKey(signature)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == signatureDone {
		return txingest.ErrAlreadyFinished
	}

	ok, err := c.conn.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return txingest.ErrStillInProgress
	}

	return nil
}

// MarkSignatureComplete marks the signature as handled for the done retention period.
func (c *client) MarkSignatureComplete(ctx context.Context, signature string) error {
	return c.conn.Set(ctx, signatureKey(signature), signatureDone, c.doneRetention).Err()
}

// ReleaseSignature drops an unfinished claim.
func (c *client) ReleaseSignature(ctx context.Context, signature string) error {
	return c.conn.Del(ctx, signatureKey(signature)).Err()
}

var _ txingest.IdempotencyGuard = new(client)
