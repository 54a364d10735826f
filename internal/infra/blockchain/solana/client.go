// Package solana resolves bare transaction signatures through a Solana RPC node.
package solana

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/solwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/solwatch/internal/txingest"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
)

// ErrMissingMeta is returned when the node answers without transaction metadata.
var ErrMissingMeta = errors.New("transaction has no meta")

// transactionFetcher is the subset of *rpc.Client the parser needs.
type transactionFetcher interface {
	GetTransaction(ctx context.Context, sig solanago.Signature, opts *rpc.GetTransactionOpts) (*rpc.GetTransactionResult, error)
}

type client struct {
	rpc        transactionFetcher
	retry      retry.Retry
	commitment rpc.CommitmentType
}

var _ txingest.SignatureParser = (*client)(nil)

type config struct {
	commitment rpc.CommitmentType
	retry      retry.Retry
}

// Option configures the client.
type Option func(*config)

// WithCommitment sets the commitment level used when fetching transactions.
func WithCommitment(c rpc.CommitmentType) Option {
	return func(cfg *config) {
		cfg.commitment = c
	}
}

// WithRetry overrides the retry policy around RPC calls.
func WithRetry(r retry.Retry) Option {
	return func(cfg *config) {
		cfg.retry = r
	}
}

// NewClient creates a signature parser backed by the node at endpoint.
func NewClient(endpoint string, opts ...Option) *client {
	return newClient(rpc.New(endpoint), opts...)
}

func newClient(fetcher transactionFetcher, opts ...Option) *client {
	cfg := config{
		commitment: rpc.CommitmentConfirmed,
		retry: retry.New(retry.WithRetryIf(func(err error) bool {
			return !errors.Is(err, rpc.ErrNotFound)
		})),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		rpc:        fetcher,
		retry:      cfg.retry,
		commitment: cfg.commitment,
	}
}

// ParseSignature fetches the transaction and reports the SOL moved by its fee payer.
//
// Returns nil without error when the node does not know the signature or the
// transaction failed on chain.
func (c *client) ParseSignature(ctx context.Context, signature string) (*txingest.TransactionRecord, error) {
	sig, err := solanago.SignatureFromBase58(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid signature: %w", err)
	}

	maxVersion := uint64(0)
	opts := &rpc.GetTransactionOpts{
		Encoding:                       solanago.EncodingBase64,
		Commitment:                     c.commitment,
		MaxSupportedTransactionVersion: &maxVersion,
	}

	var res *rpc.GetTransactionResult
	err = c.retry.Execute(ctx, func() error {
		res, err = c.rpc.GetTransaction(ctx, sig, opts)
		return err
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return recordFromResult(res)
}

func recordFromResult(res *rpc.GetTransactionResult) (*txingest.TransactionRecord, error) {
	if res == nil || res.Transaction == nil {
		return nil, nil
	}
	if res.Meta == nil {
		return nil, ErrMissingMeta
	}
	if res.Meta.Err != nil {
		return nil, nil
	}

	data := res.Transaction.GetBinary()
	if len(data) == 0 {
		return nil, nil
	}

	tx, err := solanago.TransactionFromDecoder(bin.NewBinDecoder(data))
	if err != nil {
		return nil, fmt.Errorf("error decoding transaction: %w", err)
	}
	if len(tx.Message.AccountKeys) == 0 {
		return nil, nil
	}

	lamports, direction := feePayerDelta(res.Meta)
	rec := &txingest.TransactionRecord{
		WalletAddress: tx.Message.AccountKeys[0].String(),
		Amount:        txingest.LamportsToSOL(lamports),
		Direction:     direction,
	}
	if res.BlockTime != nil {
		rec.Timestamp = res.BlockTime.Time().UTC()
	}

	return rec, nil
}

// feePayerDelta is the absolute balance change of account 0.
func feePayerDelta(meta *rpc.TransactionMeta) (decimal.Decimal, txingest.Direction) {
	if len(meta.PreBalances) == 0 || len(meta.PostBalances) == 0 {
		return decimal.Zero, txingest.DirectionUnknown
	}

	pre := lamportsDecimal(meta.PreBalances[0])
	post := lamportsDecimal(meta.PostBalances[0])
	delta := post.Sub(pre)

	switch {
	case delta.IsNegative():
		return delta.Abs(), txingest.DirectionOut
	case delta.IsPositive():
		return delta, txingest.DirectionIn
	default:
		return decimal.Zero, txingest.DirectionUnknown
	}
}

func lamportsDecimal(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
