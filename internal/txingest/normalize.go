package txingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnparseableEvent is returned when a payload cannot be turned into a TransactionRecord.
var ErrUnparseableEvent = errors.New("unparseable event")

// lamportsPerSOL is the scale between lamports and SOL.
var lamportsPerSOL = decimal.New(1, 9)

// LamportsToSOL converts a raw lamport amount into SOL.
func LamportsToSOL(lamports decimal.Decimal) decimal.Decimal {
	return lamports.Div(lamportsPerSOL)
}

// PayloadKind is the shape of a payload, resolved once by the Normalizer.
type PayloadKind int

const (
	KindEmpty PayloadKind = iota
	KindSwapEvent
	KindNativeTransfer
	KindBareSignature
)

func (k PayloadKind) String() string {
	switch k {
	case KindSwapEvent:
		return "swap_event"
	case KindNativeTransfer:
		return "native_transfer"
	case KindBareSignature:
		return "bare_signature"
	default:
		return "empty"
	}
}

// ClassifyPayload resolves which variant p carries. A decoded swap event wins
// over native transfers, which win over a bare signature.
func ClassifyPayload(p Payload) PayloadKind {
	switch {
	case p.Events != nil && p.Events.Swap != nil:
		return KindSwapEvent
	case len(p.NativeTransfers) > 0:
		return KindNativeTransfer
	case p.Signature != "":
		return KindBareSignature
	default:
		return KindEmpty
	}
}

// Direction tells whether SOL left or entered the wallet.
type Direction string

const (
	DirectionUnknown Direction = ""
	DirectionBuy     Direction = "buy"  // SOL spent for tokens
	DirectionSell    Direction = "sell" // tokens sold for SOL
	DirectionOut     Direction = "out"
	DirectionIn      Direction = "in"
)

// TransactionRecord is the canonical transaction every payload variant normalizes to.
type TransactionRecord struct {
	Signature     string
	WalletAddress string
	Amount        decimal.Decimal // SOL
	Timestamp     time.Time
	Kind          PayloadKind
	Direction     Direction
	TokenMint     string
}

// SkipReason explains why a payload was dropped without being an error.
type SkipReason string

const (
	SkipReasonNoSwapData        SkipReason = "No swap data"
	SkipReasonParseFailed       SkipReason = "Parse failed"
	SkipReasonNonPositiveAmount SkipReason = "Non-positive amount"
	SkipReasonNoMatch           SkipReason = "No monitored wallet"
	SkipReasonDuplicate         SkipReason = "Duplicate delivery"
)

// SkippedError carries a SkipReason through the normalization path.
type SkippedError struct {
	Reason SkipReason
}

func (e *SkippedError) Error() string {
	return "payload skipped: " + string(e.Reason)
}

func skipped(reason SkipReason) error {
	return &SkippedError{Reason: reason}
}

// SignatureParser resolves a bare signature into a record by asking an
// external decoder. A nil record with a nil error means the decoder had
// nothing to say about the transaction.
type SignatureParser interface {
	ParseSignature(ctx context.Context, signature string) (*TransactionRecord, error)
}

// Normalizer converts payload variants into TransactionRecords.
type Normalizer struct {
	parser SignatureParser
	now    func() time.Time
}

// NewNormalizer creates a Normalizer. parser may be nil, in which case bare
// signatures are skipped as unparsed.
func NewNormalizer(parser SignatureParser) *Normalizer {
	return &Normalizer{parser: parser, now: time.Now}
}

// Normalize returns the canonical record for p.
//
// Returns:
//   - a *SkippedError when the payload carries nothing to alert on.
//   - ErrUnparseableEvent (wrapped) when the signature parser fails.
func (n *Normalizer) Normalize(ctx context.Context, p Payload) (TransactionRecord, error) {
	var (
		rec TransactionRecord
		err error
	)

	switch kind := ClassifyPayload(p); kind {
	case KindSwapEvent:
		rec = n.fromSwap(p)
	case KindNativeTransfer:
		rec = n.fromNativeTransfer(p)
	case KindBareSignature:
		rec, err = n.fromSignature(ctx, p.Signature)
	default:
		return TransactionRecord{}, skipped(SkipReasonNoSwapData)
	}
	if err != nil {
		return TransactionRecord{}, err
	}

	if !rec.Amount.IsPositive() {
		return TransactionRecord{}, skipped(SkipReasonNonPositiveAmount)
	}

	return rec, nil
}

func (n *Normalizer) timestamp(unix int64) time.Time {
	if unix <= 0 {
		return n.now().UTC()
	}
	return time.Unix(unix, 0).UTC()
}

func (n *Normalizer) fromSwap(p Payload) TransactionRecord {
	swap := p.Events.Swap
	rec := TransactionRecord{
		Signature:     p.Signature,
		WalletAddress: p.initiator(),
		Timestamp:     n.timestamp(p.Timestamp),
		Kind:          KindSwapEvent,
	}

	switch {
	case swap.NativeInput != nil:
		rec.Amount = LamportsToSOL(swap.NativeInput.Amount)
		rec.Direction = DirectionBuy
		if swap.NativeInput.Account != "" {
			rec.WalletAddress = swap.NativeInput.Account
		}
		if len(swap.TokenOutputs) > 0 {
			rec.TokenMint = swap.TokenOutputs[0].Mint
		}
	case swap.NativeOutput != nil:
		rec.Amount = LamportsToSOL(swap.NativeOutput.Amount)
		rec.Direction = DirectionSell
		if swap.NativeOutput.Account != "" {
			rec.WalletAddress = swap.NativeOutput.Account
		}
		if len(swap.TokenInputs) > 0 {
			rec.TokenMint = swap.TokenInputs[0].Mint
		}
	}

	return rec
}

// fromNativeTransfer uses only the first native transfer of the payload.
func (n *Normalizer) fromNativeTransfer(p Payload) TransactionRecord {
	first := p.NativeTransfers[0]

	wallet := p.initiator()
	if wallet == "" {
		wallet = first.FromUserAccount
	}

	direction := DirectionOut
	if wallet != "" && wallet == first.ToUserAccount {
		direction = DirectionIn
	}

	return TransactionRecord{
		Signature:     p.Signature,
		WalletAddress: wallet,
		Amount:        LamportsToSOL(first.Amount),
		Timestamp:     n.timestamp(p.Timestamp),
		Kind:          KindNativeTransfer,
		Direction:     direction,
	}
}

func (n *Normalizer) fromSignature(ctx context.Context, signature string) (TransactionRecord, error) {
	if n.parser == nil {
		return TransactionRecord{}, skipped(SkipReasonParseFailed)
	}

	rec, err := n.parser.ParseSignature(ctx, signature)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("%w: %w", ErrUnparseableEvent, err)
	}

	if rec == nil {
		return TransactionRecord{}, skipped(SkipReasonParseFailed)
	}

	out := *rec
	out.Signature = signature
	out.Kind = KindBareSignature
	if out.Timestamp.IsZero() {
		out.Timestamp = n.now().UTC()
	}

	return out, nil
}
