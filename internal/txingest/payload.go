package txingest

import (
	"github.com/gabapcia/solwatch/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// Payload is one enhanced transaction as delivered by the Helius webhook.
//
// Every field is optional on the wire. Amounts are raw lamports.
type Payload struct {
	Signature       string           `json:"signature"`
	SourceAddress   string           `json:"sourceAddress"`
	FeePayer        string           `json:"feePayer"`
	Timestamp       int64            `json:"timestamp"`
	Type            string           `json:"type"`
	Source          string           `json:"source"`
	AccountData     []AccountData    `json:"accountData"`
	NativeTransfers []NativeTransfer `json:"nativeTransfers"`
	Events          *Events          `json:"events,omitempty"`
}

type AccountData struct {
	Account             string          `json:"account"`
	NativeBalanceChange decimal.Decimal `json:"nativeBalanceChange"`
}

type NativeTransfer struct {
	FromUserAccount string          `json:"fromUserAccount"`
	ToUserAccount   string          `json:"toUserAccount"`
	Amount          decimal.Decimal `json:"amount"`
}

type Events struct {
	Swap *SwapEvent `json:"swap,omitempty"`
}

// SwapEvent is the decoded swap Helius attaches to SWAP transactions.
type SwapEvent struct {
	NativeInput  *NativeAmount  `json:"nativeInput,omitempty"`
	NativeOutput *NativeAmount  `json:"nativeOutput,omitempty"`
	TokenInputs  []TokenBalance `json:"tokenInputs"`
	TokenOutputs []TokenBalance `json:"tokenOutputs"`
}

type NativeAmount struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

type TokenBalance struct {
	UserAccount string `json:"userAccount"`
	Mint        string `json:"mint"`
}

// initiator returns the account that started the transaction, if known.
func (p Payload) initiator() string {
	if p.SourceAddress != "" {
		return p.SourceAddress
	}
	return p.FeePayer
}

// ExtractAddresses returns the distinct addresses involved in p, in first-seen
// order: the initiator, every account participant and both ends of each
// native transfer. Missing fields are treated as empty.
func ExtractAddresses(p Payload) []string {
	set := types.NewOrderedSet[string]()

	add := func(addrs ...string) {
		for _, a := range addrs {
			if a != "" {
				set.Add(a)
			}
		}
	}

	add(p.SourceAddress, p.FeePayer)
	for _, acc := range p.AccountData {
		add(acc.Account)
	}
	for _, tr := range p.NativeTransfers {
		add(tr.FromUserAccount, tr.ToUserAccount)
	}

	return set.ToSlice()
}
