package chatbot

import (
	"time"

	"github.com/gabapcia/solwatch/internal/walletregistry"
)

// StateType is the step a chat's multi-turn flow is waiting on.
type StateType int

const (
	StateNone StateType = iota
	StateWaitingForWallet
	StateWaitingForName
	StateWaitingForAmount
)

func (s StateType) String() string {
	switch s {
	case StateWaitingForWallet:
		return "WAITING_FOR_WALLET"
	case StateWaitingForName:
		return "WAITING_FOR_NAME"
	case StateWaitingForAmount:
		return "WAITING_FOR_AMOUNT"
	default:
		return "NONE"
	}
}

// Action tags the command that started a flow. The add flow has none.
type Action string

const (
	ActionAdd    Action = ""
	ActionRemove Action = "remove"
	ActionAlert  Action = "alert"
	ActionWatch  Action = "watch"
	ActionRecent Action = "recent"
	ActionRename Action = "rename"
)

// ConversationState is the per-chat scratch data of an in-progress flow.
type ConversationState struct {
	Type           StateType
	Action         Action
	Wallets        []walletregistry.Wallet // numbered menu shown to the user
	Selected       *walletregistry.Wallet
	PendingAddress string // add flow: address awaiting a label
	UpdatedAt      time.Time
}

// Active reports whether a flow is in progress.
func (s ConversationState) Active() bool {
	return s.Type != StateNone
}

// Reset returns the chat to StateNone, dropping all scratch data.
func (s *ConversationState) Reset() {
	*s = ConversationState{}
}

func (s ConversationState) expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(s.UpdatedAt) >= ttl
}
