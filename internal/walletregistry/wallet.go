package walletregistry

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrWalletNotFound is returned when a wallet is not registered for the chat.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrWalletAlreadyRegistered is returned when the (address, chat) pair already exists.
	ErrWalletAlreadyRegistered = errors.New("wallet already registered")

	// ErrInvalidThreshold is returned when an alert threshold is not a positive amount.
	ErrInvalidThreshold = errors.New("alert threshold must be positive")
)

// Wallet is a Solana address monitored on behalf of one chat.
//
// The same address may be monitored by several chats; each pair is an
// independent Wallet with its own label, threshold and watch flag.
type Wallet struct {
	ID             int64
	Address        string
	ChatID         int64
	Label          string
	AlertThreshold decimal.NullDecimal // absent means no alerts for this wallet
	IsWatched      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasThreshold reports whether an alert threshold is configured.
func (w Wallet) HasThreshold() bool {
	return w.AlertThreshold.Valid
}

// Transaction is a persisted transaction as shown in chat listings.
type Transaction struct {
	Signature     string
	WalletAddress string
	Amount        decimal.Decimal
	Timestamp     time.Time
}

// Stats summarizes a chat's monitoring activity.
type Stats struct {
	TotalWallets      int
	WatchedWallets    int
	TotalTransactions int
	TodayTransactions int
	LastTransactionAt *time.Time
}

// WalletActivity ranks a wallet by the transactions recorded for it.
type WalletActivity struct {
	Wallet           Wallet
	TransactionCount int
	TotalVolume      decimal.Decimal
}

// Page is one page of a chat's wallet list.
type Page struct {
	Wallets    []Wallet
	Number     int // 1-based
	Size       int
	TotalPages int
	Total      int
}

// Offset returns how many wallets precede the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// WalletStorage is the relational store backing the registry.
//
// Implementations must enforce uniqueness of (address, chat_id) and report
// a violation as ErrWalletAlreadyRegistered. Mutations that target a missing
// wallet must return ErrWalletNotFound.
type WalletStorage interface {
	InsertWallet(ctx context.Context, w Wallet) (Wallet, error)
	DeleteWallet(ctx context.Context, chatID int64, address string) error

	// ListWallets returns the chat's wallets newest first. A zero limit returns all of them.
	ListWallets(ctx context.Context, chatID int64, limit, offset int) ([]Wallet, error)
	CountWallets(ctx context.Context, chatID int64) (int, error)
	SearchWallets(ctx context.Context, chatID int64, keyword string, limit int) ([]Wallet, error)
	ListWatchedWallets(ctx context.Context, chatID int64) ([]Wallet, error)

	UpdateWalletLabel(ctx context.Context, chatID int64, address, label string) error
	UpdateAlertThreshold(ctx context.Context, chatID int64, address string, threshold decimal.NullDecimal) error

	// ToggleWatch flips the watch flag and returns its new value.
	ToggleWatch(ctx context.Context, chatID int64, address string) (bool, error)

	WalletStats(ctx context.Context, chatID int64, since time.Time) (Stats, error)
	TopWallets(ctx context.Context, chatID int64, limit int) ([]WalletActivity, error)
	RecentTransactions(ctx context.Context, address string, limit int) ([]Transaction, error)

	// FindWalletsByAddresses returns every (wallet, chat) pair monitoring any of the addresses.
	FindWalletsByAddresses(ctx context.Context, addresses []string) ([]Wallet, error)
}
