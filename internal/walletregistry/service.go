// Package walletregistry manages the wallets each chat monitors: their
// labels, alert thresholds and watch flags. It validates input and delegates
// persistence to a WalletStorage.
package walletregistry

import (
	"context"
	"strings"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

const (
	defaultPageSize    = 10
	defaultSearchLimit = 10
	defaultTopLimit    = 10
	defaultRecentLimit = 5
	maxRecentLimit     = 50
)

// Service defines the operations available on the wallet registry.
type Service interface {
	// AddWallet registers address for chatID under label.
	//
	// Returns:
	//   - The stored wallet.
	//   - validator.ErrValidationFailed if the address or label are malformed.
	//   - ErrWalletAlreadyRegistered if the chat already monitors the address.
	AddWallet(ctx context.Context, chatID int64, address, label string) (Wallet, error)

	// RemoveWallet stops monitoring address for chatID.
	//
	// Returns ErrWalletNotFound if the chat does not monitor the address.
	RemoveWallet(ctx context.Context, chatID int64, address string) error

	// ListWallets returns every wallet of the chat, newest first.
	ListWallets(ctx context.Context, chatID int64) ([]Wallet, error)

	// ListWalletsPage returns the 1-based page of the chat's wallets.
	// Pages past the end are clamped to the last page.
	ListWalletsPage(ctx context.Context, chatID int64, page int) (Page, error)

	// SearchWallets matches keyword against labels and addresses, case-insensitively.
	SearchWallets(ctx context.Context, chatID int64, keyword string) ([]Wallet, error)

	// RenameWallet replaces the label of a monitored wallet.
	RenameWallet(ctx context.Context, chatID int64, address, label string) error

	// SetAlertThreshold configures the minimum amount, in SOL, that triggers an alert.
	//
	// Returns ErrInvalidThreshold if threshold is not positive.
	SetAlertThreshold(ctx context.Context, chatID int64, address string, threshold decimal.Decimal) error

	// ClearAlertThreshold disables alerts for the wallet.
	ClearAlertThreshold(ctx context.Context, chatID int64, address string) error

	// ToggleWatch flips the watch flag and returns its new value.
	ToggleWatch(ctx context.Context, chatID int64, address string) (bool, error)

	// Watchlist returns the chat's watched wallets.
	Watchlist(ctx context.Context, chatID int64) ([]Wallet, error)

	// Stats summarizes the chat's monitoring activity. "Today" is computed in UTC.
	Stats(ctx context.Context, chatID int64) (Stats, error)

	// TopWallets ranks the chat's wallets by recorded transaction count.
	TopWallets(ctx context.Context, chatID int64) ([]WalletActivity, error)

	// RecentTransactions returns the latest transactions recorded for address.
	// A non-positive limit falls back to 5; limits above 50 are capped.
	RecentTransactions(ctx context.Context, chatID int64, address string, limit int) ([]Transaction, error)

	// FindByAddresses returns every (wallet, chat) pair that monitors any of the addresses.
	FindByAddresses(ctx context.Context, addresses []string) ([]Wallet, error)
}

type service struct {
	pageSize    int
	searchLimit int
	now         func() time.Time

	walletStorage WalletStorage
}

var _ Service = (*service)(nil)

type config struct {
	pageSize    int
	searchLimit int
	now         func() time.Time
}

// Option configures the registry service.
type Option func(*config)

// WithPageSize sets how many wallets ListWalletsPage returns per page.
func WithPageSize(n int) Option {
	return func(c *config) {
		c.pageSize = n
	}
}

// WithSearchLimit caps the number of SearchWallets results.
func WithSearchLimit(n int) Option {
	return func(c *config) {
		c.searchLimit = n
	}
}

// WithClock overrides the time source used by Stats.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// New creates a registry service backed by ws.
func New(ws WalletStorage, opts ...Option) *service {
	cfg := config{
		pageSize:    defaultPageSize,
		searchLimit: defaultSearchLimit,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		pageSize:      cfg.pageSize,
		searchLimit:   cfg.searchLimit,
		now:           cfg.now,
		walletStorage: ws,
	}
}

type walletKey struct {
	ChatID  int64  `validate:"required"`
	Address string `validate:"required,solana_address"`
}

type labeledWallet struct {
	walletKey
	Label string `validate:"required,max=64"`
}

func buildWalletKey(chatID int64, address string) (walletKey, error) {
	key := walletKey{ChatID: chatID, Address: strings.TrimSpace(address)}
	return key, validator.Validate(key)
}

func buildLabeledWallet(chatID int64, address, label string) (labeledWallet, error) {
	w := labeledWallet{
		walletKey: walletKey{ChatID: chatID, Address: strings.TrimSpace(address)},
		Label:     strings.TrimSpace(label),
	}
	return w, validator.Validate(w)
}

func (s *service) AddWallet(ctx context.Context, chatID int64, address, label string) (Wallet, error) {
	in, err := buildLabeledWallet(chatID, address, label)
	if err != nil {
		return Wallet{}, err
	}

	return s.walletStorage.InsertWallet(ctx, Wallet{
		Address: in.Address,
		ChatID:  in.ChatID,
		Label:   in.Label,
	})
}

func (s *service) RemoveWallet(ctx context.Context, chatID int64, address string) error {
	key, err := buildWalletKey(chatID, address)
	if err != nil {
		return err
	}

	return s.walletStorage.DeleteWallet(ctx, key.ChatID, key.Address)
}

func (s *service) ListWallets(ctx context.Context, chatID int64) ([]Wallet, error) {
	return s.walletStorage.ListWallets(ctx, chatID, 0, 0)
}

func (s *service) ListWalletsPage(ctx context.Context, chatID int64, page int) (Page, error) {
	total, err := s.walletStorage.CountWallets(ctx, chatID)
	if err != nil {
		return Page{}, err
	}

	totalPages := max(1, (total+s.pageSize-1)/s.pageSize)
	page = min(max(page, 1), totalPages)

	if total == 0 {
		return Page{Number: 1, Size: s.pageSize, TotalPages: 1}, nil
	}

	wallets, err := s.walletStorage.ListWallets(ctx, chatID, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return Page{}, err
	}

	return Page{
		Wallets:    wallets,
		Number:     page,
		Size:       s.pageSize,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

func (s *service) SearchWallets(ctx context.Context, chatID int64, keyword string) ([]Wallet, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, nil
	}

	return s.walletStorage.SearchWallets(ctx, chatID, keyword, s.searchLimit)
}

func (s *service) RenameWallet(ctx context.Context, chatID int64, address, label string) error {
	in, err := buildLabeledWallet(chatID, address, label)
	if err != nil {
		return err
	}

	return s.walletStorage.UpdateWalletLabel(ctx, in.ChatID, in.Address, in.Label)
}

func (s *service) SetAlertThreshold(ctx context.Context, chatID int64, address string, threshold decimal.Decimal) error {
	key, err := buildWalletKey(chatID, address)
	if err != nil {
		return err
	}

	if !threshold.IsPositive() {
		return ErrInvalidThreshold
	}

	return s.walletStorage.UpdateAlertThreshold(ctx, key.ChatID, key.Address, decimal.NewNullDecimal(threshold))
}

func (s *service) ClearAlertThreshold(ctx context.Context, chatID int64, address string) error {
	key, err := buildWalletKey(chatID, address)
	if err != nil {
		return err
	}

	return s.walletStorage.UpdateAlertThreshold(ctx, key.ChatID, key.Address, decimal.NullDecimal{})
}

func (s *service) ToggleWatch(ctx context.Context, chatID int64, address string) (bool, error) {
	key, err := buildWalletKey(chatID, address)
	if err != nil {
		return false, err
	}

	return s.walletStorage.ToggleWatch(ctx, key.ChatID, key.Address)
}

func (s *service) Watchlist(ctx context.Context, chatID int64) ([]Wallet, error) {
	return s.walletStorage.ListWatchedWallets(ctx, chatID)
}

func (s *service) Stats(ctx context.Context, chatID int64) (Stats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return s.walletStorage.WalletStats(ctx, chatID, startOfDay)
}

func (s *service) TopWallets(ctx context.Context, chatID int64) ([]WalletActivity, error) {
	return s.walletStorage.TopWallets(ctx, chatID, defaultTopLimit)
}

func (s *service) RecentTransactions(ctx context.Context, chatID int64, address string, limit int) ([]Transaction, error) {
	if _, err := buildWalletKey(chatID, address); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultRecentLimit
	case limit > maxRecentLimit:
		limit = maxRecentLimit
	}

	return s.walletStorage.RecentTransactions(ctx, strings.TrimSpace(address), limit)
}

func (s *service) FindByAddresses(ctx context.Context, addresses []string) ([]Wallet, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	return s.walletStorage.FindWalletsByAddresses(ctx, addresses)
}
