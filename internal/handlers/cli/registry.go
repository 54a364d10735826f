package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/solwatch/internal/walletregistry"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// startWatchingWalletCommand returns a CLI command that registers a wallet
// for a chat, optionally with an alert threshold.
//
// Usage example:
//
//	solwatch watch --chat-id 1001 --address 9WzD... --label treasury --threshold 50
func startWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register a wallet to be monitored for a chat.",
		Usage:       "Registers a wallet address. Must provide chat id, address and label.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "chat-id",
				Usage:    "Telegram chat that receives the alerts",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to start watching",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "label",
				Usage:    "Display name of the wallet",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "threshold",
				Usage: "Minimum amount, in SOL, that triggers an alert",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chatID    = c.Int64("chat-id")
				address   = c.String("address")
				label     = c.String("label")
				threshold = c.String("threshold")
			)

			var amount decimal.Decimal
			if threshold != "" {
				var err error
				if amount, err = decimal.NewFromString(threshold); err != nil {
					return fmt.Errorf("invalid threshold %q: %w", threshold, err)
				}
				if !amount.IsPositive() {
					return fmt.Errorf("invalid threshold %q: %w", threshold, walletregistry.ErrInvalidThreshold)
				}
			}

			w, err := wr.AddWallet(ctx, chatID, address, label)
			if err != nil {
				return err
			}

			if threshold == "" {
				return nil
			}

			return wr.SetAlertThreshold(ctx, chatID, w.Address, amount)
		},
	}
}

// stopWatchingWalletCommand returns a CLI command that removes a wallet from a chat.
//
// Usage example:
//
//	solwatch unwatch --chat-id 1001 --address 9WzD...
func stopWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Unregister a wallet from a chat.",
		Usage:       "Stops watching a wallet address. Must provide both chat id and address.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "chat-id",
				Usage:    "Telegram chat that monitors the wallet",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to stop watching",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return wr.RemoveWallet(ctx, c.Int64("chat-id"), c.String("address"))
		},
	}
}
