package cli

import (
	"context"
	"os"

	"github.com/gabapcia/solwatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// Component is a long-running part of the service started by `serve`.
type Component interface {
	Start(ctx context.Context) error
	Close()
}

// MigrateFunc applies the database migrations.
type MigrateFunc func(ctx context.Context) error

// Run initializes and executes the solwatch CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Starts the webhook server and its background workers.
//   - `migrate`: Applies the database migrations.
//   - `watch`: Registers a wallet for a chat.
//   - `unwatch`: Stops monitoring a wallet for a chat.
func Run(ctx context.Context, wr walletregistry.Service, migrate MigrateFunc, components ...Component) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "solwatch",
		Description:           "Solana wallet monitor with Telegram alerts.",
		Usage:                 "solwatch [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(components...),
			migrateCommand(migrate),
			startWatchingWalletCommand(wr),
			stopWatchingWalletCommand(wr),
		},
	}

	return app.Run(ctx, os.Args)
}
