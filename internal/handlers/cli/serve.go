package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// serveCommand returns a CLI command that starts every component in order
// and closes them in reverse order on shutdown.
//
// Usage example:
//
//	solwatch serve
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or
// the context is cancelled.
func serveCommand(components ...Component) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the webhook server for transaction deliveries and chat updates.",
		Usage:       "Runs the service. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			for i, component := range components {
				if err := component.Start(ctx); err != nil {
					closeAll(components[:i])
					return err
				}
			}
			defer closeAll(components)

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}

func closeAll(components []Component) {
	for i := len(components) - 1; i >= 0; i-- {
		components[i].Close()
	}
}

// migrateCommand returns a CLI command that applies pending migrations.
//
// Usage example:
//
//	solwatch migrate
func migrateCommand(migrate MigrateFunc) *cli.Command {
	return &cli.Command{
		Name:        "migrate",
		Description: "Applies pending database migrations.",
		Usage:       "Brings the database schema up to date.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return migrate(ctx)
		},
	}
}
