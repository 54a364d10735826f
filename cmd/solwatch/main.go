package main

import (
	"context"
	"os"

	"github.com/gabapcia/solwatch/internal/alerting"
	"github.com/gabapcia/solwatch/internal/chatbot"
	"github.com/gabapcia/solwatch/internal/config"
	"github.com/gabapcia/solwatch/internal/handlers/cli"
	httphandler "github.com/gabapcia/solwatch/internal/handlers/http"
	"github.com/gabapcia/solwatch/internal/infra/blockchain/solana"
	"github.com/gabapcia/solwatch/internal/infra/messaging/telegram"
	"github.com/gabapcia/solwatch/internal/infra/storage/postgres"
	"github.com/gabapcia/solwatch/internal/infra/storage/redis"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/solwatch/internal/pkg/transport/http"
	"github.com/gabapcia/solwatch/internal/txingest"
	"github.com/gabapcia/solwatch/internal/walletregistry"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/hashicorp/go-retryablehttp"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.App.Name)
		if err != nil {
			panic(err)
		}
		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
	}

	if err := logger.Init(cfg.App.LogLevel); err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(ctx, cfg); err != nil {
		logger.Error(ctx, "solwatch exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	db, err := postgres.NewClient(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		return err
	}
	defer db.Close()

	var (
		alertOpts  = []alerting.Option{alerting.WithMaxRateLimitWait(cfg.Telegram.MaxRateLimitWait)}
		ingestOpts = []txingest.Option{txingest.WithMaxProcessingTime(cfg.Ingest.MaxProcessingTime)}
	)

	if cfg.Redis.Enabled {
		kv, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithDoneRetention(cfg.Redis.DoneRetention),
			redis.WithSendRate(cfg.Telegram.SendRate),
		)
		if err != nil {
			return err
		}
		defer func() { _ = kv.Close() }()

		alertOpts = append(alertOpts, alerting.WithRateLimiter(kv))
		ingestOpts = append(ingestOpts, txingest.WithIdempotencyGuard(kv))
	}

	if cfg.Solana.RPCURL != "" {
		parser := solana.NewClient(cfg.Solana.RPCURL, solana.WithCommitment(rpc.CommitmentType(cfg.Solana.Commitment)))
		ingestOpts = append(ingestOpts, txingest.WithSignatureParser(parser))
	}

	messenger := telegram.NewClient(
		transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.Telegram.Timeout),
			transporthttp.WithRetryMax(cfg.Telegram.RetryMax),
			transporthttp.WithErrorHandler(retryablehttp.PassthroughErrorHandler),
		),
		cfg.Telegram.APIBaseURL,
		cfg.Telegram.BotToken,
	)

	var (
		registry = walletregistry.New(db)
		alerts   = alerting.New(messenger, alertOpts...)
		ingest   = txingest.New(registry, db, alerts, ingestOpts...)

		conversations = chatbot.NewStateStore(
			chatbot.WithIdleTTL(cfg.Conversation.IdleTTL),
			chatbot.WithSweepInterval(cfg.Conversation.SweepInterval),
		)
		bot = chatbot.New(registry, alerts, conversations)

		server = httphandler.NewServer(
			cfg.HTTP.Addr,
			httphandler.NewRouter(ingest, bot, cfg.Webhook.Secret, httphandler.WithTelegramSecret(cfg.Telegram.WebhookSecret)),
			httphandler.WithReadTimeout(cfg.HTTP.ReadTimeout),
			httphandler.WithWriteTimeout(cfg.HTTP.WriteTimeout),
			httphandler.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		)
	)

	migrate := func(ctx context.Context) error {
		return postgres.Migrate(ctx, cfg.Postgres.DSN)
	}

	return cli.Run(ctx, registry, migrate, conversations, server)
}
