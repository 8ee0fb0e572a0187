package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/codex-grpc-talent/internal/app"
	"github.com/ogurasousui/codex-grpc-talent/internal/platform/config"
	"github.com/ogurasousui/codex-grpc-talent/internal/platform/logging"
	"github.com/ogurasousui/codex-grpc-talent/internal/platform/server"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	logger.Info("storage ready", zap.String("driver", a.Driver()))

	grpcServer := server.New(cfg.Server.ListenAddr, a.Services(), logger.Named("grpc"),
		server.WithMeter(otel.Meter("github.com/ogurasousui/codex-grpc-talent")),
	)
	return grpcServer.Run(ctx)
}
