package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/moneyflowbank/moneyflow/internal/cli"
	"github.com/moneyflowbank/moneyflow/internal/config"
	"github.com/moneyflowbank/moneyflow/internal/demo"
	"github.com/moneyflowbank/moneyflow/internal/ledger"
	"github.com/moneyflowbank/moneyflow/internal/logging"
	"github.com/moneyflowbank/moneyflow/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init(os.Stderr, "moneyflow", cfg.LogLevel, cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bank := ledger.New()
	if cfg.SeedDemoAccounts {
		if err := demo.Seed(ctx, bank); err != nil {
			slog.Error("failed to seed demo accounts", "error", err)
			os.Exit(1)
		}
	}

	app := cli.New(cfg, bank, session.New(bank), os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		slog.Error("view loop failed", "error", err)
		os.Exit(1)
	}
}
