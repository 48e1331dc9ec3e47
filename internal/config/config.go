package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`

	BankName       string `env:"BANK_NAME" envDefault:"Money Flow Bank"`
	CurrencySymbol string `env:"CURRENCY_SYMBOL" envDefault:"R"`

	// InterestRate is the multiplier the dashboard's apply interest action
	// passes to the core on each use.
	InterestRate float64 `env:"INTEREST_RATE" envDefault:"0.005"`

	SeedDemoAccounts bool `env:"SEED_DEMO_ACCOUNTS" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}
