// Package demo seeds two well-known accounts so the login screen can be
// exercised without creating one first.
package demo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/moneyflowbank/moneyflow/internal/domain"
	"github.com/moneyflowbank/moneyflow/internal/ledger"
)

// Well-known demo credentials.
const (
	AliceNumber = "1234567890"
	AlicePIN    = "1234"
	BobNumber   = "0987654321"
	BobPIN      = "4321"
)

// Seed installs Alice's savings account and Bob's checking account, each
// with a short transaction history. It fails if either number is already
// registered.
func Seed(ctx context.Context, l *ledger.Ledger) error {
	alice, err := l.CreateAccountWithNumber(ctx, AliceNumber, "Alice Smith", AlicePIN, domain.ClassSavings)
	if err != nil {
		return fmt.Errorf("demo.Seed: %w", err)
	}
	if err := alice.Deposit(decimal.NewFromInt(1500), "Initial Deposit"); err != nil {
		return fmt.Errorf("demo.Seed: %w", err)
	}
	if err := alice.Withdraw(decimal.NewFromInt(50), "Groceries"); err != nil {
		return fmt.Errorf("demo.Seed: %w", err)
	}

	bob, err := l.CreateAccountWithNumber(ctx, BobNumber, "Bob Johnson", BobPIN, domain.ClassChecking)
	if err != nil {
		return fmt.Errorf("demo.Seed: %w", err)
	}
	if err := bob.Deposit(decimal.NewFromInt(2500), "Salary"); err != nil {
		return fmt.Errorf("demo.Seed: %w", err)
	}
	if err := bob.Withdraw(decimal.NewFromInt(100), "Bills"); err != nil {
		return fmt.Errorf("demo.Seed: %w", err)
	}
	return nil
}
