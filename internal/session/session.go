// Package session tracks which account, if any, the running process is
// authenticated against, and mediates every operation the view issues. In
// the unauthenticated state each verb fails with domain.ErrNotAuthenticated
// and changes nothing.
package session

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/moneyflowbank/moneyflow/internal/domain"
	"github.com/moneyflowbank/moneyflow/internal/ledger"
	"github.com/moneyflowbank/moneyflow/internal/logging"
)

// Session is confined to the view loop and is not safe for concurrent use.
type Session struct {
	ledger  *ledger.Ledger
	current *domain.Account
}

func New(l *ledger.Ledger) *Session {
	return &Session{ledger: l}
}

// Login authenticates against the ledger and, on success, binds the session
// to the account. A failed login leaves the session unchanged.
func (s *Session) Login(ctx context.Context, number, pin string) error {
	account, err := s.ledger.Authenticate(ctx, number, pin)
	if err != nil {
		return fmt.Errorf("Login: %w", err)
	}
	s.current = account

	logging.FromContext(ctx).Info("login", "account_number", account.Number())
	return nil
}

func (s *Session) Logout(ctx context.Context) {
	if s.current == nil {
		return
	}
	logging.FromContext(ctx).Info("logout", "account_number", s.current.Number())
	s.current = nil
}

// Current returns the authenticated account, if any.
func (s *Session) Current() (*domain.Account, bool) {
	return s.current, s.current != nil
}

func (s *Session) Deposit(ctx context.Context, amount decimal.Decimal, description string) error {
	account, ok := s.Current()
	if !ok {
		return fmt.Errorf("Deposit: %w", domain.ErrNotAuthenticated)
	}
	if err := account.Deposit(amount, description); err != nil {
		return fmt.Errorf("Deposit: %w", err)
	}

	logging.FromContext(ctx).Info("deposit", "account_number", account.Number(), "amount", amount)
	return nil
}

func (s *Session) Withdraw(ctx context.Context, amount decimal.Decimal, description string) error {
	account, ok := s.Current()
	if !ok {
		return fmt.Errorf("Withdraw: %w", domain.ErrNotAuthenticated)
	}
	if err := account.Withdraw(amount, description); err != nil {
		return fmt.Errorf("Withdraw: %w", err)
	}

	logging.FromContext(ctx).Info("withdrawal", "account_number", account.Number(), "amount", amount)
	return nil
}

func (s *Session) TakeLoan(ctx context.Context, amount decimal.Decimal) error {
	account, ok := s.Current()
	if !ok {
		return fmt.Errorf("TakeLoan: %w", domain.ErrNotAuthenticated)
	}
	if err := account.TakeLoan(amount); err != nil {
		return fmt.Errorf("TakeLoan: %w", err)
	}

	logging.FromContext(ctx).Info("loan taken", "account_number", account.Number(), "amount", amount)
	return nil
}

func (s *Session) RepayLoan(ctx context.Context, amount decimal.Decimal) error {
	account, ok := s.Current()
	if !ok {
		return fmt.Errorf("RepayLoan: %w", domain.ErrNotAuthenticated)
	}
	if err := account.RepayLoan(amount); err != nil {
		return fmt.Errorf("RepayLoan: %w", err)
	}

	logging.FromContext(ctx).Info("loan repayment", "account_number", account.Number(), "amount", amount)
	return nil
}

func (s *Session) ApplyInterest(ctx context.Context, rate decimal.Decimal) (decimal.Decimal, error) {
	account, ok := s.Current()
	if !ok {
		return decimal.Zero, fmt.Errorf("ApplyInterest: %w", domain.ErrNotAuthenticated)
	}
	interest, err := account.ApplyInterest(rate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ApplyInterest: %w", err)
	}

	logging.FromContext(ctx).Info("interest applied", "account_number", account.Number(), "amount", interest)
	return interest, nil
}
