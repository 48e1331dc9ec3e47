// Package cli is the terminal view over the banking core: a login screen, a
// dashboard and a loan screen. It parses user input, dispatches through the
// session and renders outcomes; every banking rule lives below it.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/moneyflowbank/moneyflow/internal/config"
	"github.com/moneyflowbank/moneyflow/internal/ledger"
	"github.com/moneyflowbank/moneyflow/internal/money"
	"github.com/moneyflowbank/moneyflow/internal/session"
)

type App struct {
	cfg     *config.Config
	ledger  *ledger.Ledger
	session *session.Session
	in      *bufio.Scanner
	out     io.Writer
	money   money.Formatter
	rate    decimal.Decimal
}

func New(cfg *config.Config, l *ledger.Ledger, s *session.Session, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:     cfg,
		ledger:  l,
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
		money:   money.NewFormatter(cfg.CurrencySymbol),
		rate:    decimal.NewFromFloat(cfg.InterestRate),
	}
}

// Run drives the screen loop until the user exits, input is exhausted, or
// ctx is cancelled. The session state decides which screen is shown.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintf(a.out, "Welcome to %s\n", a.cfg.BankName)
	for ctx.Err() == nil {
		var cont bool
		if _, ok := a.session.Current(); ok {
			cont = a.dashboard(ctx)
		} else {
			cont = a.loginScreen(ctx)
		}
		if !cont {
			break
		}
	}
	fmt.Fprintln(a.out, "Goodbye.")
	if err := a.in.Err(); err != nil {
		return fmt.Errorf("cli.Run: %w", err)
	}
	return nil
}

func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// readAmount prompts for a monetary amount. Parse failures are reported here
// and never reach the core.
func (a *App) readAmount(prompt string) (decimal.Decimal, bool) {
	line, ok := a.readLine(prompt)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(line)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid amount. Please enter a number.")
		return decimal.Zero, false
	}
	return amount, true
}
