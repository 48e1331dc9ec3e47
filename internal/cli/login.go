package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/moneyflowbank/moneyflow/internal/domain"
)

func (a *App) loginScreen(ctx context.Context) bool {
	fmt.Fprintf(a.out, "\n--- %s ---\n", a.cfg.BankName)
	fmt.Fprintln(a.out, "[1] Log in")
	fmt.Fprintln(a.out, "[2] Create account")
	fmt.Fprintln(a.out, "[3] Exit")

	choice, ok := a.readLine("Select an option: ")
	if !ok {
		return false
	}
	switch choice {
	case "1":
		a.login(ctx)
	case "2":
		a.createAccount(ctx)
	case "3":
		return false
	default:
		fmt.Fprintln(a.out, "Unknown option.")
	}
	return true
}

func (a *App) login(ctx context.Context) {
	number, ok := a.readLine("Account number: ")
	if !ok {
		return
	}
	pin, ok := a.readLine("PIN: ")
	if !ok {
		return
	}

	err := a.session.Login(ctx, number, pin)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrIncorrectPIN):
		fmt.Fprintln(a.out, "Incorrect PIN. Please try again.")
	default:
		fmt.Fprintln(a.out, "Account not found. Please create an account or check details.")
	}
}

func (a *App) createAccount(ctx context.Context) {
	name, ok := a.readLine("Account holder name: ")
	if !ok {
		return
	}
	pin, ok := a.readLine("Choose a 4-digit PIN: ")
	if !ok {
		return
	}
	classText, ok := a.readLine("Account type (CHECKING or SAVINGS): ")
	if !ok {
		return
	}

	class, err := domain.ParseClass(classText)
	if err != nil {
		fmt.Fprintln(a.out, "Account type must be CHECKING or SAVINGS.")
		return
	}

	account, err := a.ledger.CreateAccount(ctx, name, pin, class)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "Account created! Your Account Number: %s\n", account.Number())
	case errors.Is(err, domain.ErrEmptyHolderName):
		fmt.Fprintln(a.out, "Name and PIN cannot be empty.")
	case errors.Is(err, domain.ErrInvalidPIN):
		fmt.Fprintln(a.out, "PIN must be a 4-digit number.")
	default:
		fmt.Fprintln(a.out, "Could not create the account.")
	}
}
