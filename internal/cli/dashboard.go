package cli

import (
	"context"
	"fmt"

	"github.com/moneyflowbank/moneyflow/internal/domain"
)

func (a *App) dashboard(ctx context.Context) bool {
	account, ok := a.session.Current()
	if !ok {
		return true
	}

	fmt.Fprintf(a.out, "\nWelcome, %s (Acc: %s | Type: %s)\n",
		account.HolderName(), account.Number(), account.Class())
	fmt.Fprintf(a.out, "Balance: %s\n", a.money.Format(account.Balance()))
	fmt.Fprintln(a.out, "[1] Deposit")
	fmt.Fprintln(a.out, "[2] Withdraw")
	fmt.Fprintln(a.out, "[3] Transaction history")
	fmt.Fprintln(a.out, "[4] Apply interest")
	fmt.Fprintln(a.out, "[5] Loans")
	fmt.Fprintln(a.out, "[6] Log out")

	choice, ok := a.readLine("Select an option: ")
	if !ok {
		return false
	}
	switch choice {
	case "1":
		a.deposit(ctx)
	case "2":
		a.withdraw(ctx, account)
	case "3":
		a.printHistory(account)
	case "4":
		a.applyInterest(ctx, account)
	case "5":
		return a.loanScreen(ctx, account)
	case "6":
		a.session.Logout(ctx)
	default:
		fmt.Fprintln(a.out, "Unknown option.")
	}
	return true
}

func (a *App) deposit(ctx context.Context) {
	amount, ok := a.readAmount("Amount to deposit: ")
	if !ok {
		return
	}
	if err := a.session.Deposit(ctx, amount, "User Deposit"); err != nil {
		fmt.Fprintln(a.out, "Deposit amount must be positive.")
		return
	}
	fmt.Fprintf(a.out, "Successfully deposited %s\n", a.money.Format(amount))
}

func (a *App) withdraw(ctx context.Context, account *domain.Account) {
	amount, ok := a.readAmount("Amount to withdraw: ")
	if !ok {
		return
	}
	if err := a.session.Withdraw(ctx, amount, "User Withdrawal"); err != nil {
		fmt.Fprintln(a.out, "Insufficient funds or invalid amount.")
		return
	}
	note := ""
	if account.Class() == domain.ClassChecking {
		note = " (Fee Applied)"
	}
	fmt.Fprintf(a.out, "Successfully withdrew %s%s\n", a.money.Format(amount), note)
}

func (a *App) printHistory(account *domain.Account) {
	history := account.History()
	if len(history) == 0 {
		fmt.Fprintln(a.out, "No transactions yet.")
		return
	}
	for _, tx := range history {
		fmt.Fprintln(a.out, tx.String())
	}
}

func (a *App) applyInterest(ctx context.Context, account *domain.Account) {
	interest, err := a.session.ApplyInterest(ctx, a.rate)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "Interest of %s applied to your savings account!\n", a.money.Format(interest))
	case account.Class() != domain.ClassSavings:
		fmt.Fprintln(a.out, "Interest can only be applied to Savings accounts.")
	default:
		fmt.Fprintln(a.out, "No interest earned (balance is zero).")
	}
}
