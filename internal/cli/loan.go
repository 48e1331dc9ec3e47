package cli

import (
	"context"
	"fmt"

	"github.com/moneyflowbank/moneyflow/internal/domain"
)

func (a *App) loanScreen(ctx context.Context, account *domain.Account) bool {
	for {
		fmt.Fprintln(a.out, "\n--- Loans ---")
		fmt.Fprintf(a.out, "Current Loan: %s\n", a.money.Format(account.LoanBalance()))
		fmt.Fprintln(a.out, "[1] Take loan")
		fmt.Fprintln(a.out, "[2] Repay loan")
		fmt.Fprintln(a.out, "[3] Back")

		choice, ok := a.readLine("Select an option: ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			a.takeLoan(ctx, account)
		case "2":
			a.repayLoan(ctx, account)
		case "3":
			return true
		default:
			fmt.Fprintln(a.out, "Unknown option.")
		}
	}
}

func (a *App) takeLoan(ctx context.Context, account *domain.Account) {
	if account.LoanBalance().Sign() > 0 {
		fmt.Fprintln(a.out, "You already have an outstanding loan. Repay it first.")
		return
	}
	amount, ok := a.readAmount("Loan amount: ")
	if !ok {
		return
	}
	if err := a.session.TakeLoan(ctx, amount); err != nil {
		fmt.Fprintln(a.out, "Loan amount must be positive.")
		return
	}
	fmt.Fprintf(a.out, "Loan of %s successfully taken.\n", a.money.Format(amount))
}

func (a *App) repayLoan(ctx context.Context, account *domain.Account) {
	outstanding := account.LoanBalance()
	if outstanding.Sign() == 0 {
		fmt.Fprintln(a.out, "You have no outstanding loan to repay.")
		return
	}
	amount, ok := a.readAmount("Repayment amount: ")
	if !ok {
		return
	}
	// The core clamps over-repayment; the view rejects it up front so the
	// user sees the outstanding figure instead.
	if amount.GreaterThan(outstanding) {
		fmt.Fprintf(a.out, "Repayment amount exceeds outstanding loan. Repay %s\n", a.money.Format(outstanding))
		return
	}
	if err := a.session.RepayLoan(ctx, amount); err != nil {
		fmt.Fprintln(a.out, "Insufficient funds to repay loan or invalid amount.")
		return
	}
	fmt.Fprintf(a.out, "Successfully repaid %s of your loan.\n", a.money.Format(amount))
}
