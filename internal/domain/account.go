package domain

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

type Class string

const (
	ClassChecking Class = "CHECKING"
	ClassSavings  Class = "SAVINGS"
)

func (c Class) IsValid() bool {
	return c == ClassChecking || c == ClassSavings
}

func ParseClass(s string) (Class, error) {
	c := Class(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidClass
	}
	return c, nil
}

// CheckingWithdrawalFee is the flat fee added to the debit of every
// withdrawal from a checking account. Savings withdrawals carry no fee.
var CheckingWithdrawalFee = decimal.RequireFromString("0.50")

// Account is a single bank account: identity, credential, balances and an
// append-only transaction history. Accounts are created through the ledger,
// which guarantees number uniqueness, and mutated only through their own
// methods. Each method holds the account mutex for its full critical
// section, so the balance and the history entries it implies always move
// together.
type Account struct {
	mu          sync.Mutex
	number      string
	pin         string
	holderName  string
	class       Class
	balance     decimal.Decimal
	loanBalance decimal.Decimal
	history     []Transaction
}

// NewAccount builds an account with a zero balance and empty history. Input
// validation is the ledger's job; see ledger.CreateAccount.
func NewAccount(number, pin, holderName string, class Class) *Account {
	return &Account{
		number:      number,
		pin:         pin,
		holderName:  holderName,
		class:       class,
		balance:     decimal.Zero,
		loanBalance: decimal.Zero,
	}
}

// Deposit credits amount to the balance and records a DEPOSIT entry.
func (a *Account) Deposit(amount decimal.Decimal, description string) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	a.history = append(a.history, newTransaction(KindDeposit, amount, description))
	return nil
}

// Withdraw debits amount from the balance. Checking accounts pay
// CheckingWithdrawalFee on top of the requested amount; the balance must
// cover the full debit. On success the history gains a WITHDRAWAL entry for
// the requested amount and, for checking accounts, a paired FEE entry.
func (a *Account) Withdraw(amount decimal.Decimal, description string) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	debit := amount
	fee := decimal.Zero
	if a.class == ClassChecking {
		fee = CheckingWithdrawalFee
		debit = debit.Add(fee)
	}
	if a.balance.LessThan(debit) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(debit)
	a.history = append(a.history, newTransaction(KindWithdrawal, amount, description))
	if fee.Sign() > 0 {
		a.history = append(a.history, newTransaction(KindFee, fee, "Withdrawal Fee"))
	}
	return nil
}

// ApplyInterest credits balance*rate, rounded half-to-even at two fractional
// digits, and returns the credited amount. Only savings accounts with a
// positive balance earn interest.
func (a *Account) ApplyInterest(rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.Sign() <= 0 {
		return decimal.Zero, ErrInvalidRate
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.class != ClassSavings || a.balance.Sign() <= 0 {
		return decimal.Zero, ErrInterestIneligible
	}

	interest := a.balance.Mul(rate).RoundBank(2)
	a.balance = a.balance.Add(interest)
	a.history = append(a.history, newTransaction(KindInterest, interest, "Monthly Interest Earned"))
	return interest, nil
}

// TakeLoan credits amount to the balance and opens a loan for it. At most
// one loan may be outstanding at a time.
func (a *Account) TakeLoan(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loanBalance.Sign() > 0 {
		return ErrLoanOutstanding
	}

	a.loanBalance = amount
	a.balance = a.balance.Add(amount)
	a.history = append(a.history, newTransaction(KindLoanTaken, amount, "Loan Taken"))
	return nil
}

// RepayLoan debits a repayment from the balance and reduces the outstanding
// loan. Repaying more than the outstanding loan debits only the outstanding
// amount, so the loan balance never goes negative.
func (a *Account) RepayLoan(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loanBalance.Sign() <= 0 {
		return ErrNoLoanOutstanding
	}

	debit := decimal.Min(amount, a.loanBalance)
	if a.balance.LessThan(debit) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(debit)
	a.loanBalance = a.loanBalance.Sub(debit)
	a.history = append(a.history, newTransaction(KindLoanRepayment, debit, "Loan Repayment"))
	return nil
}

func (a *Account) Number() string { return a.number }

func (a *Account) HolderName() string { return a.holderName }

func (a *Account) Class() Class { return a.class }

func (a *Account) VerifyPIN(pin string) bool { return a.pin == pin }

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) LoanBalance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loanBalance
}

// History returns a copy of the transaction log in insertion order.
func (a *Account) History() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}
