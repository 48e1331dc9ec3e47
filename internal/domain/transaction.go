package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindDeposit       Kind = "DEPOSIT"
	KindWithdrawal    Kind = "WITHDRAWAL"
	KindInterest      Kind = "INTEREST"
	KindLoanTaken     Kind = "LOAN_TAKEN"
	KindLoanRepayment Kind = "LOAN_REPAYMENT"
	KindFee           Kind = "FEE"
)

// Transaction is one entry in an account's history. Entries are created by
// Account operations and never change afterwards.
type Transaction struct {
	ID          uuid.UUID
	Kind        Kind
	Amount      decimal.Decimal
	Timestamp   time.Time
	Description string
}

func newTransaction(kind Kind, amount decimal.Decimal, description string) Transaction {
	return Transaction{
		ID:          uuid.New(),
		Kind:        kind,
		Amount:      amount,
		Timestamp:   time.Now().UTC(),
		Description: description,
	}
}

func (t Transaction) String() string {
	return fmt.Sprintf("[%s] %s: %s (%s)",
		t.Timestamp.Format("2006-01-02 15:04:05"), t.Kind, t.Amount.StringFixed(2), t.Description)
}
