package domain

import "errors"

var (
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidRate        = errors.New("interest rate must be greater than zero")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrLoanOutstanding    = errors.New("an outstanding loan already exists")
	ErrNoLoanOutstanding  = errors.New("no outstanding loan to repay")
	ErrInterestIneligible = errors.New("interest requires a savings account with a positive balance")
	ErrEmptyHolderName    = errors.New("holder name must not be empty")
	ErrInvalidPIN         = errors.New("pin must be exactly four digits")
	ErrInvalidClass       = errors.New("unknown account class")
	ErrInvalidNumber      = errors.New("account number must be exactly ten digits")
	ErrAccountExists      = errors.New("account number already in use")
	ErrAccountNotFound    = errors.New("account not found")
	ErrIncorrectPIN       = errors.New("incorrect pin")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
