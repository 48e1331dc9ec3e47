// Package ledger holds the process-wide account registry. Accounts are
// created here, never removed, and looked up by their 10-digit number. State
// lives for the life of the process; there is no persistence.
package ledger

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/moneyflowbank/moneyflow/internal/domain"
	"github.com/moneyflowbank/moneyflow/internal/logging"
)

const (
	numberLength = 10
	pinLength    = 4
)

type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func New() *Ledger {
	return &Ledger{accounts: make(map[string]*domain.Account)}
}

// CreateAccount validates the inputs, mints a fresh account number and
// registers a new account under it.
func (l *Ledger) CreateAccount(ctx context.Context, holderName, pin string, class domain.Class) (*domain.Account, error) {
	log := logging.FromContext(ctx)

	if err := validate(holderName, pin, class); err != nil {
		return nil, fmt.Errorf("CreateAccount: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	number, err := l.mintNumberLocked()
	if err != nil {
		return nil, fmt.Errorf("CreateAccount: %w", err)
	}
	account := domain.NewAccount(number, pin, holderName, class)
	l.accounts[number] = account

	log.Info("account created", "account_number", number, "class", class)
	return account, nil
}

// CreateAccountWithNumber registers an account under a caller-chosen number.
// Demo seeding uses it for the well-known account numbers; everything else
// should mint through CreateAccount.
func (l *Ledger) CreateAccountWithNumber(ctx context.Context, number, holderName, pin string, class domain.Class) (*domain.Account, error) {
	log := logging.FromContext(ctx)

	if err := validate(holderName, pin, class); err != nil {
		return nil, fmt.Errorf("CreateAccountWithNumber: %w", err)
	}
	if !allDigits(number, numberLength) {
		return nil, fmt.Errorf("CreateAccountWithNumber: %w", domain.ErrInvalidNumber)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, taken := l.accounts[number]; taken {
		return nil, fmt.Errorf("CreateAccountWithNumber: %w", domain.ErrAccountExists)
	}
	account := domain.NewAccount(number, pin, holderName, class)
	l.accounts[number] = account

	log.Info("account created", "account_number", number, "class", class)
	return account, nil
}

// Authenticate resolves number to an account and checks the pin. The two
// failure modes stay distinguishable so the view can word them differently.
func (l *Ledger) Authenticate(ctx context.Context, number, pin string) (*domain.Account, error) {
	log := logging.FromContext(ctx)

	account, ok := l.Lookup(number)
	if !ok {
		return nil, fmt.Errorf("Authenticate: %w", domain.ErrAccountNotFound)
	}
	if !account.VerifyPIN(pin) {
		log.Warn("authentication failed", "account_number", number)
		return nil, fmt.Errorf("Authenticate: %w", domain.ErrIncorrectPIN)
	}
	return account, nil
}

// Lookup is a raw read with no credential check.
func (l *Ledger) Lookup(number string) (*domain.Account, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	account, ok := l.accounts[number]
	return account, ok
}

// Numbers returns a snapshot of every registered account number.
func (l *Ledger) Numbers() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.accounts))
	for number := range l.accounts {
		out = append(out, number)
	}
	return out
}

// mintNumberLocked draws uniformly random 10-digit numbers until one is not
// already registered. Collisions are vanishingly rare at any realistic
// account count, so the loop terminates almost immediately. Caller holds
// l.mu.
func (l *Ledger) mintNumberLocked() (string, error) {
	for {
		digits := make([]byte, numberLength)
		for i := range digits {
			n, err := rand.Int(rand.Reader, big.NewInt(10))
			if err != nil {
				return "", fmt.Errorf("mint account number: %w", err)
			}
			digits[i] = '0' + byte(n.Int64())
		}
		number := string(digits)
		if _, taken := l.accounts[number]; !taken {
			return number, nil
		}
	}
}

func validate(holderName, pin string, class domain.Class) error {
	if strings.TrimSpace(holderName) == "" {
		return domain.ErrEmptyHolderName
	}
	if !allDigits(pin, pinLength) {
		return domain.ErrInvalidPIN
	}
	if !class.IsValid() {
		return domain.ErrInvalidClass
	}
	return nil
}

func allDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
