package bank

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"nomen/internal/registry/models"
)

// MemoryLedger keeps the account balance in process memory. Suitable for
// tests and single-process deployments where settlement durability is not
// required.
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
}

// NewMemoryLedger constructs an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances: make(map[string]decimal.Decimal),
	}
}

func (l *MemoryLedger) Balance(_ context.Context) (models.Funds, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	denoms := make([]string, 0, len(l.balances))
	for denom, amount := range l.balances {
		if amount.Sign() == 0 {
			continue
		}
		denoms = append(denoms, denom)
	}
	sort.Strings(denoms)

	funds := make(models.Funds, 0, len(denoms))
	for _, denom := range denoms {
		funds = append(funds, models.Coin{Denom: denom, Amount: l.balances[denom]})
	}
	return funds, nil
}

func (l *MemoryLedger) Deposit(_ context.Context, funds models.Funds) error {
	if err := funds.Validate(); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, coin := range funds {
		l.balances[coin.Denom] = l.balances[coin.Denom].Add(coin.Amount)
	}
	return nil
}

func (l *MemoryLedger) Send(_ context.Context, to models.Identity, funds models.Funds) error {
	if err := funds.Validate(); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	if funds.IsZero() {
		return nil
	}
	if to == "" {
		return fmt.Errorf("send: recipient is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, coin := range funds {
		if l.balances[coin.Denom].LessThan(coin.Amount) {
			return fmt.Errorf("send %s to %s: %w", coin, to, ErrInsufficientBalance)
		}
	}
	for _, coin := range funds {
		l.balances[coin.Denom] = l.balances[coin.Denom].Sub(coin.Amount)
	}
	return nil
}
