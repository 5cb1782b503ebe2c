package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Coin is a (denomination, amount) pair. Amounts are arbitrary-precision
// decimals restricted to non-negative integers; denominations are opaque
// strings compared exactly.
type Coin struct {
	Denom  string          `json:"denom"`
	Amount decimal.Decimal `json:"amount"`
}

// NewCoin builds a coin from an int64 amount. Panics on negative amounts;
// use Validate for untrusted input.
func NewCoin(denom string, amount int64) Coin {
	c := Coin{Denom: denom, Amount: decimal.NewFromInt(amount)}
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return c
}

// Validate rejects coins that cannot appear in prices or attached funds:
// empty denominations, negative amounts, and fractional amounts.
func (c Coin) Validate() error {
	if c.Denom == "" {
		return fmt.Errorf("coin denomination is empty")
	}
	if c.Amount.Sign() < 0 {
		return fmt.Errorf("coin amount %s is negative", c.Amount)
	}
	if !c.Amount.IsInteger() {
		return fmt.Errorf("coin amount %s is not an integer", c.Amount)
	}
	return nil
}

// IsGTE reports whether this coin satisfies other: same denomination and an
// amount at least as large.
func (c Coin) IsGTE(other Coin) bool {
	return c.Denom == other.Denom && c.Amount.Cmp(other.Amount) >= 0
}

func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

// Funds is the list of coins attached to a request, or held by the registry.
type Funds []Coin

// Validate checks every coin in the list.
func (f Funds) Validate() error {
	for _, coin := range f {
		if err := coin.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsZero reports whether the funds carry no value at all.
func (f Funds) IsZero() bool {
	for _, coin := range f {
		if coin.Amount.Sign() > 0 {
			return false
		}
	}
	return true
}

func (f Funds) String() string {
	if len(f) == 0 {
		return "(none)"
	}
	s := ""
	for i, coin := range f {
		if i > 0 {
			s += ","
		}
		s += coin.String()
	}
	return s
}

// Clone returns an independent copy of the funds list.
func (f Funds) Clone() Funds {
	if f == nil {
		return nil
	}
	out := make(Funds, len(f))
	copy(out, f)
	return out
}

// ClonePrice copies an optional price so stored configuration never aliases
// caller-held memory.
func ClonePrice(p *Coin) *Coin {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
