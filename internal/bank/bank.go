// Package bank is the settlement collaborator for the name registry. It
// holds the registry's own account balance: fees attached to successful
// operations are deposited into it, and refunds are paid out of it.
//
// The registry core never moves money itself. It emits transfer intents,
// and the transport layer executes them against a Ledger.
package bank

import (
	"context"
	"errors"

	"nomen/internal/registry/models"
)

// ErrInsufficientBalance is returned by Send when the account does not hold
// enough of a requested denomination.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Ledger is the registry's view of its own account.
type Ledger interface {
	// Balance reports the funds currently held, one coin per denomination,
	// in ascending denom order. Denominations with a zero amount are
	// omitted.
	Balance(ctx context.Context) (models.Funds, error)

	// Deposit credits the account.
	Deposit(ctx context.Context, funds models.Funds) error

	// Send debits the account and pays the funds out to the given
	// recipient. Sending an empty or all-zero funds list is a no-op
	// success. If any coin exceeds the held balance, nothing is moved and
	// ErrInsufficientBalance is returned.
	Send(ctx context.Context, to models.Identity, funds models.Funds) error
}
