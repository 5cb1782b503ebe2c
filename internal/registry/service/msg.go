package service

import (
	"context"
	"fmt"

	"nomen/internal/registry/models"
)

// ExecuteMsg is the closed set of fee-gated mutations. Each variant carries
// exactly the fields its operation reads; the caller and attached funds
// travel alongside the message, never inside it.
type ExecuteMsg interface {
	isExecuteMsg()
}

// RegisterMsg claims an unregistered name for the caller.
type RegisterMsg struct {
	Name    string
	Bio     string
	Website string
}

// TransferMsg hands a name the caller owns to a new owner.
type TransferMsg struct {
	Name string
	To   string
}

// EditMsg replaces the bio and website of a name the caller owns. Both
// fields are always written; omitting one clears it.
type EditMsg struct {
	Name    string
	Bio     string
	Website string
}

// EditconfMsg replaces all three operation prices. A nil price makes the
// corresponding operation free, so every editconf states the complete fee
// schedule.
type EditconfMsg struct {
	PurchasePrice *models.Coin
	TransferPrice *models.Coin
	EditPrice     *models.Coin
}

// RefundMsg pays the registry's full held balance out to its owner.
type RefundMsg struct{}

func (RegisterMsg) isExecuteMsg() {}
func (TransferMsg) isExecuteMsg() {}
func (EditMsg) isExecuteMsg()     {}
func (EditconfMsg) isExecuteMsg() {}
func (RefundMsg) isExecuteMsg()   {}

// InstantiateMsg seeds the registry: an optional admin override and the
// initial fee schedule. It is not an ExecuteMsg; instantiation happens once,
// before any execute traffic.
type InstantiateMsg struct {
	Admin         string
	PurchasePrice *models.Coin
	TransferPrice *models.Coin
	EditPrice     *models.Coin
}

// Execute dispatches msg to its operation. The returned transfers are bank
// messages the operation emitted; the caller settles them against the
// ledger after depositing the attached funds.
func (s *Service) Execute(ctx context.Context, caller models.Identity, funds models.Funds, msg ExecuteMsg) ([]models.Transfer, error) {
	switch m := msg.(type) {
	case RegisterMsg:
		return nil, s.register(ctx, caller, funds, m)
	case TransferMsg:
		return nil, s.transfer(ctx, caller, funds, m)
	case EditMsg:
		return nil, s.edit(ctx, caller, funds, m)
	case EditconfMsg:
		return nil, s.editConfig(ctx, caller, funds, m)
	case RefundMsg:
		return s.refund(ctx, caller)
	default:
		return nil, fmt.Errorf("unsupported message type %T", msg)
	}
}
