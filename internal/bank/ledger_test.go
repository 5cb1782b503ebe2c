package bank

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"nomen/internal/registry/models"
)

// LedgerSuite exercises the Ledger contract against a backend supplied by
// the embedding suite.
type LedgerSuite struct {
	suite.Suite
	ctx    context.Context
	ledger Ledger
}

func (s *LedgerSuite) TestEmptyBalance() {
	funds, err := s.ledger.Balance(s.ctx)
	s.Require().NoError(err)
	s.Empty(funds)
}

func (s *LedgerSuite) TestDepositAccumulates() {
	s.Require().NoError(s.ledger.Deposit(s.ctx, models.Funds{models.NewCoin("uatom", 100)}))
	s.Require().NoError(s.ledger.Deposit(s.ctx, models.Funds{models.NewCoin("uatom", 50), models.NewCoin("uluna", 7)}))

	funds, err := s.ledger.Balance(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(funds, 2)
	s.Equal("uatom", funds[0].Denom)
	s.True(funds[0].Amount.Equal(decimal.NewFromInt(150)))
	s.Equal("uluna", funds[1].Denom)
	s.True(funds[1].Amount.Equal(decimal.NewFromInt(7)))
}

func (s *LedgerSuite) TestBalanceOmitsZeroDenoms() {
	s.Require().NoError(s.ledger.Deposit(s.ctx, models.Funds{models.NewCoin("uatom", 100)}))
	s.Require().NoError(s.ledger.Send(s.ctx, "0xrecipient", models.Funds{models.NewCoin("uatom", 100)}))

	funds, err := s.ledger.Balance(s.ctx)
	s.Require().NoError(err)
	s.Empty(funds)
}

func (s *LedgerSuite) TestSendDebits() {
	s.Require().NoError(s.ledger.Deposit(s.ctx, models.Funds{models.NewCoin("uatom", 100)}))

	s.Require().NoError(s.ledger.Send(s.ctx, "0xrecipient", models.Funds{models.NewCoin("uatom", 30)}))

	funds, err := s.ledger.Balance(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(funds, 1)
	s.True(funds[0].Amount.Equal(decimal.NewFromInt(70)))
}

func (s *LedgerSuite) TestSendEmptyFundsIsNoop() {
	s.Require().NoError(s.ledger.Send(s.ctx, "0xrecipient", nil))
	s.Require().NoError(s.ledger.Send(s.ctx, "0xrecipient", models.Funds{}))
	s.Require().NoError(s.ledger.Send(s.ctx, "0xrecipient", models.Funds{models.NewCoin("uatom", 0)}))
}

func (s *LedgerSuite) TestSendInsufficientBalance() {
	s.Require().NoError(s.ledger.Deposit(s.ctx, models.Funds{models.NewCoin("uatom", 10)}))

	err := s.ledger.Send(s.ctx, "0xrecipient", models.Funds{models.NewCoin("uatom", 11)})
	s.Require().ErrorIs(err, ErrInsufficientBalance)

	funds, err := s.ledger.Balance(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(funds, 1)
	s.True(funds[0].Amount.Equal(decimal.NewFromInt(10)), "failed send must not debit")
}

func (s *LedgerSuite) TestSendUnknownDenom() {
	err := s.ledger.Send(s.ctx, "0xrecipient", models.Funds{models.NewCoin("uatom", 1)})
	s.Require().ErrorIs(err, ErrInsufficientBalance)
}

func (s *LedgerSuite) TestSendRequiresRecipient() {
	s.Require().NoError(s.ledger.Deposit(s.ctx, models.Funds{models.NewCoin("uatom", 10)}))
	s.Error(s.ledger.Send(s.ctx, "", models.Funds{models.NewCoin("uatom", 1)}))
}

type MemoryLedgerSuite struct {
	LedgerSuite
}

func (s *MemoryLedgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.ledger = NewMemoryLedger()
}

func TestMemoryLedgerSuite(t *testing.T) {
	suite.Run(t, new(MemoryLedgerSuite))
}

type SQLiteLedgerSuite struct {
	LedgerSuite
	sqlite *SQLiteLedger
}

func (s *SQLiteLedgerSuite) SetupTest() {
	ledger, err := OpenSQLite(filepath.Join(s.T().TempDir(), "ledger.db"))
	s.Require().NoError(err)
	s.ctx = context.Background()
	s.ledger = ledger
	s.sqlite = ledger
}

func (s *SQLiteLedgerSuite) TearDownTest() {
	s.Require().NoError(s.sqlite.Close())
}

func TestSQLiteLedgerSuite(t *testing.T) {
	suite.Run(t, new(SQLiteLedgerSuite))
}

func TestSQLiteLedgerSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()

	ledger, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := ledger.Deposit(ctx, models.Funds{models.NewCoin("uatom", 42)}); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	funds, err := reopened.Balance(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(funds) != 1 || !funds[0].Amount.Equal(decimal.NewFromInt(42)) {
		t.Fatalf("expected 42uatom after reopen, got %s", funds)
	}
}

func TestSQLiteLedgerJournalsTransfers(t *testing.T) {
	ledger, err := OpenSQLite(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer ledger.Close()

	ctx := context.Background()
	if err := ledger.Deposit(ctx, models.Funds{models.NewCoin("uatom", 100)}); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Send(ctx, "0xrecipient", models.Funds{models.NewCoin("uatom", 60)}); err != nil {
		t.Fatal(err)
	}

	var count int
	var recipient, amount string
	err = ledger.db.QueryRow(
		`SELECT COUNT(*), MAX(recipient), MAX(amount) FROM outgoing_transfers`).
		Scan(&count, &recipient, &amount)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 || recipient != "0xrecipient" || amount != "60" {
		t.Fatalf("unexpected journal row: count=%d recipient=%s amount=%s", count, recipient, amount)
	}
}
