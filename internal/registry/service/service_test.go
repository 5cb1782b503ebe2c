package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"nomen/internal/bank"
	"nomen/internal/identity"
	"nomen/internal/registry/models"
	"nomen/internal/registry/store"
	"nomen/pkg/platform/audit"
	"nomen/pkg/platform/audit/publisher"
	auditmem "nomen/pkg/platform/audit/store/memory"
)

// Hex-digit addresses keep their canonical form under checksum casing, so
// they can be compared as plain strings throughout.
const (
	deployer = "0x1111111111111111111111111111111111111111"
	alice    = "0x2222222222222222222222222222222222222222"
	bob      = "0x3333333333333333333333333333333333333333"
)

type ServiceSuite struct {
	suite.Suite
	store   *store.Memory
	ledger  *bank.MemoryLedger
	audits  *auditmem.InMemoryStore
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = store.NewMemory()
	s.ledger = bank.NewMemoryLedger()
	s.audits = auditmem.NewInMemoryStore()

	s.service = New(s.store, s.store, identity.NewHexValidator(), s.ledger,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(publisher.NewPublisher(s.audits)),
	)
}

func (s *ServiceSuite) instantiate(purchase, transfer, edit *models.Coin) {
	_, err := s.service.Instantiate(context.Background(), deployer, InstantiateMsg{
		PurchasePrice: purchase,
		TransferPrice: transfer,
		EditPrice:     edit,
	})
	s.Require().NoError(err)
}

func coin(denom string, amount int64) *models.Coin {
	c := models.NewCoin(denom, amount)
	return &c
}

func funds(denom string, amount int64) models.Funds {
	return models.Funds{models.NewCoin(denom, amount)}
}

// =============================================================================
// Instantiate
// =============================================================================

func (s *ServiceSuite) TestInstantiate() {
	ctx := context.Background()

	s.Run("deployer becomes owner when no admin named", func() {
		cfg, err := s.service.Instantiate(ctx, deployer, InstantiateMsg{})
		s.NoError(err)
		s.Equal(models.Identity(deployer), cfg.Owner)
		s.Nil(cfg.PurchasePrice)
		s.Nil(cfg.TransferPrice)
		s.Nil(cfg.EditPrice)
	})

	s.Run("second instantiate is rejected", func() {
		_, err := s.service.Instantiate(ctx, alice, InstantiateMsg{})
		s.ErrorIs(err, models.ErrAlreadyInitialized)

		cfg, err := s.service.GetConfig(ctx)
		s.NoError(err)
		s.Equal(models.Identity(deployer), cfg.Owner)
	})
}

func (s *ServiceSuite) TestInstantiateAdminOverride() {
	ctx := context.Background()

	s.Run("valid admin becomes owner", func() {
		cfg, err := s.service.Instantiate(ctx, deployer, InstantiateMsg{Admin: alice})
		s.NoError(err)
		s.Equal(models.Identity(alice), cfg.Owner)
	})
}

func (s *ServiceSuite) TestInstantiateInvalidAdminFallsBack() {
	cfg, err := s.service.Instantiate(context.Background(), deployer, InstantiateMsg{
		Admin: "not-an-address",
	})
	s.NoError(err)
	s.Equal(models.Identity(deployer), cfg.Owner)
}

func (s *ServiceSuite) TestInstantiateStoresPrices() {
	cfg, err := s.service.Instantiate(context.Background(), deployer, InstantiateMsg{
		PurchasePrice: coin("uatom", 10),
		TransferPrice: coin("uatom", 5),
	})
	s.Require().NoError(err)

	s.Equal(*coin("uatom", 10), *cfg.PurchasePrice)
	s.Equal(*coin("uatom", 5), *cfg.TransferPrice)
	s.Nil(cfg.EditPrice)
}

func (s *ServiceSuite) TestInstantiateWritesVersionMarker() {
	s.instantiate(nil, nil, nil)

	marker, err := s.store.LoadVersion(context.Background())
	s.Require().NoError(err)
	s.Equal(markerName, marker.Name)
	s.Equal(markerVersion, marker.Version)
}

// =============================================================================
// Register
// =============================================================================

func (s *ServiceSuite) TestRegister() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	s.Run("claims a free name", func() {
		_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{
			Name:    "alice-1",
			Bio:     "hello",
			Website: "https://alice.example",
		})
		s.NoError(err)

		rec, err := s.service.Resolve(ctx, "alice-1")
		s.NoError(err)
		s.Require().NotNil(rec)
		s.Equal(models.Identity(alice), rec.Owner)
		s.Equal("hello", rec.Bio)
		s.Equal("https://alice.example", rec.Website)
	})

	s.Run("taken name is rejected and the record kept", func() {
		_, err := s.service.Execute(ctx, bob, nil, RegisterMsg{Name: "alice-1"})

		var taken *models.NameTakenError
		s.ErrorAs(err, &taken)
		s.Equal("alice-1", taken.Name)

		rec, err := s.service.Resolve(ctx, "alice-1")
		s.NoError(err)
		s.Require().NotNil(rec)
		s.Equal(models.Identity(alice), rec.Owner)
	})

	s.Run("ignores attached funds when no price configured", func() {
		_, err := s.service.Execute(ctx, alice, funds("uatom", 3), RegisterMsg{Name: "alice-2"})
		s.NoError(err)
	})
}

func (s *ServiceSuite) TestRegisterRequiresInitialization() {
	_, err := s.service.Execute(context.Background(), alice, nil, RegisterMsg{Name: "alice-1"})
	s.ErrorIs(err, models.ErrNotInitialized)
}

func (s *ServiceSuite) TestRegisterValidatesName() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	s.Run("uppercase is rejected", func() {
		_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{Name: "Alice"})

		var invalid *models.InvalidCharacterError
		s.ErrorAs(err, &invalid)
		s.Equal('A', invalid.Char)
	})

	s.Run("short name is rejected", func() {
		_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{Name: "ab"})

		var short *models.NameTooShortError
		s.ErrorAs(err, &short)
	})

	s.Run("nothing is stored for a rejected name", func() {
		rec, err := s.service.Resolve(ctx, "Alice")
		s.NoError(err)
		s.Nil(rec)
	})
}

func (s *ServiceSuite) TestRegisterFeeGate() {
	ctx := context.Background()
	s.instantiate(coin("uatom", 10), nil, nil)

	s.Run("no funds attached", func() {
		_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{Name: "alice-1"})

		var insufficient *models.InsufficientFundsError
		s.ErrorAs(err, &insufficient)
		s.Equal(*coin("uatom", 10), insufficient.Required)
	})

	s.Run("short payment", func() {
		_, err := s.service.Execute(ctx, alice, funds("uatom", 9), RegisterMsg{Name: "alice-1"})

		var insufficient *models.InsufficientFundsError
		s.ErrorAs(err, &insufficient)
	})

	s.Run("wrong denomination", func() {
		_, err := s.service.Execute(ctx, alice, funds("uiris", 10), RegisterMsg{Name: "alice-1"})

		var insufficient *models.InsufficientFundsError
		s.ErrorAs(err, &insufficient)
	})

	s.Run("exact payment", func() {
		_, err := s.service.Execute(ctx, alice, funds("uatom", 10), RegisterMsg{Name: "alice-1"})
		s.NoError(err)
	})

	s.Run("overpayment", func() {
		_, err := s.service.Execute(ctx, alice, funds("uatom", 25), RegisterMsg{Name: "alice-2"})
		s.NoError(err)
	})
}

func (s *ServiceSuite) TestRegisterFieldCaps() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	longBio := make([]byte, models.MaxBioLength+1)
	for i := range longBio {
		longBio[i] = 'x'
	}
	longSite := make([]byte, models.MaxWebsiteLength+1)
	for i := range longSite {
		longSite[i] = 'x'
	}

	s.Run("oversized bio", func() {
		_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{Name: "alice-1", Bio: string(longBio)})

		var tooLong *models.BioTooLongError
		s.ErrorAs(err, &tooLong)
		s.Equal(models.MaxBioLength+1, tooLong.Length)
	})

	s.Run("oversized website", func() {
		_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{Name: "alice-1", Website: string(longSite)})

		var tooLong *models.WebsiteTooLongError
		s.ErrorAs(err, &tooLong)
	})

	s.Run("caps are inclusive", func() {
		_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{
			Name:    "alice-1",
			Bio:     string(longBio[:models.MaxBioLength]),
			Website: string(longSite[:models.MaxWebsiteLength]),
		})
		s.NoError(err)
	})
}

// =============================================================================
// Transfer
// =============================================================================

func (s *ServiceSuite) TestTransfer() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{
		Name:    "alice-1",
		Bio:     "hello",
		Website: "https://alice.example",
	})
	s.Require().NoError(err)

	s.Run("owner hands the name over", func() {
		_, err := s.service.Execute(ctx, alice, nil, TransferMsg{Name: "alice-1", To: bob})
		s.NoError(err)

		rec, err := s.service.Resolve(ctx, "alice-1")
		s.NoError(err)
		s.Require().NotNil(rec)
		s.Equal(models.Identity(bob), rec.Owner)
	})

	s.Run("bio and website ride along", func() {
		rec, err := s.service.Resolve(ctx, "alice-1")
		s.NoError(err)
		s.Require().NotNil(rec)
		s.Equal("hello", rec.Bio)
		s.Equal("https://alice.example", rec.Website)
	})

	s.Run("previous owner is locked out", func() {
		_, err := s.service.Execute(ctx, alice, nil, TransferMsg{Name: "alice-1", To: alice})
		s.ErrorIs(err, models.ErrUnauthorized)
	})
}

func (s *ServiceSuite) TestTransferUnknownName() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	_, err := s.service.Execute(ctx, alice, nil, TransferMsg{Name: "no-such-name", To: bob})

	var missing *models.NameNotExistsError
	s.ErrorAs(err, &missing)
	s.Equal("no-such-name", missing.Name)
}

func (s *ServiceSuite) TestTransferDoesNotRevalidateName() {
	// A name that could never be registered has no record, so the failure is
	// about existence, not syntax.
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	_, err := s.service.Execute(ctx, alice, nil, TransferMsg{Name: "NOT VALID", To: bob})

	var missing *models.NameNotExistsError
	s.ErrorAs(err, &missing)
}

func (s *ServiceSuite) TestTransferInvalidRecipient() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{Name: "alice-1"})
	s.Require().NoError(err)

	_, err = s.service.Execute(ctx, alice, nil, TransferMsg{Name: "alice-1", To: "garbage"})

	var invalid *models.InvalidIdentityError
	s.ErrorAs(err, &invalid)
	s.Equal("garbage", invalid.Address)

	rec, err := s.service.Resolve(ctx, "alice-1")
	s.NoError(err)
	s.Require().NotNil(rec)
	s.Equal(models.Identity(alice), rec.Owner)
}

func (s *ServiceSuite) TestTransferCheckOrder() {
	ctx := context.Background()
	s.instantiate(nil, coin("uatom", 5), nil)

	_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{Name: "alice-1"})
	s.Require().NoError(err)

	s.Run("fee gate runs before ownership", func() {
		_, err := s.service.Execute(ctx, bob, nil, TransferMsg{Name: "alice-1", To: bob})

		var insufficient *models.InsufficientFundsError
		s.ErrorAs(err, &insufficient)
	})

	s.Run("recipient validation runs before the lookup", func() {
		_, err := s.service.Execute(ctx, alice, funds("uatom", 5), TransferMsg{Name: "no-such-name", To: "garbage"})

		var invalid *models.InvalidIdentityError
		s.ErrorAs(err, &invalid)
	})
}

// =============================================================================
// Edit
// =============================================================================

func (s *ServiceSuite) TestEdit() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{
		Name:    "alice-1",
		Bio:     "old bio",
		Website: "https://old.example",
	})
	s.Require().NoError(err)

	s.Run("replaces both fields", func() {
		_, err := s.service.Execute(ctx, alice, nil, EditMsg{
			Name:    "alice-1",
			Bio:     "new bio",
			Website: "https://new.example",
		})
		s.NoError(err)

		rec, err := s.service.Resolve(ctx, "alice-1")
		s.NoError(err)
		s.Require().NotNil(rec)
		s.Equal("new bio", rec.Bio)
		s.Equal("https://new.example", rec.Website)
	})

	s.Run("omitted fields are cleared, not kept", func() {
		_, err := s.service.Execute(ctx, alice, nil, EditMsg{Name: "alice-1"})
		s.NoError(err)

		rec, err := s.service.Resolve(ctx, "alice-1")
		s.NoError(err)
		s.Require().NotNil(rec)
		s.Empty(rec.Bio)
		s.Empty(rec.Website)
	})

	s.Run("only the owner may edit", func() {
		_, err := s.service.Execute(ctx, bob, nil, EditMsg{Name: "alice-1", Bio: "hijack"})
		s.ErrorIs(err, models.ErrUnauthorized)
	})

	s.Run("unknown name", func() {
		_, err := s.service.Execute(ctx, alice, nil, EditMsg{Name: "no-such-name"})

		var missing *models.NameNotExistsError
		s.ErrorAs(err, &missing)
	})
}

func (s *ServiceSuite) TestEditCapFailureLeavesRecordIntact() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{Name: "alice-1", Bio: "keep me"})
	s.Require().NoError(err)

	longBio := make([]byte, models.MaxBioLength+1)
	for i := range longBio {
		longBio[i] = 'x'
	}

	_, err = s.service.Execute(ctx, alice, nil, EditMsg{Name: "alice-1", Bio: string(longBio)})

	var tooLong *models.BioTooLongError
	s.ErrorAs(err, &tooLong)

	rec, err := s.service.Resolve(ctx, "alice-1")
	s.NoError(err)
	s.Require().NotNil(rec)
	s.Equal("keep me", rec.Bio)
}

func (s *ServiceSuite) TestEditOwnershipCheckedBeforeCaps() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{Name: "alice-1"})
	s.Require().NoError(err)

	longBio := make([]byte, models.MaxBioLength+1)
	for i := range longBio {
		longBio[i] = 'x'
	}

	_, err = s.service.Execute(ctx, bob, nil, EditMsg{Name: "alice-1", Bio: string(longBio)})
	s.ErrorIs(err, models.ErrUnauthorized)
}

func (s *ServiceSuite) TestEditFeeGate() {
	ctx := context.Background()
	s.instantiate(nil, nil, coin("uatom", 2))

	_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{Name: "alice-1"})
	s.Require().NoError(err)

	_, err = s.service.Execute(ctx, alice, nil, EditMsg{Name: "alice-1", Bio: "paid"})

	var insufficient *models.InsufficientFundsError
	s.ErrorAs(err, &insufficient)
	s.Equal(*coin("uatom", 2), insufficient.Required)

	_, err = s.service.Execute(ctx, alice, funds("uatom", 2), EditMsg{Name: "alice-1", Bio: "paid"})
	s.NoError(err)
}

// =============================================================================
// Editconf
// =============================================================================

func (s *ServiceSuite) TestEditconf() {
	ctx := context.Background()
	s.instantiate(coin("uatom", 10), nil, nil)

	s.Run("owner replaces the fee schedule", func() {
		_, err := s.service.Execute(ctx, deployer, nil, EditconfMsg{
			PurchasePrice: coin("uatom", 20),
			TransferPrice: coin("uatom", 5),
			EditPrice:     coin("uatom", 1),
		})
		s.NoError(err)

		cfg, err := s.service.GetConfig(ctx)
		s.NoError(err)
		s.Equal(*coin("uatom", 20), *cfg.PurchasePrice)
		s.Equal(*coin("uatom", 5), *cfg.TransferPrice)
		s.Equal(*coin("uatom", 1), *cfg.EditPrice)
	})

	s.Run("prices not restated are cleared", func() {
		_, err := s.service.Execute(ctx, deployer, funds("uatom", 5), EditconfMsg{
			PurchasePrice: coin("uatom", 30),
		})
		s.NoError(err)

		cfg, err := s.service.GetConfig(ctx)
		s.NoError(err)
		s.Equal(*coin("uatom", 30), *cfg.PurchasePrice)
		s.Nil(cfg.TransferPrice)
		s.Nil(cfg.EditPrice)
	})
}

func (s *ServiceSuite) TestEditconfChargesCurrentTransferPrice() {
	ctx := context.Background()
	s.instantiate(nil, coin("uatom", 5), nil)

	s.Run("underpayment is refused", func() {
		_, err := s.service.Execute(ctx, deployer, funds("uatom", 4), EditconfMsg{})

		var insufficient *models.InsufficientFundsError
		s.ErrorAs(err, &insufficient)
		s.Equal(*coin("uatom", 5), insufficient.Required)
	})

	s.Run("the fee is the price before the update, not after", func() {
		_, err := s.service.Execute(ctx, deployer, funds("uatom", 5), EditconfMsg{
			TransferPrice: coin("uatom", 50),
		})
		s.NoError(err)

		_, err = s.service.Execute(ctx, deployer, funds("uatom", 5), EditconfMsg{})

		var insufficient *models.InsufficientFundsError
		s.ErrorAs(err, &insufficient)
		s.Equal(*coin("uatom", 50), insufficient.Required)
	})
}

func (s *ServiceSuite) TestEditconfFeePrecedesAuthorization() {
	ctx := context.Background()
	s.instantiate(nil, coin("uatom", 5), nil)

	// An underpaying non-owner hears about the fee, not the ownership.
	_, err := s.service.Execute(ctx, alice, nil, EditconfMsg{})

	var insufficient *models.InsufficientFundsError
	s.ErrorAs(err, &insufficient)

	_, err = s.service.Execute(ctx, alice, funds("uatom", 5), EditconfMsg{})
	s.ErrorIs(err, models.ErrUnauthorized)
}

func (s *ServiceSuite) TestEditconfRequiresInitialization() {
	_, err := s.service.Execute(context.Background(), deployer, nil, EditconfMsg{})
	s.ErrorIs(err, models.ErrNotInitialized)
}

// =============================================================================
// Refund
// =============================================================================

func (s *ServiceSuite) TestRefund() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	s.Require().NoError(s.ledger.Deposit(ctx, funds("uatom", 42)))

	s.Run("owner receives the full balance", func() {
		transfers, err := s.service.Execute(ctx, deployer, nil, RefundMsg{})
		s.NoError(err)
		s.Require().Len(transfers, 1)
		s.Equal(models.Identity(deployer), transfers[0].To)
		s.Equal(funds("uatom", 42), transfers[0].Amount)
	})

	s.Run("non-owner is refused", func() {
		_, err := s.service.Execute(ctx, alice, nil, RefundMsg{})
		s.ErrorIs(err, models.ErrUnauthorized)
	})
}

func (s *ServiceSuite) TestRefundEmptyBalanceStillEmits() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	transfers, err := s.service.Execute(ctx, deployer, nil, RefundMsg{})
	s.NoError(err)
	s.Require().Len(transfers, 1)
	s.Equal(models.Identity(deployer), transfers[0].To)
	s.Empty(transfers[0].Amount)
}

func (s *ServiceSuite) TestRefundRequiresInitialization() {
	_, err := s.service.Execute(context.Background(), deployer, nil, RefundMsg{})
	s.ErrorIs(err, models.ErrNotInitialized)
}

// =============================================================================
// Queries
// =============================================================================

func (s *ServiceSuite) TestResolveUnknownName() {
	rec, err := s.service.Resolve(context.Background(), "no-such-name")
	s.NoError(err)
	s.Nil(rec)
}

func (s *ServiceSuite) TestGetConfigRequiresInitialization() {
	_, err := s.service.GetConfig(context.Background())
	s.ErrorIs(err, models.ErrNotInitialized)
}

// =============================================================================
// Migrate
// =============================================================================

func (s *ServiceSuite) TestMigrate() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	info, err := s.service.Migrate(ctx)
	s.NoError(err)
	s.Equal(markerName, info.Name)
	s.Equal(markerVersion, info.Version)
}

func (s *ServiceSuite) TestMigrateRequiresInitialization() {
	_, err := s.service.Migrate(context.Background())
	s.ErrorIs(err, models.ErrNotInitialized)
}

func (s *ServiceSuite) TestMigrateRejectsForeignMarker() {
	ctx := context.Background()
	s.Require().NoError(s.store.SaveVersion(ctx, &models.VersionInfo{
		Name:    "other-registry",
		Version: "9.9.9",
	}))

	_, err := s.service.Migrate(ctx)

	var incompatible *models.IncompatibleMigrationError
	s.ErrorAs(err, &incompatible)
	s.Equal("other-registry", incompatible.Stored)
	s.Equal(markerName, incompatible.Want)
}

// =============================================================================
// Dispatch
// =============================================================================

type bogusMsg struct{}

func (bogusMsg) isExecuteMsg() {}

func (s *ServiceSuite) TestExecuteRejectsUnknownMessage() {
	s.instantiate(nil, nil, nil)

	_, err := s.service.Execute(context.Background(), alice, nil, bogusMsg{})
	s.ErrorContains(err, "unsupported message type")
}

// =============================================================================
// Audit trail
// =============================================================================

func (s *ServiceSuite) TestAuditTrail() {
	ctx := context.Background()
	s.instantiate(nil, nil, nil)

	_, err := s.service.Execute(ctx, alice, nil, RegisterMsg{Name: "alice-1"})
	s.Require().NoError(err)
	_, err = s.service.Execute(ctx, alice, nil, TransferMsg{Name: "alice-1", To: bob})
	s.Require().NoError(err)

	events, err := s.audits.ListByActor(ctx, alice)
	s.Require().NoError(err)
	s.Require().Len(events, 2)

	s.Equal(audit.ActionRegistered, events[0].Action)
	s.Equal("alice-1", events[0].Name)
	s.Equal(audit.ActionTransferred, events[1].Action)
	s.Equal("to="+bob, events[1].Detail)

	s.Run("failures leave no trace", func() {
		_, err := s.service.Execute(ctx, alice, nil, TransferMsg{Name: "alice-1", To: alice})
		s.Require().ErrorIs(err, models.ErrUnauthorized)

		events, err := s.audits.ListByActor(ctx, alice)
		s.Require().NoError(err)
		s.Len(events, 2)
	})
}

// =============================================================================
// End-to-end ownership walkthrough
// =============================================================================

func (s *ServiceSuite) TestOwnershipWalkthrough() {
	ctx := context.Background()
	s.instantiate(coin("uatom", 10), nil, nil)

	// The deployer buys a name.
	_, err := s.service.Execute(ctx, deployer, funds("uatom", 10), RegisterMsg{Name: "alice-1"})
	s.Require().NoError(err)

	// A stranger cannot buy it again, even at full price.
	_, err = s.service.Execute(ctx, alice, funds("uatom", 10), RegisterMsg{Name: "alice-1"})
	var taken *models.NameTakenError
	s.ErrorAs(err, &taken)

	// Nor underpay for a different one.
	_, err = s.service.Execute(ctx, alice, funds("uatom", 9), RegisterMsg{Name: "alice-2"})
	var insufficient *models.InsufficientFundsError
	s.ErrorAs(err, &insufficient)

	// Nor move a name they do not own; transfers are free here.
	_, err = s.service.Execute(ctx, alice, nil, TransferMsg{Name: "alice-1", To: alice})
	s.ErrorIs(err, models.ErrUnauthorized)

	// The owner can.
	_, err = s.service.Execute(ctx, deployer, nil, TransferMsg{Name: "alice-1", To: bob})
	s.Require().NoError(err)

	rec, err := s.service.Resolve(ctx, "alice-1")
	s.NoError(err)
	s.Require().NotNil(rec)
	s.Equal(models.Identity(bob), rec.Owner)
}
