package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"nomen/internal/registry/models"
	"nomen/pkg/platform/audit"
	"nomen/pkg/platform/sentinel"
)

// register claims an unregistered name for the caller. Checks run in a fixed
// order so the first failure reported is deterministic: name syntax, then
// the purchase fee, then the record fields.
func (s *Service) register(ctx context.Context, caller models.Identity, funds models.Funds, msg RegisterMsg) error {
	ctx, span := s.tracer.Start(ctx, "registry.register",
		trace.WithAttributes(attribute.String("registry.name", msg.Name)))
	defer span.End()

	if err := models.ValidateName(msg.Name); err != nil {
		return s.fail(span, opRegister, err)
	}

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return s.fail(span, opRegister, err)
	}
	if err := models.AssertSufficientFunds(funds, cfg.PurchasePrice); err != nil {
		return s.fail(span, opRegister, err)
	}

	if err := models.ValidateBio(msg.Bio); err != nil {
		return s.fail(span, opRegister, err)
	}
	if err := models.ValidateWebsite(msg.Website); err != nil {
		return s.fail(span, opRegister, err)
	}

	rec := &models.NameRecord{Owner: caller, Bio: msg.Bio, Website: msg.Website}
	if err := s.records.CreateName(ctx, msg.Name, rec); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return s.fail(span, opRegister, &models.NameTakenError{Name: msg.Name})
		}
		return s.fail(span, opRegister, fmt.Errorf("create name record: %w", err))
	}

	s.logAudit(ctx, audit.ActionRegistered, caller, msg.Name, "")
	s.observe(opRegister)
	if s.metrics != nil {
		s.metrics.IncrementNamesRegistered()
	}
	return nil
}

// transfer hands a name the caller owns to a new owner. The name itself is
// not re-validated: an unregistrable name can never have a record, so the
// lookup fails the same way a missing one does.
func (s *Service) transfer(ctx context.Context, caller models.Identity, funds models.Funds, msg TransferMsg) error {
	ctx, span := s.tracer.Start(ctx, "registry.transfer",
		trace.WithAttributes(attribute.String("registry.name", msg.Name)))
	defer span.End()

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return s.fail(span, opTransfer, err)
	}
	if err := models.AssertSufficientFunds(funds, cfg.TransferPrice); err != nil {
		return s.fail(span, opTransfer, err)
	}

	newOwner, err := s.identities.Validate(msg.To)
	if err != nil {
		return s.fail(span, opTransfer, err)
	}

	_, err = s.records.UpdateName(ctx, msg.Name,
		func(rec *models.NameRecord) error {
			if rec.Owner != caller {
				return models.ErrUnauthorized
			}
			return nil
		},
		func(rec *models.NameRecord) {
			rec.Owner = newOwner
		},
	)
	switch {
	case err == nil:
	case errors.Is(err, sentinel.ErrNotFound):
		return s.fail(span, opTransfer, &models.NameNotExistsError{Name: msg.Name})
	case errors.Is(err, models.ErrUnauthorized):
		return s.fail(span, opTransfer, err)
	default:
		return s.fail(span, opTransfer, fmt.Errorf("update name record: %w", err))
	}

	s.logAudit(ctx, audit.ActionTransferred, caller, msg.Name, "to="+newOwner.String())
	s.observe(opTransfer)
	return nil
}

// edit replaces the bio and website of a name the caller owns. Ownership and
// field caps are checked inside the record update so a concurrent transfer
// cannot slip between the check and the write.
func (s *Service) edit(ctx context.Context, caller models.Identity, funds models.Funds, msg EditMsg) error {
	ctx, span := s.tracer.Start(ctx, "registry.edit",
		trace.WithAttributes(attribute.String("registry.name", msg.Name)))
	defer span.End()

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return s.fail(span, opEdit, err)
	}
	if err := models.AssertSufficientFunds(funds, cfg.EditPrice); err != nil {
		return s.fail(span, opEdit, err)
	}

	_, err = s.records.UpdateName(ctx, msg.Name,
		func(rec *models.NameRecord) error {
			if rec.Owner != caller {
				return models.ErrUnauthorized
			}
			if err := models.ValidateBio(msg.Bio); err != nil {
				return err
			}
			return models.ValidateWebsite(msg.Website)
		},
		func(rec *models.NameRecord) {
			rec.Bio = msg.Bio
			rec.Website = msg.Website
		},
	)
	switch {
	case err == nil:
	case errors.Is(err, sentinel.ErrNotFound):
		return s.fail(span, opEdit, &models.NameNotExistsError{Name: msg.Name})
	case errors.Is(err, models.ErrUnauthorized), models.IsValidation(err):
		return s.fail(span, opEdit, err)
	default:
		return s.fail(span, opEdit, fmt.Errorf("update name record: %w", err))
	}

	s.logAudit(ctx, audit.ActionEdited, caller, msg.Name, "")
	s.observe(opEdit)
	return nil
}

// editConfig replaces the full fee schedule. The fee gate reads the transfer
// price that is current at update time and runs before the ownership check,
// so an underpaying owner is refused for funds, not authorization. Both
// checks sit inside the config update to keep them atomic against concurrent
// reconfiguration.
func (s *Service) editConfig(ctx context.Context, caller models.Identity, funds models.Funds, msg EditconfMsg) error {
	ctx, span := s.tracer.Start(ctx, "registry.editconf")
	defer span.End()

	_, err := s.configs.UpdateConfig(ctx,
		func(cfg *models.Config) error {
			if err := models.AssertSufficientFunds(funds, cfg.TransferPrice); err != nil {
				return err
			}
			if cfg.Owner != caller {
				return models.ErrUnauthorized
			}
			return nil
		},
		func(cfg *models.Config) {
			cfg.PurchasePrice = models.ClonePrice(msg.PurchasePrice)
			cfg.TransferPrice = models.ClonePrice(msg.TransferPrice)
			cfg.EditPrice = models.ClonePrice(msg.EditPrice)
		},
	)

	var insufficient *models.InsufficientFundsError
	switch {
	case err == nil:
	case errors.Is(err, sentinel.ErrNotFound):
		return s.fail(span, opEditconf, models.ErrNotInitialized)
	case errors.Is(err, models.ErrUnauthorized), errors.As(err, &insufficient):
		return s.fail(span, opEditconf, err)
	default:
		return s.fail(span, opEditconf, fmt.Errorf("update config: %w", err))
	}

	s.logAudit(ctx, audit.ActionConfigEdited, caller, "", "")
	s.observe(opEditconf)
	return nil
}

// refund emits a transfer of the registry's entire held balance to its
// owner. The transfer is emitted even when the balance is empty; settling a
// zero transfer is the ledger's no-op to make.
func (s *Service) refund(ctx context.Context, caller models.Identity) ([]models.Transfer, error) {
	ctx, span := s.tracer.Start(ctx, "registry.refund")
	defer span.End()

	balance, err := s.balances.Balance(ctx)
	if err != nil {
		return nil, s.fail(span, opRefund, fmt.Errorf("query balance: %w", err))
	}

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, s.fail(span, opRefund, err)
	}
	if cfg.Owner != caller {
		return nil, s.fail(span, opRefund, models.ErrUnauthorized)
	}

	transfers := []models.Transfer{{To: cfg.Owner, Amount: balance}}

	s.logAudit(ctx, audit.ActionRefunded, caller, "", "amount="+balance.String())
	s.observe(opRefund)
	return transfers, nil
}
