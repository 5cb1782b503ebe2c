package service

import (
	"context"
	"errors"
	"fmt"

	"nomen/internal/registry/models"
	"nomen/pkg/platform/audit"
	"nomen/pkg/platform/sentinel"
)

// Instantiate seeds the configuration singleton and the version marker. The
// registry owner is the admin named in the message when that address
// validates, otherwise the deployer; an unusable admin address falls back
// silently rather than failing the deployment.
func (s *Service) Instantiate(ctx context.Context, deployer models.Identity, msg InstantiateMsg) (*models.Config, error) {
	ctx, span := s.tracer.Start(ctx, "registry.instantiate")
	defer span.End()

	owner := deployer
	if msg.Admin != "" {
		validated, err := s.identities.Validate(msg.Admin)
		if err == nil {
			owner = validated
		} else if s.logger != nil {
			s.logger.WarnContext(ctx, "admin address invalid, falling back to deployer",
				"admin", msg.Admin,
				"deployer", deployer.String(),
			)
		}
	}

	cfg := &models.Config{
		Owner:         owner,
		PurchasePrice: models.ClonePrice(msg.PurchasePrice),
		TransferPrice: models.ClonePrice(msg.TransferPrice),
		EditPrice:     models.ClonePrice(msg.EditPrice),
	}
	if err := s.configs.InitConfig(ctx, cfg); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, s.fail(span, opInstantiate, models.ErrAlreadyInitialized)
		}
		return nil, s.fail(span, opInstantiate, fmt.Errorf("init config: %w", err))
	}

	marker := &models.VersionInfo{Name: markerName, Version: markerVersion}
	if err := s.configs.SaveVersion(ctx, marker); err != nil {
		return nil, s.fail(span, opInstantiate, fmt.Errorf("save version marker: %w", err))
	}

	s.logAudit(ctx, audit.ActionInstantiated, owner, "", "version="+markerVersion)
	s.observe(opInstantiate)
	return cfg, nil
}

// Migrate checks the stored compatibility marker against this registry's
// type and advances the recorded version. There is no data migration beyond
// the marker itself.
func (s *Service) Migrate(ctx context.Context) (*models.VersionInfo, error) {
	ctx, span := s.tracer.Start(ctx, "registry.migrate")
	defer span.End()

	stored, err := s.configs.LoadVersion(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, s.fail(span, opMigrate, models.ErrNotInitialized)
		}
		return nil, s.fail(span, opMigrate, fmt.Errorf("load version marker: %w", err))
	}
	if stored.Name != markerName {
		return nil, s.fail(span, opMigrate, &models.IncompatibleMigrationError{
			Stored: stored.Name,
			Want:   markerName,
		})
	}

	next := &models.VersionInfo{Name: markerName, Version: markerVersion}
	if err := s.configs.SaveVersion(ctx, next); err != nil {
		return nil, s.fail(span, opMigrate, fmt.Errorf("save version marker: %w", err))
	}

	s.logAudit(ctx, audit.ActionMigrated, "", "", "from="+stored.Version+" to="+markerVersion)
	s.observe(opMigrate)
	return next, nil
}
