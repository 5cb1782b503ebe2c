package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"nomen/internal/registry/models"
	"nomen/pkg/platform/sentinel"
)

// Resolve looks up the record for name. A nil record with a nil error means
// the name is unregistered; resolution is not an error and does not require
// the registry to be initialized.
func (s *Service) Resolve(ctx context.Context, name string) (*models.NameRecord, error) {
	ctx, span := s.tracer.Start(ctx, "registry.resolve",
		trace.WithAttributes(attribute.String("registry.name", name)))
	defer span.End()

	rec, err := s.records.FindName(ctx, name)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("find name record: %w", err)
	}
	return rec, nil
}

// GetConfig returns the registry configuration.
func (s *Service) GetConfig(ctx context.Context) (*models.Config, error) {
	ctx, span := s.tracer.Start(ctx, "registry.config")
	defer span.End()

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return cfg, nil
}
