// Package service implements the registry operations over pluggable
// persistence: the fee-gated mutations (register, transfer, edit, editconf,
// refund), the read-only queries (resolve, config), and the lifecycle entry
// points (instantiate, migrate).
//
// The service validates input, gates each mutation on the configured price,
// and delegates atomicity to the store's update primitives. It never moves
// funds itself: operations that pay out return the transfers they emit and
// the caller settles them against a ledger.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"nomen/internal/registry/metrics"
	"nomen/internal/registry/models"
	"nomen/pkg/platform/audit"
	"nomen/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Stored compatibility marker. Migrate refuses to run over state written by
// a different registry type.
const (
	markerName    = "nomen-registry"
	markerVersion = "0.1.0"
)

const tracerName = "nomen/internal/registry/service"

// Operation labels for metrics and spans.
const (
	opInstantiate = "instantiate"
	opMigrate     = "migrate"
	opRegister    = "register"
	opTransfer    = "transfer"
	opEdit        = "edit"
	opEditconf    = "editconf"
	opRefund      = "refund"
)

// ConfigStore persists the configuration singleton and the version marker.
type ConfigStore interface {
	InitConfig(ctx context.Context, cfg *models.Config) error
	LoadConfig(ctx context.Context) (*models.Config, error)
	UpdateConfig(ctx context.Context, validate func(*models.Config) error, mutate func(*models.Config)) (*models.Config, error)
	LoadVersion(ctx context.Context) (*models.VersionInfo, error)
	SaveVersion(ctx context.Context, v *models.VersionInfo) error
}

// RecordStore persists name records.
type RecordStore interface {
	CreateName(ctx context.Context, name string, rec *models.NameRecord) error
	FindName(ctx context.Context, name string) (*models.NameRecord, error)
	UpdateName(ctx context.Context, name string, validate func(*models.NameRecord) error, mutate func(*models.NameRecord)) (*models.NameRecord, error)
}

// IdentityValidator canonicalizes caller-supplied owner addresses.
type IdentityValidator interface {
	Validate(addr string) (models.Identity, error)
}

// BalanceQuerier reports the funds currently held by the registry.
type BalanceQuerier interface {
	Balance(ctx context.Context) (models.Funds, error)
}

// AuditPublisher records operation outcomes on the audit trail.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates registry operations.
type Service struct {
	configs        ConfigStore
	records        RecordStore
	identities     IdentityValidator
	balances       BalanceQuerier
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(configs ConfigStore, records RecordStore, identities IdentityValidator, balances BalanceQuerier, opts ...Option) *Service {
	s := &Service{
		configs:    configs,
		records:    records,
		identities: identities,
		balances:   balances,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// loadConfig fetches the configuration singleton, mapping its absence to the
// uninitialized-registry error every operation shares.
func (s *Service) loadConfig(ctx context.Context) (*models.Config, error) {
	cfg, err := s.configs.LoadConfig(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, models.ErrNotInitialized
		}
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// fail records err on the span and the failure counter, then returns it.
func (s *Service) fail(span trace.Span, op string, err error) error {
	span.RecordError(err)
	if s.metrics != nil {
		s.metrics.IncrementFailure(op, failureReason(err))
	}
	return err
}

func (s *Service) observe(op string) {
	if s.metrics != nil {
		s.metrics.IncrementOperation(op)
	}
}

func (s *Service) logAudit(ctx context.Context, action string, actor models.Identity, name, detail string) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, action,
			"actor", actor.String(),
			"name", name,
			"log_type", "audit",
		)
	}
	if s.auditPublisher == nil {
		return
	}
	_ = s.auditPublisher.Emit(ctx, audit.Event{
		Actor:  actor.String(),
		Action: action,
		Name:   name,
		Detail: detail,
	})
}

// failureReason buckets an operation error for the failure counter's reason
// label. Unrecognized errors are infrastructure failures.
func failureReason(err error) string {
	switch {
	case models.IsValidation(err):
		return "validation"
	case errors.Is(err, models.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, models.ErrNotInitialized):
		return "not_initialized"
	case errors.Is(err, models.ErrAlreadyInitialized):
		return "already_initialized"
	}
	var (
		insufficient *models.InsufficientFundsError
		taken        *models.NameTakenError
		missing      *models.NameNotExistsError
		incompatible *models.IncompatibleMigrationError
	)
	switch {
	case errors.As(err, &insufficient):
		return "insufficient_funds"
	case errors.As(err, &taken):
		return "name_taken"
	case errors.As(err, &missing):
		return "name_not_exists"
	case errors.As(err, &incompatible):
		return "incompatible_version"
	}
	return "internal"
}
