// Package store provides the persistence backends for the name registry:
// the configuration singleton, the version marker, and the name records.
//
// Error contract, shared by every backend:
//   - sentinel.ErrNotFound when the requested entity does not exist
//   - sentinel.ErrConflict when a create hits an existing entity
//   - errors returned by an update callback's validate step are passed
//     through unchanged and leave the stored state untouched
//   - anything else is a wrapped infrastructure failure
//
// UpdateName and UpdateConfig run their load-validate-mutate-persist cycle
// as one atomic unit per backend, so concurrent mutations of the same name
// serialize rather than interleave.
package store

import (
	"context"

	"nomen/internal/registry/models"
)

// Registry is the full persistence surface. Consumers should depend on the
// narrower interfaces they need; this one exists so backends can be swapped
// as a unit.
type Registry interface {
	InitConfig(ctx context.Context, cfg *models.Config) error
	LoadConfig(ctx context.Context) (*models.Config, error)
	UpdateConfig(ctx context.Context, validate func(*models.Config) error, mutate func(*models.Config)) (*models.Config, error)

	LoadVersion(ctx context.Context) (*models.VersionInfo, error)
	SaveVersion(ctx context.Context, v *models.VersionInfo) error

	CreateName(ctx context.Context, name string, rec *models.NameRecord) error
	FindName(ctx context.Context, name string) (*models.NameRecord, error)
	UpdateName(ctx context.Context, name string, validate func(*models.NameRecord) error, mutate func(*models.NameRecord)) (*models.NameRecord, error)
}
