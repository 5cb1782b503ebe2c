package sentinel

import "errors"

// Sentinel errors for storage facts. Store implementations return these
// (optionally wrapped) so the registry service can translate them into its
// domain error taxonomy without knowing which backend produced them.
//
// These represent factual states about stored entities:
// - ErrNotFound: the entity does not exist in the store
// - ErrConflict: the entity already exists and the operation requires absence
//
// For caller-input validation failures, use the typed errors in
// internal/registry/models directly.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
