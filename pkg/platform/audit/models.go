// Package audit captures the registry's mutating operations as structured
// events. Events are transport-agnostic so sinks can fan out: an in-memory
// store for tests and single-node setups, Kafka for deployments with a
// downstream audit pipeline.
package audit

import (
	"context"
	"time"
)

// Event is emitted from domain logic after a successful mutating operation.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Name      string    `json:"name,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// Registry actions.
const (
	ActionInstantiated = "registry_instantiated"
	ActionMigrated     = "registry_migrated"
	ActionRegistered   = "name_registered"
	ActionTransferred  = "name_transferred"
	ActionEdited       = "name_edited"
	ActionConfigEdited = "config_updated"
	ActionRefunded     = "refund_issued"
)

// Sink is anywhere events can land.
type Sink interface {
	Append(ctx context.Context, event Event) error
}
