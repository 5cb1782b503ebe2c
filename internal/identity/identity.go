// Package identity validates the account identifiers that own names and
// receive transfers. The registry core treats identities as opaque strings;
// this package is the single place that knows what a well-formed one looks
// like.
package identity

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"nomen/internal/registry/models"
)

// Validator checks an externally supplied identifier and returns its
// canonical form. Implementations must be deterministic: the same input
// always canonicalizes to the same identity.
type Validator interface {
	Validate(addr string) (models.Identity, error)
}

// HexValidator accepts 20-byte hex account addresses and canonicalizes them
// to their EIP-55 checksum form, so that two spellings of the same address
// always map to the same registry owner.
type HexValidator struct{}

// NewHexValidator returns the production address validator.
func NewHexValidator() HexValidator {
	return HexValidator{}
}

// Validate returns the checksummed form of addr, or an InvalidIdentityError
// describing why it was rejected.
func (HexValidator) Validate(addr string) (models.Identity, error) {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return "", &models.InvalidIdentityError{Address: addr, Reason: "empty address"}
	}
	if !common.IsHexAddress(trimmed) {
		return "", &models.InvalidIdentityError{Address: addr, Reason: "not a 20-byte hex address"}
	}
	return models.Identity(common.HexToAddress(trimmed).Hex()), nil
}
