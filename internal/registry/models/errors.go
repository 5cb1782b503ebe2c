package models

import (
	"errors"
	"fmt"
)

// Every failure the registry can produce is terminal for the current
// request: the first error aborts the operation with zero partial writes and
// surfaces verbatim to the caller. Parameterless conditions are sentinel
// values; conditions that carry data are typed errors so callers can extract
// the offending field with errors.As.
var (
	// ErrUnauthorized is returned when the caller is not the record owner
	// (transfer, edit) or not the registry owner (editconf, refund).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotInitialized is returned when an operation runs before the
	// configuration singleton has been created.
	ErrNotInitialized = errors.New("registry is not initialized")

	// ErrAlreadyInitialized is returned when instantiate runs twice.
	ErrAlreadyInitialized = errors.New("registry is already initialized")
)

// NameTooShortError reports a candidate name below the minimum byte length.
type NameTooShortError struct {
	Length int
	Min    int
}

func (e *NameTooShortError) Error() string {
	return fmt.Sprintf("name too short: %d bytes, minimum %d", e.Length, e.Min)
}

// NameTooLongError reports a candidate name above the maximum byte length.
type NameTooLongError struct {
	Length int
	Max    int
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("name too long: %d bytes, maximum %d", e.Length, e.Max)
}

// InvalidCharacterError reports the first character of a candidate name
// outside the allowed alphabet. Char is the full rune, not a byte fragment.
type InvalidCharacterError struct {
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q in name", e.Char)
}

// BioTooLongError reports a bio exceeding the stored cap.
type BioTooLongError struct {
	Length int
	Max    int
}

func (e *BioTooLongError) Error() string {
	return fmt.Sprintf("bio too long: %d bytes, maximum %d", e.Length, e.Max)
}

// WebsiteTooLongError reports a website exceeding the stored cap.
type WebsiteTooLongError struct {
	Length int
	Max    int
}

func (e *WebsiteTooLongError) Error() string {
	return fmt.Sprintf("website too long: %d bytes, maximum %d", e.Length, e.Max)
}

// InsufficientFundsError reports attached funds that do not satisfy a
// configured price: no entry with the required denomination, or an amount
// below it.
type InsufficientFundsError struct {
	Required Coin
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: requires %s", e.Required)
}

// NameTakenError reports a registration attempt on an existing name.
type NameTakenError struct {
	Name string
}

func (e *NameTakenError) Error() string {
	return fmt.Sprintf("name %q is already taken", e.Name)
}

// NameNotExistsError reports a transfer or edit on an unregistered name.
type NameNotExistsError struct {
	Name string
}

func (e *NameNotExistsError) Error() string {
	return fmt.Sprintf("name %q does not exist", e.Name)
}

// InvalidIdentityError reports an owner identifier that failed validation.
type InvalidIdentityError struct {
	Address string
	Reason  string
}

func (e *InvalidIdentityError) Error() string {
	return fmt.Sprintf("invalid identity %q: %s", e.Address, e.Reason)
}

// IncompatibleMigrationError reports a migration attempted over state written
// by a different registry type.
type IncompatibleMigrationError struct {
	Stored string
	Want   string
}

func (e *IncompatibleMigrationError) Error() string {
	return fmt.Sprintf("cannot migrate from registry type %q (want %q)", e.Stored, e.Want)
}

// IsValidation reports whether err belongs to the caller-input validation
// class: malformed name, oversized bio or website, or a bad identity. These
// are always recoverable by resubmitting corrected input.
func IsValidation(err error) bool {
	var (
		tooShort *NameTooShortError
		tooLong  *NameTooLongError
		badChar  *InvalidCharacterError
		bio      *BioTooLongError
		website  *WebsiteTooLongError
		badID    *InvalidIdentityError
	)
	return errors.As(err, &tooShort) ||
		errors.As(err, &tooLong) ||
		errors.As(err, &badChar) ||
		errors.As(err, &bio) ||
		errors.As(err, &website) ||
		errors.As(err, &badID)
}
