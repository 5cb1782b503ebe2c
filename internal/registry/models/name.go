package models

// Name rules. Lengths are byte counts: the registry keys records by the raw
// bytes of the name, so the byte length is the stored key length.
const (
	MinNameLength = 3
	MaxNameLength = 30
)

// ValidateName checks a candidate name against the registry's length and
// alphabet rules: 3-30 bytes of ASCII lowercase letters, digits, and
// hyphens. The scan walks runes, so a multi-byte offender is reported as the
// whole character rather than its first byte. Pure and total over any
// string, including empty and non-UTF-8-clean input.
func ValidateName(name string) error {
	if len(name) < MinNameLength {
		return &NameTooShortError{Length: len(name), Min: MinNameLength}
	}
	if len(name) > MaxNameLength {
		return &NameTooLongError{Length: len(name), Max: MaxNameLength}
	}
	for _, r := range name {
		if !validNameRune(r) {
			return &InvalidCharacterError{Char: r}
		}
	}
	return nil
}

func validNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
