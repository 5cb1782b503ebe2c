package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"minimum length", "abc", nil},
		{"maximum length", strings.Repeat("a", 30), nil},
		{"digits and hyphens", "alice-1", nil},
		{"all digits", "007", nil},
		{"leading hyphen allowed", "-ab", nil},

		{"empty", "", &NameTooShortError{Length: 0, Min: 3}},
		{"two bytes", "ab", &NameTooShortError{Length: 2, Min: 3}},
		{"thirty-one bytes", strings.Repeat("a", 31), &NameTooLongError{Length: 31, Max: 30}},

		{"uppercase", "Alice", &InvalidCharacterError{Char: 'A'}},
		{"space", "ali ce", &InvalidCharacterError{Char: ' '}},
		{"underscore", "ali_ce", &InvalidCharacterError{Char: '_'}},
		{"dot", "ali.ce", &InvalidCharacterError{Char: '.'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

// Multi-byte characters count as bytes toward the length checks, but the
// invalid-character scan must report the whole rune.
func TestValidateNameMultiByte(t *testing.T) {
	t.Run("reports whole rune not byte fragment", func(t *testing.T) {
		err := ValidateName("héllo")
		var badChar *InvalidCharacterError
		require.ErrorAs(t, err, &badChar)
		assert.Equal(t, 'é', badChar.Char)
	})

	t.Run("byte length drives the short check", func(t *testing.T) {
		// 'é' is two bytes: "éa" is three bytes, long enough to reach the
		// character scan.
		err := ValidateName("éa")
		var badChar *InvalidCharacterError
		require.ErrorAs(t, err, &badChar)
		assert.Equal(t, 'é', badChar.Char)
	})

	t.Run("byte length drives the long check", func(t *testing.T) {
		// Sixteen two-byte runes exceed 30 bytes at 16 characters.
		err := ValidateName(strings.Repeat("é", 16))
		var tooLong *NameTooLongError
		require.ErrorAs(t, err, &tooLong)
		assert.Equal(t, 32, tooLong.Length)
	})

	t.Run("first offender wins", func(t *testing.T) {
		err := ValidateName("ab!é")
		var badChar *InvalidCharacterError
		require.ErrorAs(t, err, &badChar)
		assert.Equal(t, '!', badChar.Char)
	})
}

// Property: every string drawn from the valid alphabet and length range
// passes, and validation never panics on arbitrary input.
func TestValidateNameProperties(t *testing.T) {
	t.Run("valid alphabet always passes", func(t *testing.T) {
		rapid.Check(t, func(r *rapid.T) {
			name := rapid.StringMatching(`[a-z0-9-]{3,30}`).Draw(r, "name")
			if err := ValidateName(name); err != nil {
				r.Fatalf("ValidateName(%q) = %v, want nil", name, err)
			}
		})
	})

	t.Run("total over arbitrary strings", func(t *testing.T) {
		rapid.Check(t, func(r *rapid.T) {
			name := rapid.String().Draw(r, "name")
			err := ValidateName(name)
			if err == nil {
				return
			}
			var (
				tooShort *NameTooShortError
				tooLong  *NameTooLongError
				badChar  *InvalidCharacterError
			)
			if !errors.As(err, &tooShort) && !errors.As(err, &tooLong) && !errors.As(err, &badChar) {
				r.Fatalf("ValidateName(%q) returned unexpected error %v", name, err)
			}
		})
	})
}
