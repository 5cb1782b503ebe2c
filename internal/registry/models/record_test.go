package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBio(t *testing.T) {
	require.NoError(t, ValidateBio(""))
	require.NoError(t, ValidateBio(strings.Repeat("a", 200)))

	err := ValidateBio(strings.Repeat("a", 201))
	var tooLong *BioTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, 201, tooLong.Length)
	assert.Equal(t, 200, tooLong.Max)
}

func TestValidateBioCountsBytes(t *testing.T) {
	// 67 three-byte runes are 201 bytes even though only 67 characters.
	err := ValidateBio(strings.Repeat("世", 67))
	var tooLong *BioTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, 201, tooLong.Length)
}

func TestValidateWebsite(t *testing.T) {
	require.NoError(t, ValidateWebsite(""))
	require.NoError(t, ValidateWebsite("https://"+strings.Repeat("a", 92)))

	err := ValidateWebsite(strings.Repeat("a", 101))
	var tooLong *WebsiteTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, 101, tooLong.Length)
	assert.Equal(t, 100, tooLong.Max)
}

func TestNameRecordClone(t *testing.T) {
	orig := &NameRecord{Owner: "alice", Bio: "hello", Website: "https://example.com"}
	clone := orig.Clone()

	clone.Owner = "bob"
	clone.Bio = "changed"

	assert.Equal(t, Identity("alice"), orig.Owner)
	assert.Equal(t, "hello", orig.Bio)
}

func TestConfigClone(t *testing.T) {
	price := NewCoin("uatom", 100)
	orig := &Config{Owner: "admin", PurchasePrice: &price}
	clone := orig.Clone()

	require.NotNil(t, clone.PurchasePrice)
	clone.PurchasePrice.Denom = "uluna"
	clone.Owner = "intruder"

	assert.Equal(t, "uatom", orig.PurchasePrice.Denom)
	assert.Equal(t, Identity("admin"), orig.Owner)
	assert.Nil(t, clone.TransferPrice)
}
