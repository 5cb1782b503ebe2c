package handler

import (
	"testing"
)

func TestCoinPayloadParsing(t *testing.T) {
	// Amounts travel as strings, so values beyond float64 precision must
	// survive the trip intact.
	huge := coinPayload{Denom: "uatom", Amount: "123456789012345678901234567890"}
	coin, err := huge.toCoin()
	if err != nil {
		t.Fatalf("expected a huge integer amount to parse, got %v", err)
	}
	if coin.Amount.String() != "123456789012345678901234567890" {
		t.Fatalf("expected the amount to survive parsing, got %s", coin.Amount)
	}

	cases := []struct {
		name    string
		payload coinPayload
	}{
		{"not a number", coinPayload{Denom: "uatom", Amount: "ten"}},
		{"negative", coinPayload{Denom: "uatom", Amount: "-5"}},
		{"fractional", coinPayload{Denom: "uatom", Amount: "0.5"}},
		{"empty denom", coinPayload{Denom: "", Amount: "5"}},
	}
	for _, tc := range cases {
		if _, err := tc.payload.toCoin(); err == nil {
			t.Fatalf("expected %s to be rejected", tc.name)
		}
	}
}

func TestFundsPayloadStopsAtFirstBadCoin(t *testing.T) {
	payload := fundsPayload{
		{Denom: "uatom", Amount: "5"},
		{Denom: "uatom", Amount: "oops"},
	}
	if _, err := payload.toFunds(); err == nil {
		t.Fatalf("expected a malformed coin to reject the whole funds list")
	}

	funds, err := fundsPayload(nil).toFunds()
	if err != nil || funds != nil {
		t.Fatalf("expected absent funds to stay nil, got %v, %v", funds, err)
	}
}
