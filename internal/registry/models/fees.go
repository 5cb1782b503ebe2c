package models

// AssertSufficientFunds is the fee gate. A nil price means the operation is
// free and anything passes, as does a zero-amount price. Otherwise some
// attached coin must match the price's denomination exactly and carry at
// least its amount. Overpayment passes and is kept in full; the registry
// never makes change.
func AssertSufficientFunds(funds Funds, price *Coin) error {
	if price == nil || price.Amount.Sign() == 0 {
		return nil
	}
	for _, coin := range funds {
		if coin.IsGTE(*price) {
			return nil
		}
	}
	return &InsufficientFundsError{Required: *price}
}
