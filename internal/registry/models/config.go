package models

// Identity is a validated principal address: the registry owner, a record
// owner, or a caller. Values originate from the authenticated request
// context or from identity validation of caller-supplied strings; raw input
// never becomes an Identity without passing a validator.
type Identity string

func (i Identity) String() string { return string(i) }

// Config is the registry's singleton configuration: the administrator and
// the three operation prices. A nil price makes the corresponding operation
// free. Created once at instantiate time, mutated in place only by editconf,
// never deleted.
type Config struct {
	Owner         Identity `json:"owner"`
	PurchasePrice *Coin    `json:"purchase_price,omitempty"`
	TransferPrice *Coin    `json:"transfer_price,omitempty"`
	EditPrice     *Coin    `json:"edit_price,omitempty"`
}

// Clone returns a deep copy so stored configuration never shares price
// pointers with callers.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	return &Config{
		Owner:         c.Owner,
		PurchasePrice: ClonePrice(c.PurchasePrice),
		TransferPrice: ClonePrice(c.TransferPrice),
		EditPrice:     ClonePrice(c.EditPrice),
	}
}

// VersionInfo is the stored compatibility marker. Instantiate writes it and
// migrate refuses to run unless the stored registry name matches its own.
type VersionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Transfer is an outbound bank message emitted by an operation. The registry
// core never moves funds itself; the surrounding host executes emitted
// transfers against the ledger.
type Transfer struct {
	To     Identity `json:"to"`
	Amount Funds    `json:"amount"`
}
