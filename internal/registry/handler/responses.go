package handler

import (
	"nomen/internal/registry/models"
)

type coinResponse struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func fromCoin(c models.Coin) coinResponse {
	return coinResponse{Denom: c.Denom, Amount: c.Amount.String()}
}

func fromPrice(p *models.Coin) *coinResponse {
	if p == nil {
		return nil
	}
	c := fromCoin(*p)
	return &c
}

// resolveResponse is the HTTP response for GET /registry/names/{name}. All
// fields are null when the name has never been registered; an empty string
// means the field is set but blank.
type resolveResponse struct {
	Address *string `json:"address"`
	Bio     *string `json:"bio"`
	Website *string `json:"website"`
}

func fromRecord(record *models.NameRecord) resolveResponse {
	if record == nil {
		return resolveResponse{}
	}
	address := record.Owner.String()
	bio := record.Bio
	website := record.Website
	return resolveResponse{Address: &address, Bio: &bio, Website: &website}
}

// configResponse is the HTTP response for GET /registry/config and the body
// returned by a successful instantiate. Absent prices mean the operation is
// free.
type configResponse struct {
	Owner         string        `json:"owner"`
	PurchasePrice *coinResponse `json:"purchase_price,omitempty"`
	TransferPrice *coinResponse `json:"transfer_price,omitempty"`
	EditPrice     *coinResponse `json:"edit_price,omitempty"`
}

func fromConfig(cfg *models.Config) configResponse {
	return configResponse{
		Owner:         cfg.Owner.String(),
		PurchasePrice: fromPrice(cfg.PurchasePrice),
		TransferPrice: fromPrice(cfg.TransferPrice),
		EditPrice:     fromPrice(cfg.EditPrice),
	}
}

// transferResponse is one executed payout.
type transferResponse struct {
	To     string         `json:"to"`
	Amount []coinResponse `json:"amount"`
}

// refundResponse lists the payouts a refund produced.
type refundResponse struct {
	Transfers []transferResponse `json:"transfers"`
}

func fromTransfers(transfers []models.Transfer) refundResponse {
	out := refundResponse{Transfers: make([]transferResponse, 0, len(transfers))}
	for _, t := range transfers {
		amount := make([]coinResponse, 0, len(t.Amount))
		for _, c := range t.Amount {
			amount = append(amount, fromCoin(c))
		}
		out.Transfers = append(out.Transfers, transferResponse{To: t.To.String(), Amount: amount})
	}
	return out
}

// migrateResponse reports the version marker after a migration.
type migrateResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
