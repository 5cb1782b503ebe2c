package handler

import (
	"fmt"

	"github.com/shopspring/decimal"

	"nomen/internal/registry/models"
)

// coinPayload is the wire form of a coin. Amounts travel as strings so they
// never pass through float64.
type coinPayload struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

func (c coinPayload) toCoin() (models.Coin, error) {
	amount, err := decimal.NewFromString(c.Amount)
	if err != nil {
		return models.Coin{}, fmt.Errorf("coin amount %q is not a number", c.Amount)
	}
	coin := models.Coin{Denom: c.Denom, Amount: amount}
	if err := coin.Validate(); err != nil {
		return models.Coin{}, err
	}
	return coin, nil
}

// fundsPayload is the funds list attached to an operation.
type fundsPayload []coinPayload

func (f fundsPayload) toFunds() (models.Funds, error) {
	if len(f) == 0 {
		return nil, nil
	}
	funds := make(models.Funds, 0, len(f))
	for _, c := range f {
		coin, err := c.toCoin()
		if err != nil {
			return nil, err
		}
		funds = append(funds, coin)
	}
	return funds, nil
}

func toPrice(p *coinPayload) (*models.Coin, error) {
	if p == nil {
		return nil, nil
	}
	coin, err := p.toCoin()
	if err != nil {
		return nil, err
	}
	return &coin, nil
}

// registerRequest is the body for POST /registry/register.
type registerRequest struct {
	Name    string       `json:"name"`
	Bio     string       `json:"bio"`
	Website string       `json:"website"`
	Funds   fundsPayload `json:"funds"`
}

// transferRequest is the body for POST /registry/transfer.
type transferRequest struct {
	Name  string       `json:"name"`
	To    string       `json:"to"`
	Funds fundsPayload `json:"funds"`
}

// editRequest is the body for POST /registry/edit. Omitted fields clear the
// stored values; there is no partial update.
type editRequest struct {
	Name    string       `json:"name"`
	Bio     string       `json:"bio"`
	Website string       `json:"website"`
	Funds   fundsPayload `json:"funds"`
}

// editConfigRequest is the body for PUT /registry/config. The three prices
// replace the stored schedule wholesale; an omitted price makes that
// operation free.
type editConfigRequest struct {
	PurchasePrice *coinPayload `json:"purchase_price"`
	TransferPrice *coinPayload `json:"transfer_price"`
	EditPrice     *coinPayload `json:"edit_price"`
	Funds         fundsPayload `json:"funds"`
}

// refundRequest is the body for POST /registry/refund. An empty body is
// accepted; attaching funds to a refund is legal but pointless.
type refundRequest struct {
	Funds fundsPayload `json:"funds"`
}

// instantiateRequest is the body for POST /ops/instantiate. The deployer
// account becomes the registry owner unless a valid admin override is given.
type instantiateRequest struct {
	Deployer      string       `json:"deployer"`
	Admin         string       `json:"admin"`
	PurchasePrice *coinPayload `json:"purchase_price"`
	TransferPrice *coinPayload `json:"transfer_price"`
	EditPrice     *coinPayload `json:"edit_price"`
}
