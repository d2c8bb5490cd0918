package contract

import (
	"encoding/json"

	"salescrm/internal/domain"
)

type CreateContractRequest struct {
	Customer *int64  `json:"customer"`
	Seller   *int64  `json:"seller"`
	Support  *int64  `json:"support"`
	Due      float64 `json:"due" validate:"gte=0"`
	Payed    bool    `json:"payed"`
}

type UpdateContractRequest struct {
	Customer *int64   `json:"customer"`
	Support  *int64   `json:"support"`
	Due      *float64 `json:"due"`
	Payed    *bool    `json:"payed"`
}

// forbiddenUpdateFields are only ever written by lifecycle transitions,
// never by a direct update.
var forbiddenUpdateFields = []string{
	"event", "signed", "date_signed", "seller", "date_created", "date_updated",
}

// checkUpdatableFields rejects a raw update body naming any field that
// only lifecycle transitions may write.
func checkUpdatableFields(raw []byte) error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return err
	}
	for _, f := range forbiddenUpdateFields {
		if _, ok := body[f]; ok {
			return ErrImmutableFields
		}
	}
	return nil
}

type SignRequest struct {
	NameEvent     string `json:"name_event" validate:"required"`
	LocationEvent string `json:"location_event" validate:"required"`
	DateEvent     string `json:"date_event" validate:"required"`
}

type ListItem struct {
	Support  *int64 `json:"support"`
	Customer int64  `json:"customer"`
	Event    *int64 `json:"event"`
	Signed   bool   `json:"signed"`
	ID       int64  `json:"id"`
}

type Detail struct {
	Support      *int64  `json:"support"`
	Seller       *int64  `json:"seller"`
	CustomerID   int64   `json:"customer"`
	CustomerName string  `json:"customer_name,omitempty"`
	Event        *int64  `json:"event"`
	DateCreated  string  `json:"date_created"`
	DateUpdated  string  `json:"date_updated"`
	Signed       bool    `json:"signed"`
	DateSigned   *string `json:"date_signed"`
	Due          float64 `json:"due"`
	Payed        bool    `json:"payed"`
	ID           int64   `json:"id"`
}

func toListItem(c domain.Contract) ListItem {
	return ListItem{
		Support:  c.SupportID,
		Customer: c.CustomerID,
		Event:    c.EventID,
		Signed:   c.Signed,
		ID:       c.ID,
	}
}

func toDetail(c *domain.Contract, customerName string) Detail {
	const layout = "2006-01-02T15:04:05Z07:00"

	var signedAt *string
	if c.DateSigned != nil {
		v := c.DateSigned.Format(layout)
		signedAt = &v
	}

	return Detail{
		Support:      c.SupportID,
		Seller:       c.SellerID,
		CustomerID:   c.CustomerID,
		CustomerName: customerName,
		Event:        c.EventID,
		DateCreated:  c.DateCreated.Format(layout),
		DateUpdated:  c.DateUpdated.Format(layout),
		Signed:       c.Signed,
		DateSigned:   signedAt,
		Due:          c.Due,
		Payed:        c.Payed,
		ID:           c.ID,
	}
}
