package domain

import "time"

type Contract struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer"`
	SellerID   *int64 `json:"seller,omitempty"`
	SupportID  *int64 `json:"support,omitempty"`
	// EventID is set exactly once, by the signing transition.
	EventID     *int64     `json:"event,omitempty"`
	Due         float64    `json:"due"`
	Signed      bool       `json:"signed"`
	DateSigned  *time.Time `json:"date_signed,omitempty"`
	Payed       bool       `json:"payed"`
	DateCreated time.Time  `json:"date_created"`
	DateUpdated time.Time  `json:"date_updated"`
}

// CanSign reports whether the signing transition is valid from the
// contract's current state.
func (c *Contract) CanSign() error {
	if c.Signed {
		return ErrAlreadySigned
	}
	return nil
}
