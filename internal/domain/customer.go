package domain

import "time"

type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	// CompagnyName keeps the historical API spelling; it is the public
	// JSON field and query-parameter name.
	CompagnyName string `json:"compagny_name"`
	Notes        string `json:"notes,omitempty"`
	// Existing flips to true when the first contract is created for
	// the customer. It is never reset.
	Existing    bool       `json:"existing"`
	SellerID    *int64     `json:"seller,omitempty"`
	DateCreated time.Time  `json:"date_created"`
	DateUpdated time.Time  `json:"date_updated"`
}

// Validate enforces the persist-time invariant: a customer must carry
// at least a last name or a company name.
func (c *Customer) Validate() error {
	if c.LastName == "" && c.CompagnyName == "" {
		return ErrNameFieldsEmpty
	}
	return nil
}

func (c *Customer) DisplayName() string {
	if c == nil {
		return ""
	}
	switch {
	case c.LastName != "" && c.CompagnyName != "":
		return c.FirstName + " " + c.LastName + "; " + c.CompagnyName
	case c.LastName != "":
		return c.FirstName + " " + c.LastName
	default:
		return c.CompagnyName
	}
}
