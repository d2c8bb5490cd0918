package customer

import "salescrm/internal/domain"

type CreateCustomerRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	CompagnyName string `json:"compagny_name"`
	Notes        string `json:"notes"`
	// Seller is only honored for managers; sellers are always bound to
	// themselves.
	Seller *int64 `json:"seller"`
}

type UpdateCustomerRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	CompagnyName *string `json:"compagny_name"`
	Notes        *string `json:"notes"`
	Seller       *int64  `json:"seller"`
}

type ListItem struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CompagnyName string `json:"compagny_name"`
	Existing     bool   `json:"existing"`
	ID           int64  `json:"id"`
}

type Detail struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	CompagnyName string `json:"compagny_name"`
	DateCreated  string `json:"date_created"`
	DateUpdated  string `json:"date_updated"`
	Existing     bool   `json:"existing"`
	Notes        string `json:"notes,omitempty"`
	Seller       *int64 `json:"seller"`
	ID           int64  `json:"id"`
}

func toListItem(c domain.Customer) ListItem {
	return ListItem{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		CompagnyName: c.CompagnyName,
		Existing:     c.Existing,
		ID:           c.ID,
	}
}

func toDetail(c *domain.Customer) Detail {
	return Detail{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		CompagnyName: c.CompagnyName,
		DateCreated:  c.DateCreated.Format("2006-01-02T15:04:05Z07:00"),
		DateUpdated:  c.DateUpdated.Format("2006-01-02T15:04:05Z07:00"),
		Existing:     c.Existing,
		Notes:        c.Notes,
		Seller:       c.SellerID,
		ID:           c.ID,
	}
}
