package user

import "salescrm/internal/domain"

type CreateUserRequest struct {
	Username  string `json:"username" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Role      string `json:"role" validate:"required"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
}

// ListItem is the trimmed list shape.
type ListItem struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ID        int64  `json:"id"`
}

type Detail struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	ID        int64  `json:"id"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	Admin     bool   `json:"admin"`
}

func toListItem(u domain.User) ListItem {
	return ListItem{FirstName: u.FirstName, LastName: u.LastName, ID: u.ID}
}

func toDetail(u *domain.User) Detail {
	return Detail{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		ID:        u.ID,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Admin:     u.Admin,
	}
}
