package user

import "errors"

var (
	ErrEmailTaken       = errors.New("email or username already taken")
	ErrInvalidRole      = errors.New("role must be MANAGER, SELLER or SUPPORT")
	ErrPasswordRequired = errors.New("password is required to create a user")
)
