package auth

import (
	"context"

	"salescrm/internal/domain"
)

// UserRepository defines the user lookups the login flow needs.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID int64, role string, admin bool) (string, error)
}
