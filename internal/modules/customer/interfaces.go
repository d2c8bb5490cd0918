package customer

import (
	"context"

	"salescrm/internal/domain"
)

// CustomerRepository defines the interface for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByIDScoped(ctx context.Context, scope domain.CustomerScope, id int64) (*domain.Customer, error)
	List(ctx context.Context, scope domain.CustomerScope, f domain.CustomerFilter) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository resolves target users for the user-nested context.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
