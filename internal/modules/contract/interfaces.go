package contract

import (
	"context"

	"salescrm/internal/domain"
)

// ContractRepository defines the interface for contract persistence,
// including the transactional signing transition.
type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	GetByIDScoped(ctx context.Context, scope domain.ContractScope, id int64) (*domain.Contract, error)
	List(ctx context.Context, scope domain.ContractScope, f domain.ContractFilter) ([]domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) error
	Sign(ctx context.Context, contractID int64, e *domain.Event) (*domain.Contract, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}
