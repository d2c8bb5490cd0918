package event

import (
	"context"

	"salescrm/internal/domain"
)

// EventRepository defines the interface for event persistence. Events
// are scoped through their owning contract; deletion cascades to it.
type EventRepository interface {
	GetByIDScoped(ctx context.Context, scope domain.ContractScope, id int64) (*domain.Event, error)
	List(ctx context.Context, scope domain.ContractScope, f domain.EventFilter) ([]domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	DeleteCascade(ctx context.Context, eventID int64) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}
