package event

import (
	"context"
	"time"

	"salescrm/internal/domain"
)

// eventDateLayout is the historical wire format for event dates.
const eventDateLayout = "02/01/2006 15:04"

// Service holds the event business logic. Visibility is always
// resolved through the owning contract; a finished event is locked
// against updates; deleting an event removes its contract too.
type Service struct {
	events    EventRepository
	users     UserRepository
	customers CustomerRepository
}

func NewService(events EventRepository, users UserRepository, customers CustomerRepository) *Service {
	return &Service{events: events, users: users, customers: customers}
}

func (s *Service) resolveScope(ctx context.Context, p domain.Principal, pc domain.PathContext) (domain.ContractScope, error) {
	switch pc.Kind {
	case domain.ScopeUnderUser:
		if !p.IsManager() {
			return domain.ContractScope{}, domain.ErrAccessDenied
		}
		target, err := s.users.GetByID(ctx, pc.UserID)
		if err != nil {
			return domain.ContractScope{}, err
		}
		return domain.ContractScopeOfUser(target)
	case domain.ScopeUnderCustomer:
		if _, err := s.customers.GetByID(ctx, pc.CustomerID); err != nil {
			return domain.ContractScope{}, err
		}
		return domain.EventScopeOfCustomer(p, pc.CustomerID), nil
	default:
		return domain.ContractScopeFor(p), nil
	}
}

func (s *Service) List(ctx context.Context, p domain.Principal, pc domain.PathContext, f domain.EventFilter) ([]domain.Event, error) {
	scope, err := s.resolveScope(ctx, p, pc)
	if err != nil {
		return nil, err
	}
	return s.events.List(ctx, scope, f)
}

func (s *Service) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Event, error) {
	return s.events.GetByIDScoped(ctx, domain.ContractScopeFor(p), id)
}

// Update edits an open event. Once finished, every further field
// update is rejected, whoever asks.
func (s *Service) Update(ctx context.Context, p domain.Principal, id int64, req UpdateEventRequest) (*domain.Event, error) {
	e, err := s.events.GetByIDScoped(ctx, domain.ContractScopeFor(p), id)
	if err != nil {
		return nil, err
	}
	if err := e.CanUpdate(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.DateEvent != nil {
		date, err := time.Parse(eventDateLayout, *req.DateEvent)
		if err != nil {
			return nil, ErrBadEventDate
		}
		e.DateEvent = date
	}
	if req.Finished != nil {
		e.Finished = *req.Finished
	}

	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes the event and, in the same transaction, its owning
// contract. This cascade is the only way a contract ever disappears.
func (s *Service) Delete(ctx context.Context, p domain.Principal, id int64) error {
	if _, err := s.events.GetByIDScoped(ctx, domain.ContractScopeFor(p), id); err != nil {
		return err
	}
	return s.events.DeleteCascade(ctx, id)
}
