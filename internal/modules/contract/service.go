package contract

import (
	"context"
	"time"

	"salescrm/internal/domain"
)

// eventDateLayout is the historical wire format for the signing input,
// e.g. "25/12/2024 18:00".
const eventDateLayout = "02/01/2006 15:04"

// Service holds the contract business logic: scope resolution,
// creation-time role checks, the immutable-field guard and the signing
// transition.
type Service struct {
	contracts ContractRepository
	customers CustomerRepository
	users     UserRepository
	events    EventRepository
}

func NewService(
	contracts ContractRepository,
	customers CustomerRepository,
	users UserRepository,
	events EventRepository,
) *Service {
	return &Service{
		contracts: contracts,
		customers: customers,
		users:     users,
		events:    events,
	}
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
		return domain.ContractScopeOfCustomer(p, pc.CustomerID), nil
	default:
		return domain.ContractScopeFor(p), nil
	}
}

func (s *Service) List(ctx context.Context, p domain.Principal, pc domain.PathContext, f domain.ContractFilter) ([]domain.Contract, error) {
	scope, err := s.resolveScope(ctx, p, pc)
	if err != nil {
		return nil, err
	}
	return s.contracts.List(ctx, scope, f)
}

func (s *Service) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Contract, error) {
	return s.contracts.GetByIDScoped(ctx, domain.ContractScopeFor(p), id)
}

// CustomerName renders the display form of the contract's customer for
// detail responses.
func (s *Service) CustomerName(ctx context.Context, c *domain.Contract) string {
	cu, err := s.customers.GetByID(ctx, c.CustomerID)
	if err != nil {
		return ""
	}
	return cu.DisplayName()
}

// checkRole verifies that the referenced user actually carries the
// role the contract slot expects.
func (s *Service) checkRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role != role {
		return nil, ErrWrongRole
	}
	return u, nil
}

// Create persists a new contract. A manager must name seller, support
// and customer explicitly; a seller is auto-bound as the contract's
// seller and still names support and customer. The customer's existing
// flag is promoted inside the same write.
func (s *Service) Create(ctx context.Context, p domain.Principal, req CreateContractRequest) (*domain.Contract, error) {
	var sellerID int64

	switch p.Role {
	case domain.RoleManager:
		if req.Seller == nil || req.Support == nil || req.Customer == nil {
			return nil, ErrMissingFields
		}
		if _, err := s.checkRole(ctx, *req.Seller, domain.RoleSeller); err != nil {
			return nil, err
		}
		sellerID = *req.Seller
	case domain.RoleSeller:
		if req.Support == nil || req.Customer == nil {
			return nil, ErrMissingFields
		}
		sellerID = p.ID
	default:
		return nil, domain.ErrAccessDenied
	}

	if _, err := s.checkRole(ctx, *req.Support, domain.RoleSupport); err != nil {
		return nil, err
	}
	if _, err := s.customers.GetByID(ctx, *req.Customer); err != nil {
		return nil, err
	}

	supportID := *req.Support
	c := &domain.Contract{
		CustomerID: *req.Customer,
		SellerID:   &sellerID,
		SupportID:  &supportID,
		Due:        req.Due,
		Payed:      req.Payed,
		Signed:     false,
	}

	if err := s.contracts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update edits the directly updatable contract fields. The immutable
// set (event, signed, date_signed, seller, timestamps) is rejected at
// the handler from the raw body; replacements of support or customer
// re-run the existence and role checks.
func (s *Service) Update(ctx context.Context, p domain.Principal, id int64, req UpdateContractRequest) (*domain.Contract, error) {
	c, err := s.contracts.GetByIDScoped(ctx, domain.ContractScopeFor(p), id)
	if err != nil {
		return nil, err
	}

	if req.Support != nil {
		if _, err := s.checkRole(ctx, *req.Support, domain.RoleSupport); err != nil {
			return nil, err
		}
		c.SupportID = req.Support
	}
	if req.Customer != nil {
		if _, err := s.customers.GetByID(ctx, *req.Customer); err != nil {
			return nil, err
		}
		c.CustomerID = *req.Customer
	}
	if req.Due != nil {
		c.Due = *req.Due
	}
	if req.Payed != nil {
		c.Payed = *req.Payed
	}

	if err := s.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Sign runs the DRAFT → SIGNED transition: it creates the event with
// the given attributes and flips the contract atomically. Signing an
// already signed contract fails and leaves every field unchanged.
func (s *Service) Sign(ctx context.Context, p domain.Principal, contractID int64, req SignRequest) (*domain.Contract, *domain.Event, error) {
	date, err := time.Parse(eventDateLayout, req.DateEvent)
	if err != nil {
		return nil, nil, ErrBadEventDate
	}

	c, err := s.contracts.GetByIDScoped(ctx, domain.ContractScopeFor(p), contractID)
	if err != nil {
		return nil, nil, err
	}
	if err := c.CanSign(); err != nil {
		return nil, nil, err
	}

	e := &domain.Event{
		Name:      req.NameEvent,
		Location:  req.LocationEvent,
		DateEvent: date,
	}

	signed, err := s.contracts.Sign(ctx, contractID, e)
	if err != nil {
		return nil, nil, err
	}
	return signed, e, nil
}

// EventsOf lists the event attached to a contract, resolved through
// the caller's contract scope.
func (s *Service) EventsOf(ctx context.Context, p domain.Principal, contractID int64) ([]domain.Event, error) {
	c, err := s.contracts.GetByIDScoped(ctx, domain.ContractScopeFor(p), contractID)
	if err != nil {
		return nil, err
	}
	if c.EventID == nil {
		return []domain.Event{}, nil
	}

	e, err := s.events.GetByID(ctx, *c.EventID)
	if err != nil {
		return nil, err
	}
	return []domain.Event{*e}, nil
}
