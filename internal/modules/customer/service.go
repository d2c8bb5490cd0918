package customer

import (
	"context"

	"salescrm/internal/domain"
)

// Service holds the customer business logic: scope resolution per
// path context, the name invariant and seller binding.
type Service struct {
	customers CustomerRepository
	users     UserRepository
}

func NewService(customers CustomerRepository, users UserRepository) *Service {
	return &Service{customers: customers, users: users}
}

// resolveScope turns the request's path context into a customer scope.
// The user-nested context is manager-only; a manager target resolves
// to not-found since managers are in charge of no customer.
func (s *Service) resolveScope(ctx context.Context, p domain.Principal, pc domain.PathContext) (domain.CustomerScope, error) {
	switch pc.Kind {
	case domain.ScopeUnderUser:
		if !p.IsManager() {
			return domain.CustomerScope{}, domain.ErrAccessDenied
		}
		target, err := s.users.GetByID(ctx, pc.UserID)
		if err != nil {
			return domain.CustomerScope{}, err
		}
		return domain.CustomerScopeOfUser(target)
	default:
		return domain.CustomerScopeFor(p), nil
	}
}

func (s *Service) List(ctx context.Context, p domain.Principal, pc domain.PathContext, f domain.CustomerFilter) ([]domain.Customer, error) {
	scope, err := s.resolveScope(ctx, p, pc)
	if err != nil {
		return nil, err
	}
	return s.customers.List(ctx, scope, f)
}

func (s *Service) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Customer, error) {
	return s.customers.GetByIDScoped(ctx, domain.CustomerScopeFor(p), id)
}

// Create persists a new customer. A seller is always bound as the
// owning seller; a manager may name one explicitly.
func (s *Service) Create(ctx context.Context, p domain.Principal, req CreateCustomerRequest) (*domain.Customer, error) {
	c := &domain.Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		CompagnyName: req.CompagnyName,
		Notes:        req.Notes,
		Existing:     false,
	}

	if p.Role == domain.RoleSeller {
		id := p.ID
		c.SellerID = &id
	} else if req.Seller != nil {
		if _, err := s.users.GetByID(ctx, *req.Seller); err != nil {
			return nil, err
		}
		c.SellerID = req.Seller
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, p domain.Principal, id int64, req UpdateCustomerRequest) (*domain.Customer, error) {
	c, err := s.customers.GetByIDScoped(ctx, domain.CustomerScopeFor(p), id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.CompagnyName != nil {
		c.CompagnyName = *req.CompagnyName
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.Seller != nil {
		// Only managers may reassign the owning seller.
		if !p.IsManager() {
			return nil, domain.ErrAccessDenied
		}
		if _, err := s.users.GetByID(ctx, *req.Seller); err != nil {
			return nil, err
		}
		c.SellerID = req.Seller
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, p domain.Principal, id int64) error {
	if _, err := s.customers.GetByIDScoped(ctx, domain.CustomerScopeFor(p), id); err != nil {
		return err
	}
	return s.customers.Delete(ctx, id)
}
