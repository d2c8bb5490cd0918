package user

import (
	"context"
	"errors"
	"strings"

	"salescrm/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// Service handles user management business logic. All of it runs
// behind the admin gate; role checks on the caller happen in the
// middleware layer.
type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// Create provisions a new CRM user. A user created with role MANAGER
// is granted administrative privilege at creation time; editing the
// role later never revisits that grant.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	role := domain.Role(strings.ToUpper(strings.TrimSpace(req.Role)))
	if !domain.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:     strings.TrimSpace(req.Username),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		Admin:        role == domain.RoleManager,
	}

	if err := s.users.Create(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Update edits user fields. The admin flag is deliberately left
// untouched: promotion to MANAGER after creation does not make the
// user an administrator.
func (s *Service) Update(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		u.Username = strings.TrimSpace(*req.Username)
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Role != nil {
		role := domain.Role(strings.ToUpper(strings.TrimSpace(*req.Role)))
		if !domain.ValidRole(role) {
			return nil, ErrInvalidRole
		}
		u.Role = role
	}

	if err := s.users.Update(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
