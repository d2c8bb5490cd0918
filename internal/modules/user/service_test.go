package user

import (
	"context"
	"testing"

	"salescrm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_ManagerGetsAdmin(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "boss",
		Email:    "Boss@CRM.io",
		Password: "boss123",
		Role:     "manager",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleManager, u.Role)
	assert.True(t, u.Admin)
	assert.Equal(t, "boss@crm.io", u.Email)
	assert.Empty(t, u.PasswordHash)
}

func TestService_Create_SellerNotAdmin(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	var stored *domain.User
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.User)
	}).Return(nil)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "vendor",
		Email:    "vendor@crm.io",
		Password: "vendor123",
		Role:     "SELLER",
	})

	assert.NoError(t, err)
	assert.False(t, stored.Admin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("vendor123")))
}

func TestService_Create_PasswordRequired(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "vendor",
		Email:    "vendor@crm.io",
		Role:     "SELLER",
	})

	assert.ErrorIs(t, err, ErrPasswordRequired)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "vendor",
		Email:    "vendor@crm.io",
		Password: "vendor123",
		Role:     "ADMIN",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_RoleChangeKeepsAdminFlag(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID:    5,
		Role:  domain.RoleSeller,
		Admin: false,
	}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	role := "MANAGER"
	u, err := svc.Update(context.Background(), 5, UpdateUserRequest{Role: &role})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleManager, u.Role)
	assert.False(t, u.Admin)
}
