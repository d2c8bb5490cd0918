package customer

import (
	"context"
	"testing"

	"salescrm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByIDScoped(ctx context.Context, scope domain.CustomerScope, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, scope domain.CustomerScope, f domain.CustomerFilter) ([]domain.Customer, error) {
	args := m.Called(ctx, scope, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestService_Create_SellerAutoAssigned(t *testing.T) {
	customers := new(MockCustomerRepository)
	users := new(MockUserRepository)
	svc := NewService(customers, users)

	customers.On("Create", mock.Anything, mock.Anything).Return(nil)

	seller := domain.Principal{ID: 5, Role: domain.RoleSeller}
	c, err := svc.Create(context.Background(), seller, CreateCustomerRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@acme.io",
	})

	assert.NoError(t, err)
	assert.NotNil(t, c.SellerID)
	assert.Equal(t, int64(5), *c.SellerID)
	assert.False(t, c.Existing)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Create_SellerFieldIgnoredForSellers(t *testing.T) {
	customers := new(MockCustomerRepository)
	users := new(MockUserRepository)
	svc := NewService(customers, users)

	customers.On("Create", mock.Anything, mock.Anything).Return(nil)

	seller := domain.Principal{ID: 5, Role: domain.RoleSeller}
	other := int64(6)
	c, err := svc.Create(context.Background(), seller, CreateCustomerRequest{
		CompagnyName: "Acme",
		Seller:       &other,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), *c.SellerID)
}

func TestService_Create_NameFieldsEmpty(t *testing.T) {
	customers := new(MockCustomerRepository)
	svc := NewService(customers, new(MockUserRepository))

	manager := domain.Principal{ID: 1, Role: domain.RoleManager, Admin: true}
	_, err := svc.Create(context.Background(), manager, CreateCustomerRequest{
		Email: "nobody@acme.io",
		Phone: "+33100000000",
	})

	assert.ErrorIs(t, err, domain.ErrNameFieldsEmpty)
	customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_List_SupportScope(t *testing.T) {
	customers := new(MockCustomerRepository)
	svc := NewService(customers, new(MockUserRepository))

	customers.On("List", mock.Anything, mock.MatchedBy(func(s domain.CustomerScope) bool {
		return !s.All && s.SellerID == nil && s.SupportID != nil && *s.SupportID == 3
	}), mock.Anything).Return([]domain.Customer{{ID: 7}}, nil)

	support := domain.Principal{ID: 3, Role: domain.RoleSupport}
	got, err := svc.List(context.Background(), support, domain.TopLevel(), domain.CustomerFilter{})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	customers.AssertExpectations(t)
}

func TestService_List_UnderUserNonManagerDenied(t *testing.T) {
	customers := new(MockCustomerRepository)
	users := new(MockUserRepository)
	svc := NewService(customers, users)

	seller := domain.Principal{ID: 5, Role: domain.RoleSeller}
	_, err := svc.List(context.Background(), seller, domain.UnderUser(3), domain.CustomerFilter{})

	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_List_UnderUserManagerTarget(t *testing.T) {
	customers := new(MockCustomerRepository)
	users := new(MockUserRepository)
	svc := NewService(customers, users)

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Role: domain.RoleManager}, nil)

	manager := domain.Principal{ID: 1, Role: domain.RoleManager, Admin: true}
	_, err := svc.List(context.Background(), manager, domain.UnderUser(2), domain.CustomerFilter{})

	assert.ErrorIs(t, err, domain.ErrManagerNoRecords)
	customers.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_SellerReassignIsManagerOnly(t *testing.T) {
	customers := new(MockCustomerRepository)
	svc := NewService(customers, new(MockUserRepository))

	sellerID := int64(5)
	customers.On("GetByIDScoped", mock.Anything, mock.Anything, int64(7)).
		Return(&domain.Customer{ID: 7, CompagnyName: "Acme", SellerID: &sellerID}, nil)

	seller := domain.Principal{ID: 5, Role: domain.RoleSeller}
	other := int64(6)
	_, err := svc.Update(context.Background(), seller, 7, UpdateCustomerRequest{Seller: &other})

	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	customers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete_OutOfScopeIsNotFound(t *testing.T) {
	customers := new(MockCustomerRepository)
	svc := NewService(customers, new(MockUserRepository))

	customers.On("GetByIDScoped", mock.Anything, mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

	manager := domain.Principal{ID: 1, Role: domain.RoleManager, Admin: true}
	err := svc.Delete(context.Background(), manager, 7)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	customers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
