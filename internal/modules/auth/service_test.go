package auth

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

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID int64, role string, admin bool) (string, error) {
	args := m.Called(userID, role, admin)
	return args.String(0), args.Error(1)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockJWTService)
	svc := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "alice@crm.io").Return(&domain.User{
		ID:           1,
		Email:        "alice@crm.io",
		PasswordHash: hashFor(t, "alice123"),
		Role:         domain.RoleManager,
		Admin:        true,
	}, nil)
	tokens.On("GenerateToken", int64(1), "MANAGER", true).Return("signed-token", nil)

	user, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  Alice@crm.io ",
		Password: "alice123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, int64(1), user.ID)
	tokens.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockJWTService)
	svc := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "alice@crm.io").Return(&domain.User{
		ID:           1,
		PasswordHash: hashFor(t, "alice123"),
	}, nil)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "alice@crm.io",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockJWTService))

	users.On("GetByEmail", mock.Anything, "ghost@crm.io").Return(nil, domain.ErrNotFound)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@crm.io",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
