package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lakeview/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestRegister_NewUser(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockJWT)
	svc := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "guest@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		u := args.Get(1).(*domain.User)
		u.ID = 7
	}).Return(nil)
	tokens.On("GenerateToken", int64(7), "guest").Return("tok", nil)

	user, token, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Guest",
		Email:    "Guest@Example.com",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, "guest@example.com", user.Email)
	assert.Equal(t, domain.RoleGuest, user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	users.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Guest",
		Email:    "taken@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockJWT)
	svc := NewService(users, tokens)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "guest@example.com").Return(&domain.User{
		ID:           3,
		Email:        "guest@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleGuest,
	}, nil)
	tokens.On("GenerateToken", int64(3), "guest").Return("tok", nil)

	user, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "guest@example.com",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, int64(3), user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "guest@example.com").Return(&domain.User{
		ID:           3,
		Email:        "guest@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "guest@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
