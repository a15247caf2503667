package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"roomreserve/internal/docstore"
	"roomreserve/internal/domain"
)

type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) GetCredential(ctx context.Context, email string) (*domain.Credential, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credential), args.Error(1)
}

func (m *MockCredentialRepository) CreateCredential(ctx context.Context, cred domain.Credential) error {
	args := m.Called(ctx, cred)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func TestRegister_NewEmail(t *testing.T) {
	creds := new(MockCredentialRepository)
	creds.On("GetCredential", mock.Anything, "alice@example.com").Return(nil, docstore.ErrNotFound)
	creds.On("CreateCredential", mock.Anything, mock.MatchedBy(func(c domain.Credential) bool {
		return c.Email == "alice@example.com" && c.UserID != "" && c.PasswordHash != "secret-password"
	})).Return(nil)

	jwt := new(MockTokenIssuer)
	jwt.On("GenerateToken", mock.Anything).Return("token-123", nil)

	service := NewService(creds, jwt)
	res, err := service.Register(context.Background(), RegisterRequest{Email: "Alice@Example.com", Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, "token-123", res.Token)
	assert.NotEmpty(t, res.UserID)
	creds.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	creds := new(MockCredentialRepository)
	creds.On("GetCredential", mock.Anything, "alice@example.com").Return(&domain.Credential{UserID: "u1"}, nil)

	service := NewService(creds, new(MockTokenIssuer))
	_, err := service.Register(context.Background(), RegisterRequest{Email: "alice@example.com", Password: "secret-password"})

	assert.ErrorIs(t, err, ErrEmailTaken)
	creds.AssertNotCalled(t, "CreateCredential", mock.Anything, mock.Anything)
}

func TestLogin_GoodAndBadPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	creds := new(MockCredentialRepository)
	creds.On("GetCredential", mock.Anything, "alice@example.com").Return(&domain.Credential{
		UserID: "u1", Email: "alice@example.com", PasswordHash: string(hash),
	}, nil)

	jwt := new(MockTokenIssuer)
	jwt.On("GenerateToken", "u1").Return("token-123", nil)

	service := NewService(creds, jwt)

	res, err := service.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "u1", res.UserID)

	_, err = service.Login(context.Background(), LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	creds := new(MockCredentialRepository)
	creds.On("GetCredential", mock.Anything, "ghost@example.com").Return(nil, docstore.ErrNotFound)

	service := NewService(creds, new(MockTokenIssuer))
	_, err := service.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
