package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"renty/internal/config"
	"renty/internal/domain"
	"renty/internal/service"
	"renty/mocks"
)

func jwtConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret: "test-secret-at-least-32-bytes-long!",
		Issuer: "renty",
		Expiry: time.Hour,
	}
}

func hashedLandlord(t *testing.T, password string) *domain.Landlord {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.Landlord{
		ID:           uuid.New(),
		Name:         "Alice Smith",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}
}

func TestSignup_IssuesValidToken(t *testing.T) {
	repo := new(mocks.MockLandlordRepo)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.Landlord) bool {
		// The plaintext password must never reach the repository.
		return l.PasswordHash != "s3cretpass" && l.PasswordHash != ""
	})).Return(nil)

	svc := service.NewAuthService(repo, jwtConfig())

	result, err := svc.Signup(context.Background(), service.SignupInput{
		Name:        "Alice Smith",
		Email:       "alice@example.com",
		PhoneNumber: "555-0100",
		Password:    "s3cretpass",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice Smith", claims.Name)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	existing := hashedLandlord(t, "whatever")
	repo := new(mocks.MockLandlordRepo)
	repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

	svc := service.NewAuthService(repo, jwtConfig())

	_, err := svc.Signup(context.Background(), service.SignupInput{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	landlord := hashedLandlord(t, "s3cretpass")
	repo := new(mocks.MockLandlordRepo)
	repo.On("GetByEmail", mock.Anything, landlord.Email).Return(landlord, nil)

	svc := service.NewAuthService(repo, jwtConfig())

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    landlord.Email,
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, landlord.ID, result.User.ID)

	claims, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, landlord.ID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	landlord := hashedLandlord(t, "s3cretpass")
	repo := new(mocks.MockLandlordRepo)
	repo.On("GetByEmail", mock.Anything, landlord.Email).Return(landlord, nil)

	svc := service.NewAuthService(repo, jwtConfig())

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    landlord.Email,
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(mocks.MockLandlordRepo)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	svc := service.NewAuthService(repo, jwtConfig())

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ghost@example.com",
		Password: "anything",
	})

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockLandlordRepo), jwtConfig())

	_, err := svc.ValidateToken("not.a.token")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	repo := new(mocks.MockLandlordRepo)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	issuer := service.NewAuthService(repo, jwtConfig())
	result, err := issuer.Signup(context.Background(), service.SignupInput{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	other := jwtConfig()
	other.Secret = "a-completely-different-signing-secret"
	validator := service.NewAuthService(repo, other)

	_, err = validator.ValidateToken(result.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
