package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"renty/internal/config"
	"renty/internal/domain"
	"renty/internal/port"
)

// Claims represents the JWT claims for a landlord session.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
}

// AuthResult holds a signed token and the authenticated landlord.
type AuthResult struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	User      *domain.Landlord `json:"user"`
}

// SignupInput is the DTO for signup requests.
type SignupInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

// LoginInput is the DTO for login requests.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthService defines the authentication contract.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	landlordRepo port.LandlordRepository
	cfg          config.JWTConfig
}

// NewAuthService creates a new AuthService implementation.
func NewAuthService(landlordRepo port.LandlordRepository, cfg config.JWTConfig) AuthService {
	return &authService{landlordRepo: landlordRepo, cfg: cfg}
}

func (s *authService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if _, err := s.landlordRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup: hashing password: %w", err)
	}

	landlord := &domain.Landlord{
		Name:         input.Name,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
	}
	if err := s.landlordRepo.Create(ctx, landlord); err != nil {
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	return s.issueToken(landlord)
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	landlord, err := s.landlordRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(landlord.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueToken(landlord)
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *authService) issueToken(landlord *domain.Landlord) (*AuthResult, error) {
	expiry := s.cfg.Expiry
	if expiry == 0 {
		expiry = 24 * time.Hour
	}
	expiresAt := time.Now().UTC().Add(expiry)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   landlord.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
		UserID: landlord.ID,
		Email:  landlord.Email,
		Name:   landlord.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("auth.issueToken: %w", err)
	}

	return &AuthResult{Token: signed, ExpiresAt: expiresAt, User: landlord}, nil
}
