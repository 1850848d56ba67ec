package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"renty/internal/domain"
)

// MockLandlordRepo is a mock implementation of port.LandlordRepository.
type MockLandlordRepo struct {
	mock.Mock
}

func (m *MockLandlordRepo) Create(ctx context.Context, landlord *domain.Landlord) error {
	args := m.Called(ctx, landlord)
	return args.Error(0)
}

func (m *MockLandlordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Landlord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Landlord), args.Error(1)
}

func (m *MockLandlordRepo) GetByEmail(ctx context.Context, email string) (*domain.Landlord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Landlord), args.Error(1)
}

// MockTenantRepo is a mock implementation of port.TenantRepository.
type MockTenantRepo struct {
	mock.Mock
}

func (m *MockTenantRepo) Create(ctx context.Context, tenant *domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepo) SearchByName(ctx context.Context, name string) ([]domain.Tenant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantRepo) UpdateRating(ctx context.Context, id uuid.UUID, averageRating float64, totalReviews int) error {
	args := m.Called(ctx, id, averageRating, totalReviews)
	return args.Error(0)
}

// MockReviewRepo is a mock implementation of port.ReviewRepository.
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Review, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}
