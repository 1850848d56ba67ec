package port

import (
	"context"

	"github.com/google/uuid"

	"renty/internal/domain"
)

// LandlordRepository persists landlord accounts.
type LandlordRepository interface {
	Create(ctx context.Context, landlord *domain.Landlord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Landlord, error)
	GetByEmail(ctx context.Context, email string) (*domain.Landlord, error)
}

// TenantRepository persists tenant profiles.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	SearchByName(ctx context.Context, name string) ([]domain.Tenant, error)
	UpdateRating(ctx context.Context, id uuid.UUID, averageRating float64, totalReviews int) error
}

// ReviewRepository persists tenant reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Review, error)
}
