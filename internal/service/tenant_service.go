package service

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"renty/internal/config"
	"renty/internal/domain"
	"renty/internal/port"
)

// CreateTenantInput is the DTO for tenant creation.
type CreateTenantInput struct {
	Name        string  `json:"name" binding:"required"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

// TenantService defines the tenant profile contract.
type TenantService interface {
	Create(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.TenantProfile, error)
	Search(ctx context.Context, name string) ([]domain.Tenant, error)
}

type tenantService struct {
	tenantRepo port.TenantRepository
	reviewRepo port.ReviewRepository
	storage    port.ObjectStorage
	s3cfg      *config.S3Config
}

// NewTenantService creates a new TenantService implementation.
func NewTenantService(
	tenantRepo port.TenantRepository,
	reviewRepo port.ReviewRepository,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
) TenantService {
	return &tenantService{
		tenantRepo: tenantRepo,
		reviewRepo: reviewRepo,
		storage:    storage,
		s3cfg:      s3cfg,
	}
}

func (s *tenantService) Create(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error) {
	tenant := &domain.Tenant{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("tenant.Create: %w", err)
	}
	return tenant, nil
}

func (s *tenantService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.TenantProfile, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListByTenant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tenant.GetProfile: %w", err)
	}
	for i := range reviews {
		attachProofURLs(ctx, s.storage, s.s3cfg, reviews[i].ProofFiles)
	}

	label, bankruptcy := screeningReport(tenant)
	return &domain.TenantProfile{
		Tenant:           *tenant,
		Reviews:          reviews,
		CreditScoreLabel: label,
		BankruptcyReport: bankruptcy,
	}, nil
}

func (s *tenantService) Search(ctx context.Context, name string) ([]domain.Tenant, error) {
	return s.tenantRepo.SearchByName(ctx, name)
}

var creditLabels = []domain.CreditLabel{domain.CreditGood, domain.CreditMediocre, domain.CreditBad}

// screeningReport derives a deterministic pseudo-random credit label and
// bankruptcy flag per tenant, standing in for a real credit-bureau lookup.
// Hashing the tenant's identity keeps the result stable across requests.
func screeningReport(tenant *domain.Tenant) (domain.CreditLabel, bool) {
	key := tenant.ID.String()
	if tenant.Email != nil && *tenant.Email != "" {
		key = *tenant.Email
	} else if tenant.Name != "" {
		key = tenant.Name
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	sum := h.Sum32()
	return creditLabels[sum%uint32(len(creditLabels))], sum%2 == 0
}
