package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"renty/internal/domain"
	"renty/internal/port"
)

type tenantRepo struct {
	db *sqlx.DB
}

// NewTenantRepo creates a new PostgreSQL-backed TenantRepository.
func NewTenantRepo(db *sqlx.DB) port.TenantRepository {
	return &tenantRepo{db: db}
}

func (r *tenantRepo) Create(ctx context.Context, tenant *domain.Tenant) error {
	tenant.ID = uuid.New()
	now := time.Now().UTC()
	tenant.CreatedAt = now
	tenant.UpdatedAt = now

	query := `INSERT INTO tenants (id, name, email, phone_number, average_rating, total_reviews, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		tenant.ID, tenant.Name, tenant.Email, tenant.PhoneNumber,
		tenant.AverageRating, tenant.TotalReviews, tenant.CreatedAt, tenant.UpdatedAt)
	if err != nil {
		return fmt.Errorf("tenantRepo.Create: %w", err)
	}
	return nil
}

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.db.GetContext(ctx, &tenant, "SELECT * FROM tenants WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("tenantRepo.GetByID: %w", err)
	}
	return &tenant, nil
}

func (r *tenantRepo) SearchByName(ctx context.Context, name string) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	var err error
	if name == "" {
		err = r.db.SelectContext(ctx, &tenants, "SELECT * FROM tenants ORDER BY name ASC")
	} else {
		err = r.db.SelectContext(ctx, &tenants,
			"SELECT * FROM tenants WHERE name ILIKE '%' || $1 || '%' ORDER BY name ASC", name)
	}
	if err != nil {
		return nil, fmt.Errorf("tenantRepo.SearchByName: %w", err)
	}
	return tenants, nil
}

func (r *tenantRepo) UpdateRating(ctx context.Context, id uuid.UUID, averageRating float64, totalReviews int) error {
	query := `UPDATE tenants SET average_rating = $2, total_reviews = $3, updated_at = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, averageRating, totalReviews, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("tenantRepo.UpdateRating: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
