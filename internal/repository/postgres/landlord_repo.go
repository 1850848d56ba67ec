package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"renty/internal/domain"
	"renty/internal/port"
)

type landlordRepo struct {
	db *sqlx.DB
}

// NewLandlordRepo creates a new PostgreSQL-backed LandlordRepository.
func NewLandlordRepo(db *sqlx.DB) port.LandlordRepository {
	return &landlordRepo{db: db}
}

func (r *landlordRepo) Create(ctx context.Context, landlord *domain.Landlord) error {
	landlord.ID = uuid.New()
	now := time.Now().UTC()
	landlord.CreatedAt = now
	landlord.UpdatedAt = now

	query := `INSERT INTO landlords (id, name, email, phone_number, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		landlord.ID, landlord.Name, landlord.Email, landlord.PhoneNumber,
		landlord.PasswordHash, landlord.CreatedAt, landlord.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "email") {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("landlordRepo.Create: %w", err)
	}
	return nil
}

func (r *landlordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Landlord, error) {
	var landlord domain.Landlord
	err := r.db.GetContext(ctx, &landlord, "SELECT * FROM landlords WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("landlordRepo.GetByID: %w", err)
	}
	return &landlord, nil
}

func (r *landlordRepo) GetByEmail(ctx context.Context, email string) (*domain.Landlord, error) {
	var landlord domain.Landlord
	err := r.db.GetContext(ctx, &landlord, "SELECT * FROM landlords WHERE lower(email) = lower($1)", email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("landlordRepo.GetByEmail: %w", err)
	}
	return &landlord, nil
}
