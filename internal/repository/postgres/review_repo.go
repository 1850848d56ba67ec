package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"renty/internal/domain"
	"renty/internal/port"
)

type reviewRepo struct {
	db *sqlx.DB
}

// NewReviewRepo creates a new PostgreSQL-backed ReviewRepository.
func NewReviewRepo(db *sqlx.DB) port.ReviewRepository {
	return &reviewRepo{db: db}
}

// reviewRow mirrors the reviews table; category ratings and proof files are
// JSONB columns.
type reviewRow struct {
	ID              uuid.UUID `db:"id"`
	TenantID        uuid.UUID `db:"tenant_id"`
	ReviewerID      uuid.UUID `db:"reviewer_id"`
	ReviewerName    string    `db:"reviewer_name"`
	Rating          int       `db:"rating"`
	Comment         *string   `db:"comment"`
	PropertyAddress *string   `db:"property_address"`
	RentalPeriod    *string   `db:"rental_period"`
	Ratings         []byte    `db:"ratings"`
	ProofFiles      []byte    `db:"proof_files"`
	LeaseVerified   bool      `db:"lease_verified"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	review.ID = uuid.New()
	now := time.Now().UTC()
	review.CreatedAt = now
	review.UpdatedAt = now

	ratings, err := json.Marshal(review.Ratings)
	if err != nil {
		return fmt.Errorf("reviewRepo.Create: marshaling ratings: %w", err)
	}
	proofFiles := review.ProofFiles
	if proofFiles == nil {
		proofFiles = []domain.ProofFile{}
	}
	proofs, err := json.Marshal(proofFiles)
	if err != nil {
		return fmt.Errorf("reviewRepo.Create: marshaling proof files: %w", err)
	}

	query := `INSERT INTO reviews
		(id, tenant_id, reviewer_id, reviewer_name, rating, comment, property_address,
		 rental_period, ratings, proof_files, lease_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.db.ExecContext(ctx, query,
		review.ID, review.TenantID, review.ReviewerID, review.ReviewerName,
		review.Rating, review.Comment, review.PropertyAddress, review.RentalPeriod,
		ratings, proofs, review.LeaseVerified, review.CreatedAt, review.UpdatedAt)
	if err != nil {
		return fmt.Errorf("reviewRepo.Create: %w", err)
	}
	return nil
}

func (r *reviewRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Review, error) {
	var rows []reviewRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM reviews WHERE tenant_id = $1 ORDER BY created_at DESC", tenantID)
	if err != nil {
		return nil, fmt.Errorf("reviewRepo.ListByTenant: %w", err)
	}

	reviews := make([]domain.Review, 0, len(rows))
	for i := range rows {
		review, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("reviewRepo.ListByTenant: %w", err)
		}
		reviews = append(reviews, *review)
	}
	return reviews, nil
}

func (row *reviewRow) toDomain() (*domain.Review, error) {
	review := &domain.Review{
		ID:              row.ID,
		TenantID:        row.TenantID,
		ReviewerID:      row.ReviewerID,
		ReviewerName:    row.ReviewerName,
		Rating:          row.Rating,
		Comment:         row.Comment,
		PropertyAddress: row.PropertyAddress,
		RentalPeriod:    row.RentalPeriod,
		ProofFiles:      []domain.ProofFile{},
		LeaseVerified:   row.LeaseVerified,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if len(row.Ratings) > 0 {
		if err := json.Unmarshal(row.Ratings, &review.Ratings); err != nil {
			return nil, fmt.Errorf("unmarshaling ratings: %w", err)
		}
	}
	if len(row.ProofFiles) > 0 {
		if err := json.Unmarshal(row.ProofFiles, &review.ProofFiles); err != nil {
			return nil, fmt.Errorf("unmarshaling proof files: %w", err)
		}
	}
	return review, nil
}
