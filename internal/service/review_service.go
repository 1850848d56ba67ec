package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"renty/internal/config"
	"renty/internal/domain"
	"renty/internal/port"
)

// ProofUpload is one evidence file attached to a review submission.
type ProofUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// CreateReviewInput is the DTO for review submission.
type CreateReviewInput struct {
	TenantID        uuid.UUID
	ReviewerID      uuid.UUID
	Rating          int
	Comment         *string
	PropertyAddress *string
	RentalPeriod    *string
	Ratings         domain.CategoryRatings
	ProofFiles      []ProofUpload
	LeaseVerified   bool
}

// ReviewService defines the review submission contract.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
}

type reviewService struct {
	reviewRepo   port.ReviewRepository
	tenantRepo   port.TenantRepository
	landlordRepo port.LandlordRepository
	storage      port.ObjectStorage
	cfg          *config.S3Config
}

// NewReviewService creates a new ReviewService implementation.
func NewReviewService(
	reviewRepo port.ReviewRepository,
	tenantRepo port.TenantRepository,
	landlordRepo port.LandlordRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) ReviewService {
	return &reviewService{
		reviewRepo:   reviewRepo,
		tenantRepo:   tenantRepo,
		landlordRepo: landlordRepo,
		storage:      storage,
		cfg:          cfg,
	}
}

func (s *reviewService) Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	tenant, err := s.tenantRepo.GetByID(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	reviewer, err := s.landlordRepo.GetByID(ctx, input.ReviewerID)
	if err != nil {
		return nil, err
	}

	proofFiles, err := s.uploadProofFiles(ctx, input.TenantID, input.ProofFiles)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		TenantID:        tenant.ID,
		ReviewerID:      reviewer.ID,
		ReviewerName:    reviewer.Name,
		Rating:          input.Rating,
		Comment:         input.Comment,
		PropertyAddress: input.PropertyAddress,
		RentalPeriod:    input.RentalPeriod,
		Ratings:         input.Ratings,
		ProofFiles:      proofFiles,
		LeaseVerified:   input.LeaseVerified,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	// After Create so the stored record never carries expiring links.
	attachProofURLs(ctx, s.storage, s.cfg, review.ProofFiles)

	if err := s.recomputeRating(ctx, tenant.ID); err != nil {
		// Review is stored; rating drift is corrected on the next submission.
		log.Printf("reviewService.Create: recomputing rating for tenant %s: %v", tenant.ID, err)
	}
	return review, nil
}

func (s *reviewService) uploadProofFiles(ctx context.Context, tenantID uuid.UUID, uploads []ProofUpload) ([]domain.ProofFile, error) {
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	proofFiles := make([]domain.ProofFile, 0, len(uploads))

	for _, up := range uploads {
		if _, ok := domain.AllowedProofContentTypes[up.ContentType]; !ok {
			return nil, domain.ErrUnsupportedFileType
		}
		if up.Size > maxBytes {
			return nil, domain.ErrFileTooLarge
		}

		key := fmt.Sprintf("tenants/%s/proof/%s/%s", tenantID, uuid.New(), up.Name)
		_, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:      s.cfg.Bucket,
			Key:         key,
			Body:        up.Body,
			ContentType: up.ContentType,
			Size:        up.Size,
		})
		if err != nil {
			log.Printf("reviewService.uploadProofFiles: upload %s failed: %v", key, err)
			return nil, errors.Join(domain.ErrUploadFailed, err)
		}

		proofFiles = append(proofFiles, domain.ProofFile{
			Name:         up.Name,
			ContentType:  up.ContentType,
			Size:         up.Size,
			StorageKey:   key,
			UploadedDate: time.Now().UTC(),
		})
	}
	return proofFiles, nil
}

// recomputeRating refreshes the tenant's average rating and review count from
// all stored reviews, rounding the average to one decimal.
func (s *reviewService) recomputeRating(ctx context.Context, tenantID uuid.UUID) error {
	reviews, err := s.reviewRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return s.tenantRepo.UpdateRating(ctx, tenantID, 0, 0)
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := math.Round(float64(total)/float64(len(reviews))*10) / 10
	return s.tenantRepo.UpdateRating(ctx, tenantID, avg, len(reviews))
}
