package domain

import (
	"time"

	"github.com/google/uuid"
)

// Landlord is an authenticated account that can create tenants and reviews.
type Landlord struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PhoneNumber  string    `db:"phone_number" json:"phone_number"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Tenant is a rentee profile that landlords review.
type Tenant struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         *string   `db:"email" json:"email,omitempty"`
	PhoneNumber   *string   `db:"phone_number" json:"phone_number,omitempty"`
	AverageRating float64   `db:"average_rating" json:"average_rating"`
	TotalReviews  int       `db:"total_reviews" json:"total_reviews"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// TenantProfile is a tenant with reviews and derived screening fields attached.
type TenantProfile struct {
	Tenant
	Reviews          []Review    `json:"reviews_received"`
	CreditScoreLabel CreditLabel `json:"credit_score_label"`
	BankruptcyReport bool        `json:"bankruptcy_report"`
}

// CategoryRatings holds the per-category star ratings of a review.
type CategoryRatings struct {
	RentPayments    int `json:"rent_payments,omitempty"`
	LeaseCompletion int `json:"lease_completion,omitempty"`
	Communication   int `json:"communication,omitempty"`
	PropertyCare    int `json:"property_care,omitempty"`
	LegalDisputes   int `json:"legal_disputes,omitempty"`
}

// ProofFile describes an uploaded evidence file attached to a review.
type ProofFile struct {
	Name         string    `json:"name"`
	ContentType  string    `json:"type"`
	Size         int64     `json:"size"`
	StorageKey   string    `json:"storage_key"`
	UploadedDate time.Time `json:"uploaded_date"`
	// URL is a short-lived presigned download link, attached when the file is
	// served; it is never stored.
	URL string `json:"url,omitempty"`
}

// Review is a landlord's review of a tenant.
type Review struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	TenantID        uuid.UUID       `db:"tenant_id" json:"tenant_id"`
	ReviewerID      uuid.UUID       `db:"reviewer_id" json:"reviewer_id"`
	ReviewerName    string          `db:"reviewer_name" json:"reviewer_name"`
	Rating          int             `db:"rating" json:"rating"`
	Comment         *string         `db:"comment" json:"comment,omitempty"`
	PropertyAddress *string         `db:"property_address" json:"property_address,omitempty"`
	RentalPeriod    *string         `db:"rental_period" json:"rental_period,omitempty"`
	Ratings         CategoryRatings `db:"-" json:"ratings"`
	ProofFiles      []ProofFile     `db:"-" json:"proof_files"`
	LeaseVerified   bool            `db:"lease_verified" json:"lease_verified"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// LeaseAssessment is the structured record recovered from the understanding
// service's reply to a lease verification prompt.
type LeaseAssessment struct {
	IsLeaseDocument       bool   `json:"is_lease_document"`
	OwnerNameMatch        bool   `json:"owner_name_match"`
	OccupantNameMatch     bool   `json:"occupant_name_match"`
	ConfidenceScore       int    `json:"confidence_score"`
	ExtractedOwnerName    string `json:"extracted_owner_name,omitempty"`
	ExtractedOccupantName string `json:"extracted_occupant_name,omitempty"`
	DocumentTypeLabel     string `json:"document_type_label,omitempty"`
}

// LeaseVerdict is the pipeline's final pass/fail decision with diagnostics.
// FailureReasons is ordered by user-facing priority and empty iff IsValid.
type LeaseVerdict struct {
	IsValid               bool     `json:"is_valid"`
	OwnerMatch            bool     `json:"owner_match"`
	OccupantMatch         bool     `json:"occupant_match"`
	ConfidenceScore       int      `json:"confidence_score"`
	ExtractedOwnerName    string   `json:"extracted_owner_name,omitempty"`
	ExtractedOccupantName string   `json:"extracted_occupant_name,omitempty"`
	DocumentTypeLabel     string   `json:"document_type_label,omitempty"`
	FailureReasons        []string `json:"failure_reasons"`
}

// PrimaryReason returns the highest-priority failure reason, or "" for a
// passing verdict.
func (v *LeaseVerdict) PrimaryReason() string {
	if len(v.FailureReasons) == 0 {
		return ""
	}
	return v.FailureReasons[0]
}
