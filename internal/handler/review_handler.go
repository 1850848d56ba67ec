package handler

import (
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"renty/internal/domain"
	"renty/internal/middleware"
	"renty/internal/service"
	"renty/internal/verify"
)

// ReviewHandler handles review submission.
type ReviewHandler struct {
	reviewService  service.ReviewService
	tenantService  service.TenantService
	pipeline       *verify.Pipeline
	maxUploadBytes int64
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(
	reviewService service.ReviewService,
	tenantService service.TenantService,
	pipeline *verify.Pipeline,
	maxUploadMB int64,
) *ReviewHandler {
	return &ReviewHandler{
		reviewService:  reviewService,
		tenantService:  tenantService,
		pipeline:       pipeline,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}
}

// Create handles POST /api/v1/reviews (multipart form). When a lease_agreement
// file is attached, the lease verification pipeline runs first and a failing
// verdict rejects the submission with the ordered failure reasons.
func (h *ReviewHandler) Create(c *gin.Context) {
	reviewerID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}
	reviewerName := c.GetString(middleware.ContextKeyName)

	tenantID, err := uuid.Parse(c.PostForm("tenant_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid tenant ID")
		return
	}
	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "rating is required")
		return
	}

	input := service.CreateReviewInput{
		TenantID:        tenantID,
		ReviewerID:      reviewerID,
		Rating:          rating,
		Comment:         optionalForm(c, "comment"),
		PropertyAddress: optionalForm(c, "property_address"),
		RentalPeriod:    optionalForm(c, "rental_period"),
		Ratings: domain.CategoryRatings{
			RentPayments:    formInt(c, "rent_payments"),
			LeaseCompletion: formInt(c, "lease_completion"),
			Communication:   formInt(c, "communication"),
			PropertyCare:    formInt(c, "property_care"),
			LegalDisputes:   formInt(c, "legal_disputes"),
		},
	}

	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "multipart form required")
		return
	}

	if files := form.File["lease_agreement"]; len(files) > 0 {
		verdict, ok := h.verifyLease(c, tenantID, reviewerName, files[0])
		if !ok {
			return
		}
		if !verdict.IsValid {
			c.JSON(http.StatusUnprocessableEntity, APIResponse{
				Success: false,
				Error: &APIError{
					Code:    "LEASE_VERIFICATION_FAILED",
					Message: verdict.PrimaryReason(),
					Reasons: verdict.FailureReasons,
				},
			})
			return
		}
		input.LeaseVerified = true
	}

	proofs, closeProofs, ok := openProofFiles(c, form.File["proof_files"])
	if !ok {
		return
	}
	defer closeProofs()
	input.ProofFiles = proofs

	review, err := h.reviewService.Create(c.Request.Context(), input)
	if err != nil {
		status, code, msg := MapDomainError(err)
		if status == http.StatusInternalServerError {
			log.Printf("reviewHandler.Create: %v", err)
		}
		RespondError(c, status, code, msg)
		return
	}
	RespondCreated(c, review)
}

// verifyLease runs the pipeline for a review's attached lease document. The
// claimed owner is the reviewing landlord; the claimed occupant is the tenant
// under review. Returns ok=false when an error response was already written.
func (h *ReviewHandler) verifyLease(c *gin.Context, tenantID uuid.UUID, reviewerName string, fh *multipart.FileHeader) (*domain.LeaseVerdict, bool) {
	profile, err := h.tenantService.GetProfile(c.Request.Context(), tenantID)
	if err != nil {
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return nil, false
	}

	data, mediaType, ok := readUpload(c, fh, h.maxUploadBytes)
	if !ok {
		return nil, false
	}

	verdict, err := h.pipeline.Verify(c.Request.Context(), verify.Request{
		DocumentBytes: data,
		MediaType:     mediaType,
		OwnerName:     reviewerName,
		OccupantName:  profile.Name,
	})
	if err != nil {
		status, code, msg := MapVerifyError(err)
		if status >= http.StatusInternalServerError {
			log.Printf("reviewHandler.verifyLease: %v", err)
		}
		RespondError(c, status, code, msg)
		return nil, false
	}
	return verdict, true
}

func openProofFiles(c *gin.Context, headers []*multipart.FileHeader) ([]service.ProofUpload, func(), bool) {
	uploads := make([]service.ProofUpload, 0, len(headers))
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "could not read proof file")
			return nil, nil, false
		}
		opened = append(opened, f)
		uploads = append(uploads, service.ProofUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return uploads, closeAll, true
}

// readUpload loads an uploaded file into memory and resolves its declared
// media type, falling back to the file extension when the part carries none.
// Files over maxBytes are rejected before being read.
func readUpload(c *gin.Context, fh *multipart.FileHeader, maxBytes int64) ([]byte, string, bool) {
	if maxBytes > 0 && fh.Size > maxBytes {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size")
		return nil, "", false
	}

	f, err := fh.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "could not read uploaded file")
		return nil, "", false
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "could not read uploaded file")
		return nil, "", false
	}

	mediaType := fh.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = mediaTypeFromName(fh.Filename)
	}
	return data, mediaType, true
}

func optionalForm(c *gin.Context, key string) *string {
	if v := c.PostForm(key); v != "" {
		return &v
	}
	return nil
}

func formInt(c *gin.Context, key string) int {
	v, _ := strconv.Atoi(c.PostForm(key))
	return v
}
