package handler

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"renty/internal/domain"
	"renty/internal/verify"
)

// VerificationHandler exposes the lease verification pipeline for standalone
// document checks.
type VerificationHandler struct {
	pipeline       *verify.Pipeline
	maxUploadBytes int64
}

// NewVerificationHandler creates a new VerificationHandler.
func NewVerificationHandler(pipeline *verify.Pipeline, maxUploadMB int64) *VerificationHandler {
	return &VerificationHandler{
		pipeline:       pipeline,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}
}

// VerifyLease handles POST /api/v1/leases/verify (multipart form: file,
// owner_name, occupant_name). A completed pipeline run always returns 200
// with the verdict, valid or not; only pipeline errors map to error statuses.
func (h *VerificationHandler) VerifyLease(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}

	data, mediaType, ok := readUpload(c, fh, h.maxUploadBytes)
	if !ok {
		return
	}

	verdict, err := h.pipeline.Verify(c.Request.Context(), verify.Request{
		DocumentBytes: data,
		MediaType:     mediaType,
		OwnerName:     c.PostForm("owner_name"),
		OccupantName:  c.PostForm("occupant_name"),
	})
	if err != nil {
		status, code, msg := MapVerifyError(err)
		if status >= http.StatusInternalServerError {
			log.Printf("verificationHandler.VerifyLease: %v", err)
		}
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, verdict)
}

// mediaTypeFromName maps a file extension to its declared media type, for
// multipart parts uploaded without a Content-Type.
func mediaTypeFromName(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	return domain.AllowedLeaseExtensions[ext]
}
