package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"renty/internal/domain"
	"renty/internal/handler"
	"renty/internal/port"
	"renty/internal/verify"
	"renty/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type verifyEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		IsValid        bool     `json:"is_valid"`
		FailureReasons []string `json:"failure_reasons"`
	} `json:"data"`
	Error *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Reasons []string `json:"reasons"`
	} `json:"error"`
}

type verifyHarness struct {
	store     *mocks.MockDocumentStore
	extractor *mocks.MockTextExtractor
	completer *mocks.MockTextCompleter
	router    *gin.Engine
}

func newVerifyHarness() *verifyHarness {
	h := &verifyHarness{
		store:     new(mocks.MockDocumentStore),
		extractor: new(mocks.MockTextExtractor),
		completer: new(mocks.MockTextCompleter),
	}
	pipeline := verify.NewPipeline(h.store, h.extractor, h.completer, verify.NewEngine(0))

	h.router = gin.New()
	h.router.POST("/api/v1/leases/verify", handler.NewVerificationHandler(pipeline, 1).VerifyLease)
	return h
}

func (h *verifyHarness) expectDocumentFlow(reply string, replyErr error) {
	handle := &port.DocumentHandle{ID: uuid.New(), Path: "/tmp/doc.pdf"}
	h.store.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(handle, nil)
	h.store.On("Release", handle).Return(nil)
	h.extractor.On("ExtractText", mock.Anything, mock.Anything, mock.Anything).
		Return("LEASE AGREEMENT", nil)
	h.completer.On("Complete", mock.Anything, mock.Anything).Return(reply, replyErr)
}

// leaseForm builds a multipart body with a typed file part and the claimed names.
func leaseForm(t *testing.T, fileName, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake lease"))
	require.NoError(t, err)

	require.NoError(t, w.WriteField("owner_name", "Alice Smith"))
	require.NoError(t, w.WriteField("occupant_name", "Bob Jones"))
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postLease(t *testing.T, router *gin.Engine, body *bytes.Buffer, contentType string) (*httptest.ResponseRecorder, verifyEnvelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leases/verify", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env verifyEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestVerifyLease_Valid(t *testing.T) {
	h := newVerifyHarness()
	h.expectDocumentFlow(`{"is_lease_document": true, "owner_name_match": true, "occupant_name_match": true, "confidence_score": 95}`, nil)

	body, contentType := leaseForm(t, "lease.pdf", domain.ContentTypePDF)
	rec, env := postLease(t, h.router, body, contentType)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.True(t, env.Data.IsValid)
	assert.Empty(t, env.Data.FailureReasons)
}

func TestVerifyLease_FailedVerdictIsStillOK(t *testing.T) {
	h := newVerifyHarness()
	h.expectDocumentFlow(`{"is_lease_document": true, "owner_name_match": false, "occupant_name_match": true, "confidence_score": 90}`, nil)

	body, contentType := leaseForm(t, "lease.pdf", domain.ContentTypePDF)
	rec, env := postLease(t, h.router, body, contentType)

	// A completed check is a 200 either way; the verdict carries the outcome.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.False(t, env.Data.IsValid)
	assert.Equal(t, []string{verify.ReasonOwnerMismatch}, env.Data.FailureReasons)
}

func TestVerifyLease_MissingFile(t *testing.T) {
	h := newVerifyHarness()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("owner_name", "Alice Smith"))
	require.NoError(t, w.WriteField("occupant_name", "Bob Jones"))
	require.NoError(t, w.Close())

	rec, env := postLease(t, h.router, &buf, w.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MISSING_FILE", env.Error.Code)
}

func TestVerifyLease_UnsupportedMediaType(t *testing.T) {
	h := newVerifyHarness()

	body, contentType := leaseForm(t, "photo.png", "image/png")
	rec, env := postLease(t, h.router, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", env.Error.Code)
	h.store.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyLease_MediaTypeFallsBackToExtension(t *testing.T) {
	h := newVerifyHarness()
	h.expectDocumentFlow(`{"is_lease_document": true, "owner_name_match": true, "occupant_name_match": true, "confidence_score": 95}`, nil)

	// File part uploaded without a Content-Type header.
	body, contentType := leaseForm(t, "lease.pdf", "")
	rec, env := postLease(t, h.router, body, contentType)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Data.IsValid)
}

func TestVerifyLease_FileTooLarge(t *testing.T) {
	h := newVerifyHarness()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="lease.pdf"`)
	header.Set("Content-Type", domain.ContentTypePDF)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), 1<<20+1))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("owner_name", "Alice Smith"))
	require.NoError(t, w.WriteField("occupant_name", "Bob Jones"))
	require.NoError(t, w.Close())

	rec, env := postLease(t, h.router, &buf, w.FormDataContentType())

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FILE_TOO_LARGE", env.Error.Code)
	h.store.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyLease_VerifierDown(t *testing.T) {
	h := newVerifyHarness()
	h.expectDocumentFlow("", &verify.ServiceError{StatusCode: 500, Body: "upstream error"})

	body, contentType := leaseForm(t, "lease.pdf", domain.ContentTypePDF)
	rec, env := postLease(t, h.router, body, contentType)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VERIFIER_UNAVAILABLE", env.Error.Code)
	h.store.AssertNumberOfCalls(t, "Release", 1)
}
