package domain

// LeaseMediaType represents the document formats accepted for lease verification.
type LeaseMediaType string

const (
	MediaTypePDF  LeaseMediaType = "pdf"
	MediaTypeDOC  LeaseMediaType = "doc"
	MediaTypeDOCX LeaseMediaType = "docx"
)

// MIME content types for the accepted lease document formats.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOC  = "application/msword"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AllowedLeaseMediaTypes maps MIME content types to LeaseMediaType.
var AllowedLeaseMediaTypes = map[string]LeaseMediaType{
	ContentTypePDF:  MediaTypePDF,
	ContentTypeDOC:  MediaTypeDOC,
	ContentTypeDOCX: MediaTypeDOCX,
}

// LeaseMediaTypeExtensions maps LeaseMediaType to the file extension used for
// the transient on-disk copy.
var LeaseMediaTypeExtensions = map[LeaseMediaType]string{
	MediaTypePDF:  "pdf",
	MediaTypeDOC:  "doc",
	MediaTypeDOCX: "docx",
}

// AllowedLeaseExtensions maps file extensions (without dot) to MIME content types.
var AllowedLeaseExtensions = map[string]string{
	"pdf":  ContentTypePDF,
	"doc":  ContentTypeDOC,
	"docx": ContentTypeDOCX,
}

// ProofFileType represents the allowed file types for review proof uploads.
type ProofFileType string

const (
	ProofTypePDF ProofFileType = "pdf"
	ProofTypeJPG ProofFileType = "jpg"
	ProofTypePNG ProofFileType = "png"
)

// AllowedProofContentTypes maps MIME content types to ProofFileType.
var AllowedProofContentTypes = map[string]ProofFileType{
	"application/pdf": ProofTypePDF,
	"image/jpeg":      ProofTypeJPG,
	"image/png":       ProofTypePNG,
}

// CreditLabel is the abstracted credit-score bucket shown on tenant profiles.
type CreditLabel string

const (
	CreditGood     CreditLabel = "Good"
	CreditMediocre CreditLabel = "Mediocre"
	CreditBad      CreditLabel = "Bad"
)
