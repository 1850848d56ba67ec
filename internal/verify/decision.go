package verify

import "renty/internal/domain"

// DefaultConfidenceThreshold is the score at or below which a document is
// rejected as low quality. A score of exactly the threshold fails.
const DefaultConfidenceThreshold = 60

// User-facing failure reasons, in the order the decision policy evaluates
// them. The first applicable reason is the one shown when the caller renders a
// single diagnostic.
const (
	ReasonOwnerMismatch    = "owner name does not match the account holder."
	ReasonOccupantMismatch = "occupant name does not match the name entered."
	ReasonLowConfidence    = "document does not appear to be a valid lease agreement, or quality is too low."
	ReasonNotALease        = "not recognized as a lease/rental agreement"
)

// Engine applies the pass/fail policy over a parsed assessment.
type Engine struct {
	confidenceThreshold int
}

// NewEngine creates a decision engine. A non-positive threshold falls back to
// DefaultConfidenceThreshold.
func NewEngine(confidenceThreshold int) *Engine {
	if confidenceThreshold <= 0 {
		confidenceThreshold = DefaultConfidenceThreshold
	}
	return &Engine{confidenceThreshold: confidenceThreshold}
}

// Decide produces the final verdict. A document is valid iff it is a lease,
// both names match, and the confidence score strictly exceeds the threshold.
// FailureReasons collects every applicable reason in evaluation order.
func (e *Engine) Decide(a *domain.LeaseAssessment) *domain.LeaseVerdict {
	v := &domain.LeaseVerdict{
		OwnerMatch:            a.OwnerNameMatch,
		OccupantMatch:         a.OccupantNameMatch,
		ConfidenceScore:       a.ConfidenceScore,
		ExtractedOwnerName:    a.ExtractedOwnerName,
		ExtractedOccupantName: a.ExtractedOccupantName,
		DocumentTypeLabel:     a.DocumentTypeLabel,
		FailureReasons:        []string{},
	}

	if !a.OwnerNameMatch {
		v.FailureReasons = append(v.FailureReasons, ReasonOwnerMismatch)
	}
	if !a.OccupantNameMatch {
		v.FailureReasons = append(v.FailureReasons, ReasonOccupantMismatch)
	}
	if a.ConfidenceScore <= e.confidenceThreshold {
		v.FailureReasons = append(v.FailureReasons, ReasonLowConfidence)
	}
	if !a.IsLeaseDocument {
		v.FailureReasons = append(v.FailureReasons, ReasonNotALease)
	}

	v.IsValid = len(v.FailureReasons) == 0
	return v
}
