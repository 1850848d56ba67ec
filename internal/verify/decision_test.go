package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"renty/internal/domain"
	"renty/internal/verify"
)

func passingAssessment() *domain.LeaseAssessment {
	return &domain.LeaseAssessment{
		IsLeaseDocument:       true,
		OwnerNameMatch:        true,
		OccupantNameMatch:     true,
		ConfidenceScore:       92,
		ExtractedOwnerName:    "Alice Smith",
		ExtractedOccupantName: "Bob Jones",
		DocumentTypeLabel:     "residential lease",
	}
}

func TestDecide_AllChecksPass(t *testing.T) {
	engine := verify.NewEngine(verify.DefaultConfidenceThreshold)

	v := engine.Decide(passingAssessment())

	assert.True(t, v.IsValid)
	assert.Empty(t, v.FailureReasons)
	assert.Equal(t, "", v.PrimaryReason())
	assert.Equal(t, 92, v.ConfidenceScore)
	assert.Equal(t, "Alice Smith", v.ExtractedOwnerName)
	assert.Equal(t, "residential lease", v.DocumentTypeLabel)
}

func TestDecide_ConfidenceBoundary(t *testing.T) {
	engine := verify.NewEngine(verify.DefaultConfidenceThreshold)

	atThreshold := passingAssessment()
	atThreshold.ConfidenceScore = 60
	v := engine.Decide(atThreshold)
	assert.False(t, v.IsValid)
	assert.Contains(t, v.FailureReasons, verify.ReasonLowConfidence)

	justAbove := passingAssessment()
	justAbove.ConfidenceScore = 61
	v = engine.Decide(justAbove)
	assert.True(t, v.IsValid)
	assert.Empty(t, v.FailureReasons)
}

func TestDecide_ReasonOrdering(t *testing.T) {
	engine := verify.NewEngine(verify.DefaultConfidenceThreshold)

	a := passingAssessment()
	a.OwnerNameMatch = false
	a.OccupantNameMatch = false

	v := engine.Decide(a)

	assert.False(t, v.IsValid)
	assert.Equal(t, verify.ReasonOwnerMismatch, v.FailureReasons[0])
	assert.Equal(t, verify.ReasonOccupantMismatch, v.FailureReasons[1])
	assert.Equal(t, verify.ReasonOwnerMismatch, v.PrimaryReason())
}

func TestDecide_NotALeaseBlocksValidity(t *testing.T) {
	engine := verify.NewEngine(verify.DefaultConfidenceThreshold)

	a := passingAssessment()
	a.IsLeaseDocument = false

	v := engine.Decide(a)

	assert.False(t, v.IsValid)
	assert.Equal(t, []string{verify.ReasonNotALease}, v.FailureReasons)
}

func TestDecide_CollectsAllReasons(t *testing.T) {
	engine := verify.NewEngine(verify.DefaultConfidenceThreshold)

	a := &domain.LeaseAssessment{
		IsLeaseDocument:   false,
		OwnerNameMatch:    false,
		OccupantNameMatch: false,
		ConfidenceScore:   10,
	}

	v := engine.Decide(a)

	assert.Equal(t, []string{
		verify.ReasonOwnerMismatch,
		verify.ReasonOccupantMismatch,
		verify.ReasonLowConfidence,
		verify.ReasonNotALease,
	}, v.FailureReasons)
}

func TestDecide_CustomThreshold(t *testing.T) {
	engine := verify.NewEngine(80)

	a := passingAssessment()
	a.ConfidenceScore = 75

	v := engine.Decide(a)

	assert.False(t, v.IsValid)
	assert.Equal(t, verify.ReasonLowConfidence, v.PrimaryReason())
}

func TestNewEngine_NonPositiveThresholdFallsBack(t *testing.T) {
	engine := verify.NewEngine(0)

	a := passingAssessment()
	a.ConfidenceScore = 61

	assert.True(t, engine.Decide(a).IsValid)
}
