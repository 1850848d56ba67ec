package verify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"renty/internal/verify"
)

func TestBuildLeasePrompt(t *testing.T) {
	text := "RESIDENTIAL LEASE AGREEMENT\nOwner: Alice Smith\nOccupant: Bob Jones"

	prompt := verify.BuildLeasePrompt(text, "Alice Smith", "Bob Jones")

	assert.Contains(t, prompt, text, "document text is embedded verbatim")
	assert.Contains(t, prompt, `"Alice Smith"`)
	assert.Contains(t, prompt, `"Bob Jones"`)
	assert.Contains(t, prompt, "between 0 and 100")
	assert.Contains(t, prompt, "ONLY a single JSON object")

	for _, field := range []string{
		"is_lease_document",
		"owner_name_match",
		"occupant_name_match",
		"confidence_score",
		"extracted_owner_name",
		"extracted_occupant_name",
		"document_type_label",
	} {
		assert.Contains(t, prompt, field)
	}
}

func TestBuildLeasePrompt_AllowsNameVariation(t *testing.T) {
	prompt := verify.BuildLeasePrompt("text", "A", "B")
	assert.True(t, strings.Contains(prompt, "middle names"))
}
