package verify

import "fmt"

// BuildLeasePrompt returns the verification prompt for an extracted lease
// document. The reply must be a single JSON object with no surrounding prose;
// ParseAssessment tolerates prose anyway because models do not always comply.
func BuildLeasePrompt(documentText, ownerName, occupantName string) string {
	return fmt.Sprintf(`You are a rental document verification assistant. Analyze the document text below and assess the following:

1. Is this a legitimate residential lease or rental agreement?
2. Does the property owner (landlord) named in the document match "%s"? Allow for minor variation such as middle names, initials, or common abbreviations.
3. Does the occupant (tenant) named in the document match "%s"? Allow for the same minor variation.
4. Give a confidence score between 0 and 100 for your overall assessment.

Document text:
%s

Respond with ONLY a single JSON object in this exact format, with no markdown, no code fences, and no explanation:
{
  "is_lease_document": boolean,
  "owner_name_match": boolean,
  "occupant_name_match": boolean,
  "confidence_score": integer between 0 and 100,
  "extracted_owner_name": "owner name found in the document, or null",
  "extracted_occupant_name": "occupant name found in the document, or null",
  "document_type_label": "short label such as residential lease"
}`, ownerName, occupantName, documentText)
}
