package verify

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"renty/internal/domain"
)

// ParseAssessment recovers a LeaseAssessment from the understanding service's
// raw reply. The model is instructed to return bare JSON but may wrap the
// record in prose, so the first balanced top-level object is located and
// decoded strictly: a missing required field, a mistyped field, or a
// confidence score outside [0,100] fails with MalformedAssessmentError rather
// than being defaulted or clamped.
func ParseAssessment(raw string) (*domain.LeaseAssessment, error) {
	span, ok := firstJSONObject(raw)
	if !ok {
		return nil, &MalformedAssessmentError{Raw: raw, Err: errors.New("no JSON object found in reply")}
	}

	var rec struct {
		IsLeaseDocument       *bool   `json:"is_lease_document"`
		OwnerNameMatch        *bool   `json:"owner_name_match"`
		OccupantNameMatch     *bool   `json:"occupant_name_match"`
		ConfidenceScore       *int    `json:"confidence_score"`
		ExtractedOwnerName    *string `json:"extracted_owner_name"`
		ExtractedOccupantName *string `json:"extracted_occupant_name"`
		DocumentTypeLabel     *string `json:"document_type_label"`
	}
	if err := json.Unmarshal([]byte(span), &rec); err != nil {
		return nil, &MalformedAssessmentError{Raw: raw, Err: err}
	}

	switch {
	case rec.IsLeaseDocument == nil:
		return nil, &MalformedAssessmentError{Raw: raw, Err: errors.New("missing field is_lease_document")}
	case rec.OwnerNameMatch == nil:
		return nil, &MalformedAssessmentError{Raw: raw, Err: errors.New("missing field owner_name_match")}
	case rec.OccupantNameMatch == nil:
		return nil, &MalformedAssessmentError{Raw: raw, Err: errors.New("missing field occupant_name_match")}
	case rec.ConfidenceScore == nil:
		return nil, &MalformedAssessmentError{Raw: raw, Err: errors.New("missing field confidence_score")}
	}
	if *rec.ConfidenceScore < 0 || *rec.ConfidenceScore > 100 {
		return nil, &MalformedAssessmentError{
			Raw: raw,
			Err: fmt.Errorf("confidence_score %d outside [0,100]", *rec.ConfidenceScore),
		}
	}

	a := &domain.LeaseAssessment{
		IsLeaseDocument:   *rec.IsLeaseDocument,
		OwnerNameMatch:    *rec.OwnerNameMatch,
		OccupantNameMatch: *rec.OccupantNameMatch,
		ConfidenceScore:   *rec.ConfidenceScore,
	}
	if rec.ExtractedOwnerName != nil {
		a.ExtractedOwnerName = strings.TrimSpace(*rec.ExtractedOwnerName)
	}
	if rec.ExtractedOccupantName != nil {
		a.ExtractedOccupantName = strings.TrimSpace(*rec.ExtractedOccupantName)
	}
	if rec.DocumentTypeLabel != nil {
		a.DocumentTypeLabel = strings.TrimSpace(*rec.DocumentTypeLabel)
	}
	return a, nil
}

// firstJSONObject returns the first balanced top-level {...} span in s. The
// scan is string-aware so braces inside JSON string values do not unbalance it.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
