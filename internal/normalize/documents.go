package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ripclass/lcopilot/internal/model"
)

// NormalizeDocuments maps raw per-document records into canonical documents.
// Records are processed in original order; the positional index doubles as
// the identity fallback for records without an id. Malformed records degrade
// to documented defaults, never to an error.
func NormalizeDocuments(rawDocuments []any) []model.Document {
	documents := make([]model.Document, 0, len(rawDocuments))

	for i, entry := range rawDocuments {
		raw := asMap(entry)

		documentID := firstString(raw, "document_id", "id")
		if documentID == "" {
			documentID = strconv.Itoa(i)
		}

		filename := firstString(raw, "filename", "name")
		if filename == "" {
			filename = fmt.Sprintf("Document %d", i+1)
		}

		typeKey := firstString(raw, "document_type", "type")
		if typeKey == "" {
			typeKey = defaultTypeKey
		}

		issuesCount := preferNumeric(raw, "issues_count", 0)
		if issuesCount < 0 {
			issuesCount = 0
		}

		extractionStatus := strings.ToLower(firstString(raw, "extraction_status"))
		if extractionStatus == "" {
			extractionStatus = "unknown"
		}

		documents = append(documents, model.Document{
			DocumentID:       documentID,
			Filename:         filename,
			TypeKey:          typeKey,
			DisplayType:      displayType(typeKey),
			IssuesCount:      issuesCount,
			ExtractionStatus: extractionStatus,
			DerivedStatus:    deriveStatus(extractionStatus, issuesCount),
			ExtractedFields:  mapField(raw, "extracted_fields", "fields"),
		})
	}

	return documents
}
