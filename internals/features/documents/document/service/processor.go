package service

import (
	"context"
	"regexp"
)

// Metadata is the extraction result stored verbatim on the document:
// raw text, whatever structured fields the extractor produced, a
// confidence score and any validation errors found in known sub-fields.
type Metadata struct {
	Text            string                 `json:"text"`
	ExtractedFields map[string]interface{} `json:"extractedFields"`
	Confidence      float64                `json:"confidence"`
	Errors          []string               `json:"errors,omitempty"`
}

const defaultConfidence = 0.9

// vatTinPattern: a UAE TIN is exactly 15 digits.
var vatTinPattern = regexp.MustCompile(`^\d{15}$`)

// tinCandidate finds 15-digit runs in extracted text.
var tinCandidate = regexp.MustCompile(`\b\d{15}\b`)

// ProcessDocument runs the extraction pipeline for an uploaded file:
// text extraction by the external server, field scraping, then explicit
// validation of the known sub-fields.
func ProcessDocument(ctx context.Context, extractor *Extractor, filePath string) (*Metadata, error) {
	text, err := extractor.ExtractText(ctx, filePath)
	if err != nil {
		return nil, err
	}

	meta := &Metadata{
		Text:            text,
		ExtractedFields: map[string]interface{}{},
		Confidence:      defaultConfidence,
	}

	if tin := tinCandidate.FindString(text); tin != "" {
		meta.ExtractedFields["vatTin"] = tin
	}

	ValidateKnownFields(meta)
	return meta, nil
}

// ValidateKnownFields checks the sub-fields the platform understands and
// appends an error per violation. Unknown fields pass through untouched.
func ValidateKnownFields(meta *Metadata) {
	if raw, ok := meta.ExtractedFields["vatTin"]; ok {
		tin, ok := raw.(string)
		if !ok || !vatTinPattern.MatchString(tin) {
			meta.Errors = append(meta.Errors, "Invalid VAT/TIN: Must be 15 digits")
		}
	}
}
