package dto

import "encoding/json"

type GenerateReportRequest struct {
	DocumentID string `json:"documentId"`
	Format     string `json:"format"`
}

type EditReportRequest struct {
	Data json.RawMessage `json:"data"`
}
