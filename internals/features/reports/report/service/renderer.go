package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	docModel "vatplatform_backend/internals/features/documents/document/model"
	docService "vatplatform_backend/internals/features/documents/document/service"
	reportModel "vatplatform_backend/internals/features/reports/report/model"
)

// Compliance is the validation stamp carried inside the report data.
type Compliance struct {
	Format    string `json:"format"`
	Validated bool   `json:"validated"`
}

// ReportData is the blob persisted on the report: the fields pulled from
// the document metadata plus where the rendered artifact lives.
type ReportData struct {
	VatTin        string     `json:"vatTin"`
	TaxableAmount float64    `json:"taxableAmount"`
	FilePath      string     `json:"filePath"`
	Compliance    Compliance `json:"compliance"`
}

// Renderer turns a document's metadata into a downloadable artifact in
// the requested format. It is a collaborator injected at startup.
type Renderer struct {
	OutputDir string
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{OutputDir: outputDir}
}

// Render produces the report data blob and writes the artifact. A
// failure anywhere surfaces as a generic processing error upstream.
func (r *Renderer) Render(document *docModel.DocumentModel, format string) (*ReportData, error) {
	var meta docService.Metadata
	if len(document.Metadata) > 0 {
		if err := json.Unmarshal(document.Metadata, &meta); err != nil {
			return nil, fmt.Errorf("document metadata: %w", err)
		}
	}

	data := &ReportData{
		VatTin:        "N/A",
		TaxableAmount: 0,
	}
	if tin, ok := meta.ExtractedFields["vatTin"].(string); ok && tin != "" {
		data.VatTin = tin
	}
	if amt, ok := meta.ExtractedFields["taxableAmount"].(float64); ok {
		data.TaxableAmount = amt
	}

	name := fmt.Sprintf("%s-%d.%s", document.ID, time.Now().Unix(), extensionFor(format))
	fullPath := filepath.Join(r.OutputDir, name)
	if err := r.writeArtifact(fullPath, format, data); err != nil {
		return nil, err
	}
	data.FilePath = "/" + r.OutputDir + "/" + name

	data.Compliance = Compliance{
		Format:    "UAE_FTA",
		Validated: len(data.VatTin) == 15,
	}
	return data, nil
}

func (r *Renderer) writeArtifact(path, format string, data *ReportData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	content := fmt.Sprintf("VAT Report\nTIN: %s\nTaxable Amount: %.2f\nFormat: %s\n",
		data.VatTin, data.TaxableAmount, format)
	return os.WriteFile(path, []byte(content), 0o644)
}

func extensionFor(format string) string {
	switch format {
	case reportModel.FormatWord:
		return "docx"
	case reportModel.FormatExcel:
		return "xlsx"
	default:
		return strings.ToLower(reportModel.FormatPDF)
	}
}
