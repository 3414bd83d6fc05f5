package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	docModel "vatplatform_backend/internals/features/documents/document/model"
	reportModel "vatplatform_backend/internals/features/reports/report/model"
)

func docWithMetadata(t *testing.T, fields map[string]interface{}) *docModel.DocumentModel {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"text":            "extracted",
		"extractedFields": fields,
		"confidence":      0.9,
	})
	require.NoError(t, err)
	return &docModel.DocumentModel{
		ID:       uuid.New(),
		Metadata: datatypes.JSON(raw),
	}
}

func TestRenderValidatedReport(t *testing.T) {
	r := NewRenderer(t.TempDir())
	doc := docWithMetadata(t, map[string]interface{}{
		"vatTin":        "100123456789012",
		"taxableAmount": 2500.5,
	})

	data, err := r.Render(doc, reportModel.FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "100123456789012", data.VatTin)
	assert.Equal(t, 2500.5, data.TaxableAmount)
	assert.Equal(t, "UAE_FTA", data.Compliance.Format)
	assert.True(t, data.Compliance.Validated)
	assert.True(t, strings.HasSuffix(data.FilePath, ".pdf"), data.FilePath)

	// The artifact landed in the output dir.
	entries, err := os.ReadDir(r.OutputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), doc.ID.String()))

	content, err := os.ReadFile(filepath.Join(r.OutputDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), "100123456789012")
}

func TestRenderDefaultsWhenMetadataSparse(t *testing.T) {
	r := NewRenderer(t.TempDir())
	doc := docWithMetadata(t, map[string]interface{}{})

	data, err := r.Render(doc, reportModel.FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "N/A", data.VatTin)
	assert.Equal(t, 0.0, data.TaxableAmount)
	assert.False(t, data.Compliance.Validated)
}

func TestRenderFormatExtensions(t *testing.T) {
	r := NewRenderer(t.TempDir())
	doc := docWithMetadata(t, map[string]interface{}{})

	for format, ext := range map[string]string{
		reportModel.FormatPDF:   ".pdf",
		reportModel.FormatWord:  ".docx",
		reportModel.FormatExcel: ".xlsx",
	} {
		data, err := r.Render(doc, format)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(data.FilePath, ext),
			"%s should produce %s, got %s", format, ext, data.FilePath)
	}
}

func TestRenderRejectsCorruptMetadata(t *testing.T) {
	r := NewRenderer(t.TempDir())
	doc := &docModel.DocumentModel{
		ID:       uuid.New(),
		Metadata: datatypes.JSON([]byte("not json")),
	}
	_, err := r.Render(doc, reportModel.FormatPDF)
	assert.Error(t, err)
}
