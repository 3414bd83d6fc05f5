package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeTika(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/tika", r.URL.Path)
		assert.Equal(t, "text/plain", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func tempUpload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessDocumentScrapesTin(t *testing.T) {
	srv := fakeTika(t, "Invoice\nTRN: 100123456789012\nTotal: 500.00")
	extractor := &Extractor{BaseURL: srv.URL, Client: srv.Client()}

	meta, err := ProcessDocument(context.Background(), extractor, tempUpload(t, "%PDF-1.4"))
	require.NoError(t, err)

	assert.Equal(t, "100123456789012", meta.ExtractedFields["vatTin"])
	assert.Equal(t, 0.9, meta.Confidence)
	assert.Empty(t, meta.Errors)
	assert.Contains(t, meta.Text, "Invoice")
}

func TestProcessDocumentWithoutTin(t *testing.T) {
	srv := fakeTika(t, "no tax number in here")
	extractor := &Extractor{BaseURL: srv.URL, Client: srv.Client()}

	meta, err := ProcessDocument(context.Background(), extractor, tempUpload(t, "%PDF-1.4"))
	require.NoError(t, err)

	assert.NotContains(t, meta.ExtractedFields, "vatTin")
	assert.Empty(t, meta.Errors)
}

func TestProcessDocumentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	extractor := &Extractor{BaseURL: srv.URL, Client: srv.Client()}

	_, err := ProcessDocument(context.Background(), extractor, tempUpload(t, "x"))
	assert.Error(t, err)
}

func TestProcessDocumentRespectsContext(t *testing.T) {
	srv := fakeTika(t, "slow")
	extractor := &Extractor{BaseURL: srv.URL, Client: &http.Client{Timeout: time.Second}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ProcessDocument(ctx, extractor, tempUpload(t, "x"))
	assert.Error(t, err)
}

func TestValidateKnownFields(t *testing.T) {
	cases := []struct {
		name    string
		tin     interface{}
		wantErr bool
	}{
		{"valid 15 digits", "100123456789012", false},
		{"too short", "12345", true},
		{"too long", "1001234567890123", true},
		{"non-numeric", "10012345678901A", true},
		{"not a string", 100123456789012, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := &Metadata{ExtractedFields: map[string]interface{}{"vatTin": tc.tin}}
			ValidateKnownFields(meta)
			if tc.wantErr {
				assert.Contains(t, meta.Errors, "Invalid VAT/TIN: Must be 15 digits")
			} else {
				assert.Empty(t, meta.Errors)
			}
		})
	}

	// Absent field is not an error.
	meta := &Metadata{ExtractedFields: map[string]interface{}{}}
	ValidateKnownFields(meta)
	assert.Empty(t, meta.Errors)
}
