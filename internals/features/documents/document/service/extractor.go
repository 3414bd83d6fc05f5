package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"vatplatform_backend/internals/constants"
)

// Extractor talks to the external text/field-extraction server (Tika).
// One attempt per call, no retry; the caller maps failure to a 500.
type Extractor struct {
	BaseURL string
	Client  *http.Client
}

func NewExtractor(baseURL string) *Extractor {
	return &Extractor{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ExtractText PUTs the raw file bytes to the extraction server and
// returns the plain-text body.
func (e *Extractor) ExtractText(ctx context.Context, filePath string) (string, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	return e.ExtractTextFromBytes(ctx, raw, constants.DetectContentType(filePath))
}

func (e *Extractor) ExtractTextFromBytes(ctx context.Context, raw []byte, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, e.BaseURL+"/tika", bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("Content-Type", contentType)

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("extraction server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extraction server: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
