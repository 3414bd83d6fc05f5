package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFileType(t *testing.T) {
	for _, ft := range DocumentFileTypes {
		assert.True(t, IsValidFileType(ft), ft)
	}
	assert.False(t, IsValidFileType("tradelicense"))
	assert.False(t, IsValidFileType(""))
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", DetectContentType("invoice.PDF"))
	assert.Equal(t, "image/jpeg", DetectContentType("scan.jpeg"))
	assert.Equal(t, "text/plain", DetectContentType("notes.txt"))
	assert.Equal(t, "application/octet-stream", DetectContentType("archive.zip"))
	assert.Equal(t, "application/octet-stream", DetectContentType("noext"))
}
