package constants

import (
	"path/filepath"
	"strings"
)

// Document file types accepted by the upload endpoint.
const (
	FileTypeTradeLicense       = "TradeLicense"
	FileTypeCTCertificate      = "CTCertificate"
	FileTypeFinancialStatement = "FinancialStatement"
	FileTypeOther              = "Other"
)

var DocumentFileTypes = []string{
	FileTypeTradeLicense,
	FileTypeCTCertificate,
	FileTypeFinancialStatement,
	FileTypeOther,
}

func IsValidFileType(t string) bool {
	for _, ft := range DocumentFileTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// DetectContentType maps an uploaded filename to the Content-Type sent to
// the extraction server. Unknown extensions fall back to octet-stream and
// let the server sniff.
func DetectContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".xls":
		return "application/vnd.ms-excel"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
