package model

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDownloadable(t *testing.T) {
	for _, status := range []string{StatusDraft, StatusPendingPayment, StatusFailed} {
		r := ReportModel{Status: status}
		err := r.CheckDownloadable()
		require.Error(t, err, status)

		var fe *fiber.Error
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, fiber.StatusForbidden, fe.Code)
	}

	completed := ReportModel{Status: StatusCompleted}
	assert.NoError(t, completed.CheckDownloadable())
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat(FormatPDF))
	assert.True(t, IsValidFormat(FormatWord))
	assert.True(t, IsValidFormat(FormatExcel))
	assert.False(t, IsValidFormat("pdf"))
	assert.False(t, IsValidFormat("HTML"))
	assert.False(t, IsValidFormat(""))
}
