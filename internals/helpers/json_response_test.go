package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performJSON(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJsonError(t *testing.T) {
	status, body := performJSON(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusConflict, "Email already registered")
	})

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email already registered", body["message"])
	assert.Equal(t, "CONFLICT", body["error_code"])
}

func TestJsonValidationError(t *testing.T) {
	status, body := performJSON(t, func(c *fiber.Ctx) error {
		return JsonValidationError(c, map[string][]string{
			"subject": {"Subject is required"},
		})
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])

	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "subject")
}

func TestJsonListCarriesPagination(t *testing.T) {
	status, body := performJSON(t, func(c *fiber.Ctx) error {
		return JsonList(c, "", []string{"a"}, BuildPaginationFromPage(41, 2, 20))
	})

	assert.Equal(t, fiber.StatusOK, status)
	p, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), p["page"])
	assert.Equal(t, float64(41), p["total"])
	assert.Equal(t, float64(3), p["total_pages"])
	assert.Equal(t, true, p["has_next"])
	assert.Equal(t, true, p["has_prev"])
}
