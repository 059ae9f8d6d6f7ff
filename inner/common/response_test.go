package common

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, handler fiber.Handler) (map[string]any, int) {
	t.Helper()

	app := fiber.New()
	app.Get("/probe", handler)

	req := httptest.NewRequest("GET", "/probe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded, resp.StatusCode
}

func TestOkResponse_EnvelopeShape(t *testing.T) {
	decoded, status := performRequest(t, func(c *fiber.Ctx) error {
		return OkResponse(c, fiber.StatusCreated, "Employee created successfully", map[string]string{"empId": "x"})
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, "Employee created successfully", decoded["message"])
	assert.Equal(t, "/probe", decoded["path"])
	assert.Equal(t, float64(fiber.StatusCreated), decoded["statusCode"])
	assert.NotEmpty(t, decoded["timestamp"])
	assert.NotNil(t, decoded["data"])
}

func TestErrResponse_EnvelopeShape(t *testing.T) {
	decoded, status := performRequest(t, func(c *fiber.Ctx) error {
		return ErrResponse(c, fiber.StatusNotFound, ErrCodeNotFound, "Employee not found with Id: abc")
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, ErrCodeNotFound, decoded["errorCode"])
	assert.Equal(t, "Employee not found with Id: abc", decoded["errorMessage"])
	assert.Equal(t, float64(fiber.StatusNotFound), decoded["status"])
	assert.NotEmpty(t, decoded["timestamp"])
	// пустые необязательные поля не сериализуются
	assert.NotContains(t, decoded, "errors")
	assert.NotContains(t, decoded, "details")
}

func TestValidationErrResponse_CarriesFieldMap(t *testing.T) {
	decoded, status := performRequest(t, func(c *fiber.Ctx) error {
		return ValidationErrResponse(c, "Data validation error", map[string]string{
			"empName": "Field 'empName' required",
		})
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, ErrCodeValidation, decoded["errorCode"])

	errorsMap, ok := decoded["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Field 'empName' required", errorsMap["empName"])
}
