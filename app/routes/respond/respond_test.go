package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smucherusystems/Student-registration-system/app/services"
)

func responseFor(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/test", func(c *fiber.Ctx) error {
		return Error(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestErrorNotFound(t *testing.T) {
	code, payload := responseFor(t, &services.NotFoundError{Resource: "student", ID: 42})
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "student 42 not found", payload["message"])
}

func TestErrorDuplicateMark(t *testing.T) {
	code, payload := responseFor(t, &services.DuplicateMarkError{StudentID: 7, Date: "2026-03-15"})
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, false, payload["success"])
}

func TestErrorOverpaymentCarriesBalances(t *testing.T) {
	code, payload := responseFor(t, &services.OverpaymentError{
		AssignedAmount:     500,
		PaidAmount:         400,
		OutstandingBalance: 100,
		AttemptedPayment:   200,
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, 500.0, payload["assigned_amount"])
	assert.Equal(t, 400.0, payload["paid_amount"])
	assert.Equal(t, 100.0, payload["outstanding_balance"])
	assert.Equal(t, 200.0, payload["attempted_payment"])
}

func TestErrorValidation(t *testing.T) {
	code, payload := responseFor(t, &services.ValidationError{Field: "payment_amount", Message: "must be greater than 0"})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "payment_amount: must be greater than 0", payload["message"])
}

func TestErrorInvariantViolation(t *testing.T) {
	code, _ := responseFor(t, &services.InvariantViolation{Message: "marks cannot exceed max marks"})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestErrorUnknownIsInternal(t *testing.T) {
	code, payload := responseFor(t, errors.New("connection reset"))
	assert.Equal(t, fiber.StatusInternalServerError, code)
	// Internal details never leak into the response
	assert.NotContains(t, payload["message"], "connection reset")
}
