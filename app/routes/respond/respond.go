package respond

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/smucherusystems/Student-registration-system/app/services"
)

// Error maps a domain error to its HTTP shape. Overpayment responses carry
// the balances the caller needs to retry with a valid amount.
func Error(c *fiber.Ctx, err error) error {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": notFound.Error(),
		})
	}

	var duplicate *services.DuplicateMarkError
	if errors.As(err, &duplicate) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Attendance already marked for this student on this date. Use update action to modify.",
		})
	}

	var overpayment *services.OverpaymentError
	if errors.As(err, &overpayment) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":             false,
			"message":             "Payment amount exceeds outstanding balance",
			"assigned_amount":     overpayment.AssignedAmount,
			"paid_amount":         overpayment.PaidAmount,
			"outstanding_balance": overpayment.OutstandingBalance,
			"attempted_payment":   overpayment.AttemptedPayment,
		})
	}

	var validation *services.ValidationError
	var invariant *services.InvariantViolation
	if errors.As(err, &validation) || errors.As(err, &invariant) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	log.Printf("Internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "An error occurred. Please try again.",
	})
}

// BadRequest is the shape for request-level failures caught before the
// database layer sees anything.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
