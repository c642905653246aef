package fees

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smucherusystems/Student-registration-system/app/database"
	"github.com/smucherusystems/Student-registration-system/app/models"
	"github.com/smucherusystems/Student-registration-system/app/routes/auth"
	"github.com/smucherusystems/Student-registration-system/app/routes/respond"
	"github.com/smucherusystems/Student-registration-system/app/services"
	"github.com/smucherusystems/Student-registration-system/app/validation"
)

type assignFeeRequest struct {
	StudentID      int64   `json:"student_id" form:"student_id" validate:"required,gt=0"`
	FeeType        string  `json:"fee_type" form:"fee_type" validate:"required,max=100"`
	AssignedAmount float64 `json:"assigned_amount" form:"assigned_amount" validate:"required,gt=0"`
	DueDate        string  `json:"due_date" form:"due_date" validate:"required"`
}

// AssignFeeAPI creates a fee for a student with nothing paid yet
func AssignFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req assignFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respond.BadRequest(c, err.Error())
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return respond.BadRequest(c, "Invalid due date format (use YYYY-MM-DD)")
	}

	fee := &models.Fee{
		StudentID:      req.StudentID,
		FeeType:        req.FeeType,
		AssignedAmount: req.AssignedAmount,
		DueDate:        dueDate,
	}
	if err := database.AssignFee(db, fee); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Fee assigned successfully",
		"fee_id":  fee.ID,
		"status":  fee.Status,
	})
}

type recordPaymentRequest struct {
	PaymentAmount float64 `json:"payment_amount" form:"payment_amount" validate:"required,gt=0"`
	PaymentDate   string  `json:"payment_date" form:"payment_date"`
}

// RecordPaymentAPI applies a payment against a fee. The payment date defaults
// to today when omitted.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	feeID, err := c.ParamsInt("id")
	if err != nil || feeID <= 0 {
		return respond.BadRequest(c, "Valid fee ID is required")
	}

	var req recordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respond.BadRequest(c, err.Error())
	}

	paymentDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.PaymentDate != "" {
		paymentDate, err = time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			return respond.BadRequest(c, "Invalid payment date format (use YYYY-MM-DD)")
		}
	}

	fee, err := database.RecordPayment(db, int64(feeID), req.PaymentAmount, paymentDate, auth.CallerName(c))
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"success":             true,
		"message":             "Payment recorded successfully",
		"new_paid_amount":     fee.PaidAmount,
		"outstanding_balance": fee.Balance,
		"status":              fee.Status,
	})
}

// GetStudentFeesAPI returns a student's fees plus the summary rollup, with
// optional status and fee_type filters.
func GetStudentFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID <= 0 {
		return respond.BadRequest(c, "Valid student ID is required")
	}

	status := c.Query("status")
	if status != "" && !models.ValidFeeStatus(status) {
		return respond.BadRequest(c, "Valid status is required (pending, partial, paid, or overdue)")
	}

	student, err := database.GetStudentByID(db, int64(studentID))
	if err != nil {
		return respond.Error(c, err)
	}

	feeRows, err := database.GetFeesByStudent(db, student.ID, status, c.Query("fee_type"))
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"student": fiber.Map{"id": student.ID, "name": student.Name},
		"fees":    feeRows,
		"summary": services.SummarizeFees(feeRows),
	})
}

// GetAllFeesAPI returns every fee with student info, optionally filtered by
// status.
func GetAllFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	status := c.Query("status")
	if status != "" && !models.ValidFeeStatus(status) {
		return respond.BadRequest(c, "Valid status is required (pending, partial, paid, or overdue)")
	}

	feeRows, err := database.GetAllFees(db, status)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"fees":    feeRows,
		"summary": services.SummarizeFees(feeRows),
	})
}

func GetFeeSummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	summary, err := database.GetFeeSummary(db)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
	})
}

// GetPaymentHistoryAPI reconstructs the assignment/payment/status-change
// timeline for a student's fees, most recent first.
func GetPaymentHistoryAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID <= 0 {
		return respond.BadRequest(c, "Valid student ID is required")
	}

	student, err := database.GetStudentByID(db, int64(studentID))
	if err != nil {
		return respond.Error(c, err)
	}

	feeRows, err := database.GetFeesByStudent(db, student.ID, "", "")
	if err != nil {
		return respond.Error(c, err)
	}
	payments, err := database.GetFeePaymentsByStudent(db, student.ID)
	if err != nil {
		return respond.Error(c, err)
	}

	timeline := services.BuildTimeline(feeRows, payments)
	return c.JSON(fiber.Map{
		"success":  true,
		"student":  fiber.Map{"id": student.ID, "name": student.Name},
		"timeline": timeline,
		"count":    len(timeline),
	})
}

type recomputeRequest struct {
	FeeID *int64 `json:"fee_id" form:"fee_id"`
}

// RecomputeStatusAPI re-derives the stored status column, for one fee when an
// id is supplied, otherwise for the whole table.
func RecomputeStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	var req recomputeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return respond.BadRequest(c, "Invalid request body")
		}
	}

	updated, err := database.RecomputeFeeStatuses(db, req.FeeID)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"message":       "Fee status updated successfully",
		"updated_count": updated,
	})
}

func GetBalanceAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID <= 0 {
		return respond.BadRequest(c, "Valid student ID is required")
	}

	student, err := database.GetStudentByID(db, int64(studentID))
	if err != nil {
		return respond.Error(c, err)
	}

	balance, err := database.GetOutstandingBalance(db, student.ID)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success":             true,
		"student_id":          student.ID,
		"student_name":        student.Name,
		"outstanding_balance": balance,
	})
}
