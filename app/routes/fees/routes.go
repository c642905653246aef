package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smucherusystems/Student-registration-system/app/config"
	"github.com/smucherusystems/Student-registration-system/app/routes/auth"
)

// SetupFeesRoutes sets up the fee ledger routes
func SetupFeesRoutes(app *fiber.App) {
	fees := app.Group("/fees")
	fees.Use(auth.AuthMiddleware)

	feesAPI := app.Group("/api/fees")
	feesAPI.Use(auth.AuthMiddleware)

	// Web routes
	fees.Get("/", func(c *fiber.Ctx) error {
		return c.Render("fees/index", fiber.Map{
			"Title":       "Fee Management - Student Registration System",
			"CurrentPage": "fees",
		})
	})

	// API routes
	feesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetAllFeesAPI(c, config.GetDB())
	})
	feesAPI.Post("/", func(c *fiber.Ctx) error {
		return AssignFeeAPI(c, config.GetDB())
	})
	feesAPI.Get("/summary", func(c *fiber.Ctx) error {
		return GetFeeSummaryAPI(c, config.GetDB())
	})
	feesAPI.Post("/recompute-status", func(c *fiber.Ctx) error {
		return RecomputeStatusAPI(c, config.GetDB())
	})
	feesAPI.Get("/student/:studentId", func(c *fiber.Ctx) error {
		return GetStudentFeesAPI(c, config.GetDB())
	})
	feesAPI.Get("/student/:studentId/balance", func(c *fiber.Ctx) error {
		return GetBalanceAPI(c, config.GetDB())
	})
	feesAPI.Get("/student/:studentId/history", func(c *fiber.Ctx) error {
		return GetPaymentHistoryAPI(c, config.GetDB())
	})
	feesAPI.Post("/:id/payments", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, config.GetDB())
	})
}
