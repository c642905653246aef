package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smucherusystems/Student-registration-system/app/config"
	"github.com/smucherusystems/Student-registration-system/app/routes/auth"
)

// SetupAttendanceRoutes sets up the attendance routes
func SetupAttendanceRoutes(app *fiber.App) {
	attendance := app.Group("/attendance")
	attendance.Use(auth.AuthMiddleware)

	attendanceAPI := app.Group("/api/attendance")
	attendanceAPI.Use(auth.AuthMiddleware)

	// Web routes
	attendance.Get("/", func(c *fiber.Ctx) error {
		return c.Render("attendance/index", fiber.Map{
			"Title":       "Attendance Tracking - Student Registration System",
			"CurrentPage": "attendance",
		})
	})

	// API routes
	attendanceAPI.Get("/", func(c *fiber.Ctx) error {
		return GetAllAttendanceAPI(c, config.GetDB())
	})
	attendanceAPI.Post("/", func(c *fiber.Ctx) error {
		return MarkAttendanceAPI(c, config.GetDB())
	})
	attendanceAPI.Get("/statistics", func(c *fiber.Ctx) error {
		return GetStatisticsAPI(c, config.GetDB())
	})
	attendanceAPI.Get("/student/:studentId", func(c *fiber.Ctx) error {
		return GetStudentAttendanceAPI(c, config.GetDB())
	})
	attendanceAPI.Get("/student/:studentId/calendar", func(c *fiber.Ctx) error {
		return GetCalendarAPI(c, config.GetDB())
	})
	attendanceAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateAttendanceAPI(c, config.GetDB())
	})
}
