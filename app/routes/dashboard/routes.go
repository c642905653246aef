package dashboard

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smucherusystems/Student-registration-system/app/config"
	"github.com/smucherusystems/Student-registration-system/app/database"
	"github.com/smucherusystems/Student-registration-system/app/routes/auth"
	"github.com/smucherusystems/Student-registration-system/app/routes/respond"
)

// SetupDashboardRoutes sets up the dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dash := app.Group("/dashboard")
	dash.Use(auth.AuthMiddleware)

	dashAPI := app.Group("/api/dashboard")
	dashAPI.Use(auth.AuthMiddleware)

	dash.Get("/", func(c *fiber.Ctx) error {
		return c.Render("dashboard/index", fiber.Map{
			"Title":       "Admin Dashboard - Student Registration System",
			"CurrentPage": "dashboard",
		})
	})

	dashAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetStatsAPI(c, config.GetDB())
	})
	dashAPI.Get("/student/:studentId/metrics", func(c *fiber.Ctx) error {
		return GetStudentMetricsAPI(c, config.GetDB())
	})
}

// GetStatsAPI returns the cross-engine rollups for the admin dashboard
func GetStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// GetStudentMetricsAPI returns one student's cross-engine profile, optionally
// windowed by start_date/end_date.
func GetStudentMetricsAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID <= 0 {
		return respond.BadRequest(c, "Valid student ID is required")
	}

	var startDate, endDate *time.Time
	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return respond.BadRequest(c, "Invalid start date format (use YYYY-MM-DD)")
		}
		startDate = &parsed
	}
	if e := c.Query("end_date"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			return respond.BadRequest(c, "Invalid end date format (use YYYY-MM-DD)")
		}
		endDate = &parsed
	}

	metrics, err := database.GetStudentMetrics(db, int64(studentID), startDate, endDate)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"metrics": metrics,
	})
}
