package grades

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smucherusystems/Student-registration-system/app/config"
	"github.com/smucherusystems/Student-registration-system/app/routes/auth"
)

// SetupGradesRoutes sets up the grade management routes
func SetupGradesRoutes(app *fiber.App) {
	grades := app.Group("/grades")
	grades.Use(auth.AuthMiddleware)

	gradesAPI := app.Group("/api/grades")
	gradesAPI.Use(auth.AuthMiddleware)

	// Web routes
	grades.Get("/", func(c *fiber.Ctx) error {
		return c.Render("grades/index", fiber.Map{
			"Title":       "Grade Management - Student Registration System",
			"CurrentPage": "grades",
		})
	})

	// API routes
	gradesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetAllGradesAPI(c, config.GetDB())
	})
	gradesAPI.Post("/", func(c *fiber.Ctx) error {
		return AddGradeAPI(c, config.GetDB())
	})
	gradesAPI.Get("/ranking", func(c *fiber.Ctx) error {
		return GetClassRankingAPI(c, config.GetDB())
	})
	gradesAPI.Get("/student/:studentId", func(c *fiber.Ctx) error {
		return GetStudentGradesAPI(c, config.GetDB())
	})
	gradesAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateGradeAPI(c, config.GetDB())
	})
	gradesAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteGradeAPI(c, config.GetDB())
	})
}
