package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smucherusystems/Student-registration-system/app/config"
	"github.com/smucherusystems/Student-registration-system/app/routes/auth"
)

// SetupStudentsRoutes sets up the student registration routes
func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)

	studentsAPI := app.Group("/api/students")
	studentsAPI.Use(auth.AuthMiddleware)

	// Web routes
	students.Get("/", func(c *fiber.Ctx) error {
		return c.Render("students/index", fiber.Map{
			"Title":       "Registered Students - Student Registration System",
			"CurrentPage": "students",
		})
	})
	students.Get("/register", func(c *fiber.Ctx) error {
		return c.Render("students/register", fiber.Map{
			"Title":       "Register Student - Student Registration System",
			"CurrentPage": "students",
		})
	})

	// API routes
	studentsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, config.GetDB())
	})
	studentsAPI.Post("/", func(c *fiber.Ctx) error {
		return RegisterStudentAPI(c, config.GetDB())
	})
	studentsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetStudentAPI(c, config.GetDB())
	})
	studentsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, config.GetDB())
	})
	studentsAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, config.GetDB())
	})
}
