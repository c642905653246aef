package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/smucherusystems/Student-registration-system/app/config"
	"github.com/smucherusystems/Student-registration-system/app/database"
	"github.com/smucherusystems/Student-registration-system/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Student Registration System",
	}, "")
}

// AuthMiddleware validates the JWT and threads the caller's identity into the
// request context. Engine operations downstream read the identity from
// locals; they never authenticate on their own.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if tokenString == "" {
		return unauthorized(c)
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return unauthorized(c)
	}

	user, err := database.GetUserByID(config.GetDB(), claims.UserID)
	if err != nil {
		return unauthorized(c)
	}

	c.Locals("user", user)
	c.Locals("caller_name", user.FirstName+" "+user.LastName)
	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized access",
		})
	}
	return c.Redirect("/auth/login")
}

// CallerName returns the authenticated caller's display name, empty when the
// route is reached without the middleware (tests, internal tooling).
func CallerName(c *fiber.Ctx) string {
	if name, ok := c.Locals("caller_name").(string); ok {
		return name
	}
	return ""
}

// CurrentUser returns the authenticated user set by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals("user").(*models.User); ok {
		return user
	}
	return nil
}
