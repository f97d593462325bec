package authValidator

import (
	"regexp"
	"strings"

	"folio/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// SignupRequest is the validated signup payload handed to the controller
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the validated login payload handed to the controller
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		issues := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			issues["name"] = "Name must be at least 2 characters long"
		}
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			issues["email"] = "Invalid email"
		}
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			issues["password"] = "Password must be at least 8 characters long"
		}

		if len(issues) > 0 {
			return middleware.ValidationErrorResponse(c, issues)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		issues := make(map[string]string)

		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			issues["email"] = "Invalid email"
		}
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			issues["password"] = "Password must be at least 8 characters long"
		}

		if len(issues) > 0 {
			return middleware.ValidationErrorResponse(c, issues)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
