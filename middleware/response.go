package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the payload as-is with the given status code
func JsonResponse(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// ErrorResponse writes the uniform error envelope
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// Unauthorized is the single shape every guarded endpoint answers with when
// the session is missing, invalid, or the caller does not own the resource.
func Unauthorized(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
}

// ValidationErrorResponse surfaces field-level issues to the caller
func ValidationErrorResponse(c *fiber.Ctx, issues map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed",
		"issues": issues,
	})
}
