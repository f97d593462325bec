package clientValidator

import (
	"regexp"
	"strings"

	"folio/middleware"

	"github.com/gofiber/fiber/v2"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateClientRequest is the validated client payload handed to the controller
type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateClient validator middleware
func CreateClient() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateClientRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		issues := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			issues["name"] = "Name is required"
		}
		if reqData.Email != "" && !emailRe.MatchString(reqData.Email) {
			issues["email"] = "Invalid email"
		}

		if len(issues) > 0 {
			return middleware.ValidationErrorResponse(c, issues)
		}

		c.Locals("validatedClient", reqData)
		return c.Next()
	}
}
