package brokerValidator

import (
	"strings"

	"folio/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateBrokerRequest is the validated broker payload handed to the controller
type CreateBrokerRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	IsActive *bool  `json:"isActive"`
}

// CreateBroker validator middleware
func CreateBroker() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBrokerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		issues := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			issues["name"] = "Name is required"
		}
		if strings.TrimSpace(reqData.Code) == "" {
			issues["code"] = "Code is required"
		}

		if len(issues) > 0 {
			return middleware.ValidationErrorResponse(c, issues)
		}

		c.Locals("validatedBroker", reqData)
		return c.Next()
	}
}
