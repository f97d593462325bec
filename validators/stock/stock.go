package stockValidator

import (
	"strings"

	"folio/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateStockRequest is the validated stock payload handed to the controller
type CreateStockRequest struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

// CreateStock validator middleware
func CreateStock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateStockRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		issues := make(map[string]string)

		if strings.TrimSpace(reqData.Symbol) == "" {
			issues["symbol"] = "Symbol is required"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			issues["name"] = "Name is required"
		}

		if len(issues) > 0 {
			return middleware.ValidationErrorResponse(c, issues)
		}

		reqData.Symbol = strings.ToUpper(strings.TrimSpace(reqData.Symbol))

		c.Locals("validatedStock", reqData)
		return c.Next()
	}
}
