package middleware

import (
	"folio/database"
	"folio/models"

	"github.com/gofiber/fiber/v2"
)

// ClientOwnership returns a middleware that loads the client named by the
// :id route parameter and verifies it belongs to the session user. A missing
// client and a client owned by someone else are reported identically to a
// missing session, so client ids are not probeable by non-owners.
func ClientOwnership() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return Unauthorized(c)
		}

		clientID, err := c.ParamsInt("id")
		if err != nil || clientID < 1 {
			return Unauthorized(c)
		}

		var client models.Client
		if err := database.Database.Db.
			Where("id = ? AND is_deleted = false", clientID).
			First(&client).Error; err != nil {
			return Unauthorized(c)
		}

		if client.UserID != userID {
			return Unauthorized(c)
		}

		c.Locals("client", &client)
		return c.Next()
	}
}
