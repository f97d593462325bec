package transactionValidator

import (
	"time"

	"folio/middleware"
	"folio/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTransactionRequest is the validated transaction payload handed to
// the controller. Date is RFC 3339 or plain YYYY-MM-DD.
type CreateTransactionRequest struct {
	Type             string  `json:"type"`
	StockID          uint    `json:"stockId"`
	BrokerID         uint    `json:"brokerId"`
	Quantity         float64 `json:"quantity"`
	Price            float64 `json:"price"`
	Date             string  `json:"date"`
	BuyTransactionID *uint   `json:"buyTransactionId"`

	ParsedDate time.Time `json:"-"`
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateTransaction validator middleware
func CreateTransaction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTransactionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		issues := make(map[string]string)

		txType := models.TransactionType(reqData.Type)
		if txType != models.TransactionTypeBuy && txType != models.TransactionTypeSell {
			issues["type"] = "Type must be BUY or SELL"
		}
		if txType == models.TransactionTypeBuy && reqData.BuyTransactionID != nil {
			issues["buyTransactionId"] = "A BUY transaction cannot reference a buy transaction"
		}
		if reqData.StockID == 0 {
			issues["stockId"] = "Stock is required"
		}
		if reqData.BrokerID == 0 {
			issues["brokerId"] = "Broker is required"
		}
		if reqData.Quantity <= 0 {
			issues["quantity"] = "Quantity must be greater than 0"
		}
		if reqData.Price < 0 {
			issues["price"] = "Price cannot be negative"
		}
		if reqData.Date == "" {
			issues["date"] = "Date is required"
		} else if parsed, ok := parseDate(reqData.Date); ok {
			reqData.ParsedDate = parsed
		} else {
			issues["date"] = "Date must be YYYY-MM-DD or RFC 3339"
		}

		if len(issues) > 0 {
			return middleware.ValidationErrorResponse(c, issues)
		}

		c.Locals("validatedTransaction", reqData)
		return c.Next()
	}
}

// ListTransactions validates the optional type filter on transaction listings
func ListTransactions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		txType := c.Query("type")
		if txType != "" &&
			models.TransactionType(txType) != models.TransactionTypeBuy &&
			models.TransactionType(txType) != models.TransactionTypeSell {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"type": "Type must be BUY or SELL",
			})
		}
		return c.Next()
	}
}
