package transactionController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"folio/config"
	"folio/database"
	"folio/middleware"
	"folio/models"
	clientRoutes "folio/routers/clientRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	app    *fiber.App
	db     *gorm.DB
	owner  models.User
	other  models.User
	client models.Client
	stock  models.Stock
	broker models.Broker
}

func setupTest(t *testing.T) *fixture {
	t.Helper()
	config.LoadConfig()
	db := database.ConnectTestDb()
	database.ResetTestDb(db)

	app := fiber.New()
	clientRoutes.SetupClientRoutes(app)

	f := &fixture{
		app:    app,
		db:     db,
		owner:  models.User{Name: "Asha", Email: "asha@example.com", Password: "x"},
		other:  models.User{Name: "Vikram", Email: "vikram@example.com", Password: "x"},
		stock:  models.Stock{Symbol: "AAPL", Name: "Apple Inc."},
		broker: models.Broker{Name: "Zerodha", Code: "ZER", IsActive: true},
	}
	require.NoError(t, db.Create(&f.owner).Error)
	require.NoError(t, db.Create(&f.other).Error)
	require.NoError(t, db.Create(&f.stock).Error)
	require.NoError(t, db.Create(&f.broker).Error)

	f.client = models.Client{Name: "Ravi", UserID: f.owner.ID}
	require.NoError(t, db.Create(&f.client).Error)
	return f
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func (f *fixture) insertTransaction(t *testing.T, txType models.TransactionType, date time.Time, buyID *uint) models.Transaction {
	t.Helper()
	tx := models.Transaction{
		Reference:        uuid.NewString(),
		Type:             txType,
		ClientID:         f.client.ID,
		StockID:          f.stock.ID,
		BrokerID:         f.broker.ID,
		Quantity:         10,
		Price:            150,
		Date:             date,
		BuyTransactionID: buyID,
	}
	require.NoError(t, f.db.Create(&tx).Error)
	return tx
}

func TestTransactionsRequireSession(t *testing.T) {
	f := setupTest(t)

	path := fmt.Sprintf("/api/clients/%d/transactions", f.client.ID)
	resp := doRequest(t, f.app, "GET", path, "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, map[string]interface{}{"error": "Unauthorized"}, body)
}

func TestTransactionsOwnership(t *testing.T) {
	f := setupTest(t)
	f.insertTransaction(t, models.TransactionTypeBuy, time.Now(), nil)

	path := fmt.Sprintf("/api/clients/%d/transactions", f.client.ID)
	resp := doRequest(t, f.app, "GET", path, tokenFor(t, f.other), nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, map[string]interface{}{"error": "Unauthorized"}, body)
}

func TestTransactionsUnknownClientLooksLikeUnauthorized(t *testing.T) {
	f := setupTest(t)

	resp := doRequest(t, f.app, "GET", "/api/clients/99999/transactions", tokenFor(t, f.owner), nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestListTransactionsNewestFirstWithTypeFilter(t *testing.T) {
	f := setupTest(t)
	older := f.insertTransaction(t, models.TransactionTypeBuy, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), nil)
	newer := f.insertTransaction(t, models.TransactionTypeSell, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), &older.ID)

	path := fmt.Sprintf("/api/clients/%d/transactions", f.client.ID)
	resp := doRequest(t, f.app, "GET", path, tokenFor(t, f.owner), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var transactions []map[string]interface{}
	decodeBody(t, resp, &transactions)
	require.Len(t, transactions, 2)
	assert.EqualValues(t, newer.ID, transactions[0]["ID"])
	assert.EqualValues(t, older.ID, transactions[1]["ID"])

	// Type filter narrows to BUY only
	resp = doRequest(t, f.app, "GET", path+"?type=BUY", tokenFor(t, f.owner), nil)
	decodeBody(t, resp, &transactions)
	require.Len(t, transactions, 1)
	assert.Equal(t, "BUY", transactions[0]["type"])

	resp = doRequest(t, f.app, "GET", path+"?type=STOLEN", tokenFor(t, f.owner), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListTransactionsDateRange(t *testing.T) {
	f := setupTest(t)
	f.insertTransaction(t, models.TransactionTypeBuy, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), nil)
	inRange := f.insertTransaction(t, models.TransactionTypeBuy, time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC), nil)

	path := fmt.Sprintf("/api/clients/%d/transactions?from=2024-02-01&to=2024-03-05", f.client.ID)
	resp := doRequest(t, f.app, "GET", path, tokenFor(t, f.owner), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var transactions []map[string]interface{}
	decodeBody(t, resp, &transactions)
	require.Len(t, transactions, 1)
	assert.EqualValues(t, inRange.ID, transactions[0]["ID"])
}

func TestSellCarriesNestedBuyTransaction(t *testing.T) {
	f := setupTest(t)
	buy := f.insertTransaction(t, models.TransactionTypeBuy, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), nil)
	f.insertTransaction(t, models.TransactionTypeSell, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), &buy.ID)

	path := fmt.Sprintf("/api/clients/%d/transactions?type=SELL", f.client.ID)
	resp := doRequest(t, f.app, "GET", path, tokenFor(t, f.owner), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var transactions []map[string]interface{}
	decodeBody(t, resp, &transactions)
	require.Len(t, transactions, 1)

	nested, ok := transactions[0]["buyTransaction"].(map[string]interface{})
	require.True(t, ok, "SELL must carry its originating BUY")
	assert.EqualValues(t, buy.ID, nested["ID"])

	nestedStock, ok := nested["stock"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "AAPL", nestedStock["symbol"])
}

func TestBuyTransactionsGlobalAccess(t *testing.T) {
	f := setupTest(t)
	buy := f.insertTransaction(t, models.TransactionTypeBuy, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), nil)
	f.insertTransaction(t, models.TransactionTypeSell, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), &buy.ID)

	// No token at all
	path := fmt.Sprintf("/api/clients/%d/buy-transactions", f.client.ID)
	resp := doRequest(t, f.app, "GET", path, "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var transactions []map[string]interface{}
	decodeBody(t, resp, &transactions)
	require.Len(t, transactions, 1)
	assert.Equal(t, "BUY", transactions[0]["type"])

	stock, ok := transactions[0]["stock"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "AAPL", stock["symbol"])
}

func TestCreateBuyTransaction(t *testing.T) {
	f := setupTest(t)

	path := fmt.Sprintf("/api/clients/%d/transactions", f.client.ID)
	resp := doRequest(t, f.app, "POST", path, tokenFor(t, f.owner), fiber.Map{
		"type": "BUY", "stockId": f.stock.ID, "brokerId": f.broker.ID,
		"quantity": 10, "price": 150.25, "date": "2024-01-10",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "BUY", body["type"])
	assert.NotEmpty(t, body["reference"])
	assert.NotContains(t, body, "buyTransactionId")
}

func TestCreateSellLinkedToBuy(t *testing.T) {
	f := setupTest(t)
	buy := f.insertTransaction(t, models.TransactionTypeBuy, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), nil)

	path := fmt.Sprintf("/api/clients/%d/transactions", f.client.ID)
	resp := doRequest(t, f.app, "POST", path, tokenFor(t, f.owner), fiber.Map{
		"type": "SELL", "stockId": f.stock.ID, "brokerId": f.broker.ID,
		"quantity": 4, "price": 180, "date": "2024-03-05",
		"buyTransactionId": buy.ID,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.EqualValues(t, buy.ID, body["buyTransactionId"])
}

func TestCreateBuyWithBacklinkRejected(t *testing.T) {
	f := setupTest(t)
	buy := f.insertTransaction(t, models.TransactionTypeBuy, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), nil)

	path := fmt.Sprintf("/api/clients/%d/transactions", f.client.ID)
	resp := doRequest(t, f.app, "POST", path, tokenFor(t, f.owner), fiber.Map{
		"type": "BUY", "stockId": f.stock.ID, "brokerId": f.broker.ID,
		"quantity": 10, "price": 150, "date": "2024-01-11",
		"buyTransactionId": buy.ID,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	issues := body["issues"].(map[string]interface{})
	assert.Contains(t, issues, "buyTransactionId")
}

func TestCreateSellLinkValidation(t *testing.T) {
	f := setupTest(t)
	buy := f.insertTransaction(t, models.TransactionTypeBuy, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), nil)
	sell := f.insertTransaction(t, models.TransactionTypeSell, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), &buy.ID)

	// A BUY belonging to a different client
	otherClient := models.Client{Name: "Meera", UserID: f.other.ID}
	require.NoError(t, f.db.Create(&otherClient).Error)
	foreignBuy := models.Transaction{
		Reference: uuid.NewString(), Type: models.TransactionTypeBuy,
		ClientID: otherClient.ID, StockID: f.stock.ID, BrokerID: f.broker.ID,
		Quantity: 5, Price: 100, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.db.Create(&foreignBuy).Error)

	path := fmt.Sprintf("/api/clients/%d/transactions", f.client.ID)
	cases := []struct {
		name  string
		buyID uint
	}{
		{"missing transaction", 99999},
		{"references a SELL", sell.ID},
		{"another client's BUY", foreignBuy.ID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, f.app, "POST", path, tokenFor(t, f.owner), fiber.Map{
				"type": "SELL", "stockId": f.stock.ID, "brokerId": f.broker.ID,
				"quantity": 1, "price": 100, "date": "2024-04-01",
				"buyTransactionId": tc.buyID,
			})
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateTransactionUnknownStockOrBroker(t *testing.T) {
	f := setupTest(t)

	path := fmt.Sprintf("/api/clients/%d/transactions", f.client.ID)
	resp := doRequest(t, f.app, "POST", path, tokenFor(t, f.owner), fiber.Map{
		"type": "BUY", "stockId": 99999, "brokerId": f.broker.ID,
		"quantity": 1, "price": 100, "date": "2024-04-01",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, f.app, "POST", path, tokenFor(t, f.owner), fiber.Map{
		"type": "BUY", "stockId": f.stock.ID, "brokerId": 99999,
		"quantity": 1, "price": 100, "date": "2024-04-01",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestClientHoldings(t *testing.T) {
	f := setupTest(t)
	buy := models.Transaction{
		Reference: uuid.NewString(), Type: models.TransactionTypeBuy,
		ClientID: f.client.ID, StockID: f.stock.ID, BrokerID: f.broker.ID,
		Quantity: 10, Price: 150, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.db.Create(&buy).Error)
	sell := models.Transaction{
		Reference: uuid.NewString(), Type: models.TransactionTypeSell,
		ClientID: f.client.ID, StockID: f.stock.ID, BrokerID: f.broker.ID,
		Quantity: 4, Price: 180, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		BuyTransactionID: &buy.ID,
	}
	require.NoError(t, f.db.Create(&sell).Error)

	path := fmt.Sprintf("/api/clients/%d/holdings", f.client.ID)
	resp := doRequest(t, f.app, "GET", path, tokenFor(t, f.owner), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var holdings []map[string]interface{}
	decodeBody(t, resp, &holdings)
	require.Len(t, holdings, 1)
	assert.Equal(t, "AAPL", holdings[0]["symbol"])
	assert.EqualValues(t, 6, holdings[0]["quantity"])
}
