package clientController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"folio/config"
	"folio/database"
	"folio/middleware"
	"folio/models"
	clientRoutes "folio/routers/clientRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()
	db := database.ConnectTestDb()
	database.ResetTestDb(db)

	app := fiber.New()
	clientRoutes.SetupClientRoutes(app)
	return app, db
}

func makeUser(t *testing.T, db *gorm.DB, email string) (models.User, string) {
	t.Helper()
	user := models.User{Name: "Asha", Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	require.NoError(t, err)
	return user, token
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

func TestCreateAndListClients(t *testing.T) {
	app, db := setupTest(t)
	user, token := makeUser(t, db, "asha@example.com")

	resp := doRequest(t, app, "POST", "/api/clients/", token, fiber.Map{
		"name": "Ravi", "email": "ravi@example.com",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.EqualValues(t, user.ID, created["userId"])

	// Another user's client must not show up in the listing
	other, _ := makeUser(t, db, "vikram@example.com")
	require.NoError(t, db.Create(&models.Client{Name: "Meera", UserID: other.ID}).Error)

	resp = doRequest(t, app, "GET", "/api/clients/", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var clients []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&clients))
	resp.Body.Close()
	require.Len(t, clients, 1)
	assert.Equal(t, "Ravi", clients[0]["name"])
}

func TestCreateClientValidation(t *testing.T) {
	app, db := setupTest(t)
	_, token := makeUser(t, db, "asha@example.com")

	resp := doRequest(t, app, "POST", "/api/clients/", token, fiber.Map{
		"name": "", "email": "not-an-email",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()

	issues := body["issues"].(map[string]interface{})
	assert.Contains(t, issues, "name")
	assert.Contains(t, issues, "email")
}

func TestClientsRequireSession(t *testing.T) {
	app, _ := setupTest(t)

	resp := doRequest(t, app, "GET", "/api/clients/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, map[string]interface{}{"error": "Unauthorized"}, body)
}
