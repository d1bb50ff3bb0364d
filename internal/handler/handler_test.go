package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-stockledger/internal/handler"
	"go-stockledger/internal/model"
	"go-stockledger/internal/repository"
	"go-stockledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.Transaction{}))

	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	invService := service.NewInventoryService(productRepo, txRepo, db, nil)
	statsService := service.NewStatsService(productRepo, txRepo, "D")

	productHandler := handler.NewProductHandler(invService)
	txHandler := handler.NewTransactionHandler(invService)
	statsHandler := handler.NewStatsHandler(statsService)
	adminHandler := handler.NewAdminHandler(invService)

	app := fiber.New()
	app.Get("/reset", adminHandler.Reset)

	products := app.Group("/products")
	products.Get("/", productHandler.GetProducts)
	products.Post("/", productHandler.CreateProduct)
	products.Get("/:id", productHandler.GetProduct)
	products.Patch("/:id", productHandler.UpdateProduct)
	products.Delete("/:id", productHandler.DeleteProduct)
	products.Post("/:id/sell", productHandler.SellProduct)
	products.Post("/:id/expired", productHandler.SetExpired)
	products.Patch("/:id/add-quantity", productHandler.AddQuantity)
	products.Get("/:id/stats", statsHandler.GetProductStats)

	transactions := app.Group("/transactions")
	transactions.Get("/", txHandler.GetTransactions)
	transactions.Get("/:id", txHandler.GetTransactionsByProduct)

	app.Use(handler.NotFound)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func createRice(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/products", fiber.Map{
		"name": "Rice", "cost_price": 10, "selling_price": 15,
	})
	require.Equal(t, http.StatusCreated, status)
	id, ok := body["id"].(string)
	require.True(t, ok)
	return id
}

func TestCreateProductEndpoint(t *testing.T) {
	app := setupApp(t)

	id := createRice(t, app)
	assert.NotEmpty(t, id)

	status, body := doJSON(t, app, http.MethodGet, "/products/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Rice", body["name"])
	assert.Equal(t, float64(10), body["initial_qty"])
	// Timestamps arrive display-formatted, not as RFC 3339.
	assert.Contains(t, body["created_at"], " at ")
}

func TestCreateProductMissingFields(t *testing.T) {
	app := setupApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/products", fiber.Map{
		"name": "Rice", "cost_price": 10,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad Request", body["error"])
	assert.Equal(t, "Failed to create a new product", body["message"])
}

func TestErrorEnvelopeIsUniform(t *testing.T) {
	app := setupApp(t)

	// Not-found, bad id and validation failures all wear the same shape.
	for _, target := range []string{
		"/products/0b06b8c6-4d04-4b7c-8aaa-c7f225011cf7",
		"/products/not-a-uuid",
	} {
		status, body := doJSON(t, app, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Bad Request", body["error"])
		assert.NotEmpty(t, body["message"])
	}
}

func TestSellAndRestockFlow(t *testing.T) {
	app := setupApp(t)
	id := createRice(t, app)

	status, body := doJSON(t, app, http.MethodPatch, "/products/"+id+"/add-quantity", fiber.Map{"quantity": 20})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, body = doJSON(t, app, http.MethodPost, "/products/"+id+"/sell", fiber.Map{"quantity": 5})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, body = doJSON(t, app, http.MethodGet, "/products/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(5), body["current_qty"]) // first sale recomputes from initial_qty
	assert.Equal(t, float64(5), body["sold_qty"])
	assert.Equal(t, float64(20), body["incoming_qty"])

	status, body = doJSON(t, app, http.MethodGet, "/products/"+id+"/stats", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(30), body["total_quantity"])
	assert.Equal(t, "D300.00 GMD", body["total_expenses"])
	assert.Equal(t, "D75.00 GMD", body["total_sales"])
	assert.Equal(t, "D225.00", body["lost"])
	assert.Equal(t, "D0.00", body["profit"])
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	app := setupApp(t)
	id := createRice(t, app)

	status, body := doJSON(t, app, http.MethodPatch, "/products/"+id, fiber.Map{"name": "Basmati"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, body = doJSON(t, app, http.MethodPatch, "/products/"+id, fiber.Map{"name": ""})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Failed to update product", body["message"])

	status, _ = doJSON(t, app, http.MethodDelete, "/products/"+id, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/products/"+id, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestExpiredEndpointFreezesProduct(t *testing.T) {
	app := setupApp(t)
	id := createRice(t, app)

	status, _ := doJSON(t, app, http.MethodPatch, "/products/"+id+"/add-quantity", fiber.Map{"quantity": 20})
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodPost, "/products/"+id+"/expired", nil)
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, http.MethodPost, "/products/"+id+"/expired", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Failed to set product as expired", body["message"])

	status, _ = doJSON(t, app, http.MethodPost, "/products/"+id+"/sell", fiber.Map{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTransactionsEndpoints(t *testing.T) {
	app := setupApp(t)
	id := createRice(t, app)

	status, _ := doJSON(t, app, http.MethodPatch, "/products/"+id+"/add-quantity", fiber.Map{"quantity": 20})
	require.Equal(t, http.StatusOK, status)

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, float64(20), list[0]["quantity"])
	assert.Equal(t, id, list[0]["product_id"])
	assert.Len(t, list[0]["transaction_id"], 18)
	assert.Contains(t, list[0]["timestamp"], " at ")
}

func TestResetEndpoint(t *testing.T) {
	app := setupApp(t)
	id := createRice(t, app)

	status, _ := doJSON(t, app, http.MethodPatch, "/products/"+id+"/add-quantity", fiber.Map{"quantity": 20})
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, http.MethodGet, "/reset?table=products", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	// Products gone, transactions untouched.
	status, errBody := doJSON(t, app, http.MethodGet, "/products/"+id, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad Request", errBody["error"])

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)

	status, body = doJSON(t, app, http.MethodGet, "/reset", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, body = doJSON(t, app, http.MethodGet, "/reset?table=users", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad Request", body["error"])
}

func TestCatchAllNotFound(t *testing.T) {
	app := setupApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, float64(404), body["status"])
	assert.Equal(t, "Endpoint does not exist", body["message"])
}
