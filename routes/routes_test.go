package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/auth"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/routes"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}, &models.Order{}))

	tokens := auth.NewTokenService("test-secret", time.Hour)
	r := gin.New()
	routes.SetupRoutes(r, db, tokens, nil)
	return r, db
}

func doJSON(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func data(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body["data"], w.Body.String())
	return body["data"].(map[string]interface{})
}

func TestHealth(t *testing.T) {
	r, _ := setup(t)

	w := doJSON(r, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Vibe Commerce API is running")
}

// Full shopper journey: register, log in, fill the cart from the catalog,
// read the snapshot, check out, confirm the receipt and the emptied cart.
func TestShopperJourney(t *testing.T) {
	r, db := setup(t)

	p1 := models.Product{Name: "Widget", Price: 10.00, Stock: 10, Category: "Test"}
	p2 := models.Product{Name: "Gadget", Price: 5.00, Stock: 10, Category: "Test"}
	require.NoError(t, db.Create(&p1).Error)
	require.NoError(t, db.Create(&p2).Error)

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "a@x.com", "password": "secret1", "name": "Alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := data(t, w)["token"].(string)

	require.Equal(t, http.StatusCreated,
		doJSON(r, http.MethodPost, "/api/cart", token, gin.H{"product_id": p1.ID, "quantity": 2}).Code)
	require.Equal(t, http.StatusCreated,
		doJSON(r, http.MethodPost, "/api/cart", token, gin.H{"product_id": p2.ID, "quantity": 1}).Code)

	w = doJSON(r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := data(t, w)
	require.InDelta(t, 25.00, cart["total"].(float64), 0.001)
	require.EqualValues(t, 2, cart["itemCount"])

	items := make([]gin.H, 0, 2)
	for _, raw := range cart["items"].([]interface{}) {
		line := raw.(map[string]interface{})
		items = append(items, gin.H{
			"product_id": line["product_id"],
			"name":       line["name"],
			"price":      line["price"],
			"quantity":   line["quantity"],
		})
	}

	w = doJSON(r, http.MethodPost, "/api/checkout", token, gin.H{
		"customer_name":  "Alice",
		"customer_email": "a@x.com",
		"cart_items":     items,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	receipt := data(t, w)
	assert.InDelta(t, 25.00, receipt["total"].(float64), 0.001)
	assert.Equal(t, "pending", receipt["status"])

	w = doJSON(r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	emptied := data(t, w)
	assert.EqualValues(t, 0, emptied["itemCount"])
	assert.InDelta(t, 0.0, emptied["total"].(float64), 0.001)

	w = doJSON(r, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":25`)
}
