package adminController_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/auth"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/routes"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB, *auth.TokenService) {
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
	return r, db, tokens
}

func seedUser(t *testing.T, db *gorm.DB, tokens *auth.TokenService, email string, role models.Role) (models.User, string) {
	t.Helper()
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	user := models.User{ID: uuid.NewString(), Email: email, PasswordHash: hash, Name: "Test", Role: role}
	require.NoError(t, db.Create(&user).Error)
	token, err := tokens.Issue(user)
	require.NoError(t, err)
	return user, token
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestStatsAggregates(t *testing.T) {
	r, db, tokens := setup(t)
	alice, _ := seedUser(t, db, tokens, "a@x.com", models.RoleUser)
	_, adminToken := seedUser(t, db, tokens, "admin@x.com", models.RoleAdmin)

	require.NoError(t, db.Create(&models.Product{Name: "Widget", Price: 10.00, Stock: 5}).Error)
	require.NoError(t, db.Create(&models.Order{
		UserID: alice.ID, CustomerName: "Alice", CustomerEmail: "a@x.com",
		Total: 20.00, Items: "[]", Status: models.OrderStatusPending,
	}).Error)
	require.NoError(t, db.Create(&models.Order{
		UserID: alice.ID, CustomerName: "Alice", CustomerEmail: "a@x.com",
		Total: 22.50, Items: "[]", Status: models.OrderStatusShipped,
	}).Error)

	w := doGet(r, "/api/admin/stats", adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["users"])
	assert.EqualValues(t, 1, data["products"])
	assert.EqualValues(t, 2, data["orders"])
	assert.InDelta(t, 42.50, data["revenue"].(float64), 0.001)
	assert.Len(t, data["orders_by_status"], 2)
}

func TestStatsAndUsersNeedAdminRole(t *testing.T) {
	r, db, tokens := setup(t)
	_, userToken := seedUser(t, db, tokens, "a@x.com", models.RoleUser)

	assert.Equal(t, http.StatusForbidden, doGet(r, "/api/admin/stats", userToken).Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/api/admin/users", userToken).Code)
}

func TestAdminListsUsersWithoutHashes(t *testing.T) {
	r, db, tokens := setup(t)
	seedUser(t, db, tokens, "a@x.com", models.RoleUser)
	_, adminToken := seedUser(t, db, tokens, "admin@x.com", models.RoleAdmin)

	w := doGet(r, "/api/admin/users", adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"].([]interface{}), 2)
	assert.NotContains(t, w.Body.String(), "$2a$")
}
