package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/auth"
	productcontroller "github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/product"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

// SetupRoutes is the single entry point that wires up the public, user, and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService, policy models.StatusPolicy) {
	api := r.Group("/api")

	// Public routes (no middleware)
	api.GET("/health", healthHandler)
	api.GET("/products", productcontroller.GetProducts(db))
	api.GET("/products/:id", productcontroller.GetProductByID(db))

	SetupAuthRoutes(api, db, tokens)
	SetupUserRoutes(api, db, tokens)
	SetupAdminRoutes(api, db, tokens, policy)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Vibe Commerce API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
