package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/auth"
	cartControllers "github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/cart"
	checkoutControllers "github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/checkout"
	orderControllers "github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/order"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/middleware"
)

// SetupUserRoutes registers the token-protected shopper endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, tokens *auth.TokenService) {
	userGroup := api.Group("")
	userGroup.Use(middleware.RequireAuth(tokens))
	{
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))               // GET /api/cart
			cartGroup.POST("", cartControllers.AddItem(db))              // POST /api/cart
			cartGroup.PUT("/:id", cartControllers.UpdateCartItem(db))    // PUT /api/cart/:id
			cartGroup.DELETE("/:id", cartControllers.RemoveCartItem(db)) // DELETE /api/cart/:id
			cartGroup.DELETE("", cartControllers.ClearCart(db))          // DELETE /api/cart
		}

		userGroup.POST("/checkout", checkoutControllers.Checkout(db))  // POST /api/checkout
		userGroup.GET("/orders", orderControllers.GetOrderHistory(db)) // GET /api/orders
	}
}
