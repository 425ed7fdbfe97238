package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/auth"
	adminController "github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/admin"
	orderControllers "github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/order"
	productcontroller "github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/product"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/middleware"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

// SetupAdminRoutes registers the "/admin/*" endpoints. Requires a valid
// token carrying the admin role.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, tokens *auth.TokenService, policy models.StatusPolicy) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(tokens), middleware.RequireAdmin())
	{
		adminGroup.GET("/users", adminController.GetAllUsers(db))
		adminGroup.GET("/stats", adminController.GetStats(db))

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatus(db, policy))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}
	}
}
