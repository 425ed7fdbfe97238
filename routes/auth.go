package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/auth"
	authControllers "github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/auth"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/middleware"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, tokens *auth.TokenService) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db, tokens)) // POST /api/auth/register
		authGroup.POST("/login", authControllers.Login(db, tokens))       // POST /api/auth/login

		authGroup.GET("/me", middleware.RequireAuth(tokens), authControllers.Me(db)) // GET /api/auth/me
	}
}
