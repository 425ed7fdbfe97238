package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/auth"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/respond"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

// Context keys set by RequireAuth. Handlers take the acting user from these,
// never from the request body.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxUserRole  = "user_role"
)

// RequireAuth extracts the bearer token, verifies it, and attaches the
// resolved identity to the request context. Expired and malformed tokens
// both end here with a 401.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respond.AbortFail(c, http.StatusUnauthorized, respond.KindUnauthenticated, "Authorization header is missing")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			respond.AbortFail(c, http.StatusUnauthorized, respond.KindUnauthenticated, "Invalid or expired token")
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after RequireAuth. The role
// comes from the token, so a demotion only takes effect once outstanding
// tokens expire.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(CtxUserRole)
		if !exists {
			respond.AbortFail(c, http.StatusUnauthorized, respond.KindUnauthenticated, "Unauthorized")
			return
		}
		if role, ok := roleVal.(models.Role); !ok || role != models.RoleAdmin {
			respond.AbortFail(c, http.StatusForbidden, respond.KindForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}
