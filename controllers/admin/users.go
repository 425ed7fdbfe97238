package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/respond"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

// GetAllUsers lists every registered user, newest first. Admin only.
// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to fetch users")
			return
		}

		summaries := make([]models.UserSummary, 0, len(users))
		for _, u := range users {
			summaries = append(summaries, u.Summary())
		}
		respond.OK(c, http.StatusOK, summaries)
	}
}
