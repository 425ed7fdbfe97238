package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/respond"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

// GetStats aggregates store-wide counts and revenue for the dashboard.
// GET /api/admin/stats
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userCount, productCount, orderCount int64
		if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to count users")
			return
		}
		if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to count products")
			return
		}
		if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to count orders")
			return
		}

		var revenue float64
		if err := db.Model(&models.Order{}).
			Select("COALESCE(SUM(total), 0)").
			Scan(&revenue).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to sum revenue")
			return
		}

		type statusCount struct {
			Status models.OrderStatus `json:"status"`
			Count  int64              `json:"count"`
		}
		var byStatus []statusCount
		if err := db.Model(&models.Order{}).
			Select("status, COUNT(*) as count").
			Group("status").
			Scan(&byStatus).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to group orders")
			return
		}

		respond.OK(c, http.StatusOK, gin.H{
			"users":            userCount,
			"products":         productCount,
			"orders":           orderCount,
			"revenue":          revenue,
			"orders_by_status": byStatus,
		})
	}
}
