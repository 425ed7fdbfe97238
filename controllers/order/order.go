package orderControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/respond"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/middleware"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// OrderView is an order with its stored item snapshot parsed back out.
type OrderView struct {
	models.Order
	Items []models.OrderLine `json:"items"`
}

func toView(order models.Order) OrderView {
	view := OrderView{Order: order}
	// A snapshot that fails to parse still returns the order; items come
	// back empty rather than failing the whole listing.
	_ = json.Unmarshal([]byte(order.Items), &view.Items)
	return view
}

// GetOrderHistory lists the caller's past orders, newest first.
// GET /api/orders
func GetOrderHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var orders []models.Order
		if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to fetch orders")
			return
		}

		views := make([]OrderView, 0, len(orders))
		for _, o := range orders {
			views = append(views, toView(o))
		}
		respond.OK(c, http.StatusOK, views)
	}
}

// GetAllOrders lists every order in the store. Admin only.
// GET /api/admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at desc").Find(&orders).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to fetch orders")
			return
		}

		views := make([]OrderView, 0, len(orders))
		for _, o := range orders {
			views = append(views, toView(o))
		}
		respond.OK(c, http.StatusOK, views)
	}
}

// UpdateOrderStatus moves an order to a new status, if the configured policy
// allows the transition. Admin only.
// PUT /api/admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB, policy models.StatusPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Invalid order ID")
			return
		}

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "status is required")
			return
		}

		newStatus, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Invalid order status")
			return
		}

		var order models.Order
		if err := db.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respond.Fail(c, http.StatusNotFound, respond.KindNotFound, "Order not found")
			} else {
				respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to fetch order")
			}
			return
		}

		if !policy.Allows(order.Status, newStatus) {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation,
				"Status transition from "+string(order.Status)+" to "+string(newStatus)+" is not allowed")
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to update order status")
			return
		}

		respond.Ack(c, http.StatusOK, "Order status updated")
	}
}
