package checkoutControllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	orderControllers "github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/order"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/respond"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/middleware"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

type CheckoutItemInput struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type CheckoutInput struct {
	CustomerName  string              `json:"customer_name" binding:"required"`
	CustomerEmail string              `json:"customer_email" binding:"required,email"`
	CartItems     []CheckoutItemInput `json:"cart_items" binding:"omitempty,dive"`
}

type Receipt struct {
	OrderID       uint               `json:"order_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Items         []models.OrderLine `json:"items"`
	Total         float64            `json:"total"`
	Status        models.OrderStatus `json:"status"`
	Timestamp     time.Time          `json:"timestamp"`
	Message       string             `json:"message"`
}

// Checkout turns the submitted cart snapshot into an order and empties the
// caller's cart, both inside one transaction. The total is computed from the
// snapshot the client saw, not re-fetched from the catalog, so the receipt
// always matches the cart the user confirmed. Stock is not decremented here;
// it only gates cart mutations.
// POST /api/checkout
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Customer name and a valid email are required")
			return
		}
		if len(input.CartItems) == 0 {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Cart is empty")
			return
		}

		total := decimal.Zero
		lines := make([]models.OrderLine, 0, len(input.CartItems))
		for _, item := range input.CartItems {
			subtotal := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
			total = total.Add(subtotal)
			lines = append(lines, models.OrderLine{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
				Subtotal:  subtotal.Round(2).InexactFloat64(),
			})
		}

		snapshot, err := json.Marshal(lines)
		if err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to encode order items")
			return
		}

		order := models.Order{
			UserID:        userID,
			CustomerName:  input.CustomerName,
			CustomerEmail: input.CustomerEmail,
			Total:         total.Round(2).InexactFloat64(),
			Items:         string(snapshot),
			Status:        models.OrderStatusPending,
		}

		// Order insert and cart clear succeed or fail together; a crash in
		// between must not leave a half-cleared cart behind the order.
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to process checkout")
			return
		}

		orderControllers.BroadcastNewOrder(order)

		respond.OK(c, http.StatusCreated, Receipt{
			OrderID:       order.ID,
			CustomerName:  order.CustomerName,
			CustomerEmail: order.CustomerEmail,
			Items:         lines,
			Total:         order.Total,
			Status:        order.Status,
			Timestamp:     order.CreatedAt,
			Message:       "Thank you for your purchase!",
		})
	}
}
