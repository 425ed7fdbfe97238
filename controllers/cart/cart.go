package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/respond"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/middleware"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartLineView is one joined line of the cart snapshot.
type CartLineView struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
	CreatedAt time.Time `json:"created_at"`
}

// AddItem merges qty into the user's line for the product, creating the line
// if none exists. The merged quantity is bound by current stock; an add that
// would exceed it is rejected whole, never partially applied.
// POST /api/cart
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "product_id and quantity (min 1) are required")
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respond.Fail(c, http.StatusNotFound, respond.KindNotFound, "Product not found")
			} else {
				respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to validate product")
			}
			return
		}

		var item models.CartItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&item).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to fetch cart item")
			return
		}

		newQuantity := input.Quantity
		if err == nil {
			newQuantity += item.Quantity
		}
		if newQuantity > product.Stock {
			respond.FailStock(c, http.StatusBadRequest, product.Stock,
				fmt.Sprintf("Only %d of %q in stock", product.Stock, product.Name))
			return
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{
				UserID:    userID,
				ProductID: product.ID,
				Quantity:  newQuantity,
			}
			if err := db.Create(&item).Error; err != nil {
				respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to add item to cart")
				return
			}
			respond.OK(c, http.StatusCreated, gin.H{"id": item.ID})
			return
		}

		item.Quantity = newQuantity
		if err := db.Save(&item).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to update cart item")
			return
		}
		respond.OK(c, http.StatusOK, gin.H{"id": item.ID})
	}
}

// GetCart returns the joined snapshot with per-line subtotals and the cart
// total. Totals are summed in full precision and rounded to two places only
// here, at the response edge.
// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		lines, total, err := Snapshot(db, userID)
		if err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to fetch cart")
			return
		}

		respond.OK(c, http.StatusOK, gin.H{
			"items":     lines,
			"total":     total,
			"itemCount": len(lines),
		})
	}
}

// Snapshot builds the cart view for a user. Exported so checkout tests and
// other callers can read the cart without going through HTTP.
func Snapshot(db *gorm.DB, userID string) ([]CartLineView, float64, error) {
	type row struct {
		ID        uint
		ProductID uint
		Name      string
		Price     float64
		Image     string
		Category  string
		Quantity  int
		CreatedAt time.Time
	}

	var rows []row
	err := db.Table("cart_items").
		Select("cart_items.id, cart_items.product_id, cart_items.quantity, cart_items.created_at, products.name, products.price, products.image, products.category").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at desc").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	lines := make([]CartLineView, 0, len(rows))
	total := decimal.Zero
	for _, r := range rows {
		subtotal := decimal.NewFromFloat(r.Price).Mul(decimal.NewFromInt(int64(r.Quantity)))
		total = total.Add(subtotal)
		lines = append(lines, CartLineView{
			ID:        r.ID,
			ProductID: r.ProductID,
			Name:      r.Name,
			Price:     r.Price,
			Image:     r.Image,
			Category:  r.Category,
			Quantity:  r.Quantity,
			Subtotal:  subtotal.Round(2).InexactFloat64(),
			CreatedAt: r.CreatedAt,
		})
	}
	return lines, total.Round(2).InexactFloat64(), nil
}

// UpdateCartItem sets a line's quantity to an absolute value, bound by
// current stock. Quantities below 1 are rejected; removal is its own call.
// PUT /api/cart/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		lineID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Invalid cart item ID")
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Valid quantity (min 1) is required")
			return
		}

		// Scoped to the caller: someone else's line resolves as not found,
		// same as a line that does not exist.
		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ?", lineID, userID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respond.Fail(c, http.StatusNotFound, respond.KindNotFound, "Cart item not found")
			} else {
				respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to fetch cart item")
			}
			return
		}

		var product models.Product
		if err := db.First(&product, item.ProductID).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to validate product")
			return
		}
		if input.Quantity > product.Stock {
			respond.FailStock(c, http.StatusBadRequest, product.Stock,
				fmt.Sprintf("Only %d of %q in stock", product.Stock, product.Name))
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to update cart item")
			return
		}

		respond.Ack(c, http.StatusOK, "Cart item updated")
	}
}

// RemoveCartItem deletes one line. Ownership-scoped like UpdateCartItem.
// DELETE /api/cart/:id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		lineID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Invalid cart item ID")
			return
		}

		result := db.Where("id = ? AND user_id = ?", lineID, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to remove cart item")
			return
		}
		if result.RowsAffected == 0 {
			respond.Fail(c, http.StatusNotFound, respond.KindNotFound, "Cart item not found")
			return
		}

		respond.Ack(c, http.StatusOK, "Item removed from cart")
	}
}

// ClearCart empties the caller's cart.
// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to clear cart")
			return
		}

		respond.Ack(c, http.StatusOK, "Cart cleared")
	}
}
