package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/respond"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

// DeleteProduct removes a product from the catalog. A product still sitting
// in someone's cart cannot be deleted; the cart line would dangle. Admin only.
// DELETE /api/admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respond.Fail(c, http.StatusNotFound, respond.KindNotFound, "Product not found")
			} else {
				respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to fetch product")
			}
			return
		}

		var inCarts int64
		if err := db.Model(&models.CartItem{}).Where("product_id = ?", product.ID).Count(&inCarts).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to check cart references")
			return
		}
		if inCarts > 0 {
			respond.Fail(c, http.StatusConflict, respond.KindConflict, "Product is referenced by existing cart items")
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to delete product")
			return
		}

		respond.Ack(c, http.StatusOK, "Product deleted successfully")
	}
}
