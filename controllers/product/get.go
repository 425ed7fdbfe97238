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

// GetProducts returns the whole catalog.
// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at desc").Find(&products).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to fetch products")
			return
		}
		respond.OK(c, http.StatusOK, products)
	}
}

// GetProductByID returns a single product.
// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
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
				respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to retrieve product")
			}
			return
		}
		respond.OK(c, http.StatusOK, product)
	}
}
