package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/controllers/respond"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
}

// CreateProduct adds a product to the catalog. Admin only.
// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Invalid input: "+err.Error())
			return
		}

		product := models.Product{
			Name:        input.Name,
			Price:       *input.Price,
			Description: input.Description,
			Image:       input.Image,
			Category:    input.Category,
			Stock:       *input.Stock,
		}
		if err := db.Create(&product).Error; err != nil {
			respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to create product")
			return
		}

		respond.OK(c, http.StatusCreated, product)
	}
}
