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

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
}

// UpdateProduct patches the fields present in the request. Admin only.
// PUT /api/admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
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

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "Invalid input: "+err.Error())
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Stock != nil {
			updates["stock"] = *input.Stock
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				respond.Fail(c, http.StatusInternalServerError, respond.KindInternal, "Failed to update product")
				return
			}
		}

		respond.OK(c, http.StatusOK, product)
	}
}
