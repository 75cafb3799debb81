package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/models"
)

type productUpdateInput struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	Image           *string          `json:"image"`
	CategoryID      *uint            `json:"category_id"`
	Stock           *int             `json:"stock"`
	Available       *bool            `json:"available"`
	DiscountPercent *int             `json:"discount_percent"`
}

// UpdateProduct applies a partial update. Placed orders keep their own price
// and name snapshots, so edits here never rewrite order history.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var input productUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Price != nil && input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}
		if input.Stock != nil && *input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must not be negative"})
			return
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = *input.CategoryID
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.Available != nil {
			product.Available = *input.Available
		}
		if input.DiscountPercent != nil {
			product.DiscountPercent = *input.DiscountPercent
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
