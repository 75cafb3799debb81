package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/models"
)

type productInput struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	Image           string          `json:"image"`
	CategoryID      uint            `json:"category_id" binding:"required"`
	Stock           int             `json:"stock"`
	Available       *bool           `json:"available"`
	DiscountPercent int             `json:"discount_percent"`
}

// CreateProduct creates a product under an existing category.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input productInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}
		if input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must not be negative"})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		available := true
		if input.Available != nil {
			available = *input.Available
		}

		product := models.Product{
			Name:            input.Name,
			Description:     input.Description,
			Price:           input.Price,
			Image:           input.Image,
			CategoryID:      input.CategoryID,
			Stock:           input.Stock,
			Available:       available,
			DiscountPercent: input.DiscountPercent,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
