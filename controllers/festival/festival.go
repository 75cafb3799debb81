package festivalControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/models"
)

// ActiveSale returns the ongoing sale, if any: is_active and now inside
// [start_date, end_date] inclusive. Overlapping sales resolve to the first
// row in primary-key order; there is no explicit priority rule.
func ActiveSale(db *gorm.DB, now time.Time) (*models.FestivalSale, error) {
	var sale models.FestivalSale
	err := db.
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("id asc").
		First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// GET /festival-sale
func GetActiveSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sale, err := ActiveSale(db, time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sale"})
			return
		}
		if sale == nil {
			c.JSON(http.StatusOK, gin.H{"sale": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sale": sale})
	}
}

type saleInput struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent"`
	BannerImage     string    `json:"banner_image"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	IsActive        *bool     `json:"is_active"`
}

// POST /admin/festival-sales
func CreateSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input saleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.EndDate.Before(input.StartDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not precede start_date"})
			return
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		sale := models.FestivalSale{
			Title:           input.Title,
			Description:     input.Description,
			DiscountPercent: input.DiscountPercent,
			BannerImage:     input.BannerImage,
			StartDate:       input.StartDate,
			EndDate:         input.EndDate,
			IsActive:        isActive,
		}
		if err := db.Create(&sale).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale"})
			return
		}
		c.JSON(http.StatusCreated, sale)
	}
}

// PUT /admin/festival-sales/:id
func UpdateSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var sale models.FestivalSale
		if err := db.First(&sale, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sale"})
			return
		}

		var input saleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.EndDate.Before(input.StartDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not precede start_date"})
			return
		}

		sale.Title = input.Title
		sale.Description = input.Description
		sale.DiscountPercent = input.DiscountPercent
		sale.BannerImage = input.BannerImage
		sale.StartDate = input.StartDate
		sale.EndDate = input.EndDate
		if input.IsActive != nil {
			sale.IsActive = *input.IsActive
		}

		if err := db.Save(&sale).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sale"})
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}

// GET /admin/festival-sales
func GetAllSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sales []models.FestivalSale
		if err := db.Order("start_date desc").Find(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

// DELETE /admin/festival-sales/:id
func DeleteSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result := db.Delete(&models.FestivalSale{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
	}
}
