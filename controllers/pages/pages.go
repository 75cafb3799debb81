package pagesControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	festivalControllers "github.com/meetchovatiya27/ecommarce-website/controllers/festival"
	"github.com/meetchovatiya27/ecommarce-website/models"
)

// GET / — the storefront home: categories with their products, plus the
// ongoing festival sale when one exists.
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sale, err := festivalControllers.ActiveSale(db, time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sale"})
			return
		}

		var categories []models.Category
		if err := db.Preload("Products", "available = ?", true).
			Order("name asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"sale":       sale,
			"categories": categories,
		})
	}
}

// GET /about — the most recently updated about entry.
func About(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var about models.About
		err := db.Order("updated_at desc").First(&about).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"about": nil})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch about page"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"about": about})
	}
}

type contactInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// POST /contact
func SubmitContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input contactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		contact := models.Contact{
			Name:    input.Name,
			Phone:   input.Phone,
			Email:   input.Email,
			Message: input.Message,
		}
		if err := db.Create(&contact).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Thanks for reaching out"})
	}
}

// GET /page/:slug — static pages; an external URL wins over stored content.
func StaticPageBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var page models.StaticPage
		if err := db.Where("slug = ?", slug).First(&page).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page"})
			return
		}

		if page.ExternalURL != "" {
			c.Redirect(http.StatusFound, page.ExternalURL)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
