package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/config"
	cartControllers "github.com/meetchovatiya27/ecommarce-website/controllers/cart"
	festivalControllers "github.com/meetchovatiya27/ecommarce-website/controllers/festival"
	pagesControllers "github.com/meetchovatiya27/ecommarce-website/controllers/pages"
	productcontroller "github.com/meetchovatiya27/ecommarce-website/controllers/product"
	"github.com/meetchovatiya27/ecommarce-website/middleware"
)

// SetupPublicRoutes registers the anonymous storefront: catalog browsing,
// static pages, the festival banner, and the cart (anonymous carts ride on
// the session cookie; signed-in callers are recognized when a token is sent).
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.GET("/", pagesControllers.Home(db))
	r.GET("/about", pagesControllers.About(db))
	r.POST("/contact", pagesControllers.SubmitContact(db))
	r.GET("/page/:slug", pagesControllers.StaticPageBySlug(db))

	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategoriesWithProducts(db))

	r.GET("/festival-sale", festivalControllers.GetActiveSale(db))

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.OptionalToken(cfg.JWTSecret), middleware.CartSession())
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/add/:product_id", cartControllers.AddToCart(db))
		cartGroup.POST("/update/:product_id", cartControllers.UpdateCartItem(db))
		cartGroup.POST("/remove/:product_id", cartControllers.RemoveCartItem(db))
	}
}
