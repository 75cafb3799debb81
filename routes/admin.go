package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/config"
	cartControllers "github.com/meetchovatiya27/ecommarce-website/controllers/cart"
	festivalControllers "github.com/meetchovatiya27/ecommarce-website/controllers/festival"
	orderControllers "github.com/meetchovatiya27/ecommarce-website/controllers/order"
	productcontroller "github.com/meetchovatiya27/ecommarce-website/controllers/product"
	userControllers "github.com/meetchovatiya27/ecommarce-website/controllers/user"
	"github.com/meetchovatiya27/ecommarce-website/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(cfg.AdminAPIKey))
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		saleAdmin := adminGroup.Group("/festival-sales")
		{
			saleAdmin.POST("", festivalControllers.CreateSale(db))
			saleAdmin.PUT("/:id", festivalControllers.UpdateSale(db))
			saleAdmin.GET("", festivalControllers.GetAllSales(db))
			saleAdmin.DELETE("/:id", festivalControllers.DeleteSale(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.PUT("/:order_id/status", orderControllers.UpdateOrderStatus(db))
		}
	}
}
