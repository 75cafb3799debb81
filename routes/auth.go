package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/config"
	userControllers "github.com/meetchovatiya27/ecommarce-website/controllers/user"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", userControllers.Register(db, cfg.JWTSecret))
		authGroup.POST("/login", userControllers.Login(db, cfg.JWTSecret))
		authGroup.POST("/logout", userControllers.Logout())
	}
}
