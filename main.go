package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/config"
	"github.com/meetchovatiya27/ecommarce-website/gateway"
	"github.com/meetchovatiya27/ecommarce-website/models"
	"github.com/meetchovatiya27/ecommarce-website/pkg/logger"
	"github.com/meetchovatiya27/ecommarce-website/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := logger.Init(cfg.Log); err != nil {
		log.Fatalf("logger: %v", err)
	}

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.UserPurchaseHistory{},
		&models.FestivalSale{},
		&models.Contact{},
		&models.StaticPage{},
		&models.About{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	gw := gateway.NewClient(cfg.Gateway)
	routes.SetupRoutes(r, db, gw, cfg)

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	return db
}
