package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/auth"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/config"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/middleware"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
	"github.com/NoobOtaku-terminal/vibe-commerce-cart/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	gin.SetMode(cfg.GinMode)

	db := initDatabase(cfg, &logger)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate failed")
	}

	if err := models.SeedProducts(db); err != nil {
		logger.Fatal().Err(err).Msg("product seeding failed")
	}
	if err := seedAdmin(db, cfg); err != nil {
		logger.Fatal().Err(err).Msg("admin seeding failed")
	}

	tokens := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL())

	r := gin.New()
	r.Use(middleware.Recover(&logger), middleware.RequestLogger(&logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, tokens, cfg.OrderStatusPolicy())

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// initDatabase opens Postgres when DATABASE_URL is set, otherwise a local
// SQLite file, which is all the single-store deployment needs.
func initDatabase(cfg *config.Config, logger *zerolog.Logger) *gorm.DB {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			logger.Fatal().Err(err).Msg("postgres connection failed")
		}
		return db
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("sqlite connection failed")
	}
	return db
}

// seedAdmin creates the configured admin account on first boot. Role
// assignment happens only here; no route can change a user's role.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		ID:           uuid.NewString(),
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Name:         cfg.AdminName,
		Role:         models.RoleAdmin,
	}).Error
}
