package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blogapi/internal/handlers"
	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/services"
	"blogapi/internal/session"
	"blogapi/pkg/cloudinary"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":5555")
	viper.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=blog port=5432 sslmode=disable")
	viper.SetDefault("CORS_ORIGIN", "https://blog-project-frontend-omega.vercel.app")
	viper.SetDefault("SESSION_COOKIE_SECURE", true)
	viper.AutomaticEnv() // Load environment variables

	sessionSecret := viper.GetString("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	// --- Database ---
	db, err := gorm.Open(postgres.Open(viper.GetString("DATABASE_DSN")), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Article{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Cloudinary ---
	uploads, err := cloudinary.NewClient(cloudinary.Config{
		CloudName: viper.GetString("CLOUDINARY_CLOUD_NAME"),
		APIKey:    viper.GetString("CLOUDINARY_API_KEY"),
		APISecret: viper.GetString("CLOUDINARY_API_SECRET"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary client: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	articleRepo := repositories.NewGORMArticleRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo)

	// --- Session cookies ---
	sessions := session.NewManager(sessionSecret, viper.GetBool("SESSION_COOKIE_SECURE"))

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService, sessions)
	articleHandler := handlers.NewArticleHandler(articleService, authService, sessions)
	uploadHandler := handlers.NewUploadHandler(uploads, sessions)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetString("CORS_ORIGIN"),
		AllowCredentials: true,
	}))
	// Process-wide per-IP quotas; sensitive routes add their own on top.
	app.Use(middleware.RateLimit(200, 24*time.Hour))
	app.Use(middleware.RateLimit(75, time.Hour))

	// --- API Routes ---
	authHandler.RegisterRoutes(app)
	articleHandler.RegisterRoutes(app)
	uploadHandler.RegisterRoutes(app)

	// --- Start HTTP Server ---
	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
