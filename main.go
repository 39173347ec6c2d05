package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"vconfig-be/internal/config"
	"vconfig-be/internal/controllers"
	"vconfig-be/internal/database"
	"vconfig-be/internal/logger"
	"vconfig-be/internal/middleware"
	"vconfig-be/internal/repository"
	"vconfig-be/internal/service"
	"vconfig-be/internal/token"
)

func main() {
	logger.Init()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize token service. A missing signing secret is fatal.
	tokens, err := token.New(cfg.JWTSecret, time.Duration(cfg.JWTTTL)*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token service")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens)
	vehicleService := service.NewVehicleService(vehicleRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	vehicleController := controllers.NewVehicleController(vehicleService)

	// Create a Gin router
	router := gin.Default()
	router.Use(cors.Default())

	// Root and health endpoints
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Vehicle Configurator API is running successfully!")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", middleware.Auth(tokens), authController.Me)
		}

		vehicles := api.Group("/vehicles")
		{
			vehicles.POST("", vehicleController.Create)
			vehicles.GET("", vehicleController.GetAll)
			vehicles.GET("/search", vehicleController.Search)
			vehicles.GET("/:id", vehicleController.GetByID)
			vehicles.PUT("/:id", vehicleController.Update)
			vehicles.DELETE("/:id", vehicleController.Delete)
		}
	}

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("server starting")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
