package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cofrinho/internal/config"
	"cofrinho/internal/database"
	"cofrinho/internal/events"
	"cofrinho/internal/handlers"
	"cofrinho/internal/logger"
	"cofrinho/internal/middleware"
	"cofrinho/internal/services"
	"cofrinho/internal/session"
	"cofrinho/internal/validator"

	_ "cofrinho/internal/docs" // Import swagger docs
)

// @title           Cofrinho API
// @version         1.0
// @description     Cofrinho is a personal finance tracker: users create monthly budget periods with a spending goal and record expenses against the active period.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom validators on the Gin binding engine
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Event publisher: AMQP when configured, noop otherwise
	var publisher events.Publisher = events.NoopPublisher{}
	if appConfig.AMQPURL != "" {
		client, err := events.NewClient(appConfig.AMQPURL, appConfig.AMQPExchange, appConfig.AMQPQueue)
		if err != nil {
			return fmt.Errorf("failed to connect to AMQP broker: %w", err)
		}
		publisher = client
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warnf("close event publisher: %v", err)
		}
	}()

	// Session broker, owned by the application's top-level scope
	broker := session.NewBroker()
	defer broker.Close()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db, appConfig.GoogleClientID)
	periodService := services.NewPeriodService(db, publisher)
	transactionService := services.NewTransactionService(db, periodService, publisher)
	dashboardService := services.NewDashboardService(periodService, transactionService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, broker)
	periodHandler := handlers.NewPeriodHandler(periodService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/google", authHandler.GoogleSignIn)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/events", authHandler.Events)

	// Period routes
	periods := protected.Group("/periods")
	periods.POST("", periodHandler.CreatePeriod)
	periods.GET("", periodHandler.GetPeriods)
	periods.GET("/current", periodHandler.GetCurrentPeriod)
	periods.GET("/:id/transactions", transactionHandler.GetPeriodTransactions)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)

	// Combined read path
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	log.Infof("Starting Cofrinho backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
