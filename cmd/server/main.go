package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcatalog "github.com/shopnet/backend/internal/application/catalog"
	appidentity "github.com/shopnet/backend/internal/application/identity"
	"github.com/shopnet/backend/internal/application/notification"
	apporder "github.com/shopnet/backend/internal/application/order"
	appshop "github.com/shopnet/backend/internal/application/shop"
	"github.com/shopnet/backend/internal/infrastructure/auth"
	"github.com/shopnet/backend/internal/infrastructure/config"
	"github.com/shopnet/backend/internal/infrastructure/event"
	"github.com/shopnet/backend/internal/infrastructure/feed"
	"github.com/shopnet/backend/internal/infrastructure/logger"
	"github.com/shopnet/backend/internal/infrastructure/mail"
	"github.com/shopnet/backend/internal/infrastructure/persistence"
	"github.com/shopnet/backend/internal/infrastructure/queue"
	"github.com/shopnet/backend/internal/interfaces/http/handler"
	"github.com/shopnet/backend/internal/interfaces/http/middleware"
	"github.com/shopnet/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Shopnet Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	tokenRepo := persistence.NewGormConfirmTokenRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	shopRepo := persistence.NewGormShopRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	listingRepo := persistence.NewGormListingRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	importer := persistence.NewGormImporter(db.DB)

	// Token infrastructure: JWT signing plus a Redis-backed blacklist for
	// individual logout. Falls back to in-process storage when Redis is
	// unreachable so a cache outage does not take the API down.
	jwtService := auth.NewJWTService(cfg.JWT)
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis connection", zap.Error(err))
			}
		}()
		log.Info("Redis token blacklist connected")
	}

	// Initialize event bus
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Background task runner for feed imports and outgoing mail
	tasks := queue.NewRunner(cfg.Tasks, log)
	tasks.Start(context.Background())
	defer tasks.Stop()
	log.Info("Task runner started",
		zap.Int("workers", cfg.Tasks.Workers),
		zap.Int("queue_size", cfg.Tasks.QueueSize),
	)

	// Outgoing mail: confirmation links, order confirmations, invoices.
	// With SMTP disabled messages are logged instead of sent.
	sender := mail.NewSender(cfg.SMTP, log)
	notifier := notification.NewEmailNotifier(sender, tasks, userRepo, shopRepo, orderRepo, log)
	eventBus.Subscribe(notifier)
	log.Info("Email notifier subscribed", zap.Strings("events", notifier.EventTypes()))

	// Initialize application services
	userService := appidentity.NewUserService(userRepo, tokenRepo, shopRepo, eventBus, log)
	authService := appidentity.NewAuthService(userRepo, jwtService, blacklist, log)
	contactService := appidentity.NewContactService(contactRepo, log)

	queryService := appcatalog.NewQueryService(categoryRepo, productRepo, listingRepo, shopRepo, log)
	fetcher := feed.NewFetcher(cfg.Import)
	importService := appcatalog.NewImportService(fetcher, shopRepo, importer, tasks, log)
	exportService := appcatalog.NewExportService(shopRepo, listingRepo, productRepo, categoryRepo, log)

	cartService := apporder.NewCartService(cartRepo, listingRepo, log)
	checkoutService := apporder.NewCheckoutService(cartRepo, orderRepo, listingRepo, shopRepo, contactRepo, eventBus, log)
	orderService := apporder.NewOrderService(orderRepo, shopRepo, eventBus, log)
	shopService := appshop.NewService(shopRepo, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(userService, authService)
	userHandler := handler.NewUserHandler(userService, contactService)
	catalogHandler := handler.NewCatalogHandler(queryService)
	basketHandler := handler.NewBasketHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService, checkoutService)
	partnerHandler := handler.NewPartnerHandler(importService, exportService, shopService, orderService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// JWT authentication for API routes with public endpoints skipped
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	jwtConfig.SkipPaths = append(jwtConfig.SkipPaths, "/api/v1/system/info")
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	r.Register(authHandler).
		Register(userHandler).
		Register(catalogHandler).
		Register(basketHandler).
		Register(orderHandler).
		Register(partnerHandler).
		Register(systemHandler)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
