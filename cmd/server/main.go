package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/tokopos/backend/internal/application/billing"
	catalogapp "github.com/tokopos/backend/internal/application/catalog"
	inventoryapp "github.com/tokopos/backend/internal/application/inventory"
	partnerapp "github.com/tokopos/backend/internal/application/partner"
	reportapp "github.com/tokopos/backend/internal/application/report"
	tradeapp "github.com/tokopos/backend/internal/application/trade"
	"github.com/tokopos/backend/internal/infrastructure/config"
	"github.com/tokopos/backend/internal/infrastructure/logger"
	"github.com/tokopos/backend/internal/infrastructure/persistence"
	"github.com/tokopos/backend/internal/interfaces/http/handler"
	"github.com/tokopos/backend/internal/interfaces/http/middleware"
	"github.com/tokopos/backend/internal/interfaces/http/router"
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

	log.Info("Starting TokoPOS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
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
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	locationRepo := persistence.NewGormLocationRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)
	adjustmentRepo := persistence.NewGormAdjustmentRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	taxRepo := persistence.NewGormTaxRepository(db.DB)
	checkoutStore := persistence.NewGormCheckoutStore(db.DB)
	dashboardRepo := persistence.NewGormDashboardRepository(db.DB)

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo, categoryRepo, stockRepo, saleRepo, purchaseRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	locationService := partnerapp.NewLocationService(locationRepo, stockRepo, saleRepo)
	contactService := partnerapp.NewContactService(contactRepo)
	adjustmentService := inventoryapp.NewAdjustmentService(adjustmentRepo, locationRepo, log)
	stockService := inventoryapp.NewStockService(stockRepo, locationRepo)
	saleService := tradeapp.NewSaleService(saleRepo, locationRepo, checkoutStore, log)
	purchaseService := tradeapp.NewPurchaseService(purchaseRepo, contactRepo, locationRepo, taxRepo, log)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, taxRepo, contactRepo, log)
	taxService := billingapp.NewTaxService(taxRepo, invoiceRepo)
	dashboardService := reportapp.NewDashboardService(dashboardRepo, log)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	locationHandler := handler.NewLocationHandler(locationService)
	contactHandler := handler.NewContactHandler(contactService)
	adjustmentHandler := handler.NewAdjustmentHandler(adjustmentService)
	stockHandler := handler.NewStockHandler(stockService)
	saleHandler := handler.NewSaleHandler(saleService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	taxHandler := handler.NewTaxHandler(taxService)
	reportHandler := handler.NewReportHandler(dashboardService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, in order: request ID, panic recovery, request
	// logging, security headers, CORS, body size limit.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler)
	r.Register(productHandler)
	r.Register(categoryHandler)
	r.Register(locationHandler)
	r.Register(contactHandler)
	r.Register(adjustmentHandler)
	r.Register(stockHandler)
	r.Register(saleHandler)
	r.Register(purchaseHandler)
	r.Register(invoiceHandler)
	r.Register(taxHandler)
	r.Register(reportHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
