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

	"github.com/saborfome/backend/internal/application/storefront"
	"github.com/saborfome/backend/internal/domain/order"
	"github.com/saborfome/backend/internal/infrastructure/config"
	"github.com/saborfome/backend/internal/infrastructure/logger"
	"github.com/saborfome/backend/internal/infrastructure/persistence"
	"github.com/saborfome/backend/internal/infrastructure/postal"
	"github.com/saborfome/backend/internal/infrastructure/snapshot"
	"github.com/saborfome/backend/internal/infrastructure/whatsapp"
	"github.com/saborfome/backend/internal/interfaces/http/handler"
	"github.com/saborfome/backend/internal/interfaces/http/middleware"
	"github.com/saborfome/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	productRepo := persistence.NewGormProductRepository(db.DB)

	if cfg.Catalog.SeedFile != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := persistence.SeedCatalogFromFile(ctx, productRepo, cfg.Catalog.SeedFile)
		cancel()
		if err != nil {
			log.Fatal("Failed to seed catalog", zap.Error(err))
		}
		log.Info("Catalog seeded", zap.Int("products", n), zap.String("file", cfg.Catalog.SeedFile))
	}

	// Session snapshots: Redis when enabled, in-process otherwise
	var snapshots snapshot.Store
	if cfg.Redis.Enabled {
		redisStore, err := snapshot.NewRedisStore(snapshot.RedisConfig{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisStore.Close(); err != nil {
				log.Error("Error closing Redis", zap.Error(err))
			}
		}()
		snapshots = redisStore
		log.Info("Session store: redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		snapshots = snapshot.NewMemoryStore(cfg.Redis.TTL)
		log.Info("Session store: memory")
	}

	sessions := storefront.NewSessions(snapshots, log)
	postalClient := postal.NewClient(postal.Config{
		BaseURL: cfg.Postal.BaseURL,
		Timeout: cfg.Postal.Timeout,
	})
	links := whatsapp.NewLinkBuilder(cfg.WhatsApp.Number)
	if !links.Configured() {
		log.Warn("WhatsApp number not configured; checkout links are disabled")
	}

	limits := order.ValidationLimits{
		MinNameLength:    cfg.Checkout.MinNameLength,
		MinAddressLength: cfg.Checkout.MinAddressLength,
	}

	catalogService := storefront.NewCatalogService(productRepo)
	cartService := storefront.NewCartService(sessions, productRepo)
	orderService := storefront.NewOrderService(sessions, postalClient, log)
	checkoutService := storefront.NewCheckoutService(sessions, links, cfg.WhatsApp.StoreName, limits, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	handler.NewHealthHandler(db, version).Register(engine)

	router.NewRouter(engine).
		Register(handler.NewCatalogHandler(catalogService)).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewCheckoutHandler(checkoutService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
