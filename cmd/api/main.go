package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hvngo/stylehub-catalog-service/config"
	"github.com/hvngo/stylehub-catalog-service/internal/middleware"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/broker"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/cache"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/database/postgres"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/i18n"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/logger"
	"github.com/hvngo/stylehub-catalog-service/internal/pkg/search"

	attrH "github.com/hvngo/stylehub-catalog-service/internal/attribute/handler"
	attrRepoPkg "github.com/hvngo/stylehub-catalog-service/internal/attribute/repository"
	attrUCPkg "github.com/hvngo/stylehub-catalog-service/internal/attribute/usecase"

	taxH "github.com/hvngo/stylehub-catalog-service/internal/taxonomy/handler"
	taxRepoPkg "github.com/hvngo/stylehub-catalog-service/internal/taxonomy/repository"
	taxUCPkg "github.com/hvngo/stylehub-catalog-service/internal/taxonomy/usecase"

	prodH "github.com/hvngo/stylehub-catalog-service/internal/product/handler"
	prodRepoPkg "github.com/hvngo/stylehub-catalog-service/internal/product/repository"
	prodUCPkg "github.com/hvngo/stylehub-catalog-service/internal/product/usecase"

	varH "github.com/hvngo/stylehub-catalog-service/internal/variant/handler"
	varRepoPkg "github.com/hvngo/stylehub-catalog-service/internal/variant/repository"
	varUCPkg "github.com/hvngo/stylehub-catalog-service/internal/variant/usecase"

	stockH "github.com/hvngo/stylehub-catalog-service/internal/stock/handler"
	stockListenerPkg "github.com/hvngo/stylehub-catalog-service/internal/stock/listener"
	stockRepoPkg "github.com/hvngo/stylehub-catalog-service/internal/stock/repository"
	stockUCPkg "github.com/hvngo/stylehub-catalog-service/internal/stock/usecase"

	reportH "github.com/hvngo/stylehub-catalog-service/internal/report/handler"
	reportRepoPkg "github.com/hvngo/stylehub-catalog-service/internal/report/repository"
	reportUCPkg "github.com/hvngo/stylehub-catalog-service/internal/report/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 1.5 Initialize i18n
	i18n.Init()
	for _, locale := range []string{"active.en.json", "active.vi.json"} {
		if err := i18n.Load(filepath.Join(cfg.I18n.LocalesDir, locale)); err != nil {
			// Missing locale files fall back to message IDs, not a fatal.
			os.Stderr.WriteString("failed to load locale " + locale + ": " + err.Error() + "\n")
		}
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	attrRepo := attrRepoPkg.NewPGRepository(db)
	taxRepo := taxRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	varRepo := varRepoPkg.NewPGRepository(db)
	stockRepo := stockRepoPkg.NewPGRepository(db)
	reportRepo := reportRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5.5 Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 5.8 Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (Search features might be limited)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 6. Initialize UseCases
	attrUC := attrUCPkg.NewAttributeUseCase(attrRepo, redisClient, appLogger)
	taxUC := taxUCPkg.NewTaxonomyUseCase(taxRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, redisClient, esClient, appLogger)
	varUC := varUCPkg.NewVariantUseCase(varRepo, prodRepo, attrUC, appLogger)
	stockUC := stockUCPkg.NewStockUseCase(stockRepo, redisClient, cfg.Stock.LowStockThreshold, appLogger)
	reportUC := reportUCPkg.NewReportUseCase(reportRepo, cfg.Stock.LowStockThreshold, appLogger)

	// 6.5 Initialize Listeners
	stockListener := stockListenerPkg.NewStockListener(kafkaConsumer, stockUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go stockListener.Start(ctx)

	// 7. Initialize Handlers + Router
	attrHandler := attrH.NewAttributeHandler(attrUC, appLogger)
	taxHandler := taxH.NewTaxonomyHandler(taxUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	varHandler := varH.NewVariantHandler(varUC, appLogger)
	stockHandler := stockH.NewStockHandler(stockUC, appLogger)
	reportHandler := reportH.NewReportHandler(reportUC, appLogger)

	if cfg.Server.AppEnv != "dev" && cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS("*"))

	router.GET("/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/v1")
	v1.Use(middleware.Auth(cfg.JWT.SecretKey))
	{
		v1.GET("/attributes/:axis", attrHandler.ListValues)
		v1.POST("/attributes/:axis", attrHandler.CreateValue)
		v1.DELETE("/attributes/:axis/:id", attrHandler.DeleteValue)

		v1.POST("/categories", taxHandler.CreateCategory)
		v1.GET("/categories", taxHandler.ListCategories)
		v1.PUT("/categories/:id", taxHandler.UpdateCategory)
		v1.DELETE("/categories/:id", taxHandler.DeleteCategory)

		v1.POST("/brands", taxHandler.CreateBrand)
		v1.GET("/brands", taxHandler.ListBrands)
		v1.DELETE("/brands/:id", taxHandler.DeleteBrand)

		v1.POST("/products", prodHandler.CreateProduct)
		v1.GET("/products", prodHandler.ListProducts)
		v1.GET("/products/:id", prodHandler.GetProduct)
		v1.PUT("/products/:id", prodHandler.UpdateProduct)
		v1.DELETE("/products/:id", prodHandler.DeleteProduct)

		v1.POST("/products/:id/variants/preview", varHandler.PreviewMatrix)
		v1.POST("/products/:id/variants/generate", varHandler.GenerateVariants)
		v1.GET("/products/:id/variants", varHandler.ListVariants)

		v1.GET("/stock", stockHandler.ListGroupedStock)
		v1.POST("/stock/adjust", stockHandler.AdjustStock)
		v1.POST("/stock/import", stockHandler.ImportStock)
		v1.GET("/stock/movements", stockHandler.ListMovements)

		v1.GET("/reports/inventory", reportHandler.GetMonthlyReport)
		v1.GET("/reports/inventory/export", reportHandler.ExportMonthlyReport)
	}

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
