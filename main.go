package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/ranahan-restaurant/config"
	"github.com/yeremiapane/ranahan-restaurant/database"
	"github.com/yeremiapane/ranahan-restaurant/queue"
	"github.com/yeremiapane/ranahan-restaurant/router"
	"github.com/yeremiapane/ranahan-restaurant/services"
	"github.com/yeremiapane/ranahan-restaurant/utils"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.ConfigureLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		utils.ErrorLogger.Printf("Invalid LOG_LEVEL %q, using info: %v", cfg.LogLevel, err)
	}
	utils.InitJWT(cfg.JWTSecret, cfg.SessionTTL)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	seed(db, cfg)

	rdb := config.InitRedis(cfg)
	if rdb == nil && cfg.RedisAddr != "" {
		utils.ErrorLogger.Printf("Redis %s unreachable, menu cache disabled", cfg.RedisAddr)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	var publisher queue.Publisher = queue.NopPublisher{}
	if cfg.AMQPURL != "" {
		p, err := queue.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			utils.ErrorLogger.Printf("AMQP unavailable, events disabled: %v", err)
		} else {
			publisher = p
		}
	}
	defer publisher.Close()

	r := router.SetupRouter(router.Deps{
		DB:        db,
		Config:    cfg,
		MenuCache: services.NewMenuCache(rdb, cfg.MenuCacheTTL),
		Publisher: publisher,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.InfoLogger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Server forced to shutdown: %v", err)
	}
}

func seed(db *gorm.DB, cfg *config.Config) {
	if _, err := database.SeedFromFile(db, cfg.SeedFile); err != nil {
		utils.ErrorLogger.Printf("Seed from %s skipped: %v", cfg.SeedFile, err)
	}
	if err := database.SeedStock(db, cfg.StockLowThreshold); err != nil {
		utils.ErrorLogger.Printf("Error seeding stock: %v", err)
	}
	if err := database.SeedTables(db, cfg.SeedTables); err != nil {
		utils.ErrorLogger.Printf("Error seeding tables: %v", err)
	}
}
