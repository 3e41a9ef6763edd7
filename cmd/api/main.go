// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ikilo/storefront-backend/internal/config"
	"github.com/ikilo/storefront-backend/internal/infrastructure/database/postgres"
	"github.com/ikilo/storefront-backend/internal/infrastructure/database/redis"
	"github.com/ikilo/storefront-backend/internal/interfaces/http"
	"github.com/ikilo/storefront-backend/internal/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// The store and the cache are optional: the storefront serves its
	// built-in catalog and in-process carts when either is down.
	var gormDB *gorm.DB
	db, err := postgres.NewConnection(cfg)
	if err != nil {
		logg.WithError(err).Warn("database unavailable, starting in degraded mode")
	} else {
		defer db.Close()
		gormDB = db.GetDB()

		migration := postgres.NewMigration(gormDB, logg)
		if err := migration.RunAutoMigrations(); err != nil {
			logg.WithError(err).Error("database migration failed")
			gormDB = nil
		} else {
			if err := migration.CreateIndexes(); err != nil {
				logg.WithError(err).Warn("index creation failed")
			}
			if err := migration.SeedInitialData(); err != nil {
				logg.WithError(err).Warn("data seeding failed")
			}
		}
	}

	var redisConn *goredis.Client
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		logg.WithError(err).Warn("redis unavailable, carts will be held in process memory")
	} else {
		defer redisClient.Close()
		redisConn = redisClient.GetClient()
	}

	server := http.NewServer(cfg, logg, gormDB, redisConn)

	go func() {
		if err := server.Start(); err != nil {
			logg.WithError(err).Fatal("failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logg.WithError(err).Error("failed to shutdown HTTP server gracefully")
	}

	logg.Info("server shutdown completed")
}
