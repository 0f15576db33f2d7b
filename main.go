// main.go
package main

import (
	"log"
	"time"

	"movie-booking/cmd"
	"movie-booking/internal/data/cache"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/wire"
	"movie-booking/pkg/database"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Optional availability hint cache
	var hints *cache.AvailabilityCache
	if config.Redis.Enabled {
		rdb, err := database.InitRedis(config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, availability hints disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			ttl := time.Duration(config.Redis.HintTTLSecond) * time.Second
			hints = cache.NewAvailabilityCache(rdb, ttl, logger)
			logger.Info("Redis connected, availability hints enabled")
		}
	}

	// Initialize repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, hints, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
