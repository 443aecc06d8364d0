// main.go
package main

import (
	"log"

	"smart-tracking/cmd"
	"smart-tracking/internal/data/repository"
	"smart-tracking/internal/wire"
	"smart-tracking/pkg/database"
	"smart-tracking/pkg/notifier"
	"smart-tracking/pkg/utils"

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

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Initialize notification channels (driver dari config)
	email := notifier.NewEmailChannel(config.Email, logger)
	sms := notifier.NewSmsChannel(config.SMS, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, email, sms, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
