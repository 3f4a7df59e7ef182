// main.go
package main

import (
	"log"

	"movie-catalog/cmd"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/internal/wire"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/rabbitmq"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// @title        Movie Catalog API
// @version      1.0
// @description  CRUD API over a catalog of movies.
// @BasePath     /
func main() {
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

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

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	var events usecase.EventPublisher = usecase.NopPublisher{}
	if config.RabbitMQ.URL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      config.RabbitMQ.URL,
			Exchange: config.RabbitMQ.Exchange,
		}, logger)
		if err != nil {
			logger.Warn("Movie events disabled", zap.Error(err))
		} else {
			defer mq.Close()
			events = mq
		}
	}

	repos := repository.NewRepository(db, logger)

	app, err := wire.Wiring(repos, config, events, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
