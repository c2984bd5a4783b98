package main

import (
	"io"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/logger"

	"minilotto/internal/config"
	"minilotto/internal/engine"
	"minilotto/internal/handlers"
	"minilotto/internal/services"
)

func main() {
	// 1. Start logging, then load configuration; an invalid game shape is fatal here.
	envErr := config.LoadDotEnv()
	defer logger.Init("minilotto", config.VerboseFromEnv(os.Getenv), false, io.Discard).Close()
	if envErr != nil {
		logger.Info("No .env file found, reading environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Initialize the Lottery Service
	lotteryService, err := services.NewLotteryService(services.Options{
		Range:           cfg.Range,
		TicketPrice:     cfg.TicketPrice,
		StartingBalance: cfg.StartingBalance,
		PrizeTable:      cfg.PrizeTable,
		Source:          engine.NewSeededSource(cfg.SeedOrClock()),
	})
	if err != nil {
		logger.Fatalf("Failed to create lottery service: %v", err)
	}

	// 3. Set up the Gin router
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 4. Register routes
	handlers.NewHTTPHandler(lotteryService).RegisterRoutes(r)

	// 5. Start the background janitor to drop resolved tickets
	if cfg.CleanupInterval > 0 {
		go func() {
			for range time.Tick(cfg.CleanupInterval) {
				removed := lotteryService.Cleanup()
				logger.Infof("Performed cleanup of resolved tickets, removed %d.", removed)
			}
		}()
	}

	// 6. Run the server
	logger.Infof("Server starting on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to run server: %v", err)
	}
}
