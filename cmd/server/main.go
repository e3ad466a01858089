package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pricelens/backend/config"
	httpDelivery "github.com/pricelens/backend/internal/delivery/http"
	"github.com/pricelens/backend/internal/infrastructure/catalog"
	"github.com/pricelens/backend/internal/infrastructure/gemini"
	"github.com/pricelens/backend/internal/usecase"
)

func main() {
	// Load .env if present, real environment wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.Server.Environment)

	log.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("model", cfg.Gemini.Model).
		Msg("Starting PriceLens Backend v1.0.0")

	// Initialize infrastructure dependencies
	productCatalog := catalog.NewStaticCatalog()
	log.Info().Int("entries", len(productCatalog.Entries())).Msg("Catalog loaded")

	geminiClient, err := gemini.NewClient(context.Background(), gemini.Config{
		APIKey:            cfg.Gemini.APIKey,
		Model:             cfg.Gemini.Model,
		RequestTimeout:    cfg.Gemini.RequestTimeout,
		RequestsPerMinute: cfg.RateLimit.ModelRPM,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Gemini client")
	}

	// Initialize usecase layer
	appraisalService := usecase.NewAppraisalService(geminiClient, productCatalog)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(appraisalService, productCatalog)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("Server listening")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// setupLogging keeps JSON output in production and a console writer
// everywhere else.
func setupLogging(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if environment == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
