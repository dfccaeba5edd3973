package bootstrap

import (
	"context"
	"fmt"

	callHandler "tripvoice/internal/calls/handler"
	callProcessor "tripvoice/internal/calls/processor"
	"tripvoice/internal/clients/unsplash"
	"tripvoice/internal/clients/vapi"
	"tripvoice/internal/config"
	destinationHandler "tripvoice/internal/destinations/handler"
	destinationProcessor "tripvoice/internal/destinations/processor"
	"tripvoice/internal/observability"
	photoHandler "tripvoice/internal/photos/handler"
	photoProcessor "tripvoice/internal/photos/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Logger *observability.Logger

	CallHandler        callHandler.Handler
	DestinationHandler destinationHandler.Handler
	PhotoHandler       photoHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Missing credentials are not fatal: the server starts and reports the
	// gap via /health, and the affected operation fails when invoked.
	if !cfg.VapiConfigured() {
		logger.Warn(ctx, "VAPI_PRIVATE_KEY or VAPI_ASSISTANT_ID is not set; call creation will be unavailable")
	}
	if !cfg.UnsplashConfigured() {
		logger.Warn(ctx, "UNSPLASH_ACCESS_KEY is not set; photo search will be unavailable")
	}

	vapiClient := vapi.NewClient(cfg.Vapi.PrivateKey, cfg.Vapi.AssistantID, cfg.Vapi.BaseURL, logger)
	unsplashClient := unsplash.NewClient(cfg.Unsplash.AccessKey, cfg.Unsplash.BaseURL, logger)

	destProcessor, err := destinationProcessor.New(destinationProcessor.DefaultDictionary(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build destination processor: %w", err)
	}

	deps.CallHandler = callHandler.New(callProcessor.New(vapiClient, logger), logger)
	deps.DestinationHandler = destinationHandler.New(destProcessor, logger)
	deps.PhotoHandler = photoHandler.New(photoProcessor.New(unsplashClient, logger), logger)

	return deps, nil
}
