package main

import (
	"fmt"
	"log"
	"os"

	"github.com/breadlens/backend/config"
	httpDelivery "github.com/breadlens/backend/internal/delivery/http"
	"github.com/breadlens/backend/internal/infrastructure/store"
	"github.com/breadlens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting BreadLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	productStore := store.NewMemoryStore()

	// Initialize usecase layer
	productService := usecase.NewProductService(productStore, usecase.ProductServiceConfig{
		KnownBrands:        cfg.Brands.Known,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	matcherService := usecase.NewMatcherService(usecase.MatcherConfig{
		Threshold:          cfg.Matching.Threshold,
		WeightBonus:        cfg.Matching.WeightBonus,
		TopDeals:           cfg.Matching.TopDeals,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	statsService := usecase.NewStatsService(cfg.Matching.EnableDebugLogging)

	log.Printf("Matching: threshold=%.0f%%, weight bonus=%.0f, top deals=%d, debug=%v",
		cfg.Matching.Threshold,
		cfg.Matching.WeightBonus,
		cfg.Matching.TopDeals,
		cfg.Matching.EnableDebugLogging)
	log.Printf("Known brands: %d configured", len(cfg.Brands.Known))

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(productService, matcherService, statsService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
