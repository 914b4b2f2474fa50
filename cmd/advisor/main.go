package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"fincoach/internal/advisor"
	"fincoach/internal/cache"
	"fincoach/internal/config"
	"fincoach/internal/database"
	"fincoach/internal/ledger"
	"fincoach/internal/logger"
	"fincoach/internal/market"
	"fincoach/internal/uuid"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	userID := flag.String("user", "", "user id to build the advisory report for")
	flag.Parse()
	if !uuid.IsValid(*userID) {
		return fmt.Errorf("-user must be a valid user id")
	}

	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	store, err := cache.NewRistretto()
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer store.Close()

	httpClient := &http.Client{Timeout: cfg.MarketTimeout}
	gateway := market.NewGateway(market.NewYahooProvider(httpClient), store, log)
	calculator := market.NewCalculator(gateway)

	db := dbManager.DB()
	ledgerStore := ledger.NewStore(db)
	profileStore := ledger.NewProfileStore(db)

	recommendations := advisor.NewRecommendationService(ledgerStore)
	opportunities := advisor.NewOpportunityService(
		profileStore, calculator, gateway, store,
		cfg.RiskTickers, cfg.BaseCurrency, cfg.QuoteCurrency, log)
	advice := advisor.NewAdviceService(ledgerStore, recommendations, opportunities, log)

	report, err := advice.Report(context.Background(), *userID)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	log.Infow("advisory report built",
		"user_id", *userID,
		"opportunities", len(report.Opportunities),
		"categories", len(report.Categories),
	)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
