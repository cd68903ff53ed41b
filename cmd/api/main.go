package main

import (
	"context"
	"net/http"
	"os"

	"github.com/fst-serve/serve-backend/api/routes"
	"github.com/fst-serve/serve-backend/internal/catalog"
	"github.com/fst-serve/serve-backend/internal/orders"
	"github.com/fst-serve/serve-backend/internal/wizard"
	"github.com/fst-serve/serve-backend/pkg/airtable"
	"github.com/fst-serve/serve-backend/pkg/config"
	"github.com/fst-serve/serve-backend/pkg/logger"
	"github.com/fst-serve/serve-backend/pkg/redis"
	"github.com/fst-serve/serve-backend/pkg/whatsapp"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	cat := catalog.Default()

	wizardService, err := wizard.NewService(redisClient, cat, cfg.Wizard, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create wizard service", err)
		os.Exit(1)
	}

	airtableClient := airtable.NewClient(
		cfg.Airtable.APIKey,
		cfg.Airtable.BaseID,
		airtable.WithWebhookURL(cfg.Airtable.WebhookURL),
		airtable.WithHTTPClient(&http.Client{Timeout: cfg.Airtable.Timeout}),
	)

	submitter, err := orders.NewSubmitter(airtableClient, whatsapp.NewLinkBuilder(cfg.WhatsApp.Recipient), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create order submitter", err)
		os.Exit(1)
	}
	defer submitter.Wait()

	promReg := prometheus.NewRegistry()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, cat, wizardService, submitter, airtableClient, promReg),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
