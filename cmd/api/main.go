package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/angelmondragon/quotation-service/api"
	"github.com/angelmondragon/quotation-service/api/routes"
	"github.com/angelmondragon/quotation-service/internal/drafts"
	"github.com/angelmondragon/quotation-service/internal/quotes"
	"github.com/angelmondragon/quotation-service/pkg/config"
	"github.com/angelmondragon/quotation-service/pkg/llm"
	"github.com/angelmondragon/quotation-service/pkg/logger"
	"github.com/angelmondragon/quotation-service/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "quotation-api", Level: zerolog.InfoLevel})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "quotation-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogOutputFormat(),
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	generator, err := llm.New(cfg.LLM, nil)
	if err != nil {
		logg.Error(context.Background(), "failed to create llm client", err)
		os.Exit(1)
	}

	quoteService, err := quotes.NewService(quotes.ServiceParams{
		Composer: drafts.NewComposer(generator, logg),
		Logger:   logg,
		Metrics:  metrics.NewQuoteMetrics(registry),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create quote service", err)
		os.Exit(1)
	}

	handler := routes.NewRouter(cfg, logg, quoteService, metrics.NewHTTPMetrics(registry), registry)
	server := api.NewServer(cfg, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logg.WithFields(ctx, map[string]any{
		"env":          cfg.App.Env,
		"addr":         server.Addr,
		"version":      cfg.App.Version,
		"llm_enabled":  generator != nil,
		"llm_provider": cfg.LLM.NormalizedProvider(),
	})
	logg.Info(ctx, "starting "+cfg.App.Name)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return api.Serve(groupCtx, cfg, logg, server)
	})

	if err := group.Wait(); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}
