package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/basketlab/copurchase/pkg/api"
	"github.com/basketlab/copurchase/pkg/category"
	"github.com/basketlab/copurchase/pkg/config"
	"github.com/basketlab/copurchase/pkg/graph"
	"github.com/basketlab/copurchase/pkg/ingest"
	"github.com/basketlab/copurchase/pkg/logging"
	"github.com/basketlab/copurchase/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	csvPath := flag.String("csv", "", "Transaction CSV to load (overrides config)")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *csvPath != "" {
		cfg.Data.CSVPath = *csvPath
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.Server.LogLevel))
	registry := metrics.NewRegistry()

	store := graph.New()

	index := category.Default()
	if cfg.Data.CategoryFile != "" {
		loaded, err := category.LoadFile(cfg.Data.CategoryFile)
		if err != nil {
			log.Fatalf("Failed to load category file: %v", err)
		}
		index = loaded
	}

	if cfg.Data.CSVPath != "" {
		start := time.Now()
		txs, err := ingest.LoadCSVFile(cfg.Data.CSVPath)
		if err != nil {
			log.Fatalf("Failed to load CSV: %v", err)
		}
		transactions, items := ingest.Feed(store, txs)
		registry.RecordIngest("csv", transactions, items, time.Since(start))
		logger.Info("loaded transactions from CSV",
			logging.String("path", cfg.Data.CSVPath),
			logging.Int("transactions", transactions),
			logging.Int("items", items))
	}

	if cfg.Postgres.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		query := cfg.Postgres.Query
		if query == "" {
			query = ingest.DefaultPGQuery
		}
		source, err := ingest.NewPGSource(ctx, cfg.Postgres.URL, query)
		if err != nil {
			cancel()
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		start := time.Now()
		txs, err := source.Load(ctx)
		source.Close()
		cancel()
		if err != nil {
			log.Fatalf("Failed to load from postgres: %v", err)
		}
		transactions, items := ingest.Feed(store, txs)
		registry.RecordIngest("postgres", transactions, items, time.Since(start))
		logger.Info("loaded transactions from postgres",
			logging.Int("transactions", transactions),
			logging.Int("items", items))
	}

	registry.UpdateGraphStats(store.Stats())

	var feed *ingest.FeedSubscriber
	if cfg.Feed.Enabled {
		feed = ingest.NewFeedSubscriber(cfg.Feed.BrokerURL, store, logger)
		if err := feed.Start(); err != nil {
			log.Fatalf("Failed to start transaction feed: %v", err)
		}
		logger.Info("transaction feed started", logging.String("broker", cfg.Feed.BrokerURL))
	}

	server, err := api.NewServer(store, index, registry, logger, cfg.Server.Port)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	case sig := <-sigCh:
		logger.Info("shutting down", logging.String("signal", sig.String()))
		if feed != nil {
			feed.Stop()
		}
	}
}
