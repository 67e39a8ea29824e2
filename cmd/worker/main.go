// The worker consumes dashboard-invalidation messages published by the
// API after successful writes. Downstream consumers (cache layers, push
// notifiers) hang off this loop; the baseline handler records the
// invalidation so stale dashboards are observable in the logs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"cofrinho/internal/config"
	"cofrinho/internal/events"
	"cofrinho/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil && err != context.Canceled {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.AMQPURL == "" {
		return fmt.Errorf("AMQP_URL is required for the worker")
	}

	client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Get().Warnf("close AMQP client: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.Consume(ctx, handleInvalidation)
	})

	logger.Get().Infow("worker started", "queue", cfg.AMQPQueue)
	return g.Wait()
}

func handleInvalidation(msg *events.InvalidationMessage) error {
	logger.Get().Infow("dashboard invalidated",
		"entity", msg.Entity,
		"id", msg.ID,
		"user_id", msg.UserID,
		"published_at", msg.Timestamp,
	)
	return nil
}
