// Package main implements the cardvault mock API server with RESTful
// endpoints for games, cards and decks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardvault/internal/mockapi"
	"cardvault/internal/store"
	"cardvault/internal/transport/http"
)

const (
	gracefulShutdownTimeout = time.Second * 5
)

func main() {
	// Command-line flags
	var (
		host    = flag.String("host", "localhost", "API server host")
		port    = flag.Int("port", 8080, "API server port")
		dev     = flag.Bool("dev", false, "Development mode (relaxed rate limits)")
		latency = flag.Bool("latency", true, "Simulate network latency on every operation")
	)
	flag.Parse()

	// 1. Initialize the in-memory store with seed data
	st := store.New()

	// 2. Initialize the mock API, optionally without latency simulation
	var opts []mockapi.Option
	if !*latency {
		opts = append(opts, mockapi.WithSleeper(func(ctx context.Context, d time.Duration) {}))
	}
	api := mockapi.New(st, opts...)

	// 3. Initialize the Fiber app, injecting API and store
	app := http.NewFiberApp(api, st, *dev)

	addr := fmt.Sprintf("%s:%d", *host, *port)

	// Start API server in a goroutine
	go func() {
		rate := 10
		if *dev {
			rate = 20
		}
		slog.Info("cardvault API server starting",
			"addr", "http://"+addr,
			"dev", *dev,
			"rate_limit_per_sec", rate,
			"latency_simulation", *latency)
		slog.Info("endpoints",
			"games", "http://"+addr+"/api/v1/games",
			"health", "http://"+addr+"/health")

		if err := app.Listen(addr); err != nil {
			slog.Error("API server listen error", "error", err)
		}
	}()

	// Wait for an interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server exited")
}
