package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"football-club/matchday/internal/app"
	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/config"
	"football-club/matchday/internal/logging"
	"football-club/matchday/internal/metrics"
	"football-club/matchday/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Matchday starting up",
		"environment", cfg.AppEnv,
		"db_driver", cfg.DBDriver,
		"delivery", cfg.DeliveryProvider,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	metricsReg := metrics.NewMetricsRegistry()

	rt, err := app.Open(cfg, metricsReg)
	if err != nil {
		logging.Fatal("Failed to initialize runtime", "error", err.Error())
	}
	defer rt.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt.Jobs.Start(ctx)

	upSince := time.Now()
	router := routes.RegisterRoutes(rt.Deps, rt.Jobs, auth.NewTokenService([]byte(cfg.JWTSecret)), routes.Options{
		UpSince:           upSince,
		VoteRatePerSecond: cfg.VoteRatePerSecond,
		VoteRateBurst:     cfg.VoteRateBurst,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("Server starting", "addr", cfg.HTTPAddr, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("HTTP server failed", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	logging.Info("Shutting down")

	rt.Jobs.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("HTTP shutdown failed", "error", err.Error())
	}
	logging.Info("Server stopped")
}
