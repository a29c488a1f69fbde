package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cng-analyzer/internal/api"
	"cng-analyzer/internal/config"
	"cng-analyzer/internal/logging"
	"cng-analyzer/internal/metrics"
	"cng-analyzer/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(os.Getenv("CNG_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := store.New(cfg.Server.ReportTTL)
	go st.Run(ctx, time.Minute)

	router := api.NewRouter(api.Deps{
		Config:  cfg,
		Store:   st,
		Metrics: metrics.New(),
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("log_file", cfg.LogFile).
			Msg("starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
