package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/observatory/config"
	"github.com/GoSim-25-26J-441/observatory/internal/bootstrap"
	"github.com/GoSim-25-26J-441/observatory/internal/logging"
	"github.com/GoSim-25-26J-441/observatory/internal/metrics"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/reload"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, logging.DefaultLevel).Fatal("invalid configuration", "err", err)
	}

	level, _ := logging.ParseLevel(cfg.App.LogLevel)
	logger := logging.New(os.Stderr, level)
	bootstrap.SetGinMode(cfg.App.Environment)

	reg := metrics.NewRegistry()
	topo := service.NewTopologyService(cfg.Topology.Path, logger.WithPrefix("graph-state"), reg)

	// the whole topology is built before the listener starts
	if _, err := topo.Load(); err != nil {
		logger.Fatal("failed to load topology", "path", cfg.Topology.Path, "err", err)
	}

	var scheduler *reload.Scheduler
	if cfg.Topology.ReloadSchedule != "" {
		scheduler, err = reload.NewScheduler(cfg.Topology.ReloadSchedule, topo, logger.WithPrefix("reload"))
		if err != nil {
			logger.Fatal("failed to configure topology reload", "err", err)
		}
		scheduler.Start()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:      cfg.App.ServiceName,
		Version:          cfg.App.Version,
		Topology:         topo,
		Logger:           logger.WithPrefix("request"),
		Metrics:          reg,
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
		RateLimitRPS:     cfg.HTTP.RateLimitRPS,
		RateLimitBurst:   cfg.HTTP.RateLimitBurst,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server started", "addr", cfg.Server.Addr(), "env", cfg.App.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}

	logger.Info("server stopped")
}
