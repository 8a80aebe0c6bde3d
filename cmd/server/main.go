package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"eutestdata/internal/fixtures"
	fixturesHandler "eutestdata/internal/fixtures/handler"
	fixturesMetrics "eutestdata/internal/fixtures/metrics"
	"eutestdata/internal/personalid"
	"eutestdata/internal/platform/config"
	"eutestdata/internal/platform/httpserver"
	"eutestdata/internal/platform/logger"
	"eutestdata/internal/platform/metrics"
	httptransport "eutestdata/internal/transport/http"
)

// main wires configuration, the engines and the HTTP surface, then runs the
// server until SIGINT or SIGTERM.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	log := logger.New(os.Stdout, cfg.LogFormat, level)

	var (
		httpMetrics    *metrics.Metrics
		fixtureMetrics *fixturesMetrics.Metrics
	)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		httpMetrics = metrics.New(reg)
		fixtureMetrics = fixturesMetrics.New(reg)
	}

	svc := fixtures.New(personalid.NewRegistry(), cfg.MaxBatch, log, fixtureMetrics)
	router := httptransport.NewRouter(log, httpMetrics, fixturesHandler.New(svc, log))

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(gctx, srv, ln, cfg.ShutdownTimeout, log)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested", slog.String("cause", context.Cause(gctx).Error()))
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		return err
	}
	log.Info("server stopped")
	return nil
}
