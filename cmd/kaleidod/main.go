// Command kaleidod serves scene generation, lattice layout and frame
// sampling over HTTP.
//
// Usage:
//
//	kaleidod [-config kaleido.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/katalvlaran/kaleido/internal/api"
	"github.com/katalvlaran/kaleido/internal/config"
	"github.com/katalvlaran/kaleido/internal/logx"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "kaleido.yaml", "path to the YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "kaleidod: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logx.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	api.SetupMiddleware(e, cfg.Server, log)
	api.RegisterRoutes(e, api.NewHandler(cfg, log, Version))

	s := &http.Server{
		Addr:        cfg.Server.Addr,
		ReadTimeout: cfg.Server.ReadTimeout(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.StartServer(s)
	}()

	log.Info("kaleidod started",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("config", configPath),
		slog.String("addr", cfg.Server.Addr),
		slog.Int("lattice_depth", cfg.Lattice.Depth))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
