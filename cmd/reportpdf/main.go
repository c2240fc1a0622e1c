package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/mss-eng/reportpdf"
	"github.com/mss-eng/reportpdf/internal/config"
	"github.com/mss-eng/reportpdf/internal/hints"
	"github.com/mss-eng/reportpdf/internal/logger"
	"github.com/mss-eng/reportpdf/internal/server"
)

// Version is overridden by release builds through -ldflags.
var Version = "1.0.0"

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func run(args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}
	if flags.version {
		fmt.Println(Version)
		return nil
	}

	// A .env file is optional; variables already in the environment win.
	_ = godotenv.Load()

	cfg, err := config.Load(flags.config)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForConfigNotFound())
		}
		return err
	}
	applyFlags(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Init(cfg.Log)

	// maxprocs.Set only fails on a malformed GOMAXPROCS variable, which
	// the runtime ignores too. Its messages go to the debug log.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	if !flags.verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	// The service swallows logo load errors so a bad path still serves
	// reports, just without the logo. Surface it here instead.
	if cfg.Render.LogoPath != "" {
		if _, err := os.Stat(cfg.Render.LogoPath); err != nil {
			logger.Warn("logo not readable, reports will render without it",
				"path", cfg.Render.LogoPath, "error", err)
		}
	}

	opts := []reportpdf.Option{
		reportpdf.WithBackend(cfg.Render.Backend),
		reportpdf.WithTimeout(cfg.Timeout()),
		reportpdf.WithWorkers(cfg.Render.Workers),
		reportpdf.WithRemovalGrace(cfg.Grace()),
	}
	if cfg.Render.LogoPath != "" {
		opts = append(opts, reportpdf.WithLogoPath(cfg.Render.LogoPath))
	}
	if cfg.Render.AssetsDir != "" {
		opts = append(opts, reportpdf.WithAssetsDir(cfg.Render.AssetsDir))
	}
	if cfg.Spool.Dir != "" {
		opts = append(opts, reportpdf.WithSpoolDir(cfg.Spool.Dir))
	}

	svc, err := reportpdf.New(opts...)
	if err != nil {
		if errors.Is(err, reportpdf.ErrSpoolDir) {
			return fmt.Errorf("%w%s", err, hints.ForSpoolDir())
		}
		if errors.Is(err, reportpdf.ErrAssetsDir) {
			return fmt.Errorf("%w%s", err, hints.ForAssetsDir())
		}
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warn("closing service", "error", err)
		}
	}()

	sweep := func() {
		removed, err := svc.SweepArtifacts(cfg.SweepMaxAge())
		if err != nil {
			logger.Warn("spool sweep failed", "error", err)
			return
		}
		if removed > 0 {
			logger.Info("swept stale artifacts", "count", removed)
		}
	}
	sweep()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(fmt.Sprintf("@every %s", cfg.SweepEvery()), sweep); err != nil {
		return fmt.Errorf("scheduling spool sweep: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	web := server.New(svc, cfg.CORS.AllowOrigins, Version)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           web.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	printBanner(os.Stdout, cfg.Addr())
	logger.Info("server starting",
		"addr", cfg.Addr(),
		"version", Version,
		"workers", reportpdf.ResolvePoolSize(cfg.Render.Workers))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// notifyContext returns a context that is canceled when an interrupt
// or termination signal is received. Call stop() to release resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// printBanner writes the startup banner operators already scrape.
func printBanner(w io.Writer, addr string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "MSS PDF Generation API Server")
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "Server starting on http://%s\n", addr)
	fmt.Fprintln(w, "Endpoints:")
	fmt.Fprintln(w, "  POST /generate-pdf - Generate PDF from HTML")
	fmt.Fprintln(w, "  GET  /health       - Health check")
	fmt.Fprintln(w, line)
}
