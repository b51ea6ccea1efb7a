// Command astrod serves time-scale conversions and reference-frame
// rotations over HTTP, keeping an IERS Earth-orientation dataset fresh in
// the background.
package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/star/astrokit/eop"
	"github.com/star/astrokit/frames"
	"github.com/star/astrokit/internal/api"
	"github.com/star/astrokit/internal/gridder"
	"github.com/star/astrokit/internal/metrics"
	"github.com/star/astrokit/timescales"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	system, err := frames.ParseReferenceSystem(cfg.System)
	if err != nil {
		logger.Error("invalid reference system", "value", cfg.System, "error", err)
		os.Exit(1)
	}

	leaps, err := loadLeapSeconds(cfg.EOP.LeapSecondFile, logger)
	if err != nil {
		logger.Error("loading leap second table", "error", err)
		os.Exit(1)
	}

	store := eop.NewStore()
	eopCache := eop.NewCache(cfg.EOP.CacheDir)

	// Attempt to load cached EOP data on startup.
	if data, ts, err := eopCache.Load(); err != nil {
		logger.Info("no EOP cache found, starting without EOP data", "error", err)
	} else if series, err := eop.ParseFinals(bytes.NewReader(data), leaps, logger); err != nil {
		logger.Warn("failed to parse cached EOP data", "error", err)
	} else {
		store.Set(&eop.Dataset{Source: "cache", FetchedAt: ts, Series: series})
		metrics.SetEOPSamples(series.Len())
		logger.Info("loaded EOP data from cache", "samples", series.Len(), "cached_at", ts.Format(time.RFC3339))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := cron.New()
	if cfg.EOP.EnableFetch {
		client := eop.NewClient(cfg.EOP.SourceURL, nil)
		refresh := func() {
			refreshEOP(ctx, client, eopCache, store, leaps, logger)
		}
		if _, err := scheduler.AddFunc(cfg.EOP.RefreshSpec, refresh); err != nil {
			logger.Error("invalid EOP refresh schedule", "spec", cfg.EOP.RefreshSpec, "error", err)
			os.Exit(1)
		}
		scheduler.Start()
		defer scheduler.Stop()

		if store.Get() == nil {
			go refresh()
		}
	}

	// Keep the dataset age gauge current.
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if age := store.AgeSeconds(); age >= 0 {
					metrics.SetEOPDatasetAge(age)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	pool := gridder.NewPool(cfg.Workers, logger)
	srv := api.NewServer(api.Config{
		Addr:       cfg.HTTPAddr,
		System:     system,
		TrustProxy: cfg.TrustProxy,
	}, logger, cfg.authConfig(), store, leaps, pool)

	go func() {
		logger.Info("starting server",
			"addr", cfg.HTTPAddr,
			"reference_system", cfg.System,
			"auth_enabled", cfg.Auth.Enabled,
			"eop_fetch_enabled", cfg.EOP.EnableFetch,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// loadLeapSeconds returns the table from the configured file, or the
// compiled-in IERS list.
func loadLeapSeconds(path string, logger *slog.Logger) (timescales.LeapSecondSource, error) {
	if path == "" {
		return eop.BuiltinLeapSeconds(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	table, err := eop.ParseLeapSeconds(f)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded leap second table", "path", path, "entries", len(table.LeapSeconds()))
	return table, nil
}

// refreshEOP fetches, caches, parses, and publishes a new EOP dataset.
// The store mutex serializes concurrent refreshes.
func refreshEOP(ctx context.Context, client *eop.Client, cache *eop.Cache, store *eop.Store, leaps timescales.LeapSecondSource, logger *slog.Logger) {
	store.Lock()
	defer store.Unlock()

	data, err := client.Fetch(ctx)
	if errors.Is(err, eop.ErrNotModified) {
		logger.Debug("EOP dataset unchanged upstream", "source", client.URL())
		return
	}
	if err != nil {
		logger.Warn("EOP fetch failed", "source", client.URL(), "error", err)
		return
	}
	if err := cache.Store(data); err != nil {
		logger.Warn("EOP cache write failed", "error", err)
	}
	series, err := eop.ParseFinals(bytes.NewReader(data), leaps, logger)
	if err != nil {
		logger.Warn("EOP parse failed", "error", err)
		return
	}

	store.Set(&eop.Dataset{Source: client.URL(), FetchedAt: time.Now(), Series: series})
	metrics.SetEOPSamples(series.Len())
	metrics.SetEOPDatasetAge(0)
	logger.Info("EOP dataset refreshed", "samples", series.Len())
}
