package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/affirm/internal/app"
	"github.com/llehouerou/affirm/internal/applog"
	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/config"
	"github.com/llehouerou/affirm/internal/errmsg"
	"github.com/llehouerou/affirm/internal/icons"
	"github.com/llehouerou/affirm/internal/mpris"
	"github.com/llehouerou/affirm/internal/notify"
	"github.com/llehouerou/affirm/internal/playback"
	"github.com/llehouerou/affirm/internal/state"
	"github.com/llehouerou/affirm/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := applog.Open(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Close()
	log := logger.Logger

	capture, err := stderr.Start(log)
	if err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer capture.Stop()

	icons.Init(cfg.Icons)

	store, err := catalog.Open("", log)
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpCatalogOpen, err))
	}
	defer store.Close()

	if err := seedCatalog(store, cfg); err != nil {
		return fmt.Errorf("%s", errmsg.FormatWith(errmsg.OpCatalogImport, cfg.ContentFile, err))
	}

	ui, err := state.New(store.DB())
	if err != nil {
		return fmt.Errorf("open ui state: %w", err)
	}
	defer ui.Close()

	pc := cfg.GetPlayerConfig()
	host := playback.NewHost(playback.Options{
		Interval:   pc.Interval,
		RetryDelay: pc.SeekRetryDelay,
		Logger:     log.With().Str("component", "playback").Logger(),
	})
	defer host.Close()

	notifier, err := notify.New()
	if err != nil {
		log.Warn().Err(err).Msg("desktop notifications unavailable")
		notifier = notify.Disabled{}
	}

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(host, pc.Interval)
		if err != nil {
			log.Warn().Err(err).Msg("mpris unavailable")
		} else {
			defer adapter.Close()
		}
	}

	reloads := watchContent(cfg, log)
	if reloads != nil {
		defer reloads.Close()
	}

	deps := app.Deps{
		Catalog:  store,
		Host:     host,
		Notifier: notifier,
		Config:   cfg,
		Logger:   log,
		State:    ui,
	}
	if reloads != nil {
		deps.Reloads = reloads.Reloads()
	}

	p := tea.NewProgram(app.New(deps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// seedCatalog imports the configured content pack on every start, or the
// built-in pack into an empty catalog. Favorites and history are kept.
func seedCatalog(store *catalog.Store, cfg *config.Config) error {
	if !cfg.HasContentFile() {
		empty, err := store.IsEmpty()
		if err != nil || !empty {
			return err
		}
	}
	pack, err := catalog.LoadContent(cfg.ContentFile)
	if err != nil {
		return err
	}
	return store.Import(context.Background(), pack)
}

// watchContent starts the content pack watcher when enabled. Failures are
// logged and leave the catalog static.
func watchContent(cfg *config.Config, log zerolog.Logger) *catalog.Watcher {
	if !cfg.WatchContent || !cfg.HasContentFile() {
		return nil
	}
	w, err := catalog.Watch(cfg.ContentFile, catalog.DefaultReloadDebounce, log)
	if err != nil {
		log.Warn().Err(err).Msg(errmsg.FormatWith(errmsg.OpContentWatch, cfg.ContentFile, err))
		return nil
	}
	return w
}
