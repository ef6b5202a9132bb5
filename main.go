package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/frequency/internal/app"
	"github.com/llehouerou/frequency/internal/config"
	"github.com/llehouerou/frequency/internal/errmsg"
	"github.com/llehouerou/frequency/internal/icons"
	"github.com/llehouerou/frequency/internal/logging"
	"github.com/llehouerou/frequency/internal/mpris"
	"github.com/llehouerou/frequency/internal/notify"
	"github.com/llehouerou/frequency/internal/playback"
	"github.com/llehouerou/frequency/internal/player"
	"github.com/llehouerou/frequency/internal/playlists"
	"github.com/llehouerou/frequency/internal/state"
	"github.com/llehouerou/frequency/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpInitialize, err) + "\n")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := logging.Setup(cfg.LogFile, cfg.GetLogLevel())
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Audio backends write to stderr, which would corrupt the TUI.
	if err := stderr.Start(); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open(cfg.Database, state.WithLegacyTitle(cfg.LegacyPlaylistTitle))
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	pls, err := stateMgr.LoadPlaylists()
	if err != nil {
		return fmt.Errorf("load playlists: %w", err)
	}
	settings, err := stateMgr.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	store := playlists.New()
	store.Replace(pls)

	svc := playback.New(player.New(nil), store,
		playback.WithPersister(stateMgr),
		playback.WithSettings(settings),
	)
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := svc.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("playback service stopped")
		}
	}()

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(svc)
		if err != nil {
			log.Warn().Err(err).Msg("mpris unavailable")
		} else if adapter != nil {
			defer adapter.Close()
		}
	}

	var notifier notify.Notifier
	if cfg.NotificationsEnabled() {
		if notifier, err = notify.New(); err != nil {
			log.Warn().Err(err).Msg("notifications unavailable")
			notifier = nil
		}
	}

	log.Info().Int("playlists", len(pls)).Msg("starting")

	model := app.New(svc, app.Options{
		VolumeStep: cfg.GetVolumeStep(),
		Notifier:   notifier,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
