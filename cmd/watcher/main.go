// cmd/watcher/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"discord-watcher/internal/config"
	"discord-watcher/internal/discord"
	"discord-watcher/internal/logging"
	"discord-watcher/internal/sound"
	"discord-watcher/internal/storage"
	"discord-watcher/internal/ui"
	"discord-watcher/internal/ui/fyneui"
	"discord-watcher/internal/ui/tui"
	"discord-watcher/internal/watcher"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogFile)
	log.Info().Msg("Starting Discord Watcher...")

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer store.Close()

	settings, err := store.GetSettings(storage.Settings{
		Notifications: cfg.Notifications,
		Sound:         cfg.Sound,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load settings, using defaults")
	}

	player, err := sound.NewPlayer()
	if err != nil {
		log.Warn().Err(err).Msg("Audio unavailable, sound cue disabled")
		player = nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pipe := watcher.NewPipeline(cfg.EventBuffer)
	bot := discord.NewBot(cfg, pipe, log)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	backend := ""
	if len(os.Args) > 1 {
		backend = os.Args[1]
	}

	switch backend {
	case "tui":
		view := tui.New()
		sink := ui.NewSink(view, player, store, settings, log)
		go sink.Run(ctx, pipe.Events())
		go waitForExit(ctx, cancel, errCh, view.Quit, log)
		if err := view.Run(); err != nil {
			log.Error().Err(err).Msg("TUI backend error")
		}
	default:
		if backend != "" && backend != "fyne" {
			log.Warn().Str("backend", backend).Msg("Unknown backend, defaulting to fyne")
		}
		view := fyneui.New()
		sink := ui.NewSink(view, player, store, settings, log)
		go sink.Run(ctx, pipe.Events())
		go waitForExit(ctx, cancel, errCh, view.Quit, log)
		view.Run(sink)
	}

	cancel()
	log.Info().Msg("Discord Watcher exited cleanly")
}

// waitForExit cancels the workers and closes the view on the first of:
// an OS signal, a fatal bot error, or context cancellation.
func waitForExit(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, quit func(), log zerolog.Logger) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("Received signal, shutting down...")
	case err, ok := <-errCh:
		if ok && err != nil {
			log.Error().Err(err).Msg("Discord bot error")
		}
	case <-ctx.Done():
	}

	cancel()
	quit()
}
