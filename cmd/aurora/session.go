package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IshantPundir/aurora/internal/backend/x11"
	"github.com/IshantPundir/aurora/internal/config"
	"github.com/IshantPundir/aurora/internal/layout"
	"github.com/IshantPundir/aurora/internal/output"
	"github.com/IshantPundir/aurora/internal/render"
	"github.com/IshantPundir/aurora/internal/shell"
	"github.com/IshantPundir/aurora/internal/tui"
)

func runSimulate(args []string) int {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "path to config file (default ~/.config/aurora/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: aurora simulate [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Drive the layout and composition core with simulated windows on a")
		fmt.Fprintln(os.Stderr, "synthetic output, rendered as ASCII in the terminal.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := tui.Run(cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runSession(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "path to config file (default ~/.config/aurora/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: aurora run [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Adopt the top-level windows of the current X11 session and manage")
		fmt.Fprintln(os.Stderr, "them with the fullscreen/overview layouts until interrupted.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := session(cfg, logger); err != nil {
		logger.Error("session failed", "error", err)
		return 1
	}
	return 0
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})), nil
}

// session is the live compositor loop: pump X events, adopt new windows,
// refresh the layout, and damage-render every output once per refresh
// interval.
func session(cfg *config.Config, logger *slog.Logger) error {
	conn, err := x11.NewConnection()
	if err != nil {
		return fmt.Errorf("failed to connect to display: %w", err)
	}
	defer conn.Close()

	outputs, err := conn.Outputs(cfg.Render.RefreshFallback)
	if err != nil {
		return err
	}
	if len(outputs) == 0 {
		return fmt.Errorf("no active outputs found")
	}

	registry := output.NewRegistry()
	trackers := make(map[string]*render.OutputDamageTracker, len(outputs))
	for _, out := range outputs {
		registry.Add(out)
		trackers[out.Name()] = render.NewOutputDamageTracker(out)
		logger.Info("output registered", "output", out.String(),
			"refresh", out.Mode().RefreshInterval())
	}

	policy := output.PointerPolicy{Pointer: conn.PointerLocation}
	windows := shell.NewWindowSet()
	space := shell.NewSpace()
	engine := layout.NewEngine(cfg.Layout.OverviewPadding, logger)
	composer := render.NewFrameComposer(cfg.Preview.Padding, cfg.Preview.MaxColumns, logger)
	presenter := x11.NewPresenter(conn)
	previewEnabled := cfg.Preview.Enabled

	bindHotkey := func(name, sequence string, fn func()) {
		if sequence == "" {
			return
		}
		if err := conn.BindKey(sequence, fn); err != nil {
			logger.Warn("hotkey registration failed", "hotkey", name, "error", err)
			return
		}
		logger.Info("hotkey registered", "hotkey", name, "sequence", sequence)
	}
	bindHotkey("fullscreen", cfg.Hotkeys.Fullscreen, func() {
		engine.SetMode(layout.ModeFullscreen)
	})
	bindHotkey("overview", cfg.Hotkeys.Overview, func() {
		engine.SetMode(layout.ModeOverview)
	})
	bindHotkey("toggle_preview", cfg.Hotkeys.TogglePreview, func() {
		previewEnabled = !previewEnabled
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	interval := outputs[0].Mode().RefreshInterval()
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("session started", "outputs", registry.Len(), "tick", interval)

	for {
		select {
		case sig := <-sigCh:
			logger.Info("shutting down", "signal", sig)
			return nil

		case <-ticker.C:
			conn.Pump()

			if conn.TopologyChanged() {
				updated, err := conn.Outputs(cfg.Render.RefreshFallback)
				if err != nil || len(updated) == 0 {
					logger.Warn("output re-enumeration failed", "error", err)
				} else {
					for _, out := range registry.Outputs() {
						registry.Remove(out)
					}
					trackers = make(map[string]*render.OutputDamageTracker, len(updated))
					for _, out := range updated {
						registry.Add(out)
						trackers[out.Name()] = render.NewOutputDamageTracker(out)
					}
					presenter.ResetBuffers()
					if err := engine.FixupPositions(space, registry, policy); err != nil {
						return err
					}
					logger.Info("output topology changed", "outputs", registry.Len())
				}
			}

			adopted, err := conn.AdoptNewWindows()
			if err != nil {
				logger.Warn("window discovery failed", "error", err)
			}
			for _, w := range adopted {
				windows.Insert(w)
				logger.Info("window adopted", "window", w.ID())
			}

			if err := engine.Refresh(windows, space, registry, policy); err != nil {
				return err
			}

			for _, out := range registry.Outputs() {
				result, err := composer.RenderOutput(out, space, nil,
					presenter, trackers[out.Name()], presenter.BufferAge(), previewEnabled)
				if err != nil {
					if errors.Is(err, render.ErrContextLost) {
						return err
					}
					// Logged by the composer; retried next tick.
					continue
				}
				if result.Damage == nil {
					continue
				}

				refresh := out.Mode().RefreshInterval()
				if refresh <= 0 {
					refresh = interval
				}
				composer.FrameSubmitted(out, render.PresentationFeedback{
					Target:  time.Now().Add(refresh),
					Refresh: refresh,
					Vsync:   true,
				}, result.States)
			}
			presenter.FrameDone()
		}
	}
}
