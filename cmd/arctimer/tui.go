package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/arctimer/internal/alarm"
	"github.com/garrettladley/arctimer/internal/arc"
	"github.com/garrettladley/arctimer/internal/config"
	"github.com/garrettladley/arctimer/internal/countdown"
	"github.com/garrettladley/arctimer/internal/paths"
	"github.com/garrettladley/arctimer/internal/tui"
	"github.com/garrettladley/arctimer/internal/xslog"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	logPath, err := paths.LogFile(cfg.LogFile)
	if err != nil {
		return err
	}

	logger, closer, err := xslog.OpenFileLogger(logPath, xslog.FromEnv())
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	logger.InfoContext(cmd.Context(), "starting tui", xslog.Path(logPath))

	renderer, err := arc.New(cfg.ArcOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	ctx, cancel := context.WithCancel(xslog.WithLogger(cmd.Context(), logger))
	defer cancel()

	engine := countdown.NewEngine(countdown.WithLogger(logger))

	model := tui.New(tui.Deps{
		Ctx:      ctx,
		Cancel:   cancel,
		Logger:   logger,
		Timer:    engine,
		Renderer: renderer,
		Alarm:    newPlayer(ctx, logger, cfg),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return engine.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		if _, err := tea.NewProgram(&model).Run(); err != nil {
			return fmt.Errorf("failed to run tui: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorContext(ctx, "tui exited", xslog.Error(err))
		return err
	}
	return nil
}

// newPlayer falls back to a silent player when sound is disabled or the cue
// cannot be loaded.
func newPlayer(ctx context.Context, logger *slog.Logger, cfg config.Config) alarm.Player {
	if !cfg.Sound {
		return alarm.Noop{}
	}
	s, err := alarm.NewSpeaker(cfg.Volume)
	if err != nil {
		logger.WarnContext(ctx, "sound disabled", xslog.Error(err))
		return alarm.Noop{}
	}
	return s
}
