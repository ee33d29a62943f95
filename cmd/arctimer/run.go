package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/arctimer/internal/alarm"
	"github.com/garrettladley/arctimer/internal/config"
	"github.com/garrettladley/arctimer/internal/countdown"
	"github.com/garrettladley/arctimer/internal/xslog"
)

func runCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run HOURS MINUTES SECONDS",
		Short: "Run a countdown without the TUI",
		Long:  "Counts down in the foreground, printing the remaining time on every tick.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			logger := xslog.NewLoggerFromEnv(cmd.ErrOrStderr())
			ctx := xslog.WithLogger(cmd.Context(), logger)

			printer := textPrinter(cmd.OutOrStdout())
			if asJSON {
				printer = jsonPrinter(cmd.OutOrStdout())
			}

			return runHeadless(ctx, countdown.NewEngine(countdown.WithLogger(logger)), newPlayer(ctx, logger, cfg), printer, args[0], args[1], args[2])
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON snapshot per line")

	return cmd
}

type printFunc func(countdown.Snapshot) error

func textPrinter(w io.Writer) printFunc {
	return func(snap countdown.Snapshot) error {
		_, err := fmt.Fprintf(w, "%-8s %s\n", snap.PhaseName, snap.Display)
		return err
	}
}

func jsonPrinter(w io.Writer) printFunc {
	enc := json.NewEncoder(w)
	return func(snap countdown.Snapshot) error {
		return enc.Encode(snap)
	}
}

type headlessTimer interface {
	Run(ctx context.Context) error
	Start(ctx context.Context, hours, minutes, seconds string) (countdown.Snapshot, error)
	Updates() <-chan countdown.Snapshot
}

var _ headlessTimer = (*countdown.Engine)(nil)

// runHeadless starts a countdown and prints every update until it expires or
// ctx is done.
func runHeadless(
	ctx context.Context,
	engine headlessTimer,
	p alarm.Player,
	emit printFunc,
	hours, minutes, seconds string,
) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		logger  = xslog.FromContext(ctx)
		started = time.Now()
	)

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return engine.Run(gctx)
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case snap := <-engine.Updates():
				if err := emit(snap); err != nil {
					return fmt.Errorf("failed to print snapshot: %w", err)
				}
				if !snap.Expired {
					continue
				}
				logger.InfoContext(gctx, "countdown finished",
					xslog.SessionID(snap.Session),
					xslog.Duration(time.Since(started)))
				if err := p.Play(gctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.WarnContext(gctx, "failed to play alarm", xslog.Error(err))
				}
				cancel()
				return nil
			}
		}
	})

	// bound to ctx: the consumer may cancel runCtx before the reply is read
	if _, err := engine.Start(ctx, hours, minutes, seconds); err != nil {
		cancel()
		_ = g.Wait()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	return g.Wait()
}
