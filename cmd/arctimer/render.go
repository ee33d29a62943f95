package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garrettladley/arctimer/internal/arc"
	"github.com/garrettladley/arctimer/internal/config"
)

func renderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render FRACTION",
		Short: "Render the progress arc as a PNG",
		Long:  "Draws the arc for a completed fraction in [0, 1] and writes it as PNG.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fraction, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid fraction %q: %w", args[0], err)
			}

			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			return renderPNG(w, cfg, fraction)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func renderPNG(w io.Writer, cfg config.Config, fraction float64) error {
	r, err := arc.New(cfg.ArcOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	return arc.EncodePNG(w, r.Render(fraction))
}
