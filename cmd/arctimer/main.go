package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/arctimer/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "arctimer",
		Short:   "A countdown timer with a gradient progress arc",
		Version: version.Get(),
		RunE:    runTUI,
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(renderCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
