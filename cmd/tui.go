package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	fittsapp "github.com/paul0314/fitts-experiment/internal/app"
	"github.com/paul0314/fitts-experiment/internal/core/model"
	"github.com/paul0314/fitts-experiment/internal/ui/terminal"
)

var errInvalidScale = errors.New("scale must be a positive number of px per cell")

func newTUICommand(opts *options) *cobra.Command {
	var (
		scale   float64
		logPath string
	)
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the experiment in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
				return fmt.Errorf("%w: got %v", errInvalidScale, scale)
			}

			// The alt screen owns stdout and stderr while the program runs.
			if logPath != "" {
				logFile, err := tea.LogToFile(logPath, "fitts")
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer logFile.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			launcher := fittsapp.NewLauncher(
				func() (model.Config, error) { return opts.load(cmd) },
				func(seed model.Config) *terminal.View { return terminal.NewView(seed, scale) },
				log.Default(),
			)
			return terminal.Run(launcher)
		},
	}
	tuiCmd.Flags().Float64Var(&scale, "scale", terminal.DefaultScale, "px per terminal cell")
	tuiCmd.Flags().StringVar(&logPath, "log", "", "write diagnostics to this file")
	return tuiCmd
}
