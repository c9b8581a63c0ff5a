package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/paul0314/fitts-experiment/internal/core/model"
	"github.com/paul0314/fitts-experiment/internal/storage"
)

const appName = "Fitts"

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	distance   float64
	width      float64
	trials     float64
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "fitts",
		Short:        "Fitts's law pointing experiment",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default: user config dir)")
	flags.Float64Var(&opts.distance, "distance", model.DefaultDistance, "distance between the targets in px")
	flags.Float64Var(&opts.width, "width", model.DefaultWidth, "target width in px")
	flags.Float64Var(&opts.trials, "trials", model.DefaultTrials, "number of measured clicks")

	rootCmd.AddCommand(newTUICommand(opts), newConfigCommand(opts))
	return rootCmd
}

func (opts *options) path() (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return storage.SettingsPath(appName)
}

// load reads the stored defaults and applies the flags given on the command line.
func (opts *options) load(cmd *cobra.Command) (model.Config, error) {
	config := model.DefaultConfig()
	configPath, err := opts.path()
	if err == nil {
		config, err = storage.LoadFile(configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("distance") {
		config.Distance = opts.distance
	}
	if flags.Changed("width") {
		config.Width = opts.width
	}
	if flags.Changed("trials") {
		config.Trials = opts.trials
	}
	return config, err
}

// seededLoader returns a loader whose first call yields config, already loaded
// and reported by the caller, and whose later calls use load.
func seededLoader(config model.Config, load func() (model.Config, error)) func() (model.Config, error) {
	seeded := true
	return func() (model.Config, error) {
		if seeded {
			seeded = false
			return config, nil
		}
		return load()
	}
}

func (opts *options) overridden(cmd *cobra.Command) bool {
	flags := cmd.Flags()
	return flags.Changed("distance") || flags.Changed("width") || flags.Changed("trials")
}
