package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/paul0314/fitts-experiment/internal/core/model"
	"github.com/paul0314/fitts-experiment/internal/storage"
)

var errNothingToSet = errors.New("config set needs --distance, --width or --trials")

func newConfigCommand(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "inspect or persist the experiment defaults",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the effective defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.load(cmd)
			if err != nil {
				return err
			}
			configPath, err := opts.path()
			if err != nil {
				return err
			}
			return printConfig(cmd, configPath, config)
		},
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "store the given flags as defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.overridden(cmd) {
				return errNothingToSet
			}
			config, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if err := config.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			configPath, err := opts.path()
			if err != nil {
				return err
			}
			if err := storage.SaveFile(configPath, config); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", configPath)
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "remove the stored defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := opts.path()
			if err != nil {
				return err
			}
			if err := storage.RemoveFile(configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", configPath)
			return nil
		},
	}

	configCmd.AddCommand(showCmd, setCmd, resetCmd)
	return configCmd
}

func printConfig(cmd *cobra.Command, configPath string, config model.Config) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "file\t%s\n", configPath)
	fmt.Fprintf(w, "distance\t%s px\n", model.FormatInput(config.Distance))
	fmt.Fprintf(w, "width\t%s px\n", model.FormatInput(config.Width))
	fmt.Fprintf(w, "trials\t%s\n", model.FormatInput(config.Trials))
	return w.Flush()
}
