package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hakim/wordstress/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "wordstress.yaml"

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wordstress",
	Short: "Output directory helpers for wordstress scans",
	Long: `wordstress keeps the results of every scan in its own directory.

Each target gets a folder named after its host, port and path, and every run
inside it gets a date-stamped subdirectory. When a directory for today already
exists, an incrementing suffix (_1, _2, ...) is appended so earlier results are
never overwritten.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}

		// Skip config loading for commands that don't need it
		skipConfig := map[string]bool{
			"init":    true,
			"help":    true,
			"dirname": true,
		}

		if skipConfig[cmd.Name()] {
			return nil
		}

		loaded, err := loadConfig(cmd.Flags().Changed("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// loadConfig reads cfgFile when it exists or was set explicitly and falls back
// to defaults otherwise.
func loadConfig(explicit bool) (*config.Config, error) {
	if cfgFile != "" {
		_, err := os.Stat(cfgFile)
		switch {
		case err == nil || explicit:
			return config.Load(cfgFile)
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
	}

	log.WithField("config", cfgFile).Debug("no config file found, using defaults")
	return config.DefaultConfig(), nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")

	rootCmd.Version = "0.1.0-dev"
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
