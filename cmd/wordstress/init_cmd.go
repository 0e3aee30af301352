package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hakim/wordstress/internal/config"
	"github.com/hakim/wordstress/internal/storage"
	"github.com/spf13/cobra"
)

var (
	initForce bool
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wordstress with default configuration",
	Long: `Creates a default configuration file (wordstress.yaml), the output root
directory, and the history database.

Per-scan directories are never created here; 'wordstress outdir' only
computes them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		configPath := filepath.Join(initDir, defaultConfigFile)

		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("config file already exists at %s. Use --force to overwrite", configPath)
		}

		if err := storage.EnsureDir(initDir); err != nil {
			return fmt.Errorf("failed to create %s: %w", initDir, err)
		}

		if err := config.WriteDefault(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		fmt.Fprintf(out, "Created %s with default configuration\n", configPath)

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		outputRoot := resolveFrom(initDir, loaded.OutputRoot)
		if err := storage.EnsureDir(outputRoot); err != nil {
			return fmt.Errorf("failed to create output root: %w", err)
		}
		fmt.Fprintf(out, "Created output root: %s\n", outputRoot)

		dbPath := resolveFrom(initDir, loaded.DBPath)
		store, err := storage.NewStore(dbPath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer store.Close()
		fmt.Fprintf(out, "Initialized database: %s\n", dbPath)

		fmt.Fprintln(out)
		fmt.Fprintln(out, "wordstress initialized successfully!")
		fmt.Fprintln(out, "Run 'wordstress outdir -t <target>' to get a scan directory.")

		return nil
	},
}

// resolveFrom anchors relative config paths at the init directory.
func resolveFrom(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "output directory")
	rootCmd.AddCommand(initCmd)
}
