package main

import (
	"errors"
	"fmt"

	"github.com/hakim/wordstress/internal/models"
	"github.com/hakim/wordstress/internal/outdir"
	"github.com/hakim/wordstress/internal/storage"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// outdirFs is swapped for an in-memory filesystem in tests
var outdirFs afero.Fs = afero.NewOsFs()

var outdirCmd = &cobra.Command{
	Use:   "outdir",
	Short: "Resolve a fresh output directory for a target",
	Long: `Print the output directory the next scan of a target should use.

The path is {output_root}/{dirname}/{YYYYMMDD}, or {YYYYMMDD}_N when earlier
runs of the same day already occupy the plain name. The directory is not
created; two runs started at the same moment may be handed the same path.

Each resolved path is recorded in the history database unless --no-record is
given or record_history is disabled in the config.

Examples:
  wordstress outdir -t https://blog.example.com
  wordstress outdir -t http://10.0.0.1:8080/wp --root /srv/scans`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("target")
		root, _ := cmd.Flags().GetString("root")
		noRecord, _ := cmd.Flags().GetBool("no-record")

		if root == "" {
			root = cfg.OutputRoot
		}

		res, err := outdir.NewResolver(outdirFs).ResolveDetailed(root, target)
		if err != nil {
			var fsErr *outdir.FilesystemError
			if errors.As(err, &fsErr) {
				return fmt.Errorf("cannot probe output root %s: %w", root, err)
			}
			return err
		}

		if !noRecord && cfg.RecordHistory {
			if err := recordResolution(target, root, res); err != nil {
				// The path is still valid; history is best effort.
				fmt.Fprintf(cmd.ErrOrStderr(), "[!] Warning: could not record history: %v\n", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Path)
		return nil
	},
}

func recordResolution(target, root string, res *outdir.Resolution) error {
	store, err := storage.NewStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	rec := models.NewResolution(target, root, res.Path)
	rec.Name = res.Name
	rec.Stamp = res.Stamp
	rec.Attempt = res.Attempt

	if err := store.SaveResolution(rec); err != nil {
		return err
	}

	log.WithFields(log.Fields{"id": rec.ID, "db": cfg.DBPath}).Debug("recorded resolution")
	return nil
}

func init() {
	outdirCmd.Flags().StringP("target", "t", "", "Target URL, e.g. https://example.com (required)")
	outdirCmd.Flags().String("root", "", "Output root directory (defaults to output_root from config)")
	outdirCmd.Flags().Bool("no-record", false, "Do not record the resolved path in the history database")

	outdirCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(outdirCmd)
}
