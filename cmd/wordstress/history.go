package main

import (
	"fmt"

	"github.com/hakim/wordstress/internal/storage"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show output directories handed out for a target",
	Long: `Display a formatted table of output directories previously resolved for a target.

Entries are listed newest-first. Each row shows the record ID (truncated), when the
path was resolved, the collision suffix that was needed, and the path itself.

Use --limit to cap the number of rows shown (default: 10).
Use --latest to print only the most recent path, e.g. to feed a script:

  cd "$(wordstress history -t https://example.com --latest)"

Use --id to show a single record in full; --target is not needed then.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("target")
		limit, _ := cmd.Flags().GetInt("limit")
		latest, _ := cmd.Flags().GetBool("latest")
		id, _ := cmd.Flags().GetString("id")
		out := cmd.OutOrStdout()

		if id == "" && target == "" {
			return fmt.Errorf("either --target or --id is required")
		}

		store, err := storage.NewStore(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		if id != "" {
			return printRecord(cmd, store, id)
		}

		if latest {
			rec, err := store.LatestResolution(target)
			if err != nil {
				return fmt.Errorf("reading latest record for %s: %w", target, err)
			}
			if rec == nil {
				return fmt.Errorf("no history found for %s", target)
			}
			fmt.Fprintln(out, rec.Path)
			return nil
		}

		records, err := store.ListResolutions(target)
		if err != nil {
			return fmt.Errorf("listing history for %s: %w", target, err)
		}

		if len(records) == 0 {
			fmt.Fprintf(out, "No history found for %s\n", target)
			return nil
		}

		if limit > 0 && len(records) > limit {
			records = records[:limit]
		}

		const separator = "────────────────────────────────────────────────────────────────────────"

		fmt.Fprintf(out, "\nOutput directories for %s\n", target)
		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "  %-3s  %-12s  %-20s  %-7s  %s\n", "#", "ID", "Resolved", "Suffix", "Path")
		fmt.Fprintln(out, separator)

		for i, rec := range records {
			fmt.Fprintf(out, "  %-3d  %-12s  %-20s  %-7s  %s\n",
				i+1, shortID(rec.ID), rec.ResolvedAt.UTC().Format("2006-01-02 15:04"), formatSuffix(rec.Attempt), rec.Path)
		}

		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "Total: %d record(s)\n\n", len(records))

		return nil
	},
}

// printRecord shows every field of one history record.
func printRecord(cmd *cobra.Command, store *storage.Store, id string) error {
	rec, err := store.GetResolution(id)
	if err != nil {
		return fmt.Errorf("reading record %s: %w", id, err)
	}
	if rec == nil {
		return fmt.Errorf("no record with id %s", id)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:        %s\n", rec.ID)
	fmt.Fprintf(out, "Target:    %s\n", rec.Target)
	fmt.Fprintf(out, "Root:      %s\n", rec.Root)
	fmt.Fprintf(out, "Name:      %s\n", rec.Name)
	fmt.Fprintf(out, "Stamp:     %s\n", rec.Stamp)
	fmt.Fprintf(out, "Suffix:    %s\n", formatSuffix(rec.Attempt))
	fmt.Fprintf(out, "Path:      %s\n", rec.Path)
	fmt.Fprintf(out, "Resolved:  %s\n", rec.ResolvedAt.UTC().Format("2006-01-02 15:04:05"))
	return nil
}

// shortID returns the first 8 characters of a UUID followed by "..." for
// compact table display. Falls back to the full ID when shorter than 8 chars.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}

// formatSuffix renders attempt 0 as "-" and N as "_N".
func formatSuffix(attempt int) string {
	if attempt == 0 {
		return "-"
	}
	return fmt.Sprintf("_%d", attempt)
}

func init() {
	historyCmd.Flags().StringP("target", "t", "", "Target URL")
	historyCmd.Flags().Int("limit", 10, "Maximum number of records to display")
	historyCmd.Flags().Bool("latest", false, "Print only the most recent path for the target")
	historyCmd.Flags().String("id", "", "Show a single record by ID")
	rootCmd.AddCommand(historyCmd)
}
