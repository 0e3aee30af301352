package main

import (
	"fmt"

	"github.com/hakim/wordstress/internal/outdir"
	"github.com/spf13/cobra"
)

var dirnameCmd = &cobra.Command{
	Use:   "dirname <target>...",
	Short: "Print the directory name derived from each target",
	Long: `Print the filesystem-safe directory name for one or more targets.

The part after "://" is kept, dots and colons become underscores and slashes
are removed:

  wordstress dirname https://10.0.0.1:8080      -> 10_0_0_1_8080
  wordstress dirname http://example.com/a/b     -> example_comab`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, target := range args {
			name, err := outdir.TargetToDirname(target)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dirnameCmd)
}
