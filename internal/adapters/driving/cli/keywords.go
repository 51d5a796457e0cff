package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the active keywords",
	Long: `Prints the keywords a scan searches for, after config file and
--keywords overrides are applied. Keywords are lower-cased and deduplicated.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Keywords (%d):\n", len(settings.Keywords))
		for _, kw := range settings.Keywords {
			fmt.Fprintf(out, "  - %s\n", kw)
		}
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}
