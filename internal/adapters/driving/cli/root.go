// Package cli provides the cobra command tree for keyscan.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyscan/internal/adapters/driving/tui"
	"github.com/custodia-labs/keyscan/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Persistent flag values.
var (
	verbose      bool
	configDir    string
	keywordsFlag string
	chunkSize    int
	chunkOverlap int
	workers      int
)

var rootCmd = &cobra.Command{
	Use:   "keyscan",
	Short: "Find skill keywords in a document",
	Long: `keyscan extracts the text of a plain text, Word (.docx) or PDF file and
reports which keywords from the configured list appear in it. Matching is
case-insensitive substring search.

Run without arguments to be asked for a file path, or use 'keyscan scan <path>'.

Keywords and scan settings are read from ~/.keyscan/config.toml:
  keywords = ["go", "kubernetes"]

  [scan]
  chunk_size = 1000
  chunk_overlap = 0
  workers = 4`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
	RunE:              runInteractive,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	flags.StringVar(&configDir, "config", "", "config directory (default ~/.keyscan)")
	flags.StringVarP(&keywordsFlag, "keywords", "k", "", "comma-separated keywords, replacing the configured list")
	flags.IntVar(&chunkSize, "chunk-size", 0, "characters per chunk (default 1000)")
	flags.IntVar(&chunkOverlap, "overlap", 0, "characters shared by adjacent chunks")
	flags.IntVar(&workers, "workers", 0, "chunks matched concurrently (0 = one per CPU)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	prompter := tui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), nil)

	path, err := prompter.Prompt(cmd.Context())
	if errors.Is(err, tui.ErrPromptCancelled) {
		logger.Debug("Prompt cancelled")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading file path: %w", err)
	}

	return scanAndReport(cmd, path)
}
