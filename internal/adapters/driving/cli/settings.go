package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective settings",
	Long: `Shows the settings a scan runs with: built-in defaults, overridden by
the config file, overridden by command-line flags.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	defaults := settingsService.GetDefaults()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Config file: %s\n", configPath)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Scan]")
	fmt.Fprintf(out, "  Chunk size: %d%s\n", current.ChunkSize, defaultMarker(current.ChunkSize == defaults.ChunkSize))
	fmt.Fprintf(out, "  Chunk overlap: %d%s\n", current.ChunkOverlap, defaultMarker(current.ChunkOverlap == defaults.ChunkOverlap))
	if current.Workers == 0 {
		fmt.Fprintln(out, "  Workers: one per CPU")
	} else {
		fmt.Fprintf(out, "  Workers: %d\n", current.Workers)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Keywords]")
	fmt.Fprintf(out, "  %s\n", strings.Join(current.Keywords, ", "))

	return nil
}

func defaultMarker(isDefault bool) string {
	if isDefault {
		return " (default)"
	}
	return ""
}
