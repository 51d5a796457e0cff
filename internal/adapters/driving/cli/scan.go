package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyscan/internal/adapters/driving/tui"
	"github.com/custodia-labs/keyscan/internal/core/domain"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a document for keywords",
	Long: `Extracts the text of a .txt, .docx or .pdf file and lists the configured
keywords it contains.

A missing file, an unsupported file type or an unreadable file is reported
as a message; the command still exits successfully.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	return scanAndReport(cmd, args[0])
}

// scanAndReport scans path with the configured keywords and prints the
// outcome. Scan failures are part of the report, not command errors.
func scanAndReport(cmd *cobra.Command, path string) error {
	if scanService == nil {
		return errNotConfigured
	}

	result, err := scanService.Scan(cmd.Context(), path, settings.Keywords)

	if scanJSON {
		return outputScanJSON(cmd, result, err)
	}
	return tui.NewReporter(cmd.OutOrStdout()).Write(result, err)
}

// scanOutput is the JSON form of a scan outcome.
type scanOutput struct {
	ID        string   `json:"id"`      
	Path      string   `json:"path"`
	MediaType string   `json:"media_type"`
	Keywords  []string `json:"keywords"`
	Chunks    int      `json:"chunks"`
	Error     string   `json:"error,omitempty"`
}

func outputScanJSON(cmd *cobra.Command, result *domain.ScanResult, scanErr error) error {
	out := scanOutput{Keywords: []string{}}
	if result != nil {
		out.ID = result.Document.ID
		out.Path = result.Document.Path
		out.MediaType = result.Document.MediaType.String()
		out.Chunks = result.ChunkCount
		if result.Keywords != nil {
			out.Keywords = result.Keywords
		}
	}
	if scanErr != nil {
		out.Error = tui.Describe(result, scanErr)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
