package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyscan/internal/adapters/driven/config/file"
	"github.com/custodia-labs/keyscan/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/keyscan/internal/core/domain"
	"github.com/custodia-labs/keyscan/internal/core/ports/driving"
	"github.com/custodia-labs/keyscan/internal/core/services"
	"github.com/custodia-labs/keyscan/internal/extractors/docx"
	"github.com/custodia-labs/keyscan/internal/extractors/pdf"
	"github.com/custodia-labs/keyscan/internal/extractors/plaintext"
	"github.com/custodia-labs/keyscan/internal/logger"
)

// Services built for the current invocation.
var (
	settingsService driving.SettingsService
	scanService     driving.ScanService
	configPath      string
	settings        domain.Settings
)

// setupServices wires the services from the config file and any flags
// given on the command line.
func setupServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configPath = fileStore.Path()
	logger.Debug("Config: %s", configPath)

	settingsService = services.NewSettingsService(flagOverrides(cmd), fileStore)
	settings, err = settingsService.Get()
	if err != nil {
		return err
	}

	dispatcher := services.NewDispatcher(plaintext.New(), docx.New(), pdf.New())
	scan, err := services.NewScanService(dispatcher, settings)
	if err != nil {
		return err
	}
	scanService = scan
	logger.Debug("Keywords: %v, workers: %d", []string(settings.Keywords), scan.Workers())

	return nil
}

// flagOverrides collects the flags that were set explicitly.
func flagOverrides(cmd *cobra.Command) *memory.ConfigStore {
	store := memory.NewConfigStore()
	flags := cmd.Flags()

	if flags.Changed("keywords") {
		store.Set(services.KeyKeywords, strings.Split(keywordsFlag, ","))
	}
	if flags.Changed("chunk-size") {
		store.Set(services.KeyChunkSize, chunkSize)
	}
	if flags.Changed("overlap") {
		store.Set(services.KeyChunkOverlap, chunkOverlap)
	}
	if flags.Changed("workers") {
		store.Set(services.KeyWorkers, workers)
	}

	return store
}

var errNotConfigured = errors.New("scan service not configured")
