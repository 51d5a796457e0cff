// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (extractors, config stores).
//
//   - Dispatcher: media type to extractor resolution
//   - ScanService: extract, chunk, match and union
//   - SettingsService: layered configuration
package services
