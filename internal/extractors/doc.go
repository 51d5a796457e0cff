// Package extractors provides implementations of the Extractor interface
// for the supported document formats. Each extractor knows how to pull
// text content out of a single media type.
//
// Extractors are registered with the dispatcher at startup.
package extractors
