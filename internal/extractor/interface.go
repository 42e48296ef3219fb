// Package extractor routes input files to the extraction backend for
// their type. The set of backends is closed: spreadsheets go through the
// table reconstruction engine, Word documents through the third-party
// converter. There is no dynamic registration.
package extractor

import (
	"fmt"
	"path/filepath"

	"gridmark/internal/config"
	"gridmark/internal/model"
)

// Extractor is the single capability every backend implements: turn one
// input file into per-sheet render results, in source order.
type Extractor interface {
	Extract(path string) ([]model.RenderResult, error)
}

// ForFile selects the backend for a path based on the configured
// extension routing. Unknown extensions are an error at this boundary;
// nothing downstream sees unsupported files.
func ForFile(path string, cfg *config.Config) (Extractor, error) {
	switch {
	case cfg.IsSpreadsheet(path):
		return NewSpreadsheetExtractor(cfg.EngineOptions(), cfg.Extraction.Workers), nil
	case cfg.IsDocument(path):
		return NewDocumentExtractor(), nil
	default:
		return nil, fmt.Errorf("unsupported file type %q (supported: %v, %v)",
			filepath.Ext(path), cfg.Input.SpreadsheetExtensions, cfg.Input.DocumentExtensions)
	}
}
