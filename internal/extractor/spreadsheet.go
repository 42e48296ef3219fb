package extractor

import (
	"context"
	"fmt"

	"gridmark/internal/engine"
	"gridmark/internal/logger"
	"gridmark/internal/model"
	"gridmark/internal/reader"

	"golang.org/x/sync/errgroup"
)

// SpreadsheetExtractor runs the table reconstruction engine over every
// sheet of a workbook. Sheets share no state, so they are processed
// concurrently up to the configured worker limit, each goroutine owning
// its own grid.
type SpreadsheetExtractor struct {
	opts    engine.Options
	workers int
}

// NewSpreadsheetExtractor creates a spreadsheet extractor with the given
// engine tuning and concurrency limit.
func NewSpreadsheetExtractor(opts engine.Options, workers int) *SpreadsheetExtractor {
	if workers < 1 {
		workers = 1
	}
	return &SpreadsheetExtractor{opts: opts, workers: workers}
}

// Extract decodes the workbook and returns one RenderResult per sheet in
// workbook order. Decode failures propagate; per-sheet structural
// inconsistencies do not — they surface as diagnostics on the result.
func (e *SpreadsheetExtractor) Extract(path string) ([]model.RenderResult, error) {
	grids, err := reader.ReadWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet extraction failed: %w", err)
	}

	results := make([]model.RenderResult, len(grids))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(e.workers)
	for i, grid := range grids {
		i, grid := i, grid
		g.Go(func() error {
			results[i] = engine.ProcessSheet(grid, e.opts)
			return nil
		})
	}
	// ProcessSheet never fails; Wait only synchronizes the workers.
	_ = g.Wait()

	for _, res := range results {
		for _, d := range res.Diagnostics {
			logger.SheetDiagnostic(res.Sheet, d.Code, d.Message)
		}
	}

	return results, nil
}
