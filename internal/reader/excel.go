// Package reader decodes spreadsheet files into the dense grid model the
// engine consumes. All format-specific concerns (cell addressing, merge
// range notation, value formatting) stop at this boundary.
package reader

import (
	"fmt"
	"strings"

	"gridmark/internal/logger"
	"gridmark/internal/model"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// ReadWorkbook opens an xlsx workbook and returns one Grid per sheet, in
// workbook order. Cell values arrive as normalized text (NFC form,
// surrounding whitespace trimmed) and merge ranges are converted to
// 0-based inclusive coordinates.
func ReadWorkbook(path string) ([]model.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Debug("close workbook %s: %v", path, cerr)
		}
	}()

	sheets := f.GetSheetList()
	grids := make([]model.Grid, 0, len(sheets))

	for _, name := range sheets {
		grid, err := readSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		grids = append(grids, grid)
	}

	return grids, nil
}

func readSheet(f *excelize.File, name string) (model.Grid, error) {
	raw, err := f.GetRows(name)
	if err != nil {
		return model.Grid{}, err
	}

	rows := make([][]string, len(raw))
	for r, row := range raw {
		rows[r] = make([]string, len(row))
		for c, cell := range row {
			rows[r][c] = NormalizeValue(cell)
		}
	}

	merges, err := readMergeRegions(f, name)
	if err != nil {
		return model.Grid{}, err
	}

	return model.NewGrid(name, rows, merges), nil
}

// readMergeRegions converts the sheet's merge ranges into 0-based
// bounding boxes, preserving workbook order. A range whose axes fail to
// parse is logged and skipped rather than failing the sheet.
func readMergeRegions(f *excelize.File, sheet string) ([]model.MergeRegion, error) {
	cells, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}

	regions := make([]model.MergeRegion, 0, len(cells))
	for _, mc := range cells {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			logger.Warn("Sheet %s: unparsable merge start %q, skipped: %v", sheet, mc.GetStartAxis(), err)
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			logger.Warn("Sheet %s: unparsable merge end %q, skipped: %v", sheet, mc.GetEndAxis(), err)
			continue
		}
		regions = append(regions, model.MergeRegion{
			Top:    startRow - 1,
			Left:   startCol - 1,
			Bottom: endRow - 1,
			Right:  endCol - 1,
		})
	}

	return regions, nil
}

// NormalizeValue brings a raw cell value into the canonical text form
// used for duplicate detection: NFC unicode normalization so composed
// and decomposed accents compare equal, plus whitespace trimming.
func NormalizeValue(value string) string {
	return strings.TrimSpace(norm.NFC.String(value))
}
