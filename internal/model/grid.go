package model

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// MergeRegion is an inclusive rectangular block of cells presented as one
// cell in the source spreadsheet. Coordinates are 0-based.
type MergeRegion struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// Valid reports whether the region describes a proper rectangle.
func (r MergeRegion) Valid() bool {
	return r.Top >= 0 && r.Left >= 0 && r.Top <= r.Bottom && r.Left <= r.Right
}

// Contains reports whether the coordinate lies inside the region.
func (r MergeRegion) Contains(row, col int) bool {
	return row >= r.Top && row <= r.Bottom && col >= r.Left && col <= r.Right
}

// Overlaps reports whether two regions share at least one coordinate.
func (r MergeRegion) Overlaps(o MergeRegion) bool {
	return r.Top <= o.Bottom && o.Top <= r.Bottom && r.Left <= o.Right && o.Left <= r.Right
}

// Span returns the (rows, cols) extent of the region.
func (r MergeRegion) Span() (int, int) {
	return r.Bottom - r.Top + 1, r.Right - r.Left + 1
}

// Ref renders the region in A1 notation, e.g. "A1:C1".
func (r MergeRegion) Ref() string {
	start, err := excelize.CoordinatesToCellName(r.Left+1, r.Top+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d:R%dC%d", r.Top+1, r.Left+1, r.Bottom+1, r.Right+1)
	}
	end, err := excelize.CoordinatesToCellName(r.Right+1, r.Bottom+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d:R%dC%d", r.Top+1, r.Left+1, r.Bottom+1, r.Right+1)
	}
	return start + ":" + end
}

// Grid is the dense cell matrix of a single worksheet plus its merge
// regions. Cell values are normalized text; the empty string means an
// empty cell. A Grid is treated as immutable by every pipeline stage:
// stages that change cell contents work on a Clone.
type Grid struct {
	Name   string
	Rows   [][]string
	Merges []MergeRegion
}

// NewGrid builds a Grid from raw reader output, padding ragged rows so
// every row has the same column count.
func NewGrid(name string, rows [][]string, merges []MergeRegion) Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		padded[i] = make([]string, width)
		copy(padded[i], row)
	}

	return Grid{Name: name, Rows: padded, Merges: merges}
}

// RowCount returns the number of rows in the grid.
func (g Grid) RowCount() int {
	return len(g.Rows)
}

// ColCount returns the number of columns in the grid.
func (g Grid) ColCount() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// Empty reports whether the grid has no cells at all.
func (g Grid) Empty() bool {
	return g.RowCount() == 0 || g.ColCount() == 0
}

// InBounds reports whether the region lies entirely within the grid.
func (g Grid) InBounds(r MergeRegion) bool {
	return r.Top >= 0 && r.Left >= 0 && r.Bottom < g.RowCount() && r.Right < g.ColCount()
}

// Clone returns a deep copy of the cell matrix. Merge regions are value
// types and are shared by slice copy.
func (g Grid) Clone() Grid {
	rows := make([][]string, len(g.Rows))
	for i, row := range g.Rows {
		rows[i] = make([]string, len(row))
		copy(rows[i], row)
	}
	merges := make([]MergeRegion, len(g.Merges))
	copy(merges, g.Merges)
	return Grid{Name: g.Name, Rows: rows, Merges: merges}
}

// CharCount sums the lengths of every cell value, used for the
// before/after size diagnostics.
func (g Grid) CharCount() int {
	total := 0
	for _, row := range g.Rows {
		for _, cell := range row {
			total += len(cell)
		}
	}
	return total
}
