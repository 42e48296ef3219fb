package engine

import (
	"fmt"

	"gridmark/internal/model"
)

// Coord identifies one cell by 0-based row and column.
type Coord struct {
	Row int
	Col int
}

// CanonicalMap records, for every coordinate of one grid, whether the
// cell is canonical (carries its own authoritative value) or a shadow
// inside a merge region, in which case it points at the region's anchor.
// Built once per grid and never modified afterwards.
type CanonicalMap struct {
	rows    int
	cols    int
	anchors map[Coord]Coord // shadow coordinate -> anchor; absent means canonical
}

func newCanonicalMap(rows, cols int) *CanonicalMap {
	return &CanonicalMap{rows: rows, cols: cols, anchors: make(map[Coord]Coord)}
}

// IsCanonical reports whether the cell at (row, col) holds an
// authoritative value. Anchors are canonical; shadows are not.
func (m *CanonicalMap) IsCanonical(row, col int) bool {
	_, shadow := m.anchors[Coord{row, col}]
	return !shadow
}

// AnchorOf returns the coordinate whose value is authoritative for
// (row, col). For canonical cells that is the cell itself.
func (m *CanonicalMap) AnchorOf(row, col int) Coord {
	if a, ok := m.anchors[Coord{row, col}]; ok {
		return a
	}
	return Coord{row, col}
}

// ShadowCount returns the number of non-anchor merge coordinates.
func (m *CanonicalMap) ShadowCount() int {
	return len(m.anchors)
}

// ResolveMerges classifies every coordinate of the grid as canonical or
// shadow and returns a cleared copy in which shadow cells are emptied
// while each anchor keeps its original value. The input grid is not
// mutated.
//
// Malformed merge metadata never fails the sheet: inverted rectangles
// are skipped, out-of-bounds regions are clamped to the grid, and when
// two regions claim the same coordinate the region that appears first in
// iteration order wins. Each inconsistency is reported as a diagnostic.
// The returned region list contains only the regions actually applied.
func ResolveMerges(g model.Grid) (*CanonicalMap, model.Grid, []model.MergeRegion, []model.Diagnostic) {
	out := g.Clone()
	canon := newCanonicalMap(g.RowCount(), g.ColCount())

	var applied []model.MergeRegion
	var diags []model.Diagnostic

	for _, region := range g.Merges {
		if !region.Valid() {
			diags = append(diags, model.Diagnostic{
				Code:    model.DiagMergeInverted,
				Message: fmt.Sprintf("merge region %s is not a proper rectangle, skipped", region.Ref()),
			})
			continue
		}

		if !g.InBounds(region) {
			diags = append(diags, model.Diagnostic{
				Code:    model.DiagMergeOutOfBounds,
				Message: fmt.Sprintf("merge region %s exceeds sheet bounds %dx%d, clamped", region.Ref(), g.RowCount(), g.ColCount()),
			})
			region = clampRegion(region, g)
			if !region.Valid() {
				continue // nothing of the region lies inside the grid
			}
		}

		overlapped := false
		for r := region.Top; r <= region.Bottom; r++ {
			for c := region.Left; c <= region.Right; c++ {
				if r == region.Top && c == region.Left {
					continue // anchor stays canonical
				}
				coord := Coord{r, c}
				if _, taken := canon.anchors[coord]; taken {
					overlapped = true
					continue // first region wins this coordinate
				}
				if !canon.IsCanonical(region.Top, region.Left) {
					// The anchor itself is shadowed by an earlier region;
					// the whole later region loses.
					overlapped = true
					continue
				}
				canon.anchors[coord] = Coord{region.Top, region.Left}
				out.Rows[r][c] = ""
			}
		}

		if overlapped {
			diags = append(diags, model.Diagnostic{
				Code:    model.DiagMergeOverlap,
				Message: fmt.Sprintf("merge region %s overlaps an earlier region, first region kept", region.Ref()),
			})
		}

		applied = append(applied, region)
	}

	return canon, out, applied, diags
}

// clampRegion trims a region to the grid bounds. The result may be
// inverted when the region lies wholly outside the grid.
func clampRegion(r model.MergeRegion, g model.Grid) model.MergeRegion {
	if r.Bottom >= g.RowCount() {
		r.Bottom = g.RowCount() - 1
	}
	if r.Right >= g.ColCount() {
		r.Right = g.ColCount() - 1
	}
	return r
}
