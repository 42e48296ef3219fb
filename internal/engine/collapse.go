package engine

import "gridmark/internal/model"

// CollapseDuplicates clears spurious repeated values that are not
// explained by a merge region: runs of adjacent canonical cells carrying
// the same non-empty value, a pattern left behind by export tools that
// fill a merged-looking header without registering an actual merge.
//
// Rows are scanned left-to-right, then columns top-to-bottom, limited to
// the rows of the data block (narrative rows keep their text verbatim).
// For each run of length >= opts.MinRunLength only the first cell keeps
// the value. The input grid is not mutated. Returns the cleaned copy and
// the number of cells cleared.
func CollapseDuplicates(g model.Grid, canon *CanonicalMap, block model.DataBlock, opts Options) (model.Grid, int) {
	out := g.Clone()
	if block.Empty() {
		return out, 0
	}

	minRun := opts.MinRunLength
	if minRun < 2 {
		minRun = 2
	}

	cleared := 0

	// Horizontal pass.
	for r := block.StartRow; r <= block.EndRow && r < out.RowCount(); r++ {
		cleared += collapseLine(out, canon, minRun, lineCells(r, 0, out.ColCount(), false))
	}

	// Vertical pass, independent of the horizontal one but over its output
	// so a value kept as the head of a row run can still head a column run.
	bottom := block.EndRow + 1
	if bottom > out.RowCount() {
		bottom = out.RowCount()
	}
	for c := 0; c < out.ColCount(); c++ {
		cleared += collapseLine(out, canon, minRun, lineCells(c, block.StartRow, bottom, true))
	}

	return out, cleared
}

// lineCells enumerates the coordinates of one row (vertical=false, fixed
// row index) or one column segment (vertical=true, fixed column index).
func lineCells(fixed, from, to int, vertical bool) []Coord {
	coords := make([]Coord, 0, to-from)
	for i := from; i < to; i++ {
		if vertical {
			coords = append(coords, Coord{Row: i, Col: fixed})
		} else {
			coords = append(coords, Coord{Row: fixed, Col: i})
		}
	}
	return coords
}

// collapseLine finds equal-value runs of canonical cells along one line
// of coordinates and clears every cell after the first of each long run.
func collapseLine(g model.Grid, canon *CanonicalMap, minRun int, line []Coord) int {
	cleared := 0
	i := 0
	for i < len(line) {
		head := line[i]
		value := g.Rows[head.Row][head.Col]
		if value == "" || !canon.IsCanonical(head.Row, head.Col) {
			i++
			continue
		}

		// Extend the run while adjacent canonical cells repeat the value.
		j := i + 1
		for j < len(line) {
			next := line[j]
			if g.Rows[next.Row][next.Col] != value || !canon.IsCanonical(next.Row, next.Col) {
				break
			}
			j++
		}

		if j-i >= minRun {
			for k := i + 1; k < j; k++ {
				g.Rows[line[k].Row][line[k].Col] = ""
				cleared++
			}
		}
		i = j
	}
	return cleared
}
