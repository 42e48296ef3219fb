package engine

import "gridmark/internal/model"

// PruneColumns fills in the block's retained column sequence: every
// column with at least one non-empty cell anywhere inside the block is
// kept, in original left-to-right order. Only columns empty across the
// whole block are dropped; sparsity alone never removes a column.
// Narrative rows outside the block do not influence retention.
func PruneColumns(g model.Grid, block model.DataBlock) model.DataBlock {
	if block.Empty() {
		return model.EmptyDataBlock()
	}

	var retained []int
	for c := 0; c < g.ColCount(); c++ {
		for r := block.StartRow; r <= block.EndRow && r < g.RowCount(); r++ {
			if g.Rows[r][c] != "" {
				retained = append(retained, c)
				break
			}
		}
	}

	block.Columns = retained
	return block
}
