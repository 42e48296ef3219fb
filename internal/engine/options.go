package engine

// Options holds the tuning knobs for duplicate collapsing and narrative
// extraction. They are passed explicitly into each stage so behavior is
// reproducible across fixtures instead of depending on hidden constants.
type Options struct {
	// MinRunLength is the minimum length of an adjacent equal-value run
	// before the collapsor clears the repeats.
	MinRunLength int

	// DensityThreshold is the fraction of the sheet's modal non-empty
	// cell count a row must reach to qualify as tabular. Range (0, 1].
	DensityThreshold float64

	// MinBlockRows is the minimum length of a contiguous qualifying run
	// for it to count as a data block. Isolated dense rows are narrative.
	MinBlockRows int

	// IncludeMergeList controls whether the renderer emits the bullet
	// list of detected merge regions above the table.
	IncludeMergeList bool
}

// DefaultOptions returns the reference tuning.
func DefaultOptions() Options {
	return Options{
		MinRunLength:     2,
		DensityThreshold: 0.5,
		MinBlockRows:     2,
		IncludeMergeList: true,
	}
}
