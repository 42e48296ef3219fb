package engine

import "gridmark/internal/model"

// AggregateStats folds the counters accumulated by the earlier stages
// into the per-sheet Stats value. Pure function; the counters feed
// diagnostics and telemetry only, never control flow.
func AggregateStats(charsBefore, charsAfter, duplicatesRemoved, mergedRegions int) model.Stats {
	if charsAfter > charsBefore {
		// Cleanup only ever clears cells, so this indicates a caller bug;
		// clamp rather than report a nonsensical negative reduction.
		charsAfter = charsBefore
	}
	return model.Stats{
		DuplicatesRemoved:     duplicatesRemoved,
		MergedRegionsDetected: mergedRegions,
		CharsBefore:           charsBefore,
		CharsAfter:            charsAfter,
	}
}
