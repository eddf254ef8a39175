package segmentation

import (
	"imgsplit/internal/models"
)

// FindRegions scans one axis of length axisLength and returns the
// ordered content intervals found on it.
//
// isBlank classifies a single line on demand; lines are visited at
// most once plus the look-ahead over each blank run, so no full
// classification list is materialized.
//
// A region opens at the first content line seen while outside a
// region. When a blank line is hit inside a region, the full run of
// consecutive blank lines is measured: a run at least minGap long, or
// one reaching the axis end, is a true separator and closes the region
// (the region is accepted only if it spans at least minSize lines);
// a shorter internal run is noise and does not break the region. A
// region still open at the axis end closes there under the same
// minSize rule, with no minGap check.
//
// The returned list may be empty; the caller substitutes a single
// whole-axis interval in that case.
func FindRegions(axisLength int, isBlank func(int) bool, minSize, minGap int) []models.Interval {
	var regions []models.Interval

	inRegion := false
	start := 0

	for i := 0; i < axisLength; i++ {
		blank := isBlank(i)

		if !blank && !inRegion {
			start = i
			inRegion = true
			continue
		}

		if blank && inRegion {
			// Measure the full blank run starting here.
			gapEnd := i + 1
			for gapEnd < axisLength && isBlank(gapEnd) {
				gapEnd++
			}

			if gapEnd-i >= minGap || gapEnd == axisLength {
				if i-start >= minSize {
					regions = append(regions, models.Interval{Start: start, End: i})
				}
				inRegion = false
			}
			// A short internal run is noise: stay in the region.
			// Either way the run itself is already classified, so
			// skip past it.
			i = gapEnd - 1
		}
	}

	if inRegion && axisLength-start >= minSize {
		regions = append(regions, models.Interval{Start: start, End: axisLength})
	}

	return regions
}
