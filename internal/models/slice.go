// Package models holds the shared data model for composite image
// splitting: axis regions, crop rectangles, and the per-slice output
// descriptor handed from segmentation to the naming/encode stage.
package models

import (
	"fmt"
	"image"
)

// Interval is a half-open content region [Start, End) on one axis.
type Interval struct {
	// Start is the first line index belonging to the region
	Start int

	// End is one past the last line index belonging to the region
	End int
}

// Length returns the number of lines covered by the interval.
func (iv Interval) Length() int {
	return iv.End - iv.Start
}

// TrimCounts records how many blank lines were trimmed from each edge
// of a sub-image.
type TrimCounts struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Any reports whether any edge was trimmed.
func (tc TrimCounts) Any() bool {
	return tc.Top > 0 || tc.Bottom > 0 || tc.Left > 0 || tc.Right > 0
}

func (tc TrimCounts) String() string {
	return fmt.Sprintf("T%d B%d L%d R%d", tc.Top, tc.Bottom, tc.Left, tc.Right)
}

// Slice represents one segmented (and optionally trimmed) cell of the
// composite image grid. It is immutable once produced and consumed
// exactly once by the naming/encode stage.
type Slice struct {
	// Row is the cell's row index in the grid (from 0)
	Row int

	// Col is the cell's column index in the grid (from 0)
	Col int

	// Rect is the crop rectangle within the source image, post-trim
	Rect image.Rectangle

	// Trim holds the per-edge trim counts applied to the initial cell
	Trim TrimCounts
}

// ImageResult summarizes the outcome of processing one input image in
// batch mode. Results are buffered by input index so output stays in
// input order even when work completes out of order.
type ImageResult struct {
	// Index is the position of the input in the sorted batch
	Index int

	// Path is the source image path
	Path string

	// Slices is the number of output files written
	Slices int

	// Lines holds the per-slice report lines, in row-major order
	Lines []string

	// Err is non-nil if the image failed to decode or write
	Err error
}

// Tally aggregates batch results.
type Tally struct {
	Succeeded int
	Failed    int
	Slices    int
}
