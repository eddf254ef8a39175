package segmentation

import (
	"image"

	"imgsplit/internal/models"
)

// Grid crosses the detected row and column regions of one image into
// an ordered set of cells.
type Grid struct {
	// Rows are the content intervals on the vertical axis, ascending
	Rows []models.Interval

	// Cols are the content intervals on the horizontal axis, ascending
	Cols []models.Interval
}

// NewGrid builds a grid from per-axis region lists, substituting a
// single whole-axis interval for any axis with no detected regions.
// The grid is therefore never empty.
func NewGrid(rowRegions, colRegions []models.Interval, width, height int) Grid {
	if len(rowRegions) == 0 {
		rowRegions = []models.Interval{{Start: 0, End: height}}
	}
	if len(colRegions) == 0 {
		colRegions = []models.Interval{{Start: 0, End: width}}
	}
	return Grid{Rows: rowRegions, Cols: colRegions}
}

// Assemble crosses the grid's row and column intervals into Slice
// descriptors, row-major (rows ascending, columns ascending within a
// row). When trim is non-nil, each cell is cropped out of img and
// trimmed, and its rectangle shrunk by the returned counts.
//
// Assemble is a pure function of its inputs: cells share no state, and
// trimming always operates on the freshly cropped cell, never on
// axis-level classification state.
func (g Grid) Assemble(img *image.NRGBA, trim *Trimmer) []models.Slice {
	slices := make([]models.Slice, 0, len(g.Rows)*len(g.Cols))

	for row, rv := range g.Rows {
		for col, cv := range g.Cols {
			rect := image.Rect(cv.Start, rv.Start, cv.End, rv.End)

			var tc models.TrimCounts
			if trim != nil {
				sub := img.SubImage(rect).(*image.NRGBA)
				tc = trim.Trim(sub)
				rect.Min.X += tc.Left
				rect.Max.X -= tc.Right
				rect.Min.Y += tc.Top
				rect.Max.Y -= tc.Bottom
			}

			slices = append(slices, models.Slice{
				Row:  row,
				Col:  col,
				Rect: rect,
				Trim: tc,
			})
		}
	}

	return slices
}
