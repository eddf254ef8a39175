package segmentation

import (
	"image"
	"strings"

	"imgsplit/internal/models"
)

// Sides selects which edges of a sub-image the trimmer may shrink.
type Sides struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}

// AllSides enables trimming on every edge.
var AllSides = Sides{Top: true, Bottom: true, Left: true, Right: true}

// ParseSides parses a side mask like "tblr" or "lr". Characters other
// than t, b, l, r (case-insensitive) are a configuration error.
func ParseSides(s string) (Sides, bool) {
	var sides Sides
	for _, c := range strings.ToLower(s) {
		switch c {
		case 't':
			sides.Top = true
		case 'b':
			sides.Bottom = true
		case 'l':
			sides.Left = true
		case 'r':
			sides.Right = true
		default:
			return Sides{}, false
		}
	}
	return sides, true
}

// Trimmer shrinks residual white borders from a sub-image's edges.
//
// Each enabled side is scanned independently over the original
// sub-image coordinates, inward from the edge, while the edge line is
// blank under the trim classifier. The scan is bounded by MaxTrim and
// by a quarter of the dimension being consumed, so a tiny slice is
// never trimmed away wholesale. Because sides never see each other's
// results, the outcome is order-independent.
type Trimmer struct {
	// Classifier is the trim-specific blank test, typically looser
	// than the segmentation one
	Classifier Classifier

	// MaxTrim is the per-edge scan depth bound
	MaxTrim int

	// Sides is the per-edge enable mask
	Sides Sides
}

// Trim returns the per-edge blank line counts for sub. The counts are
// clamped so that applying them leaves at least one pixel in each
// dimension: the bottom (resp. right) count gives way first, then the
// top (left).
func (t Trimmer) Trim(sub *image.NRGBA) models.TrimCounts {
	b := sub.Bounds()
	width := b.Dx()
	height := b.Dy()

	var tc models.TrimCounts

	if t.Sides.Top {
		limit := min(t.MaxTrim, height/4)
		for i := 0; i < limit; i++ {
			if !t.Classifier.RowIsBlank(sub, b.Min.Y+i) {
				break
			}
			tc.Top = i + 1
		}
	}

	if t.Sides.Bottom {
		limit := min(t.MaxTrim, height/4)
		for i := 0; i < limit; i++ {
			if !t.Classifier.RowIsBlank(sub, b.Max.Y-1-i) {
				break
			}
			tc.Bottom = i + 1
		}
	}

	if t.Sides.Left {
		limit := min(t.MaxTrim, width/4)
		for i := 0; i < limit; i++ {
			if !t.Classifier.ColIsBlank(sub, b.Min.X+i) {
				break
			}
			tc.Left = i + 1
		}
	}

	if t.Sides.Right {
		limit := min(t.MaxTrim, width/4)
		for i := 0; i < limit; i++ {
			if !t.Classifier.ColIsBlank(sub, b.Max.X-1-i) {
				break
			}
			tc.Right = i + 1
		}
	}

	tc.Top, tc.Bottom = clampPair(tc.Top, tc.Bottom, height)
	tc.Left, tc.Right = clampPair(tc.Left, tc.Right, width)

	return tc
}

// clampPair reduces a pair of opposing trim counts so at least one
// pixel of the dimension survives. The far-edge count shrinks first.
func clampPair(near, far, size int) (int, int) {
	excess := near + far - (size - 1)
	if excess <= 0 {
		return near, far
	}
	if far >= excess {
		return near, far - excess
	}
	excess -= far
	return near - excess, 0
}
