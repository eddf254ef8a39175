package segmentation

import (
	"image"
	"testing"
)

// borderedImage builds a w x h image with a white border of the given
// widths around a dark interior.
func borderedImage(w, h, top, bottom, left, right int) *image.NRGBA {
	img := newWhiteImage(w, h)
	fillRect(img, image.Rect(left, top, w-right, h-bottom), darkRed)
	return img
}

var trimClassifier = Classifier{Threshold: 248, Ratio: 0.80}

func TestTrimCountsMatchBorder(t *testing.T) {
	img := borderedImage(100, 100, 3, 5, 2, 4)
	tr := Trimmer{Classifier: trimClassifier, MaxTrim: 10, Sides: AllSides}

	tc := tr.Trim(img)
	if tc.Top != 3 || tc.Bottom != 5 || tc.Left != 2 || tc.Right != 4 {
		t.Errorf("Trim = %v, want T3 B5 L2 R4", tc)
	}
}

func TestTrimRespectsMaxTrim(t *testing.T) {
	img := borderedImage(100, 100, 8, 8, 8, 8)
	tr := Trimmer{Classifier: trimClassifier, MaxTrim: 4, Sides: AllSides}

	tc := tr.Trim(img)
	if tc.Top != 4 || tc.Bottom != 4 || tc.Left != 4 || tc.Right != 4 {
		t.Errorf("Trim = %v, want 4 on every side", tc)
	}
}

func TestTrimRespectsQuarterBound(t *testing.T) {
	// 12 px tall: top/bottom scans are bounded by 12/4 = 3 even with
	// a deep white border and a generous MaxTrim.
	img := borderedImage(100, 12, 5, 5, 0, 0)
	tr := Trimmer{Classifier: trimClassifier, MaxTrim: 10, Sides: AllSides}

	tc := tr.Trim(img)
	if tc.Top != 3 || tc.Bottom != 3 {
		t.Errorf("Trim = %v, want top/bottom bounded to 3", tc)
	}
}

func TestTrimDisabledSides(t *testing.T) {
	img := borderedImage(100, 100, 5, 5, 5, 5)
	tr := Trimmer{Classifier: trimClassifier, MaxTrim: 10,
		Sides: Sides{Left: true, Right: true}}

	tc := tr.Trim(img)
	if tc.Top != 0 || tc.Bottom != 0 {
		t.Errorf("disabled sides trimmed: %v", tc)
	}
	if tc.Left != 5 || tc.Right != 5 {
		t.Errorf("enabled sides not trimmed: %v", tc)
	}
}

func TestTrimIdempotent(t *testing.T) {
	img := borderedImage(100, 100, 5, 5, 5, 5)
	tr := Trimmer{Classifier: trimClassifier, MaxTrim: 10, Sides: AllSides}

	first := tr.Trim(img)
	rect := img.Bounds()
	rect.Min.Y += first.Top
	rect.Max.Y -= first.Bottom
	rect.Min.X += first.Left
	rect.Max.X -= first.Right

	second := tr.Trim(img.SubImage(rect).(*image.NRGBA))
	if second.Any() {
		t.Errorf("second trim on already-trimmed rect = %v, want zero", second)
	}
}

func TestTrimAllWhiteNeverErasesDimension(t *testing.T) {
	// An entirely white slice: every side trims, but the quarter
	// bound and the clamp keep both dimensions positive.
	for _, size := range []int{1, 2, 3, 5, 8, 40} {
		img := newWhiteImage(size, size)
		tr := Trimmer{Classifier: trimClassifier, MaxTrim: 1000, Sides: AllSides}

		tc := tr.Trim(img)
		if size-tc.Top-tc.Bottom < 1 {
			t.Errorf("size %d: height erased by %v", size, tc)
		}
		if size-tc.Left-tc.Right < 1 {
			t.Errorf("size %d: width erased by %v", size, tc)
		}
	}
}

func TestClampPair(t *testing.T) {
	tests := []struct {
		near, far, size, wantNear, wantFar int
	}{
		{0, 0, 10, 0, 0},
		{4, 5, 10, 4, 5},   // 1 px left, no clamp needed
		{5, 5, 10, 5, 4},   // far edge gives way first
		{9, 9, 10, 9, 0},   // far exhausted, near reduced
		{10, 10, 10, 9, 0}, // extreme case still leaves 1 px
	}
	for _, tt := range tests {
		near, far := clampPair(tt.near, tt.far, tt.size)
		if near != tt.wantNear || far != tt.wantFar {
			t.Errorf("clampPair(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.near, tt.far, tt.size, near, far, tt.wantNear, tt.wantFar)
		}
		if remaining := tt.size - near - far; remaining < 1 {
			t.Errorf("clampPair(%d, %d, %d) leaves %d px", tt.near, tt.far, tt.size, remaining)
		}
	}
}
