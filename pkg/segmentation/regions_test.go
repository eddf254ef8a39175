package segmentation

import (
	"testing"

	"imgsplit/internal/models"
)

// axisFromPattern builds an isBlank callback from a string where 'w'
// is a blank line and anything else is content.
func axisFromPattern(pattern string) (int, func(int) bool) {
	return len(pattern), func(i int) bool { return pattern[i] == 'w' }
}

func intervalsEqual(a, b []models.Interval) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFindRegionsSplitsOnWideGap(t *testing.T) {
	// Two 10-line blocks separated by a 5-line gap: with minGap 5 the
	// gap is a true separator.
	length, isBlank := axisFromPattern("ccccccccccwwwwwcccccccccc")
	got := FindRegions(length, isBlank, 3, 5)

	want := []models.Interval{{Start: 0, End: 10}, {Start: 15, End: 25}}
	if !intervalsEqual(got, want) {
		t.Errorf("FindRegions = %v, want %v", got, want)
	}
}

func TestFindRegionsMergesNarrowGap(t *testing.T) {
	// The same image with minGap 6: the 5-line run is noise and the
	// two blocks merge into one region spanning both.
	length, isBlank := axisFromPattern("ccccccccccwwwwwcccccccccc")
	got := FindRegions(length, isBlank, 3, 6)

	want := []models.Interval{{Start: 0, End: 25}}
	if !intervalsEqual(got, want) {
		t.Errorf("FindRegions = %v, want %v", got, want)
	}
}

func TestFindRegionsDiscardsShortRegions(t *testing.T) {
	// The middle block is 2 lines, below minSize 3: it is discarded,
	// not emitted.
	length, isBlank := axisFromPattern("cccccwwwwwccwwwwwccccc")
	got := FindRegions(length, isBlank, 3, 3)

	want := []models.Interval{{Start: 0, End: 5}, {Start: 17, End: 22}}
	if !intervalsEqual(got, want) {
		t.Errorf("FindRegions = %v, want %v", got, want)
	}
}

func TestFindRegionsMinSizeInvariant(t *testing.T) {
	// No accepted interval is ever shorter than minSize.
	patterns := []string{
		"cwcwccwwcccwwwcccwwwwccccwwwww",
		"wwccccwwccwwccccccwwc",
		"c",
		"w",
		"cccccccccc",
	}
	for _, p := range patterns {
		length, isBlank := axisFromPattern(p)
		for _, minSize := range []int{1, 2, 4, 8} {
			for _, minGap := range []int{1, 2, 3} {
				for _, iv := range FindRegions(length, isBlank, minSize, minGap) {
					if iv.Length() < minSize {
						t.Errorf("pattern %q minSize=%d minGap=%d: interval %v too short",
							p, minSize, minGap, iv)
					}
				}
			}
		}
	}
}

func TestFindRegionsTrailingRegionClosesAtEnd(t *testing.T) {
	// A region still open at the axis end closes there with no minGap
	// check.
	length, isBlank := axisFromPattern("wwwwwccccc")
	got := FindRegions(length, isBlank, 3, 100)

	want := []models.Interval{{Start: 5, End: 10}}
	if !intervalsEqual(got, want) {
		t.Errorf("FindRegions = %v, want %v", got, want)
	}
}

func TestFindRegionsShortRunReachingEndStillSeparates(t *testing.T) {
	// A blank run shorter than minGap that reaches the axis end is
	// still a separator, so the region closes before it.
	length, isBlank := axisFromPattern("ccccccww")
	got := FindRegions(length, isBlank, 3, 5)

	want := []models.Interval{{Start: 0, End: 6}}
	if !intervalsEqual(got, want) {
		t.Errorf("FindRegions = %v, want %v", got, want)
	}
}

func TestFindRegionsAllBlank(t *testing.T) {
	length, isBlank := axisFromPattern("wwwwwwwwww")
	if got := FindRegions(length, isBlank, 3, 3); len(got) != 0 {
		t.Errorf("all-blank axis should yield no regions, got %v", got)
	}
}

func TestFindRegionsNoiseDoesNotResetRegionStart(t *testing.T) {
	// The noise run stays inside the open region: the region keeps
	// its original start and runs to the axis end.
	length, isBlank := axisFromPattern("ccccwwcccc")
	got := FindRegions(length, isBlank, 3, 5)

	want := []models.Interval{{Start: 0, End: 10}}
	if !intervalsEqual(got, want) {
		t.Errorf("FindRegions = %v, want %v", got, want)
	}
}
