// Package segmentation implements the composite-image segmentation
// engine: per-line blank/content classification, gap-merged axis
// region detection, white-border trimming, and grid assembly.
//
// The engine is strictly threshold/ratio based on per-line brightness
// statistics. It never mutates the pixel buffer it is given; callers
// own the buffer for the duration of one call.
package segmentation

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// Classifier decides whether a single row or column of pixels is blank
// (whitespace) or content.
//
// A pixel's brightness is the mean of its R, G, B samples (alpha is
// ignored). A pixel is bright when its brightness exceeds Threshold,
// and a line is blank when the fraction of bright pixels in it is at
// least Ratio.
//
// Two classifiers with independent parameters are used in the system:
// a strict one for segmentation (separators must be almost entirely
// white so adjoining sub-images are never merged) and a looser one for
// border trimming (content edges carry antialiasing noise that must be
// tolerated).
type Classifier struct {
	// Threshold is the brightness cutoff in [0, 255]
	Threshold int

	// Ratio is the minimum bright-pixel fraction in [0, 1] for a
	// line to count as blank
	Ratio float64
}

// RowIsBlank classifies row y of img.
func (c Classifier) RowIsBlank(img *image.NRGBA, y int) bool {
	b := img.Bounds()
	bright := make([]float64, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		bright = append(bright, c.brightIndicator(img, x, y))
	}
	return c.isBlank(bright)
}

// ColIsBlank classifies column x of img.
func (c Classifier) ColIsBlank(img *image.NRGBA, x int) bool {
	b := img.Bounds()
	bright := make([]float64, 0, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		bright = append(bright, c.brightIndicator(img, x, y))
	}
	return c.isBlank(bright)
}

// brightIndicator returns 1 if the pixel at (x, y) is bright, else 0.
func (c Classifier) brightIndicator(img *image.NRGBA, x, y int) float64 {
	i := img.PixOffset(x, y)
	r := int(img.Pix[i])
	g := int(img.Pix[i+1])
	b := int(img.Pix[i+2])
	// Mean of the three color channels; alpha excluded.
	if r+g+b > 3*c.Threshold {
		return 1
	}
	return 0
}

// isBlank applies the ratio test to a bright-pixel indicator vector.
func (c Classifier) isBlank(bright []float64) bool {
	if len(bright) == 0 {
		return false
	}
	return stat.Mean(bright, nil) >= c.Ratio
}
