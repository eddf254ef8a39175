package splitter

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// InputExtensions lists the source image formats the walker accepts.
var InputExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".bmp", ".tiff", ".tif", ".gif"}

// IsInputImage checks if the given path has a supported input format.
func IsInputImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range InputExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// DecodeFile loads and decodes an image file into an NRGBA buffer.
// The segmentation engine only ever reads this buffer.
func DecodeFile(path string) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return ToNRGBA(img), nil
}

// ToNRGBA converts a decoded image to NRGBA with a zero origin.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// NormalizeFormat canonicalizes an output format name, stripping any
// leading dot and folding jpeg to jpg.
func NormalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	if f == "jpeg" {
		f = "jpg"
	}
	return f
}

// SaveImage encodes img to path in the given format. JPEG output is
// flattened to three channels first, compositing any transparency onto
// white. quality applies to jpg and webp.
func SaveImage(img image.Image, path, format string, quality int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch NormalizeFormat(format) {
	case "jpg":
		err = jpeg.Encode(file, flattenToRGB(img), &jpeg.Options{Quality: quality})
	case "png":
		err = png.Encode(file, img)
	case "webp":
		err = webp.Encode(file, img, &webp.Options{Quality: float32(quality)})
	default:
		err = fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	return nil
}

// flattenToRGB drops the alpha channel by compositing onto a white
// background, matching the whitespace-gutter domain.
func flattenToRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
