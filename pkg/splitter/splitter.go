// Package splitter runs the composite-image splitting pipeline: decode
// an input image, detect the sub-image grid, optionally trim residual
// white borders, resolve output names, and encode the slices.
package splitter

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"imgsplit/internal/models"
	"imgsplit/pkg/config"
	"imgsplit/pkg/naming"
	"imgsplit/pkg/segmentation"
)

// Output is one slice ready for encoding: the cropped pixel buffer and
// its resolved base name (no extension).
type Output struct {
	// Image is the cropped sub-image
	Image *image.NRGBA

	// Name is the resolved output base name
	Name string

	// Slice is the originating grid cell descriptor
	Slice models.Slice
}

// Splitter runs the segmentation pipeline with a fixed configuration.
// One Splitter may process many images; each image's run is
// independent and keeps no state behind.
type Splitter struct {
	cfg      *config.Config
	seg      segmentation.Classifier
	trimmer  *segmentation.Trimmer
	resolver naming.Resolver
}

// New creates a Splitter after validating the configuration. A
// validation failure is fatal for the whole run; nothing is processed.
func New(cfg *config.Config) (*Splitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s := &Splitter{
		cfg: cfg,
		seg: segmentation.Classifier{
			Threshold: cfg.Segmentation.Threshold,
			Ratio:     cfg.Segmentation.Ratio,
		},
		resolver: naming.NewResolver(cfg.Naming.Suffixes, cfg.Naming.Template),
	}

	if cfg.Trim.Enabled {
		sides, _ := segmentation.ParseSides(cfg.Trim.Sides)
		s.trimmer = &segmentation.Trimmer{
			Classifier: segmentation.Classifier{
				Threshold: cfg.Trim.Threshold,
				Ratio:     cfg.Trim.Ratio,
			},
			MaxTrim: cfg.Trim.MaxDepth,
			Sides:   sides,
		}
	}

	return s, nil
}

// Split segments one decoded image into its named slices. baseName is
// the source image name without extension. The returned outputs are in
// row-major grid order. cycled reports whether suffix-list naming
// wrapped around for this image; callers should warn once when it did.
func (s *Splitter) Split(img *image.NRGBA, baseName string) (outputs []Output, cycled bool) {
	b := img.Bounds()
	width := b.Dx()
	height := b.Dy()

	colRegions := segmentation.FindRegions(width, func(x int) bool {
		return s.seg.ColIsBlank(img, b.Min.X+x)
	}, s.cfg.Segmentation.MinSize, s.cfg.Segmentation.MinGap)

	rowRegions := segmentation.FindRegions(height, func(y int) bool {
		return s.seg.RowIsBlank(img, b.Min.Y+y)
	}, s.cfg.Segmentation.MinSize, s.cfg.Segmentation.MinGap)

	grid := segmentation.NewGrid(rowRegions, colRegions, width, height)
	slices := grid.Assemble(img, s.trimmer)

	cycled = s.resolver.CyclesOver(len(slices))
	totalCols := len(grid.Cols)

	outputs = make([]Output, 0, len(slices))
	for _, sl := range slices {
		cropped := ToNRGBA(img.SubImage(sl.Rect))
		name := s.resolver.Resolve(baseName, sl.Row, sl.Col, totalCols)
		outputs = append(outputs, Output{Image: cropped, Name: name, Slice: sl})
	}

	return outputs, cycled
}

// SplitFile decodes one image file, splits it, and writes each slice
// into outputDir. The output directory is created before any write.
// The returned result carries per-slice report lines in row-major
// order so batch mode can log them deterministically.
func (s *Splitter) SplitFile(inputPath, outputDir string) *models.ImageResult {
	res := &models.ImageResult{Path: inputPath}

	img, err := DecodeFile(inputPath)
	if err != nil {
		res.Err = err
		return res
	}

	outputs, cycled := s.Split(img, baseName(inputPath))

	res.Lines = append(res.Lines,
		fmt.Sprintf("  Detected %d cols x %d rows", gridCols(outputs), gridRows(outputs)))
	if cycled {
		res.Lines = append(res.Lines,
			fmt.Sprintf("  Warning: suffix list (%d) < slices (%d), will cycle",
				len(s.resolver.Suffixes), len(outputs)))
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		res.Err = fmt.Errorf("failed to create output directory: %w", err)
		return res
	}

	ext := "." + NormalizeFormat(s.cfg.Output.Format)
	for _, out := range outputs {
		outPath := filepath.Join(outputDir, out.Name+ext)
		if err := SaveImage(out.Image, outPath, s.cfg.Output.Format, s.cfg.Output.Quality); err != nil {
			// Encoding or writing failed: remaining slices of this
			// image are abandoned, the batch recovers at image level.
			res.Err = err
			return res
		}
		res.Slices++

		sz := out.Slice.Rect.Size()
		line := fmt.Sprintf("    [%d,%d] %dx%d", out.Slice.Row, out.Slice.Col, sz.X, sz.Y)
		if out.Slice.Trim.Any() {
			line += fmt.Sprintf(" (trim: %s)", out.Slice.Trim)
		}
		line += fmt.Sprintf(" -> %s%s", out.Name, ext)
		res.Lines = append(res.Lines, line)
	}

	return res
}

// baseName returns the file name without directory or extension.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// gridCols infers the column count from row-major outputs.
func gridCols(outputs []Output) int {
	cols := 0
	for _, out := range outputs {
		if out.Slice.Col+1 > cols {
			cols = out.Slice.Col + 1
		}
	}
	return cols
}

// gridRows infers the row count from row-major outputs.
func gridRows(outputs []Output) int {
	rows := 0
	for _, out := range outputs {
		if out.Slice.Row+1 > rows {
			rows = out.Slice.Row + 1
		}
	}
	return rows
}
