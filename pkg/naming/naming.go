// Package naming maps grid cells to output base names, either through
// a cyclic suffix list or a placeholder template.
package naming

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTemplate is the template used when neither a template nor a
// suffix list is configured explicitly.
const DefaultTemplate = "{name}_{row}_{col}"

// Resolver generates output base names for slices. Exactly one of
// Suffixes and Template is active; Validate enforces the exclusivity
// before any image is processed, so Resolve never checks it.
type Resolver struct {
	// Suffixes, when non-empty, is appended cyclically by linear
	// slice index
	Suffixes []string

	// Template is the placeholder template used when Suffixes is
	// empty. Recognized placeholders: {name}, {row}, {col}, {n}, {N}.
	Template string
}

// NewResolver builds a Resolver from the raw CLI/config inputs.
// suffixes is the comma- or space-separated suffix list ("" for none);
// template is the name template ("" selects DefaultTemplate).
func NewResolver(suffixes, template string) Resolver {
	r := Resolver{
		Suffixes: ParseSuffixList(suffixes),
		Template: template,
	}
	if r.Template == "" {
		r.Template = DefaultTemplate
	}
	return r
}

// ParseSuffixList splits a suffix list on commas, or on whitespace
// when no comma is present. An empty input yields nil.
func ParseSuffixList(s string) []string {
	if s == "" {
		return nil
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out
	}
	return strings.Fields(s)
}

// Resolve returns the output base name for the cell at (row, col) in a
// grid with totalCols columns. baseName is the source image name
// without extension.
func (r Resolver) Resolve(baseName string, row, col, totalCols int) string {
	n := row*totalCols + col

	if len(r.Suffixes) > 0 {
		return baseName + r.Suffixes[n%len(r.Suffixes)]
	}

	repl := strings.NewReplacer(
		"{name}", baseName,
		"{row}", strconv.Itoa(row),
		"{col}", strconv.Itoa(col),
		"{n}", strconv.Itoa(n),
		"{N}", strconv.Itoa(n+1),
	)
	return repl.Replace(r.Template)
}

// CyclesOver reports whether the suffix list is shorter than the given
// slice count, i.e. whether Resolve will wrap around. The pipeline
// uses this to warn once per image, not per slice.
func (r Resolver) CyclesOver(sliceCount int) bool {
	return len(r.Suffixes) > 0 && len(r.Suffixes) < sliceCount
}

// Validate rejects configurations where both a suffix list and a
// non-default template are set. The two naming modes are mutually
// exclusive by construction everywhere else.
func (r Resolver) Validate(templateExplicit bool) error {
	if len(r.Suffixes) > 0 && templateExplicit {
		return fmt.Errorf("suffix list and name template are mutually exclusive")
	}
	return nil
}
