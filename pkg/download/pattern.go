package download

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// PatternType identifies which filename shape a range pattern matched.
type PatternType string

const (
	// PatternSuffix matches prefix_01<suffix>.jpg with a caller-given
	// suffix such as "_500"
	PatternSuffix PatternType = "suffix"

	// PatternUnderscore matches prefix_01.jpg
	PatternUnderscore PatternType = "underscore"

	// PatternLetterNumber matches trailing letters then digits, like
	// jsuetrki00.jpg
	PatternLetterNumber PatternType = "letter_number"

	// PatternSimple matches a purely numeric filename like 685.jpg
	PatternSimple PatternType = "simple"
)

// Pattern describes the numeric series embedded in an image URL. URLs
// for the rest of the series are generated by incrementing Number
// while preserving DigitWidth (leading zeros).
type Pattern struct {
	// BaseURL is the URL up to and including the final path separator
	BaseURL string

	// Prefix is the filename part before the number
	Prefix string

	// Number is the starting number parsed from the filename
	Number int

	// Suffix is the filename part between the number and extension
	Suffix string

	// Ext is the filename extension including the dot
	Ext string

	// DigitWidth is the digit count of the original number text
	DigitWidth int

	// Type records which shape matched
	Type PatternType
}

var (
	underscoreRe   = regexp.MustCompile(`^(.+_)(\d+)(\.\w+)$`)
	letterNumberRe = regexp.MustCompile(`^(.+[a-zA-Z])(\d+)(\.\w+)$`)
	simpleRe       = regexp.MustCompile(`^(\d+)(\.\w+)$`)
)

// ImageExtensions are the URL path extensions treated as direct image
// links.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

// IsDirectImageURL checks whether rawURL points straight at an image
// file rather than a web page.
func IsDirectImageURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	p := strings.ToLower(u.Path)
	for _, ext := range ImageExtensions {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}

// ExtractPattern finds the numeric series in rawURL's filename.
// suffix, when non-empty, is tried first as a literal between the
// number and the extension (highest priority); then the underscore,
// letter-number, and simple shapes in that order. Returns nil when no
// shape matches.
func ExtractPattern(rawURL, suffix string) *Pattern {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}

	filename := path.Base(u.Path)
	dir := path.Dir(u.Path)
	if dir == "/" {
		dir = ""
	}
	baseURL := fmt.Sprintf("%s://%s%s/", u.Scheme, u.Host, dir)

	if suffix != "" {
		escaped := regexp.QuoteMeta(suffix)
		for _, expr := range []string{
			`^(.+_)(\d+)(` + escaped + `)(\.\w+)$`,
			`^(.+[a-zA-Z])(\d+)(` + escaped + `)(\.\w+)$`,
		} {
			if m := regexp.MustCompile(expr).FindStringSubmatch(filename); m != nil {
				return &Pattern{
					BaseURL:    baseURL,
					Prefix:     m[1],
					Number:     mustAtoi(m[2]),
					Suffix:     m[3],
					Ext:        m[4],
					DigitWidth: len(m[2]),
					Type:       PatternSuffix,
				}
			}
		}
	}

	if m := underscoreRe.FindStringSubmatch(filename); m != nil {
		return &Pattern{
			BaseURL:    baseURL,
			Prefix:     m[1],
			Number:     mustAtoi(m[2]),
			Ext:        m[3],
			DigitWidth: len(m[2]),
			Type:       PatternUnderscore,
		}
	}

	if m := letterNumberRe.FindStringSubmatch(filename); m != nil {
		return &Pattern{
			BaseURL:    baseURL,
			Prefix:     m[1],
			Number:     mustAtoi(m[2]),
			Ext:        m[3],
			DigitWidth: len(m[2]),
			Type:       PatternLetterNumber,
		}
	}

	if m := simpleRe.FindStringSubmatch(filename); m != nil {
		return &Pattern{
			BaseURL:    baseURL,
			Number:     mustAtoi(m[1]),
			Ext:        m[2],
			DigitWidth: len(m[1]),
			Type:       PatternSimple,
		}
	}

	return nil
}

// URLs generates count URLs for the series, incrementing from the
// starting number and zero-padding to the original digit width.
func (p *Pattern) URLs(count int) []string {
	urls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		number := strconv.Itoa(p.Number + i)
		if pad := p.DigitWidth - len(number); pad > 0 {
			number = strings.Repeat("0", pad) + number
		}
		urls = append(urls, p.BaseURL+p.Prefix+number+p.Suffix+p.Ext)
	}
	return urls
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
