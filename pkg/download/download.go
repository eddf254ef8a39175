// Package download fetches source images for splitting, either by
// scraping a gallery page for its image elements or by generating a
// numeric URL range from a sample image URL. Every downloaded file is
// checksummed and recorded in a JSON manifest.
package download

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// GallerySelector is the CSS selector for image elements on a gallery
// page.
const GallerySelector = "#subphotoimg > li > .imgBig"

// userAgent is sent with every request; some hosts refuse the Go
// default.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// FileRecord is the manifest entry for one downloaded image.
type FileRecord struct {
	File   string `json:"file"`
	Source string `json:"source"`
	SHA256 string `json:"sha256"`
	Size   int64  `json:"size"`
}

// Manifest is the metadata.json document written next to the images.
type Manifest struct {
	GeneratedAt time.Time    `json:"generated_at"`
	SourceURL   string       `json:"source_url"`
	Mode        string       `json:"mode"`
	TotalImages int          `json:"total_images"`
	Images      []FileRecord `json:"images"`
}

// Options configures a Downloader.
type Options struct {
	// URL is the gallery page URL or a direct image URL
	URL string

	// Directory receives the downloaded images and the manifest
	Directory string

	// Filenames optionally overrides output names by download index
	Filenames []string

	// RangeCount, when positive, enables range mode on a direct
	// image URL
	RangeCount int

	// Suffix is the optional literal between number and extension
	// for range pattern matching (e.g. "_500")
	Suffix string

	// Quiet suppresses progress output
	Quiet bool
}

// Downloader fetches a set of images and writes a checksum manifest.
type Downloader struct {
	opts      Options
	client    *http.Client
	records   []FileRecord
	rangeMode bool
}

// New creates a Downloader with a 30 second request timeout.
func New(opts Options) *Downloader {
	return &Downloader{
		opts:   opts,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Run resolves the image URL list, downloads every image, and writes
// the manifest. It returns the succeeded and failed counts; a failed
// URL never aborts the rest.
func (d *Downloader) Run() (succeeded, failed int, err error) {
	if err := os.MkdirAll(d.opts.Directory, 0755); err != nil {
		return 0, 0, fmt.Errorf("failed to create directory: %w", err)
	}

	urls, err := d.resolveURLs()
	if err != nil {
		return 0, 0, err
	}

	for i, u := range urls {
		name := d.filename(u, i)
		d.printf("[%d/%d] Downloading: %s... ", i+1, len(urls), name)

		if err := d.downloadOne(u, filepath.Join(d.opts.Directory, name)); err != nil {
			d.printf("failed: %v\n", err)
			failed++
			continue
		}
		d.printf("done\n")
		succeeded++
	}

	if err := d.writeManifest(); err != nil {
		return succeeded, failed, err
	}

	return succeeded, failed, nil
}

// resolveURLs produces the download list for the configured mode:
// range generation, a single direct image, or gallery scraping.
func (d *Downloader) resolveURLs() ([]string, error) {
	if d.opts.RangeCount > 0 && IsDirectImageURL(d.opts.URL) {
		pattern := ExtractPattern(d.opts.URL, d.opts.Suffix)
		if pattern == nil {
			// No recognizable numeric series: fall back to a single
			// download of the given URL.
			d.printf("Warning: no numeric pattern found in URL, downloading single image\n")
			return []string{d.opts.URL}, nil
		}
		d.rangeMode = true
		d.printf("Range mode: %s pattern, %d images from %d (width %d)\n",
			pattern.Type, d.opts.RangeCount, pattern.Number, pattern.DigitWidth)
		return pattern.URLs(d.opts.RangeCount), nil
	}

	if IsDirectImageURL(d.opts.URL) {
		return []string{d.opts.URL}, nil
	}

	return d.scrapeGallery()
}

// scrapeGallery fetches the page and extracts the gallery image URLs,
// resolving relative sources against the page URL.
func (d *Downloader) scrapeGallery() ([]string, error) {
	d.printf("Fetching webpage...\n")

	body, err := d.get(d.opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	base, err := url.Parse(d.opts.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	var urls []string
	doc.Find(GallerySelector).Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok {
			return
		}
		ref, err := url.Parse(src)
		if err != nil {
			return
		}
		urls = append(urls, base.ResolveReference(ref).String())
	})

	if len(urls) == 0 {
		return nil, fmt.Errorf("no images found with selector %q", GallerySelector)
	}

	d.printf("Found %d images\n", len(urls))
	return urls, nil
}

// downloadOne fetches a single URL to disk and records its checksum.
func (d *Downloader) downloadOne(rawURL, filePath string) error {
	body, err := d.get(rawURL)
	if err != nil {
		return err
	}
	defer body.Close()

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	hash := sha256.New()
	size, err := io.Copy(io.MultiWriter(file, hash), body)
	if err != nil {
		return err
	}

	d.records = append(d.records, FileRecord{
		File:   filepath.Base(filePath),
		Source: rawURL,
		SHA256: hex.EncodeToString(hash.Sum(nil)),
		Size:   size,
	})

	return nil
}

// get issues a GET and returns the body, treating non-2xx statuses as
// errors.
func (d *Downloader) get(rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// filename picks the output name for the i-th download: the explicit
// list wins, otherwise the URL basename with query stripped.
func (d *Downloader) filename(rawURL string, i int) string {
	if i < len(d.opts.Filenames) && d.opts.Filenames[i] != "" {
		return d.opts.Filenames[i]
	}
	name := path.Base(rawURL)
	if idx := strings.Index(name, "?"); idx >= 0 {
		name = name[:idx]
	}
	return name
}

// writeManifest saves metadata.json in the download directory.
func (d *Downloader) writeManifest() error {
	mode := "webpage"
	if d.rangeMode {
		mode = "range"
	}

	manifest := Manifest{
		GeneratedAt: time.Now().UTC(),
		SourceURL:   d.opts.URL,
		Mode:        mode,
		TotalImages: len(d.records),
		Images:      d.records,
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	manifestPath := filepath.Join(d.opts.Directory, "metadata.json")
	if err := os.WriteFile(manifestPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	d.printf("Metadata saved to: %s\n", manifestPath)
	return nil
}

// ParseFilenames splits a comma-separated filename list. Blank
// entries keep their position; the downloader falls back to the URL
// basename for them.
func ParseFilenames(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func (d *Downloader) printf(format string, args ...any) {
	if !d.opts.Quiet {
		fmt.Printf(format, args...)
	}
}
