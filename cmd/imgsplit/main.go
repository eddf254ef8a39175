package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"imgsplit/pkg/config"
	"imgsplit/pkg/naming"
	"imgsplit/pkg/splitter"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file")
	threshold := flag.Int("threshold", 245, "White pixel brightness threshold (0-255)")
	minSize := flag.Int("min-size", 50, "Minimum sub-image size in pixels")
	minGap := flag.Int("min-gap", 3, "Minimum separator width in pixels")
	ratio := flag.Float64("ratio", 0.99, "White pixel ratio for separator detection")
	trim := flag.Bool("trim", false, "Enable white border trimming")
	trimMax := flag.Int("trim-max", 10, "Maximum pixels to trim per edge")
	trimThreshold := flag.Int("trim-threshold", 248, "Brightness threshold for trimming")
	trimSides := flag.String("trim-sides", "tblr", "Sides to trim: t(top), b(bottom), l(left), r(right)")
	template := flag.String("template", naming.DefaultTemplate, "Filename template with {name} {row} {col} {n} {N}")
	suffixes := flag.String("suffixes", "", "Comma-separated suffix list (mutually exclusive with -template)")
	format := flag.String("format", "webp", "Output format: jpg, png, webp")
	quality := flag.Int("quality", 95, "Output quality for jpg/webp (1-100)")
	recursive := flag.Bool("recursive", false, "Recursively process subdirectories, preserving structure")
	workers := flag.Int("workers", 0, "Number of images processed concurrently (default: all cores)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  input   image file or directory\n")
		fmt.Fprintf(os.Stderr, "  output  output directory\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)
	output := flag.Arg(1)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override config file values when set explicitly.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "threshold":
			cfg.Segmentation.Threshold = *threshold
		case "min-size":
			cfg.Segmentation.MinSize = *minSize
		case "min-gap":
			cfg.Segmentation.MinGap = *minGap
		case "ratio":
			cfg.Segmentation.Ratio = *ratio
		case "trim":
			cfg.Trim.Enabled = *trim
		case "trim-max":
			cfg.Trim.MaxDepth = *trimMax
		case "trim-threshold":
			cfg.Trim.Threshold = *trimThreshold
		case "trim-sides":
			cfg.Trim.Sides = *trimSides
		case "template":
			cfg.Naming.Template = *template
		case "suffixes":
			cfg.Naming.Suffixes = *suffixes
		case "format":
			cfg.Output.Format = *format
		case "quality":
			cfg.Output.Quality = *quality
		case "recursive":
			cfg.Batch.Recursive = *recursive
		case "workers":
			cfg.Batch.Workers = *workers
		}
	})

	s, err := splitter.New(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println("==================================================")
	fmt.Println("Composite Image Splitter")
	fmt.Println("==================================================")
	fmt.Printf("Input:  %s\n", input)
	fmt.Printf("Output: %s\n", output)
	fmt.Printf("Format: %s (quality: %d)\n", cfg.Output.Format, cfg.Output.Quality)
	if cfg.Trim.Enabled {
		fmt.Printf("Trim: %s (max %d px)\n", cfg.Trim.Sides, cfg.Trim.MaxDepth)
	} else {
		fmt.Println("Trim: no")
	}
	if cfg.Naming.Suffixes != "" {
		fmt.Printf("Suffixes: %s\n", cfg.Naming.Suffixes)
	} else {
		fmt.Printf("Template: %s\n", cfg.Naming.Template)
	}
	fmt.Println("==================================================")

	info, err := os.Stat(input)
	if err != nil {
		log.Fatalf("Error: %q not found", input)
	}

	if !info.IsDir() {
		fmt.Printf("Processing: %s\n", input)
		res := s.SplitFile(input, output)
		for _, line := range res.Lines {
			fmt.Println(line)
		}
		if res.Err != nil {
			log.Fatalf("Failed: %v", res.Err)
		}
		fmt.Printf("\nDone! Extracted %d images -> %s\n", res.Slices, output)
		return
	}

	tasks, err := splitter.CollectTasks(input, output, cfg.Batch.Recursive)
	if err != nil {
		log.Fatalf("Failed to list input: %v", err)
	}
	if len(tasks) == 0 {
		log.Fatalf("No images found in %q", input)
	}

	tally := s.RunBatch(tasks, cfg.Batch.Workers)
	fmt.Println("==================================================")
	fmt.Printf("All done! Extracted %d images -> %s\n", tally.Slices, output)
	fmt.Printf("Images: %d succeeded, %d failed\n", tally.Succeeded, tally.Failed)
	if tally.Failed > 0 {
		os.Exit(1)
	}
}
