package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"imgsplit/pkg/download"
)

func main() {
	names := flag.String("names", "", "Comma-separated filename list (optional)")
	rangeCount := flag.Int("range", 0, "Download a numeric range of this many images")
	suffix := flag.String("suffix", "", "Literal between number and extension for range matching (e.g. \"_500\")")
	quiet := flag.Bool("quiet", false, "Quiet mode (minimal output)")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] url directory [filenames]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  url        gallery page URL or direct image URL\n")
		fmt.Fprintf(os.Stderr, "  directory  directory to save images\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	filenames := *names
	if flag.NArg() > 2 {
		filenames = flag.Arg(2)
	}

	d := download.New(download.Options{
		URL:        flag.Arg(0),
		Directory:  flag.Arg(1),
		Filenames:  download.ParseFilenames(filenames),
		RangeCount: *rangeCount,
		Suffix:     *suffix,
		Quiet:      *quiet,
	})

	succeeded, failed, err := d.Run()
	if err != nil {
		log.Fatalf("Download failed: %v", err)
	}

	if !*quiet {
		fmt.Printf("Download complete: %d succeeded, %d failed\n", succeeded, failed)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
