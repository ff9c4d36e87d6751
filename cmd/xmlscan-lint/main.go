package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"

	"github.com/go-xmlscan/xmlscan"
)

type cmdopts struct {
	NoColor     bool `long:"no-color" description:"disable colorized output"`
	NoSIMD      bool `long:"no-simd" description:"disable the vectorised fast paths"`
	NoCheckTags bool `long:"no-check-tags" description:"skip begin/end tag matching"`
	Version     bool `long:"version" description:"print the version and exit"`
	Positional  struct {
		Files []string
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run())
}

func showUsage() {
	fmt.Fprint(os.Stderr, `Usage: xmlscan-lint [options] [file ...]

Streams each file (or stdin, if none given) through the parser and
prints one line per event: begin/end tags, attributes, text runs,
comments, CDATA sections, and any parse error encountered.

Options:
  --no-color        disable colorized output
  --no-simd          disable the vectorised fast paths
  --no-check-tags    skip begin/end tag matching
  --version          print the version and exit
`)
}

func run() int {
	var opts cmdopts
	parser := flags.NewParser(&opts, flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		fmt.Printf("xmlscan-lint: using xmlscan version %s\n", xmlscan.Version)
		return 0
	}

	color.NoColor = color.NoColor || opts.NoColor

	parseOpts := []xmlscan.Option{
		xmlscan.WithSIMD(!opts.NoSIMD),
		xmlscan.WithCheckBeginEndTag(!opts.NoCheckTags),
	}

	readers, cleanup, err := openInputs(opts.Positional.Files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	defer cleanup()

	failed := false
	for name, r := range readers {
		fmt.Fprintf(os.Stdout, "== %s ==\n", name)
		d := newDumper(os.Stdout)
		if err := xmlscan.ParseReader(r, d, parseOpts...); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, err)
			failed = true
		}
	}

	if failed {
		return 1
	}
	return 0
}

func openInputs(files []string) (map[string]io.Reader, func(), error) {
	if len(files) == 0 {
		return map[string]io.Reader{"<stdin>": os.Stdin}, func() {}, nil
	}

	readers := make(map[string]io.Reader, len(files))
	var handles []*os.File
	for _, f := range files {
		fh, err := os.Open(f)
		if err != nil {
			for _, h := range handles {
				h.Close()
			}
			return nil, nil, err
		}
		handles = append(handles, fh)
		readers[f] = fh
	}

	cleanup := func() {
		for _, h := range handles {
			h.Close()
		}
	}
	return readers, cleanup, nil
}
