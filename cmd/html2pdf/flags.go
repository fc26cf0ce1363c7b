package main

import (
	flag "github.com/spf13/pflag"
)

// pageSizeSentinel is --page-size's default value; while the flag holds
// it, resolvePdfOptions leaves the paper dimensions at their defaults.
const pageSizeSentinel = ""

// convertFlags holds flags for the convert command.
type convertFlags struct {
	output  string
	config  string
	verbose bool
	quiet   bool

	chromePath     string
	minConnections int
	maxConnections int
	basePort       int
	idleTimeout    int // seconds
	acquireTimeout int // seconds

	landscape          bool
	printBackground    bool
	noBackground       bool
	scale              float64
	pageSize           string
	paperWidth         float64
	paperHeight        float64
	marginTop          float64
	marginBottom       float64
	marginLeft         float64
	marginRight        float64
	pageRanges         string
	preferCSSPageSize  bool
}

// batchFlags holds flags specific to the batch command, layered on top
// of convertFlags.
type batchFlags struct {
	convertFlags
	outDir  string
	workers int
}

// parseConvertFlags parses flags for "html2pdf convert".
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (default: stdout)")
	fs.StringVarP(&f.config, "config", "c", "", "path to a .yaml/.yml or properties-style config file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log pool and browser activity to stderr")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress non-error output")

	fs.StringVar(&f.chromePath, "chrome-path", "", "path to the Chrome/Chromium binary")
	fs.IntVar(&f.minConnections, "min-connections", 0, "minimum browsers to keep warm (0 = default)")
	fs.IntVar(&f.maxConnections, "max-connections", 0, "maximum concurrent browsers (0 = default)")
	fs.IntVar(&f.basePort, "base-port", 0, "first remote-debugging port to try (0 = default)")
	fs.IntVar(&f.idleTimeout, "idle-timeout", 0, "seconds an idle browser survives before eviction (0 = default)")
	fs.IntVar(&f.acquireTimeout, "acquire-timeout", 0, "seconds to wait for a free browser (0 = default)")

	fs.BoolVar(&f.landscape, "landscape", false, "render in landscape orientation")
	fs.BoolVar(&f.printBackground, "print-background", true, "render background graphics")
	fs.BoolVar(&f.noBackground, "no-background", false, "suppress background graphics (overrides --print-background)")
	fs.Float64Var(&f.scale, "scale", 0, "page scale factor, 0.1-2.0 (0 = default)")
	fs.StringVar(&f.pageSize, "page-size", pageSizeSentinel, "named page size: letter, a4, legal, tabloid, a3, a5")
	fs.Float64Var(&f.paperWidth, "paper-width", 0, "paper width in inches, overrides --page-size")
	fs.Float64Var(&f.paperHeight, "paper-height", 0, "paper height in inches, overrides --page-size")
	fs.Float64Var(&f.marginTop, "margin-top", -1, "top margin in inches (-1 = default)")
	fs.Float64Var(&f.marginBottom, "margin-bottom", -1, "bottom margin in inches (-1 = default)")
	fs.Float64Var(&f.marginLeft, "margin-left", -1, "left margin in inches (-1 = default)")
	fs.Float64Var(&f.marginRight, "margin-right", -1, "right margin in inches (-1 = default)")
	fs.StringVar(&f.pageRanges, "page-ranges", "", "page ranges to print, e.g. \"1-4,9\" (empty = all)")
	fs.BoolVar(&f.preferCSSPageSize, "prefer-css-page-size", false, "let @page CSS rules override --page-size")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBatchFlags parses flags for "html2pdf batch", sharing every
// convertFlags field except --output, plus an output directory and worker
// count.
func parseBatchFlags(args []string) (*batchFlags, []string, error) {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	f := &batchFlags{}

	fs.StringVarP(&f.outDir, "out-dir", "o", "", "directory to write converted PDFs into")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent conversions (0 = pool's max-connections)")
	fs.StringVarP(&f.config, "config", "c", "", "path to a .yaml/.yml or properties-style config file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log pool and browser activity to stderr")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress non-error output")
	fs.StringVar(&f.chromePath, "chrome-path", "", "path to the Chrome/Chromium binary")
	fs.IntVar(&f.minConnections, "min-connections", 0, "minimum browsers to keep warm (0 = default)")
	fs.IntVar(&f.maxConnections, "max-connections", 0, "maximum concurrent browsers (0 = default)")
	fs.IntVar(&f.basePort, "base-port", 0, "first remote-debugging port to try (0 = default)")
	fs.IntVar(&f.idleTimeout, "idle-timeout", 0, "seconds an idle browser survives before eviction (0 = default)")
	fs.IntVar(&f.acquireTimeout, "acquire-timeout", 0, "seconds to wait for a free browser (0 = default)")
	fs.BoolVar(&f.landscape, "landscape", false, "render in landscape orientation")
	fs.BoolVar(&f.printBackground, "print-background", true, "render background graphics")
	fs.BoolVar(&f.noBackground, "no-background", false, "suppress background graphics (overrides --print-background)")
	fs.Float64Var(&f.scale, "scale", 0, "page scale factor, 0.1-2.0 (0 = default)")
	fs.StringVar(&f.pageSize, "page-size", pageSizeSentinel, "named page size: letter, a4, legal, tabloid, a3, a5")
	fs.Float64Var(&f.paperWidth, "paper-width", 0, "paper width in inches, overrides --page-size")
	fs.Float64Var(&f.paperHeight, "paper-height", 0, "paper height in inches, overrides --page-size")
	fs.Float64Var(&f.marginTop, "margin-top", -1, "top margin in inches (-1 = default)")
	fs.Float64Var(&f.marginBottom, "margin-bottom", -1, "bottom margin in inches (-1 = default)")
	fs.Float64Var(&f.marginLeft, "margin-left", -1, "left margin in inches (-1 = default)")
	fs.Float64Var(&f.marginRight, "margin-right", -1, "right margin in inches (-1 = default)")
	fs.StringVar(&f.pageRanges, "page-ranges", "", "page ranges to print, e.g. \"1-4,9\" (empty = all)")
	fs.BoolVar(&f.preferCSSPageSize, "prefer-css-page-size", false, "let @page CSS rules override --page-size")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
