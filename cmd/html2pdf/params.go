package main

import (
	"fmt"
	"time"

	"github.com/alnah/html2pdf"
	"github.com/alnah/html2pdf/internal/config"
)

// resolvePoolConfig builds a PoolConfig from a config file (if given) and
// flag overrides, flags winning over file values, file values winning
// over PoolConfig's own defaults.
func resolvePoolConfig(f convertFlags) (html2pdf.PoolConfig, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return cfg, err
	}

	if f.chromePath != "" {
		cfg.ChromePath = f.chromePath
	}
	if f.minConnections > 0 {
		cfg.MinConnections = f.minConnections
	}
	if f.maxConnections > 0 {
		cfg.MaxConnections = f.maxConnections
	}
	if f.basePort > 0 {
		cfg.BasePort = f.basePort
	}
	if f.idleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(f.idleTimeout) * time.Second
	}
	if f.acquireTimeout > 0 {
		cfg.AcquireTimeout = time.Duration(f.acquireTimeout) * time.Second
	}
	return cfg, nil
}

// resolvePdfOptions builds PdfOptions from flag values layered onto
// DefaultPdfOptions.
func resolvePdfOptions(f convertFlags) (html2pdf.PdfOptions, error) {
	opts := html2pdf.DefaultPdfOptions()

	opts.Landscape = f.landscape
	opts.PrintBackground = f.printBackground && !f.noBackground
	opts.PreferCSSPageSize = f.preferCSSPageSize
	opts.PageRanges = f.pageRanges

	if f.scale > 0 {
		opts.Scale = f.scale
	}
	if f.pageSize != pageSizeSentinel {
		var err error
		opts, err = opts.WithPageSize(f.pageSize)
		if err != nil {
			return opts, fmt.Errorf("%w: %s", err, f.pageSize)
		}
	}
	if f.paperWidth > 0 {
		opts.PaperWidth = f.paperWidth
	}
	if f.paperHeight > 0 {
		opts.PaperHeight = f.paperHeight
	}
	if f.marginTop >= 0 {
		opts.MarginTop = f.marginTop
	}
	if f.marginBottom >= 0 {
		opts.MarginBottom = f.marginBottom
	}
	if f.marginLeft >= 0 {
		opts.MarginLeft = f.marginLeft
	}
	if f.marginRight >= 0 {
		opts.MarginRight = f.marginRight
	}
	return opts, nil
}
