package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alnah/html2pdf"
)

// runBatchCmd converts every *.html / *.htm file in an input directory to
// PDF, spreading the work across the pool's browsers.
func runBatchCmd(ctx context.Context, args []string) error {
	bf, rest, err := parseBatchFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", os.ErrInvalid, err)
	}
	if len(rest) == 0 {
		return fmt.Errorf("%w: batch requires an input directory", os.ErrInvalid)
	}
	inputDir := rest[0]

	files, err := discoverHTMLFiles(inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .html/.htm files found in %s", inputDir)
	}

	outDir := bf.outDir
	if outDir == "" {
		outDir = inputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	cfg, err := resolvePoolConfig(bf.convertFlags)
	if err != nil {
		return err
	}
	pdfOpts, err := resolvePdfOptions(bf.convertFlags)
	if err != nil {
		return err
	}

	var poolOpts []html2pdf.PoolOption
	if bf.verbose {
		poolOpts = append(poolOpts, html2pdf.WithLogger(html2pdf.NewStdLogger(true)))
	}
	pool := html2pdf.NewPool(cfg, poolOpts...)
	defer pool.Shutdown()
	conv := html2pdf.NewConverter(pool)

	workers := bf.workers
	if workers <= 0 {
		workers = cfg.MaxConnections
	}

	result := convertAll(ctx, conv, files, outDir, pdfOpts, workers)

	if !bf.quiet {
		fmt.Fprintf(os.Stderr, "converted %d/%d files\n", result.ok, len(files))
	}
	for _, f := range result.failed {
		fmt.Fprintf(os.Stderr, "  failed: %s: %v\n", f.path, f.err)
	}
	if len(result.failed) > 0 {
		return fmt.Errorf("%d of %d conversions failed", len(result.failed), len(files))
	}
	return nil
}

// batchResult summarizes a batch run.
type batchResult struct {
	ok     int
	failed []batchFailure
}

type batchFailure struct {
	path string
	err  error
}

// convertAll fans the file list out across workers goroutines, each
// pulling from a shared channel and acquiring its own pool session per
// file via conv.
func convertAll(ctx context.Context, conv *html2pdf.Converter, files []string, outDir string, opts html2pdf.PdfOptions, workers int) batchResult {
	jobs := make(chan string)
	var mu sync.Mutex
	var result batchResult

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				outPath := outputPathFor(path, outDir)
				err := conv.ConvertFileToFile(ctx, path, outPath, opts)
				mu.Lock()
				if err != nil {
					result.failed = append(result.failed, batchFailure{path: path, err: err})
				} else {
					result.ok++
				}
				mu.Unlock()
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, f := range files {
			select {
			case jobs <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return result
}

// discoverHTMLFiles lists .html/.htm files directly inside dir, sorted
// for deterministic output.
func discoverHTMLFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".html" || ext == ".htm" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

// outputPathFor maps an input HTML path to a sibling .pdf path under
// outDir.
func outputPathFor(inputPath, outDir string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext) + ".pdf"
	return filepath.Join(outDir, name)
}
