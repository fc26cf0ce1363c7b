package html2pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/html2pdf/internal/fileutil"
)

// Converter is the stateless entry point for turning HTML into PDF
// bytes. It holds no state of its own beyond a reference to the Pool it
// draws sessions from, so multiple Converters may safely share one Pool
// and a Converter may be used from multiple goroutines concurrently.
type Converter struct {
	pool *Pool
}

// NewConverter wraps pool. Use Shared(cfg) to obtain the process-wide
// pool, or NewPool(cfg) to construct a dedicated one.
func NewConverter(pool *Pool) *Converter {
	return &Converter{pool: pool}
}

// ensureCtx returns ctx unchanged, or context.Background() if ctx is nil,
// so a caller passing a bare nil never reaches session.call's <-ctx.Done()
// with a context that would panic on it.
func ensureCtx(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// Convert renders the given HTML content to PDF bytes.
func (c *Converter) Convert(ctx context.Context, html string, opts PdfOptions) ([]byte, error) {
	ctx = ensureCtx(ctx)

	path, cleanup, err := fileutil.WriteTempFile(html, "html")
	if err != nil {
		return nil, fmt.Errorf("html2pdf: materializing html: %w", err)
	}
	defer cleanup()

	return c.ConvertFile(ctx, path, opts)
}

// ConvertFile renders the HTML file at htmlPath to PDF bytes.
func (c *Converter) ConvertFile(ctx context.Context, htmlPath string, opts PdfOptions) ([]byte, error) {
	ctx = ensureCtx(ctx)

	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("html2pdf: resolving %s: %w", htmlPath, err)
	}
	if !fileutil.FileExists(absPath) {
		return nil, fmt.Errorf("%w: %s", os.ErrNotExist, absPath)
	}

	sess, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer c.pool.Release(sess)

	if err := sess.Navigate(ctx, fileutil.FileURL(absPath)); err != nil {
		return nil, err
	}

	return sess.PrintToPDF(ctx, opts)
}

// ConvertToFile renders html and writes the resulting PDF to
// outputPath.
func (c *Converter) ConvertToFile(ctx context.Context, html, outputPath string, opts PdfOptions) error {
	pdf, err := c.Convert(ctx, html, opts)
	if err != nil {
		return err
	}
	return writeOutputFile(outputPath, pdf)
}

// ConvertFileToFile renders the HTML file at htmlPath and writes the
// resulting PDF to outputPath, without holding the whole HTML document
// in memory as a string.
func (c *Converter) ConvertFileToFile(ctx context.Context, htmlPath, outputPath string, opts PdfOptions) error {
	pdf, err := c.ConvertFile(ctx, htmlPath, opts)
	if err != nil {
		return err
	}
	return writeOutputFile(outputPath, pdf)
}

// writeOutputFile creates outputPath's parent directories if missing and
// writes pdf to it.
func writeOutputFile(outputPath string, pdf []byte) error {
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("html2pdf: creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return fmt.Errorf("html2pdf: writing %s: %w", outputPath, err)
	}
	return nil
}
