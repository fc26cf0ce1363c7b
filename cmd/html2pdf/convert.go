package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alnah/html2pdf"
)

// ErrNoInput reports that convert was given no file and reading stdin
// produced no bytes.
var ErrNoInput = errors.New("no input: pass a file path or pipe HTML on stdin")

// runConvertCmd converts one HTML document to PDF and returns an error
// suitable for exitCodeFor.
func runConvertCmd(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	f, rest, err := parseConvertFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", os.ErrInvalid, err)
	}

	input := "-"
	if len(rest) > 0 {
		input = rest[0]
	}

	cfg, err := resolvePoolConfig(*f)
	if err != nil {
		return err
	}

	pdfOpts, err := resolvePdfOptions(*f)
	if err != nil {
		return err
	}

	var poolOpts []html2pdf.PoolOption
	if f.verbose {
		poolOpts = append(poolOpts, html2pdf.WithLogger(html2pdf.NewStdLogger(true)))
	}
	pool := html2pdf.NewPool(cfg, poolOpts...)
	defer pool.Shutdown()

	conv := html2pdf.NewConverter(pool)

	var pdf []byte
	if input == "-" {
		html, err := readAllLimited(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		if len(html) == 0 {
			return ErrNoInput
		}
		pdf, err = conv.Convert(ctx, string(html), pdfOpts)
		if err != nil {
			return err
		}
	} else {
		pdf, err = conv.ConvertFile(ctx, input, pdfOpts)
		if err != nil {
			return err
		}
	}

	if f.output == "" || f.output == "-" {
		_, err := stdout.Write(pdf)
		return err
	}
	if err := os.WriteFile(f.output, pdf, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.output, err)
	}
	if !f.quiet {
		fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", f.output, len(pdf))
	}
	return nil
}

// maxStdinBytes bounds how much HTML convert will read from a pipe, so a
// runaway producer can't exhaust memory. Input past this limit is
// silently dropped; no error is reported.
const maxStdinBytes = 64 << 20

func readAllLimited(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxStdinBytes))
}
