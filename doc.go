// Package html2pdf converts HTML documents to PDF using a pool of
// headless Chrome processes driven over the Chrome DevTools Protocol.
//
// # Quick Start
//
//	pool := html2pdf.NewPool(html2pdf.NewPoolConfig())
//	defer pool.Shutdown()
//
//	conv := html2pdf.NewConverter(pool)
//	pdf, err := conv.Convert(ctx, "<h1>Hello</h1>", html2pdf.DefaultPdfOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("out.pdf", pdf, 0644)
//
// # Pool Sizing
//
// A Pool launches browsers lazily, up to PoolConfig.MaxConnections, and
// evicts idle ones after PoolConfig.IdleTimeout — but never below
// MinConnections. Call PreWarm or EnsureMin after NewPool to populate it
// eagerly rather than paying launch latency on the first Convert call.
//
// # Process-Wide Pool
//
// Programs that only need one pool for their whole lifetime can use
// Shared instead of managing a Pool themselves:
//
//	pool := html2pdf.Shared(html2pdf.NewPoolConfig())
//	conv := html2pdf.NewConverter(pool)
//
// Shared installs a best-effort SIGINT/SIGTERM shutdown hook the first
// time it's called; longer-lived servers should prefer NewPool and their
// own signal handling.
//
// # Browser Discovery
//
// PoolConfig.ChromePath overrides automatic discovery. Left empty, the
// pool checks $CHROME_PATH, then a platform-specific list of well-known
// install locations, then the process PATH, in that order. See
// LocateBrowser.
package html2pdf
