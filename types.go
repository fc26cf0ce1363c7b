package html2pdf

import (
	"fmt"
	"strings"
	"time"
)

// Pool sizing and timing defaults. DefaultBasePort mirrors Chrome's
// conventional debugging port so a fresh PoolConfig behaves the way an
// operator typing "chrome --remote-debugging-port=9222" would expect.
const (
	DefaultMinConnections  = 1
	DefaultMaxConnections  = 4
	DefaultBasePort        = 9222
	DefaultIdleTimeout     = 5 * time.Minute
	DefaultAcquireTimeout  = 30 * time.Second
	DefaultCommandTimeout  = 30 * time.Second
	DefaultNavigationDelay = 3 * time.Second
	DefaultLaunchGrace     = 1 * time.Second
	DefaultCloseTimeout    = 5 * time.Second
	portProbeRange         = 100
)

// PoolConfig configures a Pool. NewPoolConfig returns one with every
// field at the defaults above; a PoolConfig literal may also be passed to
// NewPool directly, which replaces its zero or negative fields with those
// defaults.
type PoolConfig struct {
	// ChromePath overrides automatic browser discovery. Empty means fall
	// through the rest of the precedence chain (see LocateBrowser).
	ChromePath string

	// MinConnections is the number of sessions the pool pre-warms and
	// never evicts below.
	MinConnections int

	// MaxConnections is the hard cap on concurrently live sessions.
	MaxConnections int

	// BasePort is the first debugging port tried for a new browser. If it
	// is already bound, the launcher probes upward.
	BasePort int

	// IdleTimeout is how long an idle session may sit before the eviction
	// ticker closes it, so long as doing so would not drop total below
	// MinConnections.
	IdleTimeout time.Duration

	// AcquireTimeout bounds how long Acquire waits for a session when the
	// caller's context is nil or carries no deadline of its own.
	AcquireTimeout time.Duration

	// CommandTimeout bounds how long a single CDP command waits for its
	// response.
	CommandTimeout time.Duration
}

// NewPoolConfig returns a PoolConfig with every field set to its default
// (ChromePath stays empty, meaning auto-discovery).
func NewPoolConfig() PoolConfig {
	return PoolConfig{
		MinConnections: DefaultMinConnections,
		MaxConnections: DefaultMaxConnections,
		BasePort:       DefaultBasePort,
		IdleTimeout:    DefaultIdleTimeout,
		AcquireTimeout: DefaultAcquireTimeout,
		CommandTimeout: DefaultCommandTimeout,
	}
}

// withDefaults fills zero fields of cfg with package defaults and clamps
// obviously invalid values, so callers that build a PoolConfig literal by
// hand (rather than via NewPoolConfig) still get a workable pool.
func (cfg PoolConfig) withDefaults() PoolConfig {
	if cfg.MinConnections <= 0 {
		cfg.MinConnections = DefaultMinConnections
	}
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = DefaultMaxConnections
	}
	if cfg.MaxConnections < cfg.MinConnections {
		cfg.MaxConnections = cfg.MinConnections
	}
	if cfg.BasePort <= 0 {
		cfg.BasePort = DefaultBasePort
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.AcquireTimeout <= 0 {
		cfg.AcquireTimeout = DefaultAcquireTimeout
	}
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = DefaultCommandTimeout
	}
	return cfg
}

// PoolStats is a read-only snapshot of a Pool's bookkeeping, useful for
// health endpoints and tests.
type PoolStats struct {
	Total   int
	Active  int
	Idle    int
	Waiting int
}

// PdfOptions mirrors Page.printToPDF's parameters. The zero value is not
// directly usable for paper dimensions (PaperWidth/PaperHeight default to
// 0), so conversions should start from DefaultPdfOptions and override
// individual fields.
type PdfOptions struct {
	Landscape         bool
	PrintBackground   bool
	Scale             float64
	PaperWidth        float64 // inches
	PaperHeight       float64 // inches
	MarginTop         float64 // inches
	MarginBottom      float64 // inches
	MarginLeft        float64 // inches
	MarginRight       float64 // inches
	PageRanges        string // e.g. "1-5, 8, 11-13"; empty means all pages
	PreferCSSPageSize bool
}

// Named paper sizes in inches. Letter is also Chrome's own printToPDF
// default.
const (
	letterWidth, letterHeight   = 8.5, 11.0
	a4Width, a4Height           = 8.27, 11.69
	legalWidth, legalHeight     = 8.5, 14.0
	tabloidWidth, tabloidHeight = 11.0, 17.0
	a3Width, a3Height           = 11.69, 16.54
	a5Width, a5Height           = 5.83, 8.27
)

// DefaultPdfOptions returns US Letter, portrait, scale 1.0, 0.4-inch
// margins on every side, with background graphics printed.
func DefaultPdfOptions() PdfOptions {
	return PdfOptions{
		PrintBackground: true,
		Scale:           1.0,
		PaperWidth:      letterWidth,
		PaperHeight:     letterHeight,
		MarginTop:       0.4,
		MarginBottom:    0.4,
		MarginLeft:      0.4,
		MarginRight:     0.4,
	}
}

// WithPageSize returns a copy of opts with paper dimensions set from a
// named size ("letter", "a4", "legal", "tabloid", "a3", "a5",
// case-insensitive; an empty name means letter).
func (opts PdfOptions) WithPageSize(name string) (PdfOptions, error) {
	switch strings.ToLower(name) {
	case "letter", "":
		opts.PaperWidth, opts.PaperHeight = letterWidth, letterHeight
	case "a4":
		opts.PaperWidth, opts.PaperHeight = a4Width, a4Height
	case "legal":
		opts.PaperWidth, opts.PaperHeight = legalWidth, legalHeight
	case "tabloid":
		opts.PaperWidth, opts.PaperHeight = tabloidWidth, tabloidHeight
	case "a3":
		opts.PaperWidth, opts.PaperHeight = a3Width, a3Height
	case "a5":
		opts.PaperWidth, opts.PaperHeight = a5Width, a5Height
	default:
		return opts, fmt.Errorf("html2pdf: unknown page size %q", name)
	}
	return opts, nil
}

// toCDPParams converts opts to the JSON parameter object printToPDF
// expects.
func (opts PdfOptions) toCDPParams() map[string]any {
	params := map[string]any{
		"landscape":         opts.Landscape,
		"printBackground":   opts.PrintBackground,
		"preferCSSPageSize": opts.PreferCSSPageSize,
		"marginTop":         opts.MarginTop,
		"marginBottom":      opts.MarginBottom,
		"marginLeft":        opts.MarginLeft,
		"marginRight":       opts.MarginRight,
	}
	if opts.Scale > 0 {
		params["scale"] = opts.Scale
	}
	if opts.PaperWidth > 0 {
		params["paperWidth"] = opts.PaperWidth
	}
	if opts.PaperHeight > 0 {
		params["paperHeight"] = opts.PaperHeight
	}
	if opts.PageRanges != "" {
		params["pageRanges"] = opts.PageRanges
	}
	return params
}
