package html2pdf

import (
	"testing"
)

func TestNewPoolConfig(t *testing.T) {
	cfg := NewPoolConfig()

	if cfg.MinConnections != DefaultMinConnections {
		t.Errorf("MinConnections = %d, want %d", cfg.MinConnections, DefaultMinConnections)
	}
	if cfg.MaxConnections != DefaultMaxConnections {
		t.Errorf("MaxConnections = %d, want %d", cfg.MaxConnections, DefaultMaxConnections)
	}
	if cfg.BasePort != DefaultBasePort {
		t.Errorf("BasePort = %d, want %d", cfg.BasePort, DefaultBasePort)
	}
	if cfg.IdleTimeout != DefaultIdleTimeout {
		t.Errorf("IdleTimeout = %v, want %v", cfg.IdleTimeout, DefaultIdleTimeout)
	}
}

func TestPoolConfig_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   PoolConfig
		want PoolConfig
	}{
		{
			name: "zero value gets every default",
			in:   PoolConfig{},
			want: NewPoolConfig(),
		},
		{
			name: "max below min is raised to min",
			in:   PoolConfig{MinConnections: 5, MaxConnections: 2},
			want: PoolConfig{
				MinConnections: 5,
				MaxConnections: 5,
				BasePort:       DefaultBasePort,
				IdleTimeout:    DefaultIdleTimeout,
				AcquireTimeout: DefaultAcquireTimeout,
				CommandTimeout: DefaultCommandTimeout,
			},
		},
		{
			name: "negative values are replaced, not clamped to zero",
			in:   PoolConfig{MinConnections: -1, BasePort: -1},
			want: NewPoolConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.withDefaults()
			if got != tt.want {
				t.Errorf("withDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultPdfOptions(t *testing.T) {
	opts := DefaultPdfOptions()

	if opts.PaperWidth != letterWidth || opts.PaperHeight != letterHeight {
		t.Errorf("paper = %vx%v, want US Letter %vx%v", opts.PaperWidth, opts.PaperHeight, letterWidth, letterHeight)
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground = false, want true")
	}
	if opts.Scale != 1.0 {
		t.Errorf("Scale = %v, want 1.0", opts.Scale)
	}
}

func TestPdfOptions_WithPageSize(t *testing.T) {
	tests := []struct {
		name       string
		size       string
		wantWidth  float64
		wantHeight float64
		wantErr    bool
	}{
		{"letter", "letter", letterWidth, letterHeight, false},
		{"A4 uppercase", "A4", a4Width, a4Height, false},
		{"legal mixed case", "Legal", legalWidth, legalHeight, false},
		{"tabloid", "tabloid", tabloidWidth, tabloidHeight, false},
		{"a3", "a3", a3Width, a3Height, false},
		{"a5", "A5", a5Width, a5Height, false},
		{"unknown", "poster", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := DefaultPdfOptions().WithPageSize(tt.size)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("WithPageSize(%q) error = nil, want error", tt.size)
				}
				return
			}
			if err != nil {
				t.Fatalf("WithPageSize(%q) error = %v", tt.size, err)
			}
			if opts.PaperWidth != tt.wantWidth || opts.PaperHeight != tt.wantHeight {
				t.Errorf("WithPageSize(%q) = %vx%v, want %vx%v", tt.size, opts.PaperWidth, opts.PaperHeight, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestPdfOptions_ToCDPParams(t *testing.T) {
	opts := DefaultPdfOptions()
	opts.PageRanges = "1-3"
	params := opts.toCDPParams()

	if params["landscape"] != false {
		t.Errorf("landscape = %v, want false", params["landscape"])
	}
	if params["pageRanges"] != "1-3" {
		t.Errorf("pageRanges = %v, want \"1-3\"", params["pageRanges"])
	}
	if _, ok := params["scale"]; !ok {
		t.Error("scale missing from params for default (1.0) scale")
	}
}

func TestPdfOptions_ToCDPParams_OmitsZeroScale(t *testing.T) {
	opts := PdfOptions{}
	params := opts.toCDPParams()

	if _, ok := params["scale"]; ok {
		t.Error("scale present in params for zero-value opts, want omitted")
	}
	if _, ok := params["paperWidth"]; ok {
		t.Error("paperWidth present in params for zero-value opts, want omitted")
	}
}
