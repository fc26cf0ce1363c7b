// Package config loads html2pdf.PoolConfig values from a properties-
// style key/value file or a YAML file, keyed by the same dotted names
// the rest of this system's configuration surface uses.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	html2pdf "github.com/alnah/html2pdf"
	"github.com/alnah/html2pdf/internal/yamlutil"
)

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Dotted property keys this package reads from a properties-style file.
const (
	KeyChromePath     = "html2pdf.chrome.path"
	KeyMinConnections = "html2pdf.pool.min-connections"
	KeyMaxConnections = "html2pdf.pool.max-connections"
	KeyBasePort       = "html2pdf.pool.base-port"
	KeyIdleTimeout    = "html2pdf.pool.idle-timeout-seconds"
)

// yamlConfig is the nested shape Load accepts from a .yaml/.yml file,
// carrying the same values as the dotted properties keys above.
type yamlConfig struct {
	Chrome struct {
		Path string `yaml:"path"`
	} `yaml:"chrome"`
	Pool struct {
		MinConnections     int `yaml:"min-connections"`
		MaxConnections     int `yaml:"max-connections"`
		BasePort           int `yaml:"base-port"`
		IdleTimeoutSeconds int `yaml:"idle-timeout-seconds"`
	} `yaml:"pool"`
}

// Load reads pool configuration from path, choosing the properties or
// YAML parser by file extension (.yaml/.yml vs. everything else). An
// empty path returns html2pdf.NewPoolConfig() unchanged — there is
// nothing to load. The returned config's ChromePath is only ever set
// here from the file; environment-variable and auto-discovery fallback
// happen downstream in html2pdf.LocateBrowser, not in this package.
func Load(path string) (html2pdf.PoolConfig, error) {
	cfg := html2pdf.NewPoolConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-provided
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = applyYAML(data, &cfg)
	default:
		err = applyProperties(data, &cfg)
	}
	return cfg, err
}

func applyProperties(data []byte, cfg *html2pdf.PoolConfig) error {
	values, err := ParseProperties(data)
	if err != nil {
		return err
	}

	if v, ok := values[KeyChromePath]; ok {
		cfg.ChromePath = v
	}
	if v, ok := values[KeyMinConnections]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrConfigParse, KeyMinConnections, err)
		}
		cfg.MinConnections = n
	}
	if v, ok := values[KeyMaxConnections]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrConfigParse, KeyMaxConnections, err)
		}
		cfg.MaxConnections = n
	}
	if v, ok := values[KeyBasePort]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrConfigParse, KeyBasePort, err)
		}
		cfg.BasePort = n
	}
	if v, ok := values[KeyIdleTimeout]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrConfigParse, KeyIdleTimeout, err)
		}
		cfg.IdleTimeout = time.Duration(n) * time.Second
	}
	return nil
}

func applyYAML(data []byte, cfg *html2pdf.PoolConfig) error {
	var y yamlConfig
	if err := yamlutil.UnmarshalStrict(data, &y); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if y.Chrome.Path != "" {
		cfg.ChromePath = y.Chrome.Path
	}
	if y.Pool.MinConnections != 0 {
		cfg.MinConnections = y.Pool.MinConnections
	}
	if y.Pool.MaxConnections != 0 {
		cfg.MaxConnections = y.Pool.MaxConnections
	}
	if y.Pool.BasePort != 0 {
		cfg.BasePort = y.Pool.BasePort
	}
	if y.Pool.IdleTimeoutSeconds != 0 {
		cfg.IdleTimeout = time.Duration(y.Pool.IdleTimeoutSeconds) * time.Second
	}
	return nil
}
