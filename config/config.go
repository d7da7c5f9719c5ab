// Package config handles astbin.toml configuration.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/BurntSushi/toml"

	"github.com/chazu/astbin/astbin"
	"github.com/chazu/astbin/estree"
)

// FileName is the configuration file looked up by Load and FindAndLoad.
const FileName = "astbin.toml"

//go:embed schema.cue
var schemaSource string

// Config represents an astbin.toml file.
type Config struct {
	Encode Encode `toml:"encode" json:"encode"`
	Input  Input  `toml:"input" json:"input"`
	Output Output `toml:"output" json:"output"`
	Cache  Cache  `toml:"cache" json:"cache"`
	Run    Run    `toml:"run" json:"run"`

	// Dir is the directory containing the astbin.toml file (set at load time).
	Dir string `toml:"-" json:"-"`
}

// Encode configures the encoder.
type Encode struct {
	Spans       string `toml:"spans" json:"spans"`
	Unsupported string `toml:"unsupported" json:"unsupported"`
}

// Input configures how ESTree documents are read.
type Input struct {
	SourceType string `toml:"source-type" json:"source-type"`
}

// Output configures where buffers are written.
type Output struct {
	Dir    string `toml:"dir" json:"dir"`
	Bundle string `toml:"bundle" json:"bundle"`
}

// Cache configures the encode cache. An empty path disables it.
type Cache struct {
	Path string `toml:"path" json:"path"`
}

// Run configures the command line driver.
type Run struct {
	Jobs int `toml:"jobs" json:"jobs"`
}

// Default returns the configuration used when no astbin.toml exists.
func Default() *Config {
	return &Config{
		Encode: Encode{Spans: "source", Unsupported: "marker"},
		Input:  Input{SourceType: "auto"},
	}
}

// Load parses an astbin.toml file from the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses the configuration file at path. Relative paths in the
// file are resolved against its directory.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML over the defaults and validates the result. Keys
// the file does not set keep their default values.
func Parse(data []byte) (*Config, error) {
	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find an astbin.toml file,
// then loads and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Validate checks c against the embedded CUE schema.
func (c *Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("config schema: %w", err)
	}
	v := schema.LookupPath(cue.ParsePath("#Config")).Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// EncoderOptions maps the [encode] section to encoder options.
func (c *Config) EncoderOptions() (astbin.Options, error) {
	var opts astbin.Options
	switch c.Encode.Spans {
	case "", "source":
		opts.Spans = astbin.SpanSource
	case "zero":
		opts.Spans = astbin.SpanZero
	default:
		return opts, fmt.Errorf("unknown span mode %q", c.Encode.Spans)
	}
	switch c.Encode.Unsupported {
	case "", "marker":
		opts.Unsupported = astbin.UnsupportedMarker
	case "reject":
		opts.Unsupported = astbin.UnsupportedReject
	default:
		return opts, fmt.Errorf("unknown unsupported policy %q", c.Encode.Unsupported)
	}
	return opts, nil
}

// ParseOptions maps the [input] section to loader options.
func (c *Config) ParseOptions() (estree.Options, error) {
	st, err := estree.ParseSourceType(c.Input.SourceType)
	if err != nil {
		return estree.Options{}, err
	}
	return estree.Options{SourceType: st}, nil
}

// Resolve returns path relative to the config directory. Absolute and
// empty paths are returned unchanged.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Dir == "" {
		return path
	}
	return filepath.Join(c.Dir, path)
}
