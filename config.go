package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/gonum/spatial/r2"
)

// Config holds host program settings. Values come from an optional TOML
// file and are overridden by command-line flags; any -at flag replaces the
// configured points.
type Config struct {
	Timeout duration `toml:"timeout"` // per-evaluation limit, e.g. "2s"
	Raster  int      `toml:"raster"`
	Points  []string `toml:"points"` // "x,y"
	Verbose bool     `toml:"verbose"`
}

// duration decodes TOML strings such as "1500ms".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	d.Duration = v
	return nil
}

// LoadConfig reads a TOML config file. Unknown keys are an error so that
// typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (r2.Vec, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return r2.Vec{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("point %q: x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("point %q: y: %w", s, err)
	}
	return r2.Vec{X: x, Y: y}, nil
}

// pointList is a repeatable -at flag.
type pointList []r2.Vec

func (p *pointList) String() string {
	parts := make([]string, len(*p))
	for i, v := range *p {
		parts[i] = fmt.Sprintf("%g,%g", v.X, v.Y)
	}
	return strings.Join(parts, " ")
}

func (p *pointList) Set(s string) error {
	v, err := parsePoint(s)
	if err != nil {
		return err
	}
	*p = append(*p, v)
	return nil
}
