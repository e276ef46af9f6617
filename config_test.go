package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    r2.Vec
		wantErr bool
	}{
		{"5,5", r2.Vec{X: 5, Y: 5}, false},
		{" -1.5 , 2e1 ", r2.Vec{X: -1.5, Y: 20}, false},
		{"5", r2.Vec{}, true},
		{"x,1", r2.Vec{}, true},
		{"1,y", r2.Vec{}, true},
	}
	for _, tt := range tests {
		got, err := parsePoint(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePoint(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPointList(t *testing.T) {
	var p pointList
	for _, s := range []string{"1,2", "3,4"} {
		if err := p.Set(s); err != nil {
			t.Fatalf("Set(%q): %v", s, err)
		}
	}
	if len(p) != 2 || p[1] != (r2.Vec{X: 3, Y: 4}) {
		t.Errorf("points = %v", p)
	}
	if got := p.String(); got != "1,2 3,4" {
		t.Errorf("String = %q", got)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planar.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("examples/planar.toml")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Timeout.Duration != 2*time.Second {
		t.Errorf("Timeout = %v, want 2s", cfg.Timeout.Duration)
	}
	if cfg.Raster != 8 {
		t.Errorf("Raster = %d, want 8", cfg.Raster)
	}
	if len(cfg.Points) != 2 || cfg.Points[1] != "-10,0" {
		t.Errorf("Points = %v", cfg.Points)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "rastr = 4\n", "unknown keys rastr"},
		{"bad duration", "timeout = \"soon\"\n", "timeout"},
		{"bad syntax", "raster = \n", "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
