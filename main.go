// Command planar evaluates a shape script and prints a JSON report of
// every shape's area, perimeter and signed distances at the given points.
//
// Usage:
//
//	planar -f shapes.planar -at 5,5 -at 0,0 [-raster 16] [-config planar.toml] [-v]
//
// The script is read from stdin when -f is absent.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/chazu/planar/pkg/engine"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals. It returns the exit code:
// 0 on success, 1 when the report carries errors, 2 on usage errors.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("planar", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		file       = fs.String("f", "", "shape script (default stdin)")
		configPath = fs.String("config", "", "TOML config file")
		raster     = fs.Int("raster", 0, "sample the composed scene on an N×N raster")
		timeout    = fs.Duration("timeout", 0, "evaluation time limit (default 5s)")
		verbose    = fs.Bool("v", false, "debug logging on stderr")
		points     pointList
	)
	fs.Var(&points, "at", "distance probe x,y (repeatable)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var cfg Config
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	if len(points) == 0 {
		for _, s := range cfg.Points {
			if err := points.Set(s); err != nil {
				fmt.Fprintf(stderr, "config: %v\n", err)
				return 2
			}
		}
	}
	if *raster == 0 {
		*raster = cfg.Raster
	}
	if *timeout == 0 {
		*timeout = cfg.Timeout.Duration
	}

	level := slog.LevelWarn
	if *verbose || cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	engine.SetLogger(logger)
	defer engine.SetLogger(nil)

	source, err := readSource(*file, stdin)
	if err != nil {
		logger.Error("read script", "err", err)
		return 2
	}

	start := time.Now()
	app := NewApp(engine.WithTimeout(*timeout))
	result := app.Evaluate(ctx, string(source), Query{Points: points, Raster: *raster})
	logger.Debug("report ready", "shapes", len(result.Shapes), "elapsed", time.Since(start))

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("write report", "err", err)
		return 1
	}

	if len(result.Errors) > 0 {
		return 1
	}
	return 0
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
