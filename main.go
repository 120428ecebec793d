package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/pthm-cable/streamfield/config"
	"github.com/pthm-cable/streamfield/render"
	"github.com/pthm-cable/streamfield/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 0, "RNG seed (nonzero overrides config)")
	out := flag.String("out", "", "Output PNG path (empty = img-<n>-<size>.png in the current directory)")
	outputDir := flag.String("output-dir", "", "Output directory for run stats CSV and config snapshot")
	workers := flag.Int("workers", 0, "Workers for integration and tone mapping (0 = use config)")

	flag.Parse()

	// Set up slog (JSON to stderr for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *workers > 0 {
		cfg.Render.Workers = *workers
	}

	img, stats := render.New(cfg).Render()

	path := *out
	if path == "" {
		path = autoName(cfg.Image.Size)
	}
	if err := writePNG(path, img); err != nil {
		slog.Error("failed to write image", "path", path, "error", err)
		os.Exit(1)
	}

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "dir", *outputDir, "error", err)
		os.Exit(1)
	}
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}
	if err := om.WriteRun(stats); err != nil {
		slog.Error("failed to write run stats", "error", err)
		os.Exit(1)
	}

	slog.Info("saved", "path", path, "seed", cfg.Seed, "total_sec", stats.TotalSec)
	fmt.Println(path)
}

// autoName numbers the output after the current directory's entry count,
// so repeated runs don't overwrite each other.
func autoName(size int) string {
	entries, err := os.ReadDir(".")
	if err != nil {
		return fmt.Sprintf("img-%d.png", size)
	}
	return fmt.Sprintf("img-%d-%d.png", len(entries), size)
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
