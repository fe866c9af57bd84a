package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/anatolicheban/3d-own-renderer/internal/batch"
	"github.com/anatolicheban/3d-own-renderer/internal/config"
	"github.com/anatolicheban/3d-own-renderer/internal/export"
	"github.com/anatolicheban/3d-own-renderer/internal/geom"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Frame format: webp, tga, bmp or png (default: webp)")
	width := flag.Int("width", 0, "Frame width in pixels (default: 640)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 480)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 100)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Format:    *format,
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		Workers:   *workers,
	})

	fmtParsed, err := export.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Spinning cube point renderer")
	fmt.Printf("Frames: %d at %dx%d (%s), Workers: %d\n",
		cfg.Frames, cfg.Width, cfg.Height, cfg.Format, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      fmtParsed,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Frames:      cfg.Frames,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		FOV:         cfg.FOV,
		Near:        cfg.Near,
		Far:         cfg.Far,
		Step:        geom.Vec3{cfg.Step[0], cfg.Step[1], cfg.Step[2]},
	}

	results := batch.Run(batchCfg)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, cfg.Frames)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batchCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
