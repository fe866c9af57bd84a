package batch

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/anatolicheban/3d-own-renderer/internal/export"
	"github.com/anatolicheban/3d-own-renderer/internal/geom"
)

func testConfig(dir string) Config {
	return Config{
		OutputDir:   dir,
		Format:      export.PNG,
		Width:       64,
		Height:      48,
		Frames:      4,
		Supersample: 1,
		Workers:     2,
		FOV:         0.78,
		Near:        0.01,
		Far:         1.0,
		Step:        geom.Vec3{0.01, 0.01, 0},
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	results := Run(cfg)
	if len(results) != cfg.Frames {
		t.Fatalf("got %d results, want %d", len(results), cfg.Frames)
	}

	for i, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", i, r.Error)
		}
		if r.Frame != i {
			t.Errorf("result %d reports frame %d", i, r.Frame)
		}

		path := filepath.Join(dir, r.Image)
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("frame file missing: %v", err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("frame %d not decodable: %v", i, err)
		}
		if img.Bounds().Dx() != cfg.Width || img.Bounds().Dy() != cfg.Height {
			t.Errorf("frame %d size = %v", i, img.Bounds())
		}
	}
}

func TestRunSupersampled(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Frames = 1
	cfg.Supersample = 2

	results := Run(cfg)
	if !results[0].Success {
		t.Fatalf("frame failed: %s", results[0].Error)
	}

	f, err := os.Open(filepath.Join(dir, results[0].Image))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	// Downsampled back to the configured size.
	if img.Bounds().Dx() != cfg.Width || img.Bounds().Dy() != cfg.Height {
		t.Errorf("supersampled frame size = %v, want %dx%d", img.Bounds(), cfg.Width, cfg.Height)
	}
}

func TestRunReportsEncodeFailures(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "nested")
	cfg := testConfig(dir) // output dir never created
	cfg.Frames = 2

	results := Run(cfg)
	for _, r := range results {
		if r.Success {
			t.Error("expected failure when the output directory does not exist")
		}
		if r.Error == "" {
			t.Error("failed result carries no error text")
		}
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	results := Run(cfg)
	path := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(path, cfg, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest not valid JSON: %v", err)
	}
	if len(entries) != cfg.Frames {
		t.Fatalf("manifest has %d entries, want %d", len(entries), cfg.Frames)
	}

	last := entries[cfg.Frames-1]
	if last.Frame != cfg.Frames-1 || last.Image != results[cfg.Frames-1].Image {
		t.Errorf("last entry = %+v", last)
	}
	wantRot := cfg.Step.Scale(float64(cfg.Frames - 1))
	if last.Rotation != ([3]float64{wantRot[0], wantRot[1], wantRot[2]}) {
		t.Errorf("last rotation = %v, want %v", last.Rotation, wantRot)
	}
}
