// Package batch renders an animation sequence to numbered frame files using
// a worker pool. Frames are independent (frame i carries rotation i·step), so
// they parallelize without shared state: every worker owns a private device
// and scene, keeping each pixel buffer single-writer.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/anatolicheban/3d-own-renderer/internal/device"
	"github.com/anatolicheban/3d-own-renderer/internal/export"
	"github.com/anatolicheban/3d-own-renderer/internal/geom"
	"github.com/anatolicheban/3d-own-renderer/internal/scene"
)

// Config holds all shared settings for a sequence run.
type Config struct {
	OutputDir   string
	Format      export.Format
	Width       int
	Height      int
	Frames      int
	Supersample int
	Workers     int
	FOV         float64
	Near        float64
	Far         float64
	Step        geom.Vec3 // per-frame rotation increment
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Image   string
	Success bool
	Error   string
}

// Run renders all frames using a worker pool and returns one Result per
// frame, indexed by frame number.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dev := newDevice(cfg)
			s := scene.Reference()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, dev, s, idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func newDevice(cfg Config) *device.Device {
	dev := device.New(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample)
	dev.FOV = cfg.FOV
	dev.Near = cfg.Near
	dev.Far = cfg.Far
	return dev
}

// renderFrame draws frame idx into the worker's device and writes it out.
// Rotation is absolute (idx·step) so frames stay deterministic regardless of
// the order workers pick them up.
func renderFrame(cfg Config, dev *device.Device, s *scene.Scene, idx int) Result {
	name := fmt.Sprintf("%04d.%s", idx, cfg.Format.Ext())

	for _, m := range s.Meshes {
		m.Rotation = cfg.Step.Scale(float64(idx))
	}

	dev.Clear()
	dev.RenderScene(s)

	img := dev.Snapshot()
	if cfg.Supersample > 1 {
		img = export.Downsample(img, cfg.Width, cfg.Height)
	}

	outPath := filepath.Join(cfg.OutputDir, name)
	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: idx, Image: name, Error: err.Error()}
	}
	defer f.Close()

	if err := export.Encode(f, img, cfg.Format); err != nil {
		return Result{Frame: idx, Image: name, Error: fmt.Sprintf("encode: %v", err)}
	}

	return Result{Frame: idx, Image: name, Success: true}
}
