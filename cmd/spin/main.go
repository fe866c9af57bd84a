// Command spin opens a window showing the reference scene: the unit cube's
// vertices projected as points, spinning at 60 frames per second. The window
// supplies the display surface and the per-frame callback; the core only
// fills the pixel buffer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/anatolicheban/3d-own-renderer/internal/device"
	"github.com/anatolicheban/3d-own-renderer/internal/frame"
	"github.com/anatolicheban/3d-own-renderer/internal/geom"
	"github.com/anatolicheban/3d-own-renderer/internal/scene"
)

type game struct {
	loop *frame.Loop
}

func (g *game) Update() error {
	g.loop.Advance()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	// The frame's writes are complete once Advance returned, so the hand-off
	// here never shows a torn frame.
	screen.WritePixels(g.loop.Device.Buffer())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.loop.Device.Width(), g.loop.Device.Height()
}

func main() {
	width := flag.Int("width", 640, "Buffer width in pixels")
	height := flag.Int("height", 480, "Buffer height in pixels")
	flag.Parse()

	dev := device.New(*width, *height)
	loop := &frame.Loop{
		Device: dev,
		Scene:  scene.Reference(),
		Tick:   frame.SpinTick(geom.Vec3{0.01, 0.01, 0}),
	}

	ebiten.SetWindowTitle("spin")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(&game{loop: loop}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
