// Package frame drives one synchronous frame at a time: clear, mutate the
// scene, render. Scheduling belongs to an external collaborator (a
// display-refresh callback); presentation is the caller's step after Advance
// returns, so no partially written frame is ever visible.
package frame

import (
	"github.com/anatolicheban/3d-own-renderer/internal/device"
	"github.com/anatolicheban/3d-own-renderer/internal/geom"
	"github.com/anatolicheban/3d-own-renderer/internal/scene"
)

// Loop binds a device to a scene and an optional per-frame mutation.
type Loop struct {
	Device *device.Device
	Scene  *scene.Scene

	// Tick mutates the scene before rendering. Nil means a static scene.
	Tick func(*scene.Scene)
}

// Advance runs one frame: clear the buffer, tick the scene, render it.
func (l *Loop) Advance() {
	l.Device.Clear()
	if l.Tick != nil {
		l.Tick(l.Scene)
	}
	l.Device.RenderScene(l.Scene)
}

// SpinTick returns the reference mutation: every mesh's rotation grows by
// step each frame.
func SpinTick(step geom.Vec3) func(*scene.Scene) {
	return func(s *scene.Scene) {
		for _, m := range s.Meshes {
			m.Rotation = m.Rotation.Add(step)
		}
	}
}
