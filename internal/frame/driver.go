// Package frame drives the scene once per display refresh.
package frame

import (
	"go.uber.org/zap"

	"github.com/Faultbox/bouncecube/internal/logger"
)

// Ticker receives one call per frame with an absolute, monotonically
// increasing timestamp in seconds.
type Ticker interface {
	Tick(now float64)
}

// Drawer draws one frame with the given rotation angle in radians.
// *scene.Renderer satisfies it.
type Drawer interface {
	DrawFrame(angle float64)
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(angle float64)

// DrawFrame calls f(angle).
func (f DrawerFunc) DrawFrame(angle float64) { f(angle) }

// Stats summarizes the frames seen so far.
type Stats struct {
	Frames    uint64
	LastDelta float64
	Rotation  float64
}

// Driver turns timestamps into rotation angles and draws one frame per tick.
//
// The previous timestamp starts at zero, so the first delta equals the
// first timestamp.
type Driver struct {
	drawer   Drawer
	previous float64
	rotation float64
	frames   uint64
	delta    float64

	logFPS    bool
	fpsStart  float64
	fpsFrames int
}

// NewDriver creates a driver for drawer. When logFPS is set, the frame rate
// is logged at debug level once per second of timestamps.
func NewDriver(drawer Drawer, logFPS bool) *Driver {
	return &Driver{drawer: drawer, logFPS: logFPS}
}

// Tick draws a frame with the rotation accumulated so far, then adds the
// elapsed time since the previous tick to the rotation.
func (d *Driver) Tick(now float64) {
	d.delta = now - d.previous
	d.previous = now

	d.drawer.DrawFrame(d.rotation)
	d.rotation += d.delta
	d.frames++

	if d.logFPS {
		d.countFPS(now)
	}
}

func (d *Driver) countFPS(now float64) {
	d.fpsFrames++
	if elapsed := now - d.fpsStart; elapsed >= 1 {
		logger.Debug("fps",
			zap.Float64("fps", float64(d.fpsFrames)/elapsed),
			zap.Float64("dt_ms", d.delta*1000),
		)
		d.fpsFrames = 0
		d.fpsStart = now
	}
}

// Stats returns the frame count, last delta and current rotation.
func (d *Driver) Stats() Stats {
	return Stats{
		Frames:    d.frames,
		LastDelta: d.delta,
		Rotation:  d.rotation,
	}
}
