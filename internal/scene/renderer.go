// Package scene draws the bouncing, rotating cube.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/bouncecube/internal/logger"
	"github.com/Faultbox/bouncecube/internal/mesh"
)

// Config holds the animation and camera settings of the scene.
type Config struct {
	Camera Camera
	Rates  RotationRates

	// Bounce step per frame and half extents of the bounce box.
	StepX, StepY   float64
	BoundX, BoundY float64
}

// DefaultConfig returns the stock demo settings.
func DefaultConfig() Config {
	return Config{
		Camera: DefaultCamera(),
		Rates:  DefaultRotationRates(),
		StepX:  0.02,
		StepY:  0.02,
		BoundX: 8.5,
		BoundY: 3.5,
	}
}

// Renderer owns the bounce state and issues one indexed draw per frame.
// Device, surface, program and buffers are borrowed; the caller keeps
// ownership and must keep them alive while the renderer is in use.
type Renderer struct {
	cfg     Config
	device  Device
	surface Surface
	program ProgramInfo
	buffers Buffers
	bounce  *Bounce
}

// NewRenderer creates a renderer with a fresh bounce at the origin.
func NewRenderer(cfg Config, device Device, surface Surface, program ProgramInfo, buffers Buffers) *Renderer {
	return &Renderer{
		cfg:     cfg,
		device:  device,
		surface: surface,
		program: program,
		buffers: buffers,
		bounce:  NewBounce(cfg.StepX, cfg.StepY, cfg.BoundX, cfg.BoundY),
	}
}

// Bounce exposes the animation state, mainly for inspection.
func (r *Renderer) Bounce() *Bounce {
	return r.bounce
}

// Draw advances the bounce, updates the viewport and draws the cube rotated
// by angle radians. It returns the matrices uploaded for this frame.
func (r *Renderer) Draw(angle float64) Transforms {
	if fx, fy := r.bounce.Step(); fx || fy {
		x, y := r.bounce.Position()
		logger.Debug("bounce reflected",
			zap.Bool("x", fx),
			zap.Bool("y", fy),
			zap.Float64("pos_x", x),
			zap.Float64("pos_y", y),
		)
	}

	width, height := r.syncViewport()

	d := r.device
	d.Viewport(0, 0, width, height)
	d.ClearColor(0.0, 0.0, 0.0, 1.0)
	d.ClearDepth(1.0)
	d.EnableDepthTest(DepthLessEqual)
	d.Clear(ClearColorBit | ClearDepthBit)

	x, y := r.bounce.Position()
	tf, ok := ComputeTransforms(r.cfg.Camera, r.cfg.Rates, x, y, float32(angle), aspect(width, height))
	if !ok {
		logger.Warn("model-view matrix is singular", zap.Float64("angle", angle))
	}

	d.VertexAttrib(r.program.Attribs.VertexPosition, r.buffers.Position, mesh.PositionComponents)
	d.VertexAttrib(r.program.Attribs.VertexColor, r.buffers.Color, mesh.ColorComponents)
	d.VertexAttrib(r.program.Attribs.VertexNormal, r.buffers.Normal, mesh.NormalComponents)
	d.BindIndexBuffer(r.buffers.Indices)

	d.UseProgram(r.program.Program)
	d.UniformMatrix4(r.program.Uniforms.ProjectionMatrix, tf.Projection)
	d.UniformMatrix4(r.program.Uniforms.ModelViewMatrix, tf.ModelView)
	d.UniformMatrix4(r.program.Uniforms.NormalMatrix, tf.Normal)

	d.DrawElements(Triangles, mesh.CubeIndexCount, UnsignedShort, 0)

	return tf
}

// DrawFrame draws a frame and discards the transforms.
func (r *Renderer) DrawFrame(angle float64) {
	r.Draw(angle)
}

// syncViewport resizes the surface to the displayed size when they differ
// and returns the resulting surface size.
func (r *Renderer) syncViewport() (int, int) {
	dw, dh := r.surface.DisplaySize()
	w, h := r.surface.Size()
	if w != dw || h != dh {
		r.surface.SetSize(dw, dh)
		logger.Debug("surface resized",
			zap.Int("width", dw),
			zap.Int("height", dh),
		)
		return dw, dh
	}
	return w, h
}

// aspect returns width/height, or 1 for a collapsed surface such as a
// minimized window.
func aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
