// Package gldevice implements the scene device on desktop OpenGL 4.1 core.
package gldevice

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bouncecube/internal/logger"
	"github.com/Faultbox/bouncecube/internal/mesh"
	"github.com/Faultbox/bouncecube/internal/scene"
	"github.com/Faultbox/bouncecube/pkg/math"
)

// Device issues scene commands to the current OpenGL context.
// IMPORTANT: Must be created AFTER the OpenGL context exists and used on the
// thread that owns it.
type Device struct {
	// Core profile refuses attribute setup without a bound VAO, so one is
	// bound for the device's whole lifetime.
	vao     uint32
	buffers []uint32
}

// New loads the OpenGL entry points and binds the device's VAO.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	d := &Device{}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	return d, nil
}

// Close releases every buffer uploaded through the device and its VAO.
func (d *Device) Close() {
	logger.Info("closing GL device", zap.Int("buffers", len(d.buffers)))
	if len(d.buffers) > 0 {
		gl.DeleteBuffers(int32(len(d.buffers)), &d.buffers[0])
		d.buffers = nil
	}
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

// UploadMesh copies the mesh streams into static GPU buffers.
func (d *Device) UploadMesh(m mesh.Data) (scene.Buffers, error) {
	if err := m.Validate(); err != nil {
		return scene.Buffers{}, fmt.Errorf("invalid mesh: %w", err)
	}

	bufs := scene.Buffers{
		Position: d.uploadFloats(m.Positions),
		Color:    d.uploadFloats(m.Colors),
		Normal:   d.uploadFloats(m.Normals),
		Indices:  d.uploadIndices(m.Indices),
	}

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		return scene.Buffers{}, fmt.Errorf("uploading mesh: GL error 0x%x", errCode)
	}

	logger.Debug("mesh uploaded",
		zap.Int("vertices", m.VertexCount()),
		zap.Int("indices", len(m.Indices)),
	)
	return bufs, nil
}

func (d *Device) uploadFloats(data []float32) scene.Buffer {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	d.buffers = append(d.buffers, buf)
	return scene.Buffer(buf)
}

func (d *Device) uploadIndices(data []uint16) scene.Buffer {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*2, gl.Ptr(data), gl.STATIC_DRAW)
	d.buffers = append(d.buffers, buf)
	return scene.Buffer(buf)
}

// DeleteProgram releases a program built for this device.
func (d *Device) DeleteProgram(p scene.Program) {
	gl.DeleteProgram(uint32(p))
}

// ReadPixels returns the RGBA contents of the current framebuffer,
// bottom row first.
func (d *Device) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) ClearDepth(depth float32) {
	gl.ClearDepth(float64(depth))
}

func (d *Device) EnableDepthTest(fn scene.DepthFunc) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(depthFunc(fn))
}

func (d *Device) Clear(mask scene.ClearMask) {
	gl.Clear(clearBits(mask))
}

func (d *Device) VertexAttrib(loc scene.AttribLocation, buf scene.Buffer, components int) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	gl.VertexAttribPointerWithOffset(uint32(loc), int32(components), gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(uint32(loc))
}

func (d *Device) BindIndexBuffer(buf scene.Buffer) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(buf))
}

func (d *Device) UseProgram(p scene.Program) {
	gl.UseProgram(uint32(p))
}

func (d *Device) UniformMatrix4(loc scene.UniformLocation, m math.Mat4) {
	gl.UniformMatrix4fv(int32(loc), 1, false, m.Ptr())
}

func (d *Device) DrawElements(mode scene.Primitive, count int, typ scene.IndexType, offset int) {
	gl.DrawElementsWithOffset(primitive(mode), int32(count), indexType(typ), uintptr(offset))
}

func depthFunc(fn scene.DepthFunc) uint32 {
	switch fn {
	case scene.DepthLessEqual:
		return gl.LEQUAL
	default:
		return gl.LESS
	}
}

func clearBits(mask scene.ClearMask) uint32 {
	var bits uint32
	if mask&scene.ClearColorBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&scene.ClearDepthBit != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	return bits
}

func primitive(p scene.Primitive) uint32 {
	switch p {
	case scene.Triangles:
		return gl.TRIANGLES
	default:
		panic(fmt.Sprintf("gldevice: unsupported primitive %d", p))
	}
}

func indexType(t scene.IndexType) uint32 {
	switch t {
	case scene.UnsignedShort:
		return gl.UNSIGNED_SHORT
	default:
		panic(fmt.Sprintf("gldevice: unsupported index type %d", t))
	}
}

var _ scene.Device = (*Device)(nil)
