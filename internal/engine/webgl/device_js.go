//go:build js && wasm

package webgl

import (
	"errors"
	"fmt"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/Faultbox/bouncecube/internal/logger"
	"github.com/Faultbox/bouncecube/internal/mesh"
	"github.com/Faultbox/bouncecube/internal/scene"
	"github.com/Faultbox/bouncecube/pkg/math"
)

// ErrUnavailable is returned when the canvas has no WebGL context.
var ErrUnavailable = errors.New("unable to initialize WebGL, your browser or machine may not support it")

type glConsts struct {
	arrayBuffer        js.Value
	elementArrayBuffer js.Value
	staticDraw         js.Value
	float              js.Value
	unsignedShort      js.Value
	triangles          js.Value
	vertexShader       js.Value
	fragmentShader     js.Value
	compileStatus      js.Value
	linkStatus         js.Value
	depthTest          js.Value
	less               js.Value
	lequal             js.Value
	colorBufferBit     int
	depthBufferBit     int
}

// Device draws through a canvas WebGL 1 context. Buffers, programs and
// uniform locations are JS objects; the device hands out small integer
// handles for them.
type Device struct {
	canvas js.Value
	gl     js.Value
	c      glConsts

	objects  []js.Value
	uniforms []js.Value

	matrix      js.Value // Float32Array(16)
	matrixBytes js.Value // Uint8Array over matrix
}

// New finds the canvas matching selector and opens a "webgl" context on it.
func New(selector string) (*Device, error) {
	doc := js.Global().Get("document")
	canvas := doc.Call("querySelector", selector)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("canvas %q not found", selector)
	}

	gl := canvas.Call("getContext", "webgl")
	if gl.IsNull() || gl.IsUndefined() {
		return nil, ErrUnavailable
	}

	matrix := js.Global().Get("Float32Array").New(16)
	d := &Device{
		canvas: canvas,
		gl:     gl,
		c: glConsts{
			arrayBuffer:        gl.Get("ARRAY_BUFFER"),
			elementArrayBuffer: gl.Get("ELEMENT_ARRAY_BUFFER"),
			staticDraw:         gl.Get("STATIC_DRAW"),
			float:              gl.Get("FLOAT"),
			unsignedShort:      gl.Get("UNSIGNED_SHORT"),
			triangles:          gl.Get("TRIANGLES"),
			vertexShader:       gl.Get("VERTEX_SHADER"),
			fragmentShader:     gl.Get("FRAGMENT_SHADER"),
			compileStatus:      gl.Get("COMPILE_STATUS"),
			linkStatus:         gl.Get("LINK_STATUS"),
			depthTest:          gl.Get("DEPTH_TEST"),
			less:               gl.Get("LESS"),
			lequal:             gl.Get("LEQUAL"),
			colorBufferBit:     gl.Get("COLOR_BUFFER_BIT").Int(),
			depthBufferBit:     gl.Get("DEPTH_BUFFER_BIT").Int(),
		},
		// handle 0 stays reserved for "no object"
		objects:     []js.Value{js.Null()},
		matrix:      matrix,
		matrixBytes: js.Global().Get("Uint8Array").New(matrix.Get("buffer")),
	}

	logger.Info("WebGL context created",
		zap.String("version", gl.Call("getParameter", gl.Get("VERSION")).String()),
		zap.String("glsl", gl.Call("getParameter", gl.Get("SHADING_LANGUAGE_VERSION")).String()),
	)
	return d, nil
}

func (d *Device) handle(v js.Value) uint32 {
	d.objects = append(d.objects, v)
	return uint32(len(d.objects) - 1)
}

func (d *Device) object(h uint32) js.Value {
	if int(h) >= len(d.objects) {
		return js.Null()
	}
	return d.objects[h]
}

// BuildProgram compiles and links a program and resolves every location the
// renderer needs.
func (d *Device) BuildProgram(vertexSrc, fragmentSrc string) (scene.ProgramInfo, error) {
	vs, err := d.compileShader(d.c.vertexShader, vertexSrc)
	if err != nil {
		return scene.ProgramInfo{}, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := d.compileShader(d.c.fragmentShader, fragmentSrc)
	if err != nil {
		d.gl.Call("deleteShader", vs)
		return scene.ProgramInfo{}, fmt.Errorf("fragment shader: %w", err)
	}

	program := d.gl.Call("createProgram")
	d.gl.Call("attachShader", program, vs)
	d.gl.Call("attachShader", program, fs)
	d.gl.Call("linkProgram", program)
	d.gl.Call("deleteShader", vs)
	d.gl.Call("deleteShader", fs)

	if !d.gl.Call("getProgramParameter", program, d.c.linkStatus).Bool() {
		log := d.gl.Call("getProgramInfoLog", program).String()
		d.gl.Call("deleteProgram", program)
		return scene.ProgramInfo{}, fmt.Errorf("unable to initialize the shader program: %s", log)
	}

	// Uniforms join the table only once every lookup succeeds.
	var pending []js.Value
	attribs, uniforms, err := resolveLocations(
		func(name string) int {
			return d.gl.Call("getAttribLocation", program, name).Int()
		},
		func(name string) (scene.UniformLocation, bool) {
			loc := d.gl.Call("getUniformLocation", program, name)
			if loc.IsNull() {
				return 0, false
			}
			pending = append(pending, loc)
			return scene.UniformLocation(len(d.uniforms) + len(pending) - 1), true
		},
	)
	if err != nil {
		d.gl.Call("deleteProgram", program)
		return scene.ProgramInfo{}, err
	}
	d.uniforms = append(d.uniforms, pending...)

	return scene.ProgramInfo{
		Program:  scene.Program(d.handle(program)),
		Attribs:  attribs,
		Uniforms: uniforms,
	}, nil
}

func (d *Device) compileShader(typ js.Value, source string) (js.Value, error) {
	shader := d.gl.Call("createShader", typ)
	d.gl.Call("shaderSource", shader, source)
	d.gl.Call("compileShader", shader)

	if !d.gl.Call("getShaderParameter", shader, d.c.compileStatus).Bool() {
		log := d.gl.Call("getShaderInfoLog", shader).String()
		d.gl.Call("deleteShader", shader)
		return js.Null(), fmt.Errorf("an error occurred compiling the shaders: %s", log)
	}
	return shader, nil
}

// UploadMesh stores the mesh in static GPU buffers.
func (d *Device) UploadMesh(m mesh.Data) (scene.Buffers, error) {
	if err := m.Validate(); err != nil {
		return scene.Buffers{}, err
	}
	return scene.Buffers{
		Position: scene.Buffer(d.upload(d.c.arrayBuffer, "Float32Array", float32Bytes(m.Positions))),
		Color:    scene.Buffer(d.upload(d.c.arrayBuffer, "Float32Array", float32Bytes(m.Colors))),
		Normal:   scene.Buffer(d.upload(d.c.arrayBuffer, "Float32Array", float32Bytes(m.Normals))),
		Indices:  scene.Buffer(d.upload(d.c.elementArrayBuffer, "Uint16Array", uint16Bytes(m.Indices))),
	}, nil
}

func (d *Device) upload(target js.Value, arrayType string, data []byte) uint32 {
	raw := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(raw, data)
	typed := js.Global().Get(arrayType).New(raw.Get("buffer"))

	buf := d.gl.Call("createBuffer")
	d.gl.Call("bindBuffer", target, buf)
	d.gl.Call("bufferData", target, typed, d.c.staticDraw)
	return d.handle(buf)
}

// DisplaySize is the canvas size in CSS pixels.
func (d *Device) DisplaySize() (int, int) {
	return d.canvas.Get("clientWidth").Int(), d.canvas.Get("clientHeight").Int()
}

// Size is the canvas drawing buffer size.
func (d *Device) Size() (int, int) {
	return d.canvas.Get("width").Int(), d.canvas.Get("height").Int()
}

// SetSize resizes the drawing buffer.
func (d *Device) SetSize(width, height int) {
	d.canvas.Set("width", width)
	d.canvas.Set("height", height)
}

func (d *Device) Viewport(x, y, width, height int) {
	d.gl.Call("viewport", x, y, width, height)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.gl.Call("clearColor", r, g, b, a)
}

func (d *Device) ClearDepth(depth float32) {
	d.gl.Call("clearDepth", depth)
}

func (d *Device) EnableDepthTest(fn scene.DepthFunc) {
	d.gl.Call("enable", d.c.depthTest)
	if fn == scene.DepthLess {
		d.gl.Call("depthFunc", d.c.less)
		return
	}
	d.gl.Call("depthFunc", d.c.lequal)
}

func (d *Device) Clear(mask scene.ClearMask) {
	bits := 0
	if mask&scene.ClearColorBit != 0 {
		bits |= d.c.colorBufferBit
	}
	if mask&scene.ClearDepthBit != 0 {
		bits |= d.c.depthBufferBit
	}
	d.gl.Call("clear", bits)
}

func (d *Device) VertexAttrib(loc scene.AttribLocation, buf scene.Buffer, components int) {
	d.gl.Call("bindBuffer", d.c.arrayBuffer, d.object(uint32(buf)))
	d.gl.Call("vertexAttribPointer", uint32(loc), components, d.c.float, false, 0, 0)
	d.gl.Call("enableVertexAttribArray", uint32(loc))
}

func (d *Device) BindIndexBuffer(buf scene.Buffer) {
	d.gl.Call("bindBuffer", d.c.elementArrayBuffer, d.object(uint32(buf)))
}

func (d *Device) UseProgram(p scene.Program) {
	d.gl.Call("useProgram", d.object(uint32(p)))
}

func (d *Device) UniformMatrix4(loc scene.UniformLocation, m math.Mat4) {
	if int(loc) < 0 || int(loc) >= len(d.uniforms) {
		return
	}
	js.CopyBytesToJS(d.matrixBytes, float32Bytes(m.Slice()))
	d.gl.Call("uniformMatrix4fv", d.uniforms[loc], false, d.matrix)
}

func (d *Device) DrawElements(mode scene.Primitive, count int, typ scene.IndexType, offset int) {
	if mode != scene.Triangles || typ != scene.UnsignedShort {
		panic(fmt.Sprintf("webgl: unsupported draw %v/%v", mode, typ))
	}
	d.gl.Call("drawElements", d.c.triangles, count, d.c.unsignedShort, offset)
}

var (
	_ scene.Device  = (*Device)(nil)
	_ scene.Surface = (*Device)(nil)
)
