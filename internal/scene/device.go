package scene

import "github.com/Faultbox/bouncecube/pkg/math"

// Buffer identifies a GPU buffer created by a Device implementation.
type Buffer uint32

// Program identifies a linked shader program.
type Program uint32

// AttribLocation is a vertex attribute slot in a program.
type AttribLocation uint32

// UniformLocation is a uniform slot in a program.
type UniformLocation int32

// DepthFunc selects the depth comparison used by the depth test.
type DepthFunc int

// Depth comparisons.
const (
	DepthLess DepthFunc = iota
	DepthLessEqual
)

// ClearMask selects which buffers Clear resets.
type ClearMask uint8

// Clear mask bits.
const (
	ClearColorBit ClearMask = 1 << iota
	ClearDepthBit
)

// Primitive is the topology used by an indexed draw.
type Primitive int

// Primitive topologies.
const (
	Triangles Primitive = iota
)

// IndexType is the element type stored in an index buffer.
type IndexType int

// Index element types.
const (
	UnsignedShort IndexType = iota
)

// Device is the subset of the graphics API the renderer drives each frame.
// Implementations translate the enums above into their native constants.
type Device interface {
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float32)
	EnableDepthTest(fn DepthFunc)
	Clear(mask ClearMask)

	// VertexAttrib sources attribute loc from buf as tightly packed
	// float32 tuples of the given size, and enables the attribute.
	VertexAttrib(loc AttribLocation, buf Buffer, components int)
	BindIndexBuffer(buf Buffer)
	UseProgram(p Program)
	UniformMatrix4(loc UniformLocation, m math.Mat4)
	DrawElements(mode Primitive, count int, typ IndexType, offset int)
}

// Surface is the drawing surface the renderer presents to. DisplaySize is
// what the host currently shows; Size is the backing buffer size.
type Surface interface {
	DisplaySize() (width, height int)
	Size() (width, height int)
	SetSize(width, height int)
}

// Buffers are the uploaded cube streams. Owned by whoever uploaded them.
type Buffers struct {
	Position Buffer
	Color    Buffer
	Normal   Buffer
	Indices  Buffer
}

// AttribLocations holds the attribute slots the cube shader consumes.
type AttribLocations struct {
	VertexPosition AttribLocation
	VertexNormal   AttribLocation
	VertexColor    AttribLocation
}

// UniformLocations holds the matrix uniform slots of the cube shader.
type UniformLocations struct {
	ProjectionMatrix UniformLocation
	ModelViewMatrix  UniformLocation
	NormalMatrix     UniformLocation
}

// ProgramInfo is a linked program plus its cached location table.
type ProgramInfo struct {
	Program  Program
	Attribs  AttribLocations
	Uniforms UniformLocations
}

// Shader attribute and uniform names shared by both GLSL variants.
const (
	AttribVertexPosition = "aVertexPosition"
	AttribVertexNormal   = "aVertexNormal"
	AttribVertexColor    = "aVertexColor"

	UniformProjectionMatrix = "uProjectionMatrix"
	UniformModelViewMatrix  = "uModelViewMatrix"
	UniformNormalMatrix     = "uNormalMatrix"
)
