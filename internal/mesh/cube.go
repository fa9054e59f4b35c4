// Package mesh provides the static cube geometry uploaded at startup.
package mesh

import "fmt"

// Component counts per vertex for each attribute stream.
const (
	PositionComponents = 3
	NormalComponents   = 3
	ColorComponents    = 4
)

// Data holds flat, per-vertex attribute streams and a 16-bit index list.
type Data struct {
	Positions []float32
	Normals   []float32
	Colors    []float32
	Indices   []uint16
}

// VertexCount returns the number of vertices described by Positions.
func (d Data) VertexCount() int {
	return len(d.Positions) / PositionComponents
}

// Validate checks that every stream describes the same vertices and that
// every index references one of them.
func (d Data) Validate() error {
	n := d.VertexCount()
	if n == 0 || len(d.Positions)%PositionComponents != 0 {
		return fmt.Errorf("positions: %d floats is not a whole number of vertices", len(d.Positions))
	}
	if len(d.Normals) != n*NormalComponents {
		return fmt.Errorf("normals: got %d floats, want %d", len(d.Normals), n*NormalComponents)
	}
	if len(d.Colors) != n*ColorComponents {
		return fmt.Errorf("colors: got %d floats, want %d", len(d.Colors), n*ColorComponents)
	}
	if len(d.Indices)%3 != 0 {
		return fmt.Errorf("indices: %d is not a whole number of triangles", len(d.Indices))
	}
	for i, idx := range d.Indices {
		if int(idx) >= n {
			return fmt.Errorf("index %d references vertex %d of %d", i, idx, n)
		}
	}
	return nil
}

// CubeIndexCount is the number of indices in the cube: 6 faces × 2 triangles × 3.
const CubeIndexCount = 36

// Face colors in face order: front, back, top, bottom, right, left.
var faceColors = [6][4]float32{
	{1.0, 1.0, 1.0, 1.0}, // white
	{1.0, 0.0, 0.0, 1.0}, // red
	{0.0, 1.0, 0.0, 1.0}, // green
	{0.0, 0.0, 1.0, 1.0}, // blue
	{1.0, 1.0, 0.0, 1.0}, // yellow
	{1.0, 0.0, 1.0, 1.0}, // purple
}

// Cube returns a cube spanning [-1, 1] on every axis. Each face has its own
// four vertices so normals and colors stay flat per face.
func Cube() Data {
	positions := []float32{
		// Front face
		-1.0, -1.0, 1.0, 1.0, -1.0, 1.0, 1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
		// Back face
		-1.0, -1.0, -1.0, -1.0, 1.0, -1.0, 1.0, 1.0, -1.0, 1.0, -1.0, -1.0,
		// Top face
		-1.0, 1.0, -1.0, -1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, -1.0,
		// Bottom face
		-1.0, -1.0, -1.0, 1.0, -1.0, -1.0, 1.0, -1.0, 1.0, -1.0, -1.0, 1.0,
		// Right face
		1.0, -1.0, -1.0, 1.0, 1.0, -1.0, 1.0, 1.0, 1.0, 1.0, -1.0, 1.0,
		// Left face
		-1.0, -1.0, -1.0, -1.0, -1.0, 1.0, -1.0, 1.0, 1.0, -1.0, 1.0, -1.0,
	}

	faceNormals := [6][3]float32{
		{0.0, 0.0, 1.0},
		{0.0, 0.0, -1.0},
		{0.0, 1.0, 0.0},
		{0.0, -1.0, 0.0},
		{1.0, 0.0, 0.0},
		{-1.0, 0.0, 0.0},
	}

	normals := make([]float32, 0, 24*NormalComponents)
	colors := make([]float32, 0, 24*ColorComponents)
	for face := 0; face < 6; face++ {
		for v := 0; v < 4; v++ {
			normals = append(normals, faceNormals[face][:]...)
			colors = append(colors, faceColors[face][:]...)
		}
	}

	// Two triangles per face: (0,1,2) and (0,2,3) of each quad
	indices := make([]uint16, 0, CubeIndexCount)
	for face := uint16(0); face < 6; face++ {
		base := face * 4
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return Data{
		Positions: positions,
		Normals:   normals,
		Colors:    colors,
		Indices:   indices,
	}
}
