package mesh

import (
	"strings"
	"testing"
)

func TestCubeLayout(t *testing.T) {
	c := Cube()

	if err := c.Validate(); err != nil {
		t.Fatalf("cube failed validation: %v", err)
	}
	if got := c.VertexCount(); got != 24 {
		t.Errorf("VertexCount() = %d, want 24", got)
	}
	if got := len(c.Indices); got != CubeIndexCount {
		t.Errorf("len(Indices) = %d, want %d", got, CubeIndexCount)
	}
}

func TestCubeNormalsFaceOutward(t *testing.T) {
	c := Cube()

	// For an axis-aligned cube centered at the origin, each vertex lies on
	// the face its normal points at: dot(position, normal) == 1.
	for v := 0; v < c.VertexCount(); v++ {
		p := c.Positions[v*3 : v*3+3]
		n := c.Normals[v*3 : v*3+3]
		dot := p[0]*n[0] + p[1]*n[1] + p[2]*n[2]
		if dot != 1 {
			t.Errorf("vertex %d: dot(position, normal) = %f, want 1", v, dot)
		}
	}
}

func TestCubeColorsFlatPerFace(t *testing.T) {
	c := Cube()

	for face := 0; face < 6; face++ {
		first := c.Colors[face*16 : face*16+4]
		for v := 1; v < 4; v++ {
			got := c.Colors[face*16+v*4 : face*16+v*4+4]
			for i := range first {
				if got[i] != first[i] {
					t.Fatalf("face %d vertex %d color %v differs from %v", face, v, got, first)
				}
			}
		}
		if first[3] != 1 {
			t.Errorf("face %d alpha = %f, want opaque", face, first[3])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Data)
		wantErr string
	}{
		{
			name:    "short normals",
			mutate:  func(d *Data) { d.Normals = d.Normals[:len(d.Normals)-3] },
			wantErr: "normals",
		},
		{
			name:    "short colors",
			mutate:  func(d *Data) { d.Colors = d.Colors[:4] },
			wantErr: "colors",
		},
		{
			name:    "partial triangle",
			mutate:  func(d *Data) { d.Indices = d.Indices[:35] },
			wantErr: "triangles",
		},
		{
			name:    "index out of range",
			mutate:  func(d *Data) { d.Indices[7] = 24 },
			wantErr: "references vertex 24",
		},
		{
			name:    "no positions",
			mutate:  func(d *Data) { d.Positions = nil },
			wantErr: "positions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Cube()
			tt.mutate(&d)
			err := d.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
