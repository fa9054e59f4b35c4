package scene

import (
	gomath "math"

	"github.com/Faultbox/bouncecube/pkg/math"
)

// Camera holds the fixed projection and placement of the cube.
type Camera struct {
	FOVDegrees float32
	Near       float32
	Far        float32
	Distance   float32 // Z offset of the cube; negative is in front of the camera
}

// RotationRates scale the accumulated angle per axis.
type RotationRates struct {
	X, Y, Z float32
}

// DefaultCamera returns the 45° camera with the cube 12 units away.
func DefaultCamera() Camera {
	return Camera{
		FOVDegrees: 45,
		Near:       0.1,
		Far:        100.0,
		Distance:   -12.0,
	}
}

// DefaultRotationRates returns the stock spin rates. The Z
// rate is zero but the Z rotation is still applied.
func DefaultRotationRates() RotationRates {
	return RotationRates{X: 0.3, Y: 0.7, Z: 0}
}

// Transforms are the per-frame matrices uploaded to the shader.
type Transforms struct {
	Projection math.Mat4
	ModelView  math.Mat4
	Normal     math.Mat4
}

// ComputeTransforms builds the frame's matrices from scratch.
//
// The model-view is translate(x, y, distance) followed by rotations about
// Z, then Y, then X, each composed onto the running matrix. The order
// decides the final orientation.
func ComputeTransforms(cam Camera, rates RotationRates, x, y float64, angle float32, aspect float32) (Transforms, bool) {
	fov := cam.FOVDegrees * gomath.Pi / 180
	projection := math.Perspective(fov, aspect, cam.Near, cam.Far)

	modelView := math.Identity().
		Translated(float32(x), float32(y), cam.Distance).
		Rotated(angle*rates.Z, math.AxisZ).
		Rotated(angle*rates.Y, math.AxisY).
		Rotated(angle*rates.X, math.AxisX)

	inv, ok := modelView.Invert()

	return Transforms{
		Projection: projection,
		ModelView:  modelView,
		Normal:     inv.Transpose(),
	}, ok
}
