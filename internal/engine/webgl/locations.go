package webgl

import (
	"fmt"

	"github.com/Faultbox/bouncecube/internal/scene"
)

// resolveLocations queries every attribute and uniform the cube shader
// uses. attrib returns -1 for a missing attribute; uniform reports whether
// the uniform exists and, if so, the handle it was stored under.
func resolveLocations(
	attrib func(name string) int,
	uniform func(name string) (scene.UniformLocation, bool),
) (scene.AttribLocations, scene.UniformLocations, error) {
	var (
		attribs  scene.AttribLocations
		uniforms scene.UniformLocations
	)

	for _, a := range []struct {
		name string
		dst  *scene.AttribLocation
	}{
		{scene.AttribVertexPosition, &attribs.VertexPosition},
		{scene.AttribVertexNormal, &attribs.VertexNormal},
		{scene.AttribVertexColor, &attribs.VertexColor},
	} {
		loc := attrib(a.name)
		if loc < 0 {
			return scene.AttribLocations{}, scene.UniformLocations{}, fmt.Errorf("attribute %s not found", a.name)
		}
		*a.dst = scene.AttribLocation(loc)
	}

	for _, u := range []struct {
		name string
		dst  *scene.UniformLocation
	}{
		{scene.UniformProjectionMatrix, &uniforms.ProjectionMatrix},
		{scene.UniformModelViewMatrix, &uniforms.ModelViewMatrix},
		{scene.UniformNormalMatrix, &uniforms.NormalMatrix},
	} {
		loc, ok := uniform(u.name)
		if !ok {
			return scene.AttribLocations{}, scene.UniformLocations{}, fmt.Errorf("uniform %s not found", u.name)
		}
		*u.dst = loc
	}

	return attribs, uniforms, nil
}
