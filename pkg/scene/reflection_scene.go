package scene

import (
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/geometry"
	"github.com/ljanyst/ray-tracer/pkg/lights"
	"github.com/ljanyst/ray-tracer/pkg/material"
	"github.com/ljanyst/ray-tracer/pkg/world"
)

// newGalleryWorld creates a reflective checkered floor between two striped
// walls meeting behind the origin
func newGalleryWorld() *world.World {
	w := world.New()

	floorMat := material.NewMaterial()
	floorMat.Pattern = material.CheckerColors(core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.4, 0.4, 0.4)).
		ApplyTransform(core.Chain(core.Translation(0, -0.5, 0), core.RotationY(-math.Pi/9)))
	floorMat.Specular = 0
	floorMat.Reflective = 0.5
	w.AddShape(geometry.NewPlane().SetMaterial(floorMat))

	wallMat := material.NewMaterial()
	wallMat.Pattern = material.StripeColors(core.NewColor(0.3, 0.3, 0.3), core.NewColor(0.2, 0.2, 0.2)).
		ApplyTransform(core.Scaling(0.2, 0.2, 0.2))
	wallMat.Specular = 0
	wallMat.Reflective = 0.25

	right := geometry.NewPlane().SetMaterial(wallMat).
		ApplyTransform(core.Chain(core.Translation(8, 0, 0), core.RotationY(-math.Pi/6), core.RotationZ(math.Pi/2)))
	left := geometry.NewPlane().SetMaterial(wallMat).
		ApplyTransform(core.Chain(core.Translation(0, 0, 8), core.RotationY(2*math.Pi/6), core.RotationZ(math.Pi/2)))
	w.AddShape(right, left)

	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))
	return w
}

// matteSphere creates a sphere with a soft highlight
func matteSphere(transform core.Matrix, color core.Tuple) *geometry.Shape {
	m := material.NewMaterial()
	m.Color = color
	m.Specular = 0.3
	m.Shininess = 5
	return geometry.NewSphere().ApplyTransform(transform).SetMaterial(m)
}

// NewReflectionScene creates a single sphere mirrored in the floor and walls
func NewReflectionScene(cameraOverrides ...CameraConfig) *Scene {
	w := newGalleryWorld()
	w.AddShape(matteSphere(core.Translation(-1, 1, 1), core.NewColor(0.7, 0.2, 0.1)))

	return newScene("reflection", w, demoCameraConfig(), cameraOverrides...)
}

// NewRefractionScene creates a tinted glass sphere with three spheres
// behind it
func NewRefractionScene(cameraOverrides ...CameraConfig) *Scene {
	w := newGalleryWorld()
	w.AddShape(
		matteSphere(core.Translation(1.5, 1, 7), core.NewColor(0.7, 0.1, 0.1)),
		matteSphere(core.Chain(core.Translation(2.5, 0.3, 6.5), core.Scaling(0.3, 0.3, 0.3)), core.NewColor(0.1, 0.7, 0.1)),
		matteSphere(core.Chain(core.Translation(0, 0.6, 6.5), core.Scaling(0.6, 0.6, 0.6)), core.NewColor(0.1, 0.1, 0.7)),
	)

	glass := geometry.NewGlassSphere().ApplyTransform(core.Translation(-1, 1, 1))
	m := glass.Material()
	m.Color = core.NewColor(0.7, 0.3, 0)
	m.Transparency = 0.6
	m.Reflective = 0.02
	m.Ambient = 0.05
	m.Diffuse = 0.45
	w.AddShape(glass)

	return newScene("refraction", w, demoCameraConfig(), cameraOverrides...)
}
