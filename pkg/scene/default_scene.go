package scene

import (
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/geometry"
	"github.com/ljanyst/ray-tracer/pkg/lights"
	"github.com/ljanyst/ray-tracer/pkg/material"
	"github.com/ljanyst/ray-tracer/pkg/world"
)

// NewDefaultScene creates three plain spheres resting on a floor
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	w := world.New()

	floorMat := material.NewMaterial()
	floorMat.Color = core.NewColor(1, 0.9, 0.9)
	floorMat.Specular = 0
	w.AddShape(geometry.NewPlane().SetMaterial(floorMat))

	w.AddShape(
		demoSphere(core.Translation(-0.5, 1, 0.5), core.NewColor(0.1, 1, 0.5), nil),
		demoSphere(core.Chain(core.Translation(1.5, 0.5, -0.5), core.Scaling(0.5, 0.5, 0.5)), core.NewColor(0.5, 1, 0.1), nil),
		demoSphere(core.Chain(core.Translation(-1.5, 0.33, -0.75), core.Scaling(0.33, 0.33, 0.33)), core.NewColor(1, 0.8, 0.1), nil),
	)

	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	return newScene("default", w, demoCameraConfig(), cameraOverrides...)
}

// NewPatternsScene creates the default arrangement with noisy and blended
// patterns in place of flat colors
func NewPatternsScene(cameraOverrides ...CameraConfig) *Scene {
	w := world.New()

	white := core.White
	red := core.NewColor(1, 0, 0)
	floorMat := material.NewMaterial()
	floorMat.Specular = 0
	floorMat.Pattern = material.NewNoisePattern(
		material.NewBlendedPattern(
			material.StripeColors(white, red).ApplyTransform(core.Chain(core.RotationY(math.Pi/4), core.Scaling(0.75, 0.75, 0.75))),
			material.StripeColors(white, red).ApplyTransform(core.Chain(core.RotationY(-math.Pi/4), core.Scaling(0.75, 0.75, 0.75))),
		).ApplyTransform(core.Translation(0, -0.5, 0)),
	)
	w.AddShape(geometry.NewPlane().SetMaterial(floorMat))

	darkGreen := core.NewColor(0, 0.7, 0)
	green := core.NewColor(0, 1, 0)

	large := material.NewNoisePattern(
		material.StripeColors(darkGreen, green).
			ApplyTransform(core.Chain(core.RotationY(2*math.Pi/3), core.RotationZ(math.Pi/4), core.Scaling(0.225, 0.225, 0.225))),
	)
	medium := material.GradientColors(core.NewColor(1, 0, 0), core.NewColor(1, 0.8, 0.1)).
		ApplyTransform(core.Chain(core.Translation(-1.5, 0, 0), core.Scaling(2, 2, 2)))
	small := material.NewNoisePattern(
		material.StripeColors(darkGreen, green).
			ApplyTransform(core.Chain(core.RotationY(-math.Pi/2), core.Scaling(0.225, 0.225, 0.225))),
	)

	w.AddShape(
		demoSphere(core.Translation(-0.5, 1, 0.5), core.White, large),
		demoSphere(core.Chain(core.Translation(1.5, 0.5, -0.5), core.Scaling(0.5, 0.5, 0.5)), core.White, medium),
		demoSphere(core.Chain(core.Translation(-1.5, 0.33, -0.75), core.Scaling(0.33, 0.33, 0.33)), core.White, small),
	)

	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	return newScene("patterns", w, demoCameraConfig(), cameraOverrides...)
}

// demoSphere creates a slightly glossy sphere
func demoSphere(transform core.Matrix, color core.Tuple, pattern *material.Pattern) *geometry.Shape {
	m := material.NewMaterial()
	m.Color = color
	m.Pattern = pattern
	m.Diffuse = 0.7
	m.Specular = 0.3
	return geometry.NewSphere().ApplyTransform(transform).SetMaterial(m)
}
