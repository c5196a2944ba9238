package scene

import (
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/geometry"
	"github.com/ljanyst/ray-tracer/pkg/lights"
	"github.com/ljanyst/ray-tracer/pkg/material"
	"github.com/ljanyst/ray-tracer/pkg/world"
)

// NewShapesScene creates a showcase of cylinders and cones, capped and
// open, on a ringed floor
func NewShapesScene(cameraOverrides ...CameraConfig) *Scene {
	w := world.New()

	// Create materials
	floorMat := material.NewMaterial()
	floorMat.Pattern = material.RingColors(core.NewColor(0.55, 0.55, 0.55), core.NewColor(0.45, 0.45, 0.45)).
		ApplyTransform(core.Scaling(0.5, 0.5, 0.5))
	floorMat.Specular = 0

	red := material.NewMaterial()
	red.Color = core.NewColor(0.8, 0.2, 0.2)

	blue := material.NewMaterial()
	blue.Color = core.NewColor(0.2, 0.2, 0.8)

	green := material.NewMaterial()
	green.Pattern = material.RadialGradientColors(core.NewColor(0.2, 0.8, 0.2), core.NewColor(0.9, 0.9, 0.2)).
		ApplyTransform(core.Scaling(0.3, 0.3, 0.3))

	gold := material.NewMaterial()
	gold.Color = core.NewColor(0.8, 0.6, 0.2)
	gold.Reflective = 0.4
	gold.Shininess = 300

	glass := material.NewGlassMaterial()
	glass.Color = core.NewColor(0.1, 0.1, 0.1)
	glass.Diffuse = 0.1
	glass.Reflective = 0.9

	w.AddShape(geometry.NewPlane().SetMaterial(floorMat))

	// Right: tall capped cylinder
	w.AddShape(geometry.NewCylinder(0, 2, true).
		ApplyTransform(core.Chain(core.Translation(1.8, 0, 0), core.Scaling(0.5, 1, 0.5))).
		SetMaterial(red))

	// Left: horizontal capped cylinder lying along x
	w.AddShape(geometry.NewCylinder(-0.5, 0.5, true).
		ApplyTransform(core.Chain(core.Translation(-2, 0.3, 0), core.RotationZ(math.Pi/2), core.Scaling(0.3, 1, 0.3))).
		SetMaterial(blue))

	// Center: open gold tube tilted towards the camera
	w.AddShape(geometry.NewCylinder(-1.5, 1.5, false).
		ApplyTransform(core.Chain(core.Translation(-0.2, 1.1, 0.5), core.RotationX(math.Pi/2.2), core.Scaling(0.35, 1, 0.35))).
		SetMaterial(gold))

	// Front: short glass cylinder
	w.AddShape(geometry.NewCylinder(0, 0.6, true).
		ApplyTransform(core.Chain(core.Translation(0.5, 0, -1), core.Scaling(0.2, 1, 0.2))).
		SetMaterial(glass))

	// Back: pointed capped cone, apex up
	w.AddShape(geometry.NewCone(-1, 0, true).
		ApplyTransform(core.Chain(core.Translation(0, 0, 2), core.Scaling(0.5, 2, 0.5), core.Translation(0, 1, 0))).
		SetMaterial(green))

	// Back left: open hourglass from both nappes
	w.AddShape(geometry.NewCone(-1, 1, false).
		ApplyTransform(core.Chain(core.Translation(-1.5, 0.8, 2.5), core.Scaling(0.4, 0.8, 0.4))).
		SetMaterial(blue))

	// Front left: small glass cone resting on its base
	w.AddShape(geometry.NewCone(-1, 0, true).
		ApplyTransform(core.Chain(core.Translation(-0.8, 0, -1.2), core.Scaling(0.3, 0.8, 0.3), core.Translation(0, 1, 0))).
		SetMaterial(glass))

	w.AddLight(lights.NewPointLight(core.NewPoint(-5, 8, -6), core.White))

	defaultCameraConfig := CameraConfig{
		Width:       640,
		Height:      360,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 2.5, -6),
		To:          core.NewPoint(0, 0.8, 0.5),
		Up:          core.NewVector(0, 1, 0),
	}

	return newScene("shapes", w, defaultCameraConfig, cameraOverrides...)
}
