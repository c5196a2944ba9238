package scene

import (
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/geometry"
	"github.com/ljanyst/ray-tracer/pkg/lights"
	"github.com/ljanyst/ray-tracer/pkg/material"
	"github.com/ljanyst/ray-tracer/pkg/world"
)

// NewRoomScene creates a furnished room built entirely from cubes: a
// checkered floor, noisy wallpaper, a framed mirror, a table with small
// boxes on it and three paintings
func NewRoomScene(cameraOverrides ...CameraConfig) *Scene {
	w := world.New()

	addRoomFloor(w)
	addRoomWall(w, core.Identity(), core.Translation(0.25, 0, 0))
	addRoomWall(w, core.RotationY(math.Pi/2), core.Identity())
	addMirror(w)
	addTable(w)
	addPaintings(w)
	addTableCubes(w)

	w.AddLight(lights.NewPointLight(core.NewPoint(-1, 4.5, -4.5), core.NewColor(0.8, 0.8, 0.8)))

	defaultCameraConfig := CameraConfig{
		Width:       640,
		Height:      310,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(-4.8, 3, -4.8),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}

	return newScene("room", w, defaultCameraConfig, cameraOverrides...)
}

func addRoomFloor(w *world.World) {
	m := material.NewMaterial()
	m.Pattern = material.CheckerColors(core.NewColor(0.93, 0.93, 0.93), core.NewColor(0.29, 0.25, 0.23)).
		ApplyTransform(core.Chain(core.Translation(0, -0.05, 0), core.Scaling(0.1, 0.1, 0.1)))
	m.Specular = 0
	m.Reflective = 0.05

	w.AddShape(geometry.NewCube().ApplyTransform(core.Scaling(5, 0.1, 5)).SetMaterial(m))
}

// addRoomWall adds a wallpapered box enclosing the room; only its inner
// faces are ever visible
func addRoomWall(w *world.World, transform, patternTransform core.Matrix) {
	m := material.NewMaterial()
	m.Pattern = material.NewNoisePattern(
		material.StripeColors(core.NewColor(0.6, 0.6, 0.35), core.NewColor(0.65, 0.33, 0.25)).
			ApplyTransform(core.Chain(patternTransform, core.Scaling(0.05, 0.05, 0.05))),
	)
	m.Specular = 0.1
	m.Reflective = 0.05

	w.AddShape(geometry.NewCube().ApplyTransform(core.Chain(transform, core.Scaling(5.001, 5, 5))).SetMaterial(m))
}

func addMirror(w *world.World) {
	glass := geometry.NewCube().ApplyTransform(core.Chain(core.Translation(5, 2, 0), core.Scaling(0.1, 1, 3)))
	glass.Material().Reflective = 0.6
	glass.Material().Specular = 0
	glass.Material().Color = core.Black

	frame := geometry.NewCube().ApplyTransform(core.Chain(core.Translation(5, 2, 0), core.Scaling(0.09, 1.1, 3.1)))
	frame.Material().Color = core.NewColor(0.29, 0.25, 0.23)

	w.AddShape(glass, frame)
}

func woodMaterial() material.Material {
	m := material.NewMaterial()
	m.Color = core.NewColor(0.7, 0.2, 0.1)
	m.Specular = 0.3
	m.Shininess = 5
	return m
}

func addTable(w *world.World) {
	m := woodMaterial()
	w.AddShape(geometry.NewCube().ApplyTransform(core.Chain(core.Translation(0, 1, 0), core.Scaling(1, 0.05, 2))).SetMaterial(m))

	for _, leg := range []core.Matrix{
		core.Translation(0.9, 0.5, -1.9),
		core.Translation(-0.9, 0.5, -1.9),
		core.Translation(0.9, 0.5, 1.9),
		core.Translation(-0.9, 0.5, 1.9),
	} {
		w.AddShape(geometry.NewCube().ApplyTransform(core.Chain(leg, core.Scaling(0.05, 0.5, 0.05))).SetMaterial(m))
	}
}

func addPaintings(w *world.World) {
	paintings := []struct {
		transform core.Matrix
		color     core.Tuple
	}{
		{core.Chain(core.Translation(-0.05, 2, 5), core.Scaling(0.5, 0.5, 0.05), core.Translation(-1, 0, 0)), core.NewColor(0.7, 0.1, 0.1)},
		{core.Chain(core.Translation(0.05, 1.9, 5), core.Scaling(0.2, 0.2, 0.05), core.Translation(1, -1, 0)), core.NewColor(0.1, 0.7, 0.1)},
		{core.Chain(core.Translation(0.05, 2.1, 5), core.Scaling(0.2, 0.2, 0.05), core.Translation(1, 1, 0)), core.NewColor(0.1, 0.1, 0.7)},
	}

	for _, p := range paintings {
		m := material.NewMaterial()
		m.Color = p.color
		m.Specular = 0.3
		m.Shininess = 5
		m.Reflective = 0.2
		w.AddShape(geometry.NewCube().ApplyTransform(p.transform).SetMaterial(m))
	}
}

// addTableCubes scatters small boxes over the table top at y=1.05
func addTableCubes(w *world.World) {
	onTable := func(x, z float64, scale core.Matrix, turn float64) core.Matrix {
		return core.Chain(core.Translation(x, 1.05, z), scale, core.Translation(0, 1, 0), core.RotationY(turn*math.Pi))
	}

	tinted := geometry.NewCube().ApplyTransform(core.Chain(core.Translation(0, 1.05, 0), core.Scaling(0.2, 0.2, 0.2), core.Translation(0, 1, 0)))
	tm := tinted.Material()
	tm.Color = core.NewColor(0.1, 0.1, 0.7)
	tm.Transparency = 0.4
	tm.Reflective = 0.02
	tm.Ambient = 0.05
	tm.Diffuse = 0.45
	w.AddShape(tinted)

	boxes := []struct {
		transform  core.Matrix
		color      core.Tuple
		reflective float64
	}{
		{onTable(0.5, -1, core.Scaling(0.04, 0.12, 0.04), 0.43), core.NewColor(1, 0.44, 0), 0},
		{onTable(-0.5, -0.7, core.Scaling(0.12, 0.12, 0.12), 0.82), core.NewColor(0.06, 0.63, 0.62), 0.2},
		{onTable(-0.4, 0.9, core.Scaling(0.04, 0.12, 0.04), 0.27), core.NewColor(0.33, 0.01, 0.46), 0},
		{onTable(0.1, 1.1, core.Scaling(0.12, 0.04, 0.12), 0.35), core.NewColor(1, 0.75, 0), 0.3},
		{onTable(0.5, -0.4, core.Scaling(0.04, 0.04, 0.12), 0.64), core.NewColor(0.1, 0.75, 0.1), 0},
	}

	for _, b := range boxes {
		m := material.NewMaterial()
		m.Color = b.color
		m.Specular = 0.3
		m.Shininess = 5
		m.Reflective = b.reflective
		w.AddShape(geometry.NewCube().ApplyTransform(b.transform).SetMaterial(m))
	}
}
