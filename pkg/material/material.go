package material

import (
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/lights"
)

// Material holds the surface parameters of the Phong model plus the
// reflection and refraction coefficients used by the recursive shader
type Material struct {
	Color           core.Tuple
	Pattern         *Pattern // overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// NewMaterial returns the default material: white, mostly diffuse, opaque
func NewMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1.0,
	}
}

// NewGlassMaterial returns the default material made fully transparent
// with the refractive index of glass
func NewGlassMaterial() Material {
	m := NewMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.52
	return m
}

var materialCompare = []cmp.Option{
	cmpopts.EquateApprox(0, core.Epsilon),
	cmp.AllowUnexported(Pattern{}, core.Matrix{}),
}

// materialFields strips the Equal method so cmp walks the fields
type materialFields Material

// Equal compares every parameter within epsilon and the pattern trees
// structurally
func (m Material) Equal(other Material) bool {
	return cmp.Equal(materialFields(m), materialFields(other), materialCompare...)
}

// Lighting shades point on obj as seen along eyev under a single light
// using the Phong reflection model. A shadowed point only gets the
// ambient term.
func (m *Material) Lighting(obj Object, light lights.PointLight, point, eyev, normalv core.Tuple, inShadow bool) core.Tuple {
	base := m.Color
	if m.Pattern != nil {
		base = m.Pattern.ColorAt(obj, point)
	}
	effective := base.Hadamard(light.Intensity)

	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Subtract(point)
	lightv.W = 0
	lightv = lightv.Normalize()
	diffuse := core.Black
	specular := core.Black

	// negative cosine means the light is behind the surface
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal > 0 {
		diffuse = effective.Multiply(m.Diffuse * lightDotNormal)

		reflectv := lightv.Negate().Reflect(normalv)
		reflectDotEye := reflectv.Dot(eyev)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
