package loaders

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/lights"
	"github.com/ljanyst/ray-tracer/pkg/material"
	"github.com/tidwall/gjson"
)

// ErrInvalidScene is wrapped by every error caused by the content of a scene
// description, as opposed to errors reading it
var ErrInvalidScene = errors.New("invalid scene description")

// SceneDescription contains all parsed scene data. Shapes are kept as
// descriptions so callers decide how to build them.
type SceneDescription struct {
	Name        string
	Description string
	Group       string

	Camera   *CameraDescription // nil if the file has no camera block
	MaxDepth int                // -1 if not given
	Shadows  bool               // true unless "shadows": false

	Lights []lights.PointLight
	Shapes []ShapeDescription
}

// CameraDescription represents the "camera" block. Missing fields are left
// at their zero value.
type CameraDescription struct {
	Width       int
	Height      int
	FieldOfView float64
	From        core.Tuple
	To          core.Tuple
	Up          core.Tuple
}

// ShapeDescription represents one entry of the "shapes" list
type ShapeDescription struct {
	Type      string // sphere, glass_sphere, plane, cube, cylinder or cone
	Minimum   float64
	Maximum   float64
	Closed    bool
	Transform core.Matrix
	Material  material.Material
}

var shapeTypes = map[string]bool{
	"sphere":       true,
	"glass_sphere": true,
	"plane":        true,
	"cube":         true,
	"cylinder":     true,
	"cone":         true,
}

// LoadSceneFile loads and parses a JSON scene file
func LoadSceneFile(filename string) (*SceneDescription, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	desc, err := LoadScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return desc, nil
}

// LoadScene parses a JSON scene description
func LoadScene(data []byte) (*SceneDescription, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidScene)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidScene)
	}

	desc := &SceneDescription{
		Name:        root.Get("name").String(),
		Description: root.Get("description").String(),
		Group:       root.Get("group").String(),
		MaxDepth:    -1,
		Shadows:     true,
	}

	if v := root.Get("max_depth"); v.Exists() {
		if v.Type != gjson.Number || v.Int() < 0 {
			return nil, fmt.Errorf("%w: max_depth must be a non-negative number", ErrInvalidScene)
		}
		desc.MaxDepth = int(v.Int())
	}
	if v := root.Get("shadows"); v.Exists() {
		desc.Shadows = v.Bool()
	}

	if v := root.Get("camera"); v.Exists() {
		camera, err := parseCamera(v)
		if err != nil {
			return nil, fmt.Errorf("camera: %w", err)
		}
		desc.Camera = camera
	}

	for i, v := range root.Get("lights").Array() {
		light, err := parseLight(v)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		desc.Lights = append(desc.Lights, light)
	}

	for i, v := range root.Get("shapes").Array() {
		shape, err := parseShape(v)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		desc.Shapes = append(desc.Shapes, shape)
	}

	return desc, nil
}

func parseCamera(v gjson.Result) (*CameraDescription, error) {
	camera := &CameraDescription{
		Width:       int(v.Get("width").Int()),
		Height:      int(v.Get("height").Int()),
		FieldOfView: v.Get("fov").Float(),
	}
	if camera.Width < 0 || camera.Height < 0 || camera.FieldOfView < 0 {
		return nil, fmt.Errorf("%w: width, height and fov must not be negative", ErrInvalidScene)
	}

	var err error
	if f := v.Get("from"); f.Exists() {
		if camera.From, err = parsePoint(f); err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
	}
	if t := v.Get("to"); t.Exists() {
		if camera.To, err = parsePoint(t); err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
	}
	if u := v.Get("up"); u.Exists() {
		if camera.Up, err = parseVector(u); err != nil {
			return nil, fmt.Errorf("up: %w", err)
		}
		if camera.Up.Length() < core.Epsilon {
			return nil, fmt.Errorf("%w: up must not be the zero vector", ErrInvalidScene)
		}
	}

	// A camera without from or to takes the missing point from the scene
	// defaults, so only a complete pair can be checked here
	if v.Get("from").Exists() && v.Get("to").Exists() {
		forward := camera.To.Subtract(camera.From)
		if forward.Length() < core.Epsilon {
			return nil, fmt.Errorf("%w: from and to must be different points", ErrInvalidScene)
		}
		if v.Get("up").Exists() && forward.Normalize().Cross(camera.Up.Normalize()).Length() < core.Epsilon {
			return nil, fmt.Errorf("%w: up must not be parallel to the view direction", ErrInvalidScene)
		}
	}
	return camera, nil
}

func parseLight(v gjson.Result) (lights.PointLight, error) {
	position, err := parsePoint(v.Get("position"))
	if err != nil {
		return lights.PointLight{}, fmt.Errorf("position: %w", err)
	}

	intensity := core.White
	if i := v.Get("intensity"); i.Exists() {
		if intensity, err = parseColor(i); err != nil {
			return lights.PointLight{}, fmt.Errorf("intensity: %w", err)
		}
	}
	return lights.NewPointLight(position, intensity), nil
}

func parseShape(v gjson.Result) (ShapeDescription, error) {
	shape := ShapeDescription{
		Type:      v.Get("type").String(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
		Transform: core.Identity(),
	}
	if !shapeTypes[shape.Type] {
		return shape, fmt.Errorf("%w: unknown shape type %q", ErrInvalidScene, shape.Type)
	}

	if m := v.Get("minimum"); m.Exists() {
		shape.Minimum = m.Float()
	}
	if m := v.Get("maximum"); m.Exists() {
		shape.Maximum = m.Float()
	}
	if shape.Minimum > shape.Maximum {
		return shape, fmt.Errorf("%w: minimum %g is above maximum %g", ErrInvalidScene, shape.Minimum, shape.Maximum)
	}
	shape.Closed = v.Get("closed").Bool()

	transform, err := parseTransform(v.Get("transform"))
	if err != nil {
		return shape, fmt.Errorf("transform: %w", err)
	}
	shape.Transform = transform

	base := material.NewMaterial()
	if shape.Type == "glass_sphere" {
		base = material.NewGlassMaterial()
	}
	shape.Material, err = parseMaterial(v.Get("material"), base)
	if err != nil {
		return shape, fmt.Errorf("material: %w", err)
	}
	return shape, nil
}

// parseMaterial overrides the fields of base that v names. A "preset" of
// "glass" starts from the glass material instead.
func parseMaterial(v gjson.Result, base material.Material) (material.Material, error) {
	m := base
	if !v.Exists() {
		return m, nil
	}
	if !v.IsObject() {
		return m, fmt.Errorf("%w: material must be an object", ErrInvalidScene)
	}

	switch preset := v.Get("preset").String(); preset {
	case "":
	case "glass":
		m = material.NewGlassMaterial()
	default:
		return m, fmt.Errorf("%w: unknown material preset %q", ErrInvalidScene, preset)
	}

	if c := v.Get("color"); c.Exists() {
		color, err := parseColor(c)
		if err != nil {
			return m, fmt.Errorf("color: %w", err)
		}
		m.Color = color
	}

	fields := []struct {
		name string
		dst  *float64
	}{
		{"ambient", &m.Ambient},
		{"diffuse", &m.Diffuse},
		{"specular", &m.Specular},
		{"shininess", &m.Shininess},
		{"reflective", &m.Reflective},
		{"transparency", &m.Transparency},
		{"refractive_index", &m.RefractiveIndex},
	}
	for _, f := range fields {
		r := v.Get(f.name)
		if !r.Exists() {
			continue
		}
		if r.Type != gjson.Number || r.Float() < 0 {
			return m, fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidScene, f.name)
		}
		*f.dst = r.Float()
	}
	// n1/n2 divides by the index of the medium being entered
	if m.RefractiveIndex <= 0 {
		return m, fmt.Errorf("%w: refractive_index must be positive", ErrInvalidScene)
	}

	if p := v.Get("pattern"); p.Exists() {
		pattern, err := parsePattern(p)
		if err != nil {
			return m, fmt.Errorf("pattern: %w", err)
		}
		m.Pattern = pattern
	}
	return m, nil
}

// parsePattern builds a pattern tree. Two-color patterns take either a
// "colors" pair or nested "a" and "b" patterns; noise takes a nested
// "pattern".
func parsePattern(v gjson.Result) (*material.Pattern, error) {
	name := v.Get("type").String()
	kind, ok := material.ParsePatternKind(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown pattern type %q", ErrInvalidScene, name)
	}

	var p *material.Pattern
	switch kind {
	case material.PatternSolid:
		color, err := parseColor(v.Get("color"))
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		p = material.NewSolidPattern(color)
	case material.PatternNoise:
		child, err := parsePattern(v.Get("pattern"))
		if err != nil {
			return nil, fmt.Errorf("noise: %w", err)
		}
		p = material.NewNoisePattern(child)
	case material.PatternTest:
		p = material.NewTestPattern()
	default:
		a, b, err := parsePatternPair(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		p = newTwoPattern(kind, a, b)
	}

	transform, err := parseTransform(v.Get("transform"))
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	return p.ApplyTransform(transform), nil
}

func parsePatternPair(v gjson.Result) (*material.Pattern, *material.Pattern, error) {
	if colors := v.Get("colors"); colors.Exists() {
		pair := colors.Array()
		if len(pair) != 2 {
			return nil, nil, fmt.Errorf("%w: colors must hold exactly two colors", ErrInvalidScene)
		}
		a, err := parseColor(pair[0])
		if err != nil {
			return nil, nil, fmt.Errorf("colors: %w", err)
		}
		b, err := parseColor(pair[1])
		if err != nil {
			return nil, nil, fmt.Errorf("colors: %w", err)
		}
		return material.NewSolidPattern(a), material.NewSolidPattern(b), nil
	}

	a, err := parsePattern(v.Get("a"))
	if err != nil {
		return nil, nil, fmt.Errorf("a: %w", err)
	}
	b, err := parsePattern(v.Get("b"))
	if err != nil {
		return nil, nil, fmt.Errorf("b: %w", err)
	}
	return a, b, nil
}

func newTwoPattern(kind material.PatternKind, a, b *material.Pattern) *material.Pattern {
	switch kind {
	case material.PatternStripe:
		return material.NewStripePattern(a, b)
	case material.PatternRing:
		return material.NewRingPattern(a, b)
	case material.PatternChecker:
		return material.NewCheckerPattern(a, b)
	case material.PatternGradient:
		return material.NewGradientPattern(a, b)
	case material.PatternRadialGradient:
		return material.NewRadialGradientPattern(a, b)
	default:
		return material.NewBlendedPattern(a, b)
	}
}

// parseTransform composes a list of single-key steps such as
// {"translate": [x, y, z]} or {"rotate_y": r}. Steps apply in the order
// listed, so the first entry acts on the object first. Angles are radians.
func parseTransform(v gjson.Result) (core.Matrix, error) {
	result := core.Identity()
	if !v.Exists() {
		return result, nil
	}
	if !v.IsArray() {
		return result, fmt.Errorf("%w: transform must be a list", ErrInvalidScene)
	}

	for i, step := range v.Array() {
		m, err := parseTransformStep(step)
		if err != nil {
			return result, fmt.Errorf("step %d: %w", i, err)
		}
		result = m.Multiply(result)
	}

	if !result.IsInvertible() {
		return result, fmt.Errorf("%w: transform is not invertible", ErrInvalidScene)
	}
	return result, nil
}

func parseTransformStep(step gjson.Result) (core.Matrix, error) {
	if !step.IsObject() {
		return core.Matrix{}, fmt.Errorf("%w: transform step must be an object", ErrInvalidScene)
	}

	var (
		m     core.Matrix
		err   error
		found int
	)
	step.ForEach(func(key, value gjson.Result) bool {
		found++
		switch key.String() {
		case "translate":
			var xyz []float64
			if xyz, err = parseFloats(value, 3); err == nil {
				m = core.Translation(xyz[0], xyz[1], xyz[2])
			}
		case "scale":
			var xyz []float64
			if xyz, err = parseFloats(value, 3); err == nil {
				m = core.Scaling(xyz[0], xyz[1], xyz[2])
			}
		case "rotate_x":
			m = core.RotationX(value.Float())
		case "rotate_y":
			m = core.RotationY(value.Float())
		case "rotate_z":
			m = core.RotationZ(value.Float())
		case "shear":
			var s []float64
			if s, err = parseFloats(value, 6); err == nil {
				m = core.Shearing(s[0], s[1], s[2], s[3], s[4], s[5])
			}
		default:
			err = fmt.Errorf("%w: unknown transform %q", ErrInvalidScene, key.String())
		}
		return err == nil
	})

	if err != nil {
		return core.Matrix{}, err
	}
	if found != 1 {
		return core.Matrix{}, fmt.Errorf("%w: transform step must have exactly one key", ErrInvalidScene)
	}
	return m, nil
}

func parseFloats(v gjson.Result, n int) ([]float64, error) {
	values := v.Array()
	if !v.IsArray() || len(values) != n {
		return nil, fmt.Errorf("%w: expected a list of %d numbers", ErrInvalidScene, n)
	}

	result := make([]float64, n)
	for i, value := range values {
		if value.Type != gjson.Number {
			return nil, fmt.Errorf("%w: expected a list of %d numbers", ErrInvalidScene, n)
		}
		result[i] = value.Float()
	}
	return result, nil
}

func parsePoint(v gjson.Result) (core.Tuple, error) {
	xyz, err := parseFloats(v, 3)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewPoint(xyz[0], xyz[1], xyz[2]), nil
}

func parseVector(v gjson.Result) (core.Tuple, error) {
	xyz, err := parseFloats(v, 3)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewVector(xyz[0], xyz[1], xyz[2]), nil
}

func parseColor(v gjson.Result) (core.Tuple, error) {
	rgb, err := parseFloats(v, 3)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewColor(rgb[0], rgb[1], rgb[2]), nil
}

// validateFilePath rejects empty names and anything but .json files
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if ext := strings.ToLower(filepath.Ext(filename)); ext != ".json" {
		return fmt.Errorf("unsupported scene file extension %q", ext)
	}
	return nil
}
