package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/geometry"
	"github.com/ljanyst/ray-tracer/pkg/material"
	"github.com/ljanyst/ray-tracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Color        [3]float64             `json:"color"` // Shaded color of the pixel
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo extracts the shading parameters of a material
func (s *Server) extractMaterialInfo(mat *material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":           fmt.Sprintf("#%02x%02x%02x", channel(mat.Color.R()), channel(mat.Color.G()), channel(mat.Color.B())),
		"ambient":         mat.Ambient,
		"diffuse":         mat.Diffuse,
		"specular":        mat.Specular,
		"shininess":       mat.Shininess,
		"reflective":      mat.Reflective,
		"transparency":    mat.Transparency,
		"refractiveIndex": mat.RefractiveIndex,
	}
	if mat.Pattern != nil {
		properties["pattern"] = describePattern(mat.Pattern)
	}
	return properties
}

// describePattern flattens a pattern tree into nested kind names
func describePattern(p *material.Pattern) interface{} {
	children := p.Children()
	if len(children) == 0 {
		return p.Kind().String()
	}

	nested := make([]interface{}, 0, len(children))
	for _, child := range children {
		nested = append(nested, describePattern(child))
	}
	return map[string]interface{}{"type": p.Kind().String(), "children": nested}
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(shape *geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.Primitive().(type) {
	case geometry.Sphere:
		return "sphere", properties

	case geometry.Plane:
		return "plane", properties

	case geometry.Cube:
		return "cube", properties

	case geometry.Cylinder:
		properties["minimum"] = boundValue(geom.Minimum)
		properties["maximum"] = boundValue(geom.Maximum)
		properties["closed"] = geom.Closed
		return "cylinder", properties

	case geometry.Cone:
		properties["minimum"] = boundValue(geom.Minimum)
		properties["maximum"] = boundValue(geom.Maximum)
		properties["closed"] = geom.Closed
		return "cone", properties

	default:
		return "unknown", properties
	}
}

// boundValue keeps infinite bounds representable in JSON
func boundValue(v float64) interface{} {
	if math.IsInf(v, 0) {
		return nil
	}
	return v
}

// InspectResult contains information about the first object hit by an
// inspection ray
type InspectResult struct {
	Hit   bool
	Props geometry.Properties
	Color core.Tuple
}

// inspectPixel casts the primary ray of a pixel and shades its first hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	ray := sceneObj.Camera.RayForPixel(pixelX, pixelY)

	xs := sceneObj.World.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResult{Hit: false}
	}

	props := hit.Properties(ray, xs)
	return InspectResult{
		Hit:   true,
		Props: props,
		Color: sceneObj.World.ShadeHit(props, sceneObj.MaxDepth),
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	// Create request object for parameter parsing
	inspectReq := &RenderRequest{}

	// Parse common scene parameters using shared function
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	props := result.Props
	geometryType, geometryProps := s.extractGeometryInfo(props.Shape)

	response := InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        [3]float64{props.Point.X, props.Point.Y, props.Point.Z},
		Normal:       [3]float64{props.NormalV.X, props.NormalV.Y, props.NormalV.Z},
		Distance:     props.T,
		Inside:       props.Inside,
		N1:           props.N1,
		N2:           props.N2,
		Color:        [3]float64{result.Color.R(), result.Color.G(), result.Color.B()},
		Properties: map[string]interface{}{
			"material": s.extractMaterialInfo(props.Shape.Material()),
			"geometry": geometryProps,
		},
	}

	writeJSON(w, http.StatusOK, response)
}
