package lights

import (
	"fmt"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

// PointLight is a light source with no size emitting the same intensity in
// every direction
type PointLight struct {
	Position  core.Tuple // Point
	Intensity core.Tuple // Color
}

// NewPointLight creates a point light at position with the given intensity
func NewPointLight(position, intensity core.Tuple) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

func (l PointLight) String() string {
	return fmt.Sprintf("PointLight{pos=%v, intensity=%v}", l.Position, l.Intensity)
}
