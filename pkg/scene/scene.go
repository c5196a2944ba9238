package scene

import (
	"fmt"
	"math"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/renderer"
	"github.com/ljanyst/ray-tracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *world.World
	Camera       *renderer.Camera
	CameraConfig CameraConfig
	MaxDepth     int // Recursion budget for reflected and refracted rays
}

// CameraConfig describes where the camera sits and how large the image is
type CameraConfig struct {
	Width       int
	Height      int
	FieldOfView float64 // Horizontal or vertical, whichever side is longer, in radians
	From        core.Tuple
	To          core.Tuple
	Up          core.Tuple
}

// MergeCameraConfig returns base with every non-zero field of override
// applied on top of it
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.FieldOfView > 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.From.IsPoint() {
		result.From = override.From
	}
	if override.To.IsPoint() {
		result.To = override.To
	}
	if override.Up.IsVector() && override.Up.Length() > 0 {
		result.Up = override.Up
	}
	return result
}

// Validate reports whether the configuration describes a usable camera:
// a positive image size and field of view, and a view transform that can
// be inverted
func (c CameraConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= math.Pi {
		return fmt.Errorf("field of view must be between 0 and pi, got %f", c.FieldOfView)
	}
	if !core.ViewTransform(c.From, c.To, c.Up).IsInvertible() {
		return fmt.Errorf("camera at %v looking at %v with up %v has no orientation", c.From, c.To, c.Up)
	}
	return nil
}

// NewCamera builds a camera looking from From towards To
func (c CameraConfig) NewCamera() *renderer.Camera {
	return renderer.NewCamera(c.Width, c.Height, c.FieldOfView).
		SetTransform(core.ViewTransform(c.From, c.To, c.Up))
}

// demoCameraConfig is the camera most of the built-in scenes share
func demoCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       640,
		Height:      310,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}
}

// newScene assembles a scene from a world and a default camera, applying
// the first camera override if there is one
func newScene(name string, w *world.World, defaults CameraConfig, cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := defaults
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaults, cameraOverrides[0])
	}

	return &Scene{
		Name:         name,
		World:        w,
		Camera:       cameraConfig.NewCamera(),
		CameraConfig: cameraConfig,
		MaxDepth:     world.DefaultMaxDepth,
	}
}

// GetShapeCount returns the number of shapes in the scene
func (s *Scene) GetShapeCount() int {
	return len(s.World.Shapes)
}
