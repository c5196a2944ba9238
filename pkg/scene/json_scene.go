package scene

import (
	"fmt"

	"github.com/ljanyst/ray-tracer/pkg/geometry"
	"github.com/ljanyst/ray-tracer/pkg/loaders"
	"github.com/ljanyst/ray-tracer/pkg/world"
)

// NewJSONScene creates a scene from a JSON scene file
func NewJSONScene(filepath string, cameraOverrides ...CameraConfig) (*Scene, error) {
	desc, err := loaders.LoadSceneFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}
	return NewSceneFromDescription(desc, cameraOverrides...)
}

// NewSceneFromDescription converts a parsed scene description into a
// renderable scene. Camera fields the description leaves out fall back to
// the built-in demo camera. A camera that cannot be oriented is reported
// as loaders.ErrInvalidScene.
func NewSceneFromDescription(desc *loaders.SceneDescription, cameraOverrides ...CameraConfig) (*Scene, error) {
	w := world.New()
	w.Shadows = desc.Shadows
	w.AddLight(desc.Lights...)
	for _, shapeDesc := range desc.Shapes {
		w.AddShape(convertShape(shapeDesc))
	}

	cameraConfig := demoCameraConfig()
	if desc.Camera != nil {
		cameraConfig = MergeCameraConfig(cameraConfig, convertCamera(desc.Camera))
	}

	merged := cameraConfig
	if len(cameraOverrides) > 0 {
		merged = MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("%w: camera: %v", loaders.ErrInvalidScene, err)
	}

	name := desc.Name
	if name == "" {
		name = "json"
	}

	s := newScene(name, w, cameraConfig, cameraOverrides...)
	if desc.MaxDepth >= 0 {
		s.MaxDepth = desc.MaxDepth
	}
	return s, nil
}

func convertCamera(camera *loaders.CameraDescription) CameraConfig {
	return CameraConfig{
		Width:       camera.Width,
		Height:      camera.Height,
		FieldOfView: camera.FieldOfView,
		From:        camera.From,
		To:          camera.To,
		Up:          camera.Up,
	}
}

// convertShape builds the shape a description names. The loader only lets
// known types through, so the default branch is the sphere.
func convertShape(desc loaders.ShapeDescription) *geometry.Shape {
	var shape *geometry.Shape
	switch desc.Type {
	case "plane":
		shape = geometry.NewPlane()
	case "cube":
		shape = geometry.NewCube()
	case "cylinder":
		shape = geometry.NewCylinder(desc.Minimum, desc.Maximum, desc.Closed)
	case "cone":
		shape = geometry.NewCone(desc.Minimum, desc.Maximum, desc.Closed)
	default:
		shape = geometry.NewSphere()
	}
	return shape.ApplyTransform(desc.Transform).SetMaterial(desc.Material)
}
