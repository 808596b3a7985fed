package scene

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/material"
	"github.com/Carmen-Shannon/oxy-gl/engine/mesh"
	"github.com/Carmen-Shannon/oxy-gl/engine/texture"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithCamera sets the scene's camera.
//
// Parameters:
//   - cam: the camera to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.camera = cam
	}
}

// WithShapes sets the scene's shape catalog.
//
// Parameters:
//   - shapes: the shape catalog to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShapes(shapes mesh.Shapes) SceneBuilderOption {
	return func(s *scene) {
		s.shapes = shapes
	}
}

// WithTextures sets the scene's texture manager.
//
// Parameters:
//   - textures: the texture manager to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTextures(textures texture.Manager) SceneBuilderOption {
	return func(s *scene) {
		s.textures = textures
	}
}

// WithMaterials sets the scene's material registry.
//
// Parameters:
//   - materials: the material registry to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMaterials(materials *material.Registry) SceneBuilderOption {
	return func(s *scene) {
		s.materials = materials
	}
}

// WithObjects adds initial objects to the scene's draw list.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...Object) SceneBuilderOption {
	return func(s *scene) {
		s.objects = append(s.objects, objects...)
	}
}

// WithLights adds initial lights to the scene.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		for _, l := range lights {
			if l.Type() == light.LightTypeSpot {
				s.spotlight = l
				continue
			}
			s.pointLights = append(s.pointLights, l)
		}
	}
}
