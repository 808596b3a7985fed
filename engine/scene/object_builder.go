package scene

import "github.com/go-gl/mathgl/mgl32"

// ObjectBuilderOption is a functional option for configuring an Object.
// Use the With* functions to create options.
type ObjectBuilderOption func(o *objectImpl)

// WithObjectName sets the object's identifier.
//
// Parameters:
//   - name: the object name
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithObjectName(name string) ObjectBuilderOption {
	return func(o *objectImpl) {
		o.name = name
	}
}

// WithScale sets the per-axis scale factors.
//
// Parameters:
//   - scale: scale along x, y, z
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithScale(scale mgl32.Vec3) ObjectBuilderOption {
	return func(o *objectImpl) {
		o.scale = scale
	}
}

// WithRotationDeg sets the per-axis rotation in degrees.
//
// Parameters:
//   - rotation: degrees around x, y, z
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithRotationDeg(rotation mgl32.Vec3) ObjectBuilderOption {
	return func(o *objectImpl) {
		o.rotationDeg = rotation
	}
}

// WithObjectPosition sets the world-space position.
//
// Parameters:
//   - position: world-space coordinates
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithObjectPosition(position mgl32.Vec3) ObjectBuilderOption {
	return func(o *objectImpl) {
		o.position = position
	}
}

// WithTextureTag selects the texture the object samples. Objects without a
// texture tag render with their flat color.
//
// Parameters:
//   - tag: the texture tag
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithTextureTag(tag string) ObjectBuilderOption {
	return func(o *objectImpl) {
		o.textureTag = tag
	}
}

// WithMaterialTag selects the material the object is lit with.
//
// Parameters:
//   - tag: the material tag
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithMaterialTag(tag string) ObjectBuilderOption {
	return func(o *objectImpl) {
		o.materialTag = tag
	}
}

// WithUVScale sets the texture coordinate multiplier.
//
// Parameters:
//   - scale: the UV scale
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithUVScale(scale mgl32.Vec2) ObjectBuilderOption {
	return func(o *objectImpl) {
		o.uvScale = scale
	}
}

// WithColor sets the flat RGBA color used when no texture is set.
//
// Parameters:
//   - color: the object color
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithColor(color mgl32.Vec4) ObjectBuilderOption {
	return func(o *objectImpl) {
		o.color = color
	}
}

// WithLightingDisabled excludes the object from Phong shading; it renders
// with its raw texture or color.
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithLightingDisabled() ObjectBuilderOption {
	return func(o *objectImpl) {
		o.useLighting = false
	}
}

// WithDraw sets the function that issues the object's mesh draw calls.
//
// Parameters:
//   - draw: the draw function
//
// Returns:
//   - ObjectBuilderOption: option function to apply
func WithDraw(draw func(ctx DrawContext)) ObjectBuilderOption {
	return func(o *objectImpl) {
		o.draw = draw
	}
}
