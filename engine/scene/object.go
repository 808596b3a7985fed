package scene

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/mesh"
	"github.com/Carmen-Shannon/oxy-gl/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawContext carries the GPU-facing resources an object's draw function may
// need: the shape catalog for issuing mesh draws and the texture manager for
// per-draw sampling tweaks such as wrap mode changes.
type DrawContext struct {
	Shapes   mesh.Shapes
	Textures texture.Manager
}

// objectImpl is the implementation of the Object interface.
type objectImpl struct {
	name string

	scale       mgl32.Vec3
	rotationDeg mgl32.Vec3
	position    mgl32.Vec3

	textureTag  string
	materialTag string
	uvScale     mgl32.Vec2
	color       mgl32.Vec4
	useLighting bool

	draw func(ctx DrawContext)
}

// Object defines the interface for one drawable item in a scene: a transform,
// surface settings, and a draw function that issues the mesh draw calls. The
// scene uploads the object's uniforms before invoking Draw.
type Object interface {
	// Name returns the object's identifier, used in error messages.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// ModelMatrix composes the object's world transform. Rotation applies
	// x then y then z, after scaling and before translation.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4

	// TextureTag returns the tag of the texture to sample, or the empty
	// string when the object renders with a flat color.
	//
	// Returns:
	//   - string: the texture tag
	TextureTag() string

	// MaterialTag returns the tag of the material to light with, or the
	// empty string for the registry default.
	//
	// Returns:
	//   - string: the material tag
	MaterialTag() string

	// UVScale returns the texture coordinate multiplier.
	//
	// Returns:
	//   - mgl32.Vec2: the UV scale
	UVScale() mgl32.Vec2

	// Color returns the flat RGBA color used when no texture is set.
	//
	// Returns:
	//   - mgl32.Vec4: the object color
	Color() mgl32.Vec4

	// UseLighting reports whether the object participates in Phong shading.
	//
	// Returns:
	//   - bool: true when lit
	UseLighting() bool

	// SetPosition moves the object in world space.
	//
	// Parameters:
	//   - position: the new world-space position
	SetPosition(position mgl32.Vec3)

	// SetRotationDeg sets the per-axis rotation in degrees.
	//
	// Parameters:
	//   - rotation: degrees around x, y, z
	SetRotationDeg(rotation mgl32.Vec3)

	// Draw issues the object's mesh draw calls. Uniforms have already been
	// uploaded by the scene.
	//
	// Parameters:
	//   - ctx: the draw resources
	Draw(ctx DrawContext)
}

var _ Object = &objectImpl{}

// NewObject creates a new Object configured with the provided options.
// Defaults: unit scale, no rotation, origin position, white color, unit UV
// scale, lighting enabled, and a no-op draw function.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - Object: a new Object instance
func NewObject(options ...ObjectBuilderOption) Object {
	o := &objectImpl{
		scale:       mgl32.Vec3{1, 1, 1},
		uvScale:     mgl32.Vec2{1, 1},
		color:       mgl32.Vec4{1, 1, 1, 1},
		useLighting: true,
	}
	for _, opt := range options {
		opt(o)
	}
	return o
}

func (o *objectImpl) Name() string {
	return o.name
}

func (o *objectImpl) ModelMatrix() mgl32.Mat4 {
	scale := mgl32.Scale3D(o.scale.X(), o.scale.Y(), o.scale.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(o.rotationDeg.X()))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(o.rotationDeg.Y()))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(o.rotationDeg.Z()))
	translation := mgl32.Translate3D(o.position.X(), o.position.Y(), o.position.Z())

	return translation.Mul4(rotZ).Mul4(rotY).Mul4(rotX).Mul4(scale)
}

func (o *objectImpl) TextureTag() string {
	return o.textureTag
}

func (o *objectImpl) MaterialTag() string {
	return o.materialTag
}

func (o *objectImpl) UVScale() mgl32.Vec2 {
	return o.uvScale
}

func (o *objectImpl) Color() mgl32.Vec4 {
	return o.color
}

func (o *objectImpl) UseLighting() bool {
	return o.useLighting
}

func (o *objectImpl) SetPosition(position mgl32.Vec3) {
	o.position = position
}

func (o *objectImpl) SetRotationDeg(rotation mgl32.Vec3) {
	o.rotationDeg = rotation
}

func (o *objectImpl) Draw(ctx DrawContext) {
	if o.draw != nil {
		o.draw(ctx)
	}
}
