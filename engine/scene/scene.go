// package scene groups the drawable objects, lights, camera, and GPU
// resources that make up one rendered view, and issues the per-frame uniform
// uploads and draw calls for all of them.
package scene

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/material"
	"github.com/Carmen-Shannon/oxy-gl/engine/mesh"
	"github.com/Carmen-Shannon/oxy-gl/engine/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.Mutex

	name   string
	active bool

	camera    camera.Camera
	shapes    mesh.Shapes
	textures  texture.Manager
	materials *material.Registry

	objects     []Object
	pointLights []light.Light
	spotlight   light.Light

	// defaultMaterial lights objects that carry no material tag.
	defaultMaterial material.Material
}

// Scene manages a collection of Objects with a Camera, shape catalog, texture
// manager, and material registry for rendering. Objects draw in insertion
// order. Scenes can be hot-swapped via the Active flag to switch between
// different views. Thread-safe for concurrent access; DrawCalls itself must
// run on the thread that owns the GL context.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Shapes returns the scene's shape catalog.
	Shapes() mesh.Shapes

	// Textures returns the scene's texture manager.
	Textures() texture.Manager

	// Materials returns the scene's material registry.
	Materials() *material.Registry

	// Add appends an object to the scene's draw list.
	//
	// Parameters:
	//   - obj: the Object to add
	Add(obj Object)

	// Count returns the number of objects in the scene.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// Clear removes all objects from the scene. Lights and GPU resources are
	// untouched.
	Clear()

	// AddLight adds a light source to the scene. Point lights accumulate up
	// to the shader's array size; a spot light replaces any previous spot.
	//
	// Parameters:
	//   - l: the Light to add
	AddLight(l light.Light)

	// Lights returns all point lights currently registered in the scene.
	//
	// Returns:
	//   - []light.Light: the scene's point light list
	Lights() []light.Light

	// Spotlight returns the scene's spot light, or nil if none was added.
	// The spot light tracks the camera's position and view direction each
	// frame.
	//
	// Returns:
	//   - light.Light: the spot light or nil
	Spotlight() light.Light

	// DrawCalls updates the camera, uploads the frame uniforms (matrices,
	// lights), then uploads per-object uniforms and invokes each object's
	// draw function in insertion order.
	//
	// Parameters:
	//   - program: the shader program to upload uniforms to
	//
	// Returns:
	//   - error: error if the scene has no camera or an object references an
	//     unknown texture or material tag
	DrawCalls(program shader.Program) error

	// Destroy releases the scene's GPU resources (shapes and textures).
	Destroy()
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the specified options. A camera, shape
// catalog, and texture manager are created by default and can be replaced
// via options.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the configured scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:              &sync.Mutex{},
		name:            "default",
		active:          true,
		camera:          camera.NewCamera(),
		shapes:          mesh.NewShapes(),
		textures:        texture.NewManager(),
		materials:       material.NewRegistry(),
		defaultMaterial: material.NewMaterial(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera = cam
}

func (s *scene) Shapes() mesh.Shapes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shapes
}

func (s *scene) Textures() texture.Manager {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.textures
}

func (s *scene) Materials() *material.Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.materials
}

func (s *scene) Add(obj Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, obj)
}

func (s *scene) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = nil
}

func (s *scene) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.Type() == light.LightTypeSpot {
		s.spotlight = l
		return
	}
	s.pointLights = append(s.pointLights, l)
}

func (s *scene) Lights() []light.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	lights := make([]light.Light, len(s.pointLights))
	copy(lights, s.pointLights)
	return lights
}

func (s *scene) Spotlight() light.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spotlight
}

func (s *scene) DrawCalls(program shader.Program) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.camera == nil {
		return fmt.Errorf("scene %q has no camera", s.name)
	}

	s.camera.Update()
	program.Use()
	s.textures.BindAll()

	program.SetMat4("view", s.camera.ViewMatrix())
	program.SetMat4("projection", s.camera.ProjectionMatrix())
	program.SetVec3("viewPosition", s.camera.Position())

	s.followCamera()
	s.uploadPointLights(program)
	s.uploadSpotLight(program)

	ctx := DrawContext{Shapes: s.shapes, Textures: s.textures}
	for _, obj := range s.objects {
		if err := s.uploadObjectUniforms(program, obj); err != nil {
			return err
		}
		obj.Draw(ctx)
	}
	return nil
}

func (s *scene) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shapes.Destroy()
	s.textures.DestroyAll()
}

// followCamera snaps the spot light to the camera's position and view
// direction, so it behaves like a headlamp.
// Caller must hold the mutex.
func (s *scene) followCamera() {
	if s.spotlight == nil {
		return
	}
	ctrl := s.camera.Controller()
	if ctrl == nil {
		return
	}
	pos := ctrl.Position()
	front := ctrl.Front()
	s.spotlight.SetPosition(pos.X(), pos.Y(), pos.Z())
	s.spotlight.SetDirection(front.X(), front.Y(), front.Z())
}

// uploadPointLights fills the shader's point light array, deactivating the
// slots past the registered lights.
// Caller must hold the mutex.
func (s *scene) uploadPointLights(program shader.Program) {
	for i := 0; i < shader.MaxPointLights; i++ {
		if i >= len(s.pointLights) || !s.pointLights[i].Enabled() {
			program.SetBool(pointLightUniform(i, "bActive"), false)
			continue
		}
		l := s.pointLights[i]
		program.SetVec3(pointLightUniform(i, "position"), mgl32.Vec3(l.Position()))
		program.SetVec3(pointLightUniform(i, "ambient"), mgl32.Vec3(l.Ambient()))
		program.SetVec3(pointLightUniform(i, "diffuse"), mgl32.Vec3(l.Diffuse()))
		program.SetVec3(pointLightUniform(i, "specular"), mgl32.Vec3(l.Specular()))
		program.SetBool(pointLightUniform(i, "bActive"), true)
	}
}

// uploadSpotLight fills the shader's spot light struct.
// Caller must hold the mutex.
func (s *scene) uploadSpotLight(program shader.Program) {
	if s.spotlight == nil || !s.spotlight.Enabled() {
		program.SetBool("spotLight.bActive", false)
		return
	}
	l := s.spotlight
	constant, linear, quadratic := l.Attenuation()
	program.SetVec3("spotLight.position", mgl32.Vec3(l.Position()))
	program.SetVec3("spotLight.direction", mgl32.Vec3(l.Direction()))
	program.SetVec3("spotLight.ambient", mgl32.Vec3(l.Ambient()))
	program.SetVec3("spotLight.diffuse", mgl32.Vec3(l.Diffuse()))
	program.SetVec3("spotLight.specular", mgl32.Vec3(l.Specular()))
	program.SetFloat("spotLight.constant", constant)
	program.SetFloat("spotLight.linear", linear)
	program.SetFloat("spotLight.quadratic", quadratic)
	program.SetFloat("spotLight.cutOff", l.InnerCone())
	program.SetFloat("spotLight.outerCutOff", l.OuterCone())
	program.SetBool("spotLight.bActive", true)
}

// uploadObjectUniforms uploads the transform, material, and texture state for
// one object.
// Caller must hold the mutex.
func (s *scene) uploadObjectUniforms(program shader.Program, obj Object) error {
	program.SetMat4("model", obj.ModelMatrix())

	mat := s.defaultMaterial
	if tag := obj.MaterialTag(); tag != "" {
		found, ok := s.materials.Find(tag)
		if !ok {
			return fmt.Errorf("object %q references unknown material %q", obj.Name(), tag)
		}
		mat = found
	}
	program.SetVec3("material.diffuseColor", mgl32.Vec3(mat.DiffuseColor()))
	program.SetVec3("material.specularColor", mgl32.Vec3(mat.SpecularColor()))
	program.SetFloat("material.shininess", mat.Shininess())

	if tag := obj.TextureTag(); tag != "" {
		slot, ok := s.textures.SlotForTag(tag)
		if !ok {
			return fmt.Errorf("object %q references unknown texture %q", obj.Name(), tag)
		}
		program.SetBool("bUseTexture", true)
		program.SetInt("objectTexture", slot)
	} else {
		program.SetBool("bUseTexture", false)
	}

	program.SetVec4("objectColor", obj.Color())
	program.SetVec2("UVscale", obj.UVScale())
	program.SetBool("bUseLighting", obj.UseLighting())
	return nil
}

// pointLightUniform names one field of a point light array element.
func pointLightUniform(index int, field string) string {
	return fmt.Sprintf("pointLights[%d].%s", index, field)
}
