// package shader compiles and links the GLSL programs used by the renderer
// and wraps uniform uploads behind a cached-location API.
package shader

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed scene.vert
var sceneVertexSource string

//go:embed scene.frag
var sceneFragmentSource string

// MaxPointLights is the size of the point light uniform array in the scene
// fragment shader. Lights past this count are ignored at draw time.
const MaxPointLights = 4

// programImpl is the implementation of the Program interface.
type programImpl struct {
	handle    uint32
	locations map[string]int32
}

// Program defines the interface for a linked GLSL shader program. Uniform
// setters look up locations once and cache them; setting a uniform the
// program does not declare is a silent no-op, matching GL semantics for
// location -1.
//
// All methods must be called on the thread that owns the GL context, with
// the program in use for the setters to take effect.
type Program interface {
	// Use makes this program the active one for subsequent draw calls.
	Use()

	// Handle retrieves the underlying GL program object.
	//
	// Returns:
	//   - uint32: the program handle
	Handle() uint32

	// SetBool uploads a boolean uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to upload
	SetBool(name string, value bool)

	// SetInt uploads an integer uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to upload
	SetInt(name string, value int32)

	// SetFloat uploads a float uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to upload
	SetFloat(name string, value float32)

	// SetVec2 uploads a vec2 uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to upload
	SetVec2(name string, value mgl32.Vec2)

	// SetVec3 uploads a vec3 uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to upload
	SetVec3(name string, value mgl32.Vec3)

	// SetVec4 uploads a vec4 uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to upload
	SetVec4(name string, value mgl32.Vec4)

	// SetMat4 uploads a 4x4 matrix uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to upload
	SetMat4(name string, value mgl32.Mat4)

	// Destroy deletes the program object.
	Destroy()
}

var _ Program = &programImpl{}

// NewSceneProgram compiles and links the embedded scene shaders, which
// implement per-fragment Phong lighting over a point light array and one
// spotlight.
//
// Returns:
//   - Program: the linked scene program
//   - error: an error if compilation or linking failed
func NewSceneProgram() (Program, error) {
	return NewProgram(sceneVertexSource, sceneFragmentSource)
}

// NewProgram compiles the given vertex and fragment sources and links them
// into a program.
//
// Parameters:
//   - vertexSource: the vertex shader GLSL source
//   - fragmentSource: the fragment shader GLSL source
//
// Returns:
//   - Program: the linked program
//   - error: an error carrying the GL info log if compilation or linking failed
func NewProgram(vertexSource, fragmentSource string) (Program, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex)
	gl.AttachShader(handle, fragment)
	gl.LinkProgram(handle)

	// Shader objects are no longer needed once the program is linked.
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(handle)
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("failed to link shader program: %v", infoLog)
	}

	return &programImpl{
		handle:    handle,
		locations: make(map[string]int32),
	}, nil
}

func (p *programImpl) Use() {
	gl.UseProgram(p.handle)
}

func (p *programImpl) Handle() uint32 {
	return p.handle
}

func (p *programImpl) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(p.location(name), v)
}

func (p *programImpl) SetInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}

func (p *programImpl) SetFloat(name string, value float32) {
	gl.Uniform1f(p.location(name), value)
}

func (p *programImpl) SetVec2(name string, value mgl32.Vec2) {
	gl.Uniform2f(p.location(name), value.X(), value.Y())
}

func (p *programImpl) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3f(p.location(name), value.X(), value.Y(), value.Z())
}

func (p *programImpl) SetVec4(name string, value mgl32.Vec4) {
	gl.Uniform4f(p.location(name), value.X(), value.Y(), value.Z(), value.W())
}

func (p *programImpl) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &value[0])
}

func (p *programImpl) Destroy() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

// location resolves and caches a uniform location. Unknown names resolve to
// -1, which GL treats as a no-op target.
func (p *programImpl) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// compileShader compiles a single shader stage and surfaces the GL info log
// on failure.
func compileShader(source string, shaderType uint32) (uint32, error) {
	handle := gl.CreateShader(shaderType)
	sources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, sources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength)+1)
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("%v", strings.TrimRight(infoLog, "\x00"))
	}
	return handle, nil
}

// programInfoLog reads the link-time info log for a program object.
func programInfoLog(handle uint32) string {
	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength)+1)
	gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}
