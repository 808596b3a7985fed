package light

// LightType identifies the kind of light source.
type LightType int

const (
	// LightTypePoint represents a light that emits in all directions from a position.
	// Used for bare bulbs and screen glows. Attenuates with distance via the
	// constant/linear/quadratic coefficients.
	LightTypePoint LightType = iota

	// LightTypeSpot represents a light that emits in a cone from a position along a direction.
	// Used here as the camera-attached flashlight. Attenuates with both distance
	// and angle from the cone axis, controlled by inner and outer cone angles.
	LightTypeSpot
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType LightType
	position  [3]float32
	direction [3]float32
	ambient   [3]float32
	diffuse   [3]float32
	specular  [3]float32
	constant  float32
	linear    float32
	quadratic float32
	innerCone float32 // stored as cos(angle in radians)
	outerCone float32 // stored as cos(angle in radians)
	enabled   bool
}

// Light defines the interface for a light source in the scene.
//
// Lights are scene-level entities that contribute to the final pixel color
// during the forward lighting pass. Both light types share this interface;
// type-specific properties (cone angles for spot lights) return their stored
// defaults when not applicable.
//
// Lights are managed by the scene and uploaded to the shader as discrete
// uniforms each frame.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - LightType: the light type (point or spot)
	Type() LightType

	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Direction returns the normalized direction of the light.
	// For spot lights this is the cone axis. Meaningless for point lights.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Ambient returns the ambient RGB contribution of the light.
	//
	// Returns:
	//   - [3]float32: ambient color as (r, g, b)
	Ambient() [3]float32

	// Diffuse returns the diffuse RGB contribution of the light.
	//
	// Returns:
	//   - [3]float32: diffuse color as (r, g, b)
	Diffuse() [3]float32

	// Specular returns the specular RGB contribution of the light.
	//
	// Returns:
	//   - [3]float32: specular color as (r, g, b)
	Specular() [3]float32

	// Attenuation returns the distance falloff coefficients.
	// Attenuation at distance d is 1 / (constant + linear*d + quadratic*d*d).
	//
	// Returns:
	//   - constant: the constant coefficient
	//   - linear: the linear coefficient
	//   - quadratic: the quadratic coefficient
	Attenuation() (constant, linear, quadratic float32)

	// InnerCone returns the cosine of the inner cone half-angle for spot lights.
	// Fragments within this angle receive full intensity.
	//
	// Returns:
	//   - float32: cos(inner half-angle)
	InnerCone() float32

	// OuterCone returns the cosine of the outer cone half-angle for spot lights.
	// Fragments outside this angle receive zero intensity from the cone falloff.
	//
	// Returns:
	//   - float32: cos(outer half-angle)
	OuterCone() float32

	// Enabled returns whether this light is active for rendering.
	// Disabled lights are skipped during uniform upload.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetAmbient sets the ambient RGB contribution.
	//
	// Parameters:
	//   - r, g, b: color components
	SetAmbient(r, g, b float32)

	// SetDiffuse sets the diffuse RGB contribution.
	//
	// Parameters:
	//   - r, g, b: color components
	SetDiffuse(r, g, b float32)

	// SetSpecular sets the specular RGB contribution.
	//
	// Parameters:
	//   - r, g, b: color components
	SetSpecular(r, g, b float32)

	// SetAttenuation sets the distance falloff coefficients.
	//
	// Parameters:
	//   - constant: the constant coefficient
	//   - linear: the linear coefficient
	//   - quadratic: the quadratic coefficient
	SetAttenuation(constant, linear, quadratic float32)

	// SetSpotCone sets the inner and outer cone half-angles for spot lights.
	// Angles are specified in degrees and stored internally as cosines.
	//
	// Parameters:
	//   - innerDeg: inner cone half-angle in degrees
	//   - outerDeg: outer cone half-angle in degrees
	SetSpotCone(innerDeg, outerDeg float32)

	// SetEnabled enables or disables the light for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified type with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - lightType: the kind of light to create (point or spot)
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		position:  [3]float32{0, 0, 0},
		direction: [3]float32{0, -1, 0},
		ambient:   [3]float32{0.05, 0.05, 0.05},
		diffuse:   [3]float32{1, 1, 1},
		specular:  [3]float32{1, 1, 1},
		constant:  1.0,
		linear:    0.007,
		quadratic: 0.0002,
		innerCone: 0.9063, // cos(25°)
		outerCone: 0.8192, // cos(35°)
		enabled:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Ambient() [3]float32 {
	return l.ambient
}

func (l *lightImpl) Diffuse() [3]float32 {
	return l.diffuse
}

func (l *lightImpl) Specular() [3]float32 {
	return l.specular
}

func (l *lightImpl) Attenuation() (constant, linear, quadratic float32) {
	return l.constant, l.linear, l.quadratic
}

func (l *lightImpl) InnerCone() float32 {
	return l.innerCone
}

func (l *lightImpl) OuterCone() float32 {
	return l.outerCone
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	l.direction = normalize3(x, y, z)
}

func (l *lightImpl) SetAmbient(r, g, b float32) {
	l.ambient = [3]float32{r, g, b}
}

func (l *lightImpl) SetDiffuse(r, g, b float32) {
	l.diffuse = [3]float32{r, g, b}
}

func (l *lightImpl) SetSpecular(r, g, b float32) {
	l.specular = [3]float32{r, g, b}
}

func (l *lightImpl) SetAttenuation(constant, linear, quadratic float32) {
	l.constant = constant
	l.linear = linear
	l.quadratic = quadratic
}

func (l *lightImpl) SetSpotCone(innerDeg, outerDeg float32) {
	l.innerCone = cosDeg(innerDeg)
	l.outerCone = cosDeg(outerDeg)
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
