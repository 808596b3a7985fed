// package texture decodes image assets into GL texture objects and tracks
// the tag-to-unit mapping the renderer uses to select textures at draw time.
package texture

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxTextures is the number of texture units the manager will populate. It
// matches the minimum combined unit count GL guarantees, so every loaded
// texture can stay bound for the whole frame.
const MaxTextures = 16

// WrapMode selects the sampling behavior outside the [0,1] UV range.
type WrapMode int32

const (
	WrapRepeat         WrapMode = gl.REPEAT
	WrapMirroredRepeat WrapMode = gl.MIRRORED_REPEAT
)

// entry pairs a lookup tag with its GL texture handle. The entry's position
// in the slice is its texture unit.
type entry struct {
	tag    string
	handle uint32
}

// managerImpl is the implementation of the Manager interface.
type managerImpl struct {
	entries []entry
}

// Manager defines the interface for the texture registry. Textures are
// loaded once during scene preparation, bound to consecutive texture units
// with BindAll, and selected per draw by uploading the tag's unit index to
// the sampler uniform.
//
// All methods except SlotForTag and Len must be called on the thread that
// owns the GL context.
type Manager interface {
	// Load decodes the imported image and uploads it as a mipmapped RGBA
	// texture with repeat wrapping, registering it under the import's tag.
	//
	// Parameters:
	//   - tex: the imported texture to decode and upload
	//
	// Returns:
	//   - error: an error if decoding fails, the tag is already registered,
	//     or the manager is full
	Load(tex common.ImportedTexture) error

	// BindAll binds every loaded texture to its texture unit, in load order
	// starting at unit 0.
	BindAll()

	// SlotForTag retrieves the texture unit a tag was loaded into.
	//
	// Parameters:
	//   - tag: the texture tag to look up
	//
	// Returns:
	//   - int32: the texture unit index
	//   - bool: true if the tag was found
	SlotForTag(tag string) (int32, bool)

	// SetWrapMode changes the UV wrap mode of one loaded texture.
	//
	// Parameters:
	//   - tag: the texture tag to adjust
	//   - mode: the wrap mode to apply to both axes
	//
	// Returns:
	//   - error: an error if the tag is unknown
	SetWrapMode(tag string, mode WrapMode) error

	// Len returns the number of loaded textures.
	//
	// Returns:
	//   - int: the texture count
	Len() int

	// DestroyAll deletes every loaded texture object and empties the manager.
	DestroyAll()
}

var _ Manager = &managerImpl{}

// NewManager creates an empty texture manager.
//
// Returns:
//   - Manager: a new Manager instance
func NewManager() Manager {
	return &managerImpl{}
}

func (m *managerImpl) Load(tex common.ImportedTexture) error {
	pixels, width, height, err := tex.Decode()
	if err != nil {
		return fmt.Errorf("failed to decode texture %q: %w", tex.Tag, err)
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := m.register(tex.Tag, handle); err != nil {
		gl.DeleteTextures(1, &handle)
		return err
	}
	return nil
}

func (m *managerImpl) BindAll() {
	for i, e := range m.entries {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, e.handle)
	}
}

func (m *managerImpl) SlotForTag(tag string) (int32, bool) {
	for i, e := range m.entries {
		if e.tag == tag {
			return int32(i), true
		}
	}
	return 0, false
}

func (m *managerImpl) SetWrapMode(tag string, mode WrapMode) error {
	slot, ok := m.SlotForTag(tag)
	if !ok {
		return fmt.Errorf("no texture loaded with tag %q", tag)
	}
	gl.BindTexture(gl.TEXTURE_2D, m.entries[slot].handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(mode))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(mode))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (m *managerImpl) Len() int {
	return len(m.entries)
}

func (m *managerImpl) DestroyAll() {
	for i := range m.entries {
		gl.DeleteTextures(1, &m.entries[i].handle)
	}
	m.entries = nil
}

// register appends a tag/handle pair, enforcing the unit budget and tag
// uniqueness.
func (m *managerImpl) register(tag string, handle uint32) error {
	if len(m.entries) >= MaxTextures {
		return fmt.Errorf("texture limit of %d reached, cannot load %q", MaxTextures, tag)
	}
	if _, exists := m.SlotForTag(tag); exists {
		return fmt.Errorf("texture tag %q is already registered", tag)
	}
	m.entries = append(m.entries, entry{tag: tag, handle: handle})
	return nil
}
