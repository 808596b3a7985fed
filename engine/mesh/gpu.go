package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const bytesPerFloat = 4

// Attribute locations match the layout qualifiers in the scene shaders.
const (
	positionAttribLocation = 0
	normalAttribLocation   = 1
	uvAttribLocation       = 2
)

// buffers holds the GL handles and counts for one uploaded primitive.
type buffers struct {
	vao         uint32
	vbo         uint32
	ebo         uint32
	vertexCount int32
	indexCount  int32
}

// loaded reports whether the primitive has been uploaded.
func (b buffers) loaded() bool {
	return b.vao != 0
}

// uploadGeometry creates a VAO, uploads the interleaved vertex data (and the
// index list when present), and configures the position/normal/uv attribute
// pointers. Must be called on the thread that owns the GL context.
func uploadGeometry(g Geometry) buffers {
	b := buffers{
		vertexCount: int32(g.VertexCount()),
		indexCount:  int32(len(g.Indices)),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*bytesPerFloat, gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	if len(g.Indices) > 0 {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)
	}

	stride := int32(VertexStride * bytesPerFloat)
	gl.EnableVertexAttribArray(positionAttribLocation)
	gl.VertexAttribPointerWithOffset(positionAttribLocation, floatsPerPosition, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(normalAttribLocation)
	gl.VertexAttribPointerWithOffset(normalAttribLocation, floatsPerNormal, gl.FLOAT, false, stride, uintptr(floatsPerPosition*bytesPerFloat))
	gl.EnableVertexAttribArray(uvAttribLocation)
	gl.VertexAttribPointerWithOffset(uvAttribLocation, floatsPerUV, gl.FLOAT, false, stride, uintptr((floatsPerPosition+floatsPerNormal)*bytesPerFloat))

	gl.BindVertexArray(0)
	return b
}

// destroy releases the GL handles. Safe to call on an empty buffers value.
func (b *buffers) destroy() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	*b = buffers{}
}
