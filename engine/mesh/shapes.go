package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// BoxSide identifies one face of the box mesh for single-face draws.
type BoxSide int

const (
	BoxSideBack BoxSide = iota
	BoxSideBottom
	BoxSideLeft
	BoxSideRight
	BoxSideTop
	BoxSideFront
)

// verticesPerBoxSide is the fan length for one box face.
const verticesPerBoxSide = 4

// shapesImpl is the implementation of the Shapes interface.
type shapesImpl struct {
	box            buffers
	cone           buffers
	coneSlices     int32
	cylinder       buffers
	cylinderSlices int32
	tapered        buffers
	taperedSlices  int32
	plane          buffers
	prism          buffers
	pyramid3       buffers
	pyramid4       buffers
	sphere         buffers
	torus          buffers
}

// Shapes defines the interface for the primitive mesh catalog. Each Load
// method generates one primitive's geometry and uploads it to GPU buffers;
// the matching Draw methods issue the draw calls against the shared shader
// state the caller has already bound. Loading a primitive again replaces the
// previous upload.
//
// All methods must be called on the thread that owns the GL context. Drawing
// a primitive that has not been loaded is a no-op.
type Shapes interface {
	// LoadBoxMesh uploads a unit cube. Scale it per object via the model matrix.
	LoadBoxMesh()

	// LoadConeMesh uploads a cone with its base on the y=0 plane.
	//
	// Parameters:
	//   - radius: the base disc radius
	//   - height: the apex height
	//   - numSlices: radial subdivisions (minimum 3)
	LoadConeMesh(radius, height float32, numSlices int)

	// LoadCylinderMesh uploads a cylinder with its base on the y=0 plane.
	//
	// Parameters:
	//   - radius: the disc radius
	//   - height: the cylinder height
	//   - numSlices: radial subdivisions (minimum 3)
	LoadCylinderMesh(radius, height float32, numSlices int)

	// LoadTaperedCylinderMesh uploads a cylinder whose top radius is scaled by taper.
	//
	// Parameters:
	//   - radius: the bottom disc radius
	//   - height: the cylinder height
	//   - numSlices: radial subdivisions (minimum 3)
	//   - taper: the top radius as a fraction of the bottom radius
	LoadTaperedCylinderMesh(radius, height float32, numSlices int, taper float32)

	// LoadPlaneMesh uploads a flat quad on the y=0 plane.
	//
	// Parameters:
	//   - width: the extent along x
	//   - height: the extent along z
	LoadPlaneMesh(width, height float32)

	// LoadPrismMesh uploads a triangular prism with its apex edge facing +z.
	//
	// Parameters:
	//   - width: the back face extent along x
	//   - height: the prism extent along y
	//   - depth: the extent along z
	LoadPrismMesh(width, height, depth float32)

	// LoadPyramid3Mesh uploads a three-sided unit pyramid.
	LoadPyramid3Mesh()

	// LoadPyramid4Mesh uploads a four-sided pyramid.
	//
	// Parameters:
	//   - baseSize: the edge length of the square base
	//   - height: the total pyramid height
	LoadPyramid4Mesh(baseSize, height float32)

	// LoadSphereMesh uploads a UV sphere.
	//
	// Parameters:
	//   - latitudeSegments: pole-to-pole subdivisions (minimum 3)
	//   - longitudeSegments: equatorial subdivisions (minimum 3)
	//   - radius: the sphere radius
	LoadSphereMesh(latitudeSegments, longitudeSegments int, radius float32)

	// LoadTorusMesh uploads a torus lying in the xy plane.
	//
	// Parameters:
	//   - mainRadius: distance from the center to the tube center
	//   - tubeRadius: the tube radius (minimum 0.01)
	//   - mainSegments: subdivisions around the main ring (minimum 3)
	//   - tubeSegments: subdivisions around the tube (minimum 3)
	LoadTorusMesh(mainRadius, tubeRadius float32, mainSegments, tubeSegments int)

	// DrawBoxMesh draws all six box faces.
	DrawBoxMesh()

	// DrawBoxMeshSide draws a single box face.
	//
	// Parameters:
	//   - side: the face to draw
	DrawBoxMeshSide(side BoxSide)

	// DrawBoxMeshLines draws the box in wireframe.
	DrawBoxMeshLines()

	// DrawConeMesh draws the cone sides and, optionally, the base disc.
	//
	// Parameters:
	//   - drawBottom: whether to draw the base disc
	DrawConeMesh(drawBottom bool)

	// DrawConeMeshLines draws the cone in wireframe.
	DrawConeMeshLines()

	// DrawCylinderMesh draws the selected parts of the cylinder.
	//
	// Parameters:
	//   - drawBottom: whether to draw the bottom disc
	//   - drawTop: whether to draw the top disc
	//   - drawSides: whether to draw the side wall
	DrawCylinderMesh(drawBottom, drawTop, drawSides bool)

	// DrawCylinderMeshLines draws the cylinder in wireframe.
	DrawCylinderMeshLines()

	// DrawTaperedCylinderMesh draws the selected parts of the tapered cylinder.
	//
	// Parameters:
	//   - drawBottom: whether to draw the bottom disc
	//   - drawTop: whether to draw the top disc
	//   - drawSides: whether to draw the side wall
	DrawTaperedCylinderMesh(drawBottom, drawTop, drawSides bool)

	// DrawTaperedCylinderMeshLines draws the tapered cylinder in wireframe.
	DrawTaperedCylinderMeshLines()

	// DrawPlaneMesh draws the plane quad.
	DrawPlaneMesh()

	// DrawPlaneMeshLines draws the plane outline.
	DrawPlaneMeshLines()

	// DrawPrismMesh draws the prism.
	DrawPrismMesh()

	// DrawPrismMeshLines draws the prism in wireframe.
	DrawPrismMeshLines()

	// DrawPyramid3Mesh draws the three-sided pyramid.
	DrawPyramid3Mesh()

	// DrawPyramid4Mesh draws the four-sided pyramid.
	DrawPyramid4Mesh()

	// DrawSphereMesh draws the full sphere.
	DrawSphereMesh()

	// DrawHalfSphereMesh draws the upper hemisphere.
	DrawHalfSphereMesh()

	// DrawSphereMeshLines draws the sphere in wireframe.
	DrawSphereMeshLines()

	// DrawTorusMesh draws the full torus.
	DrawTorusMesh()

	// DrawHalfTorusMesh draws half of the torus ring.
	DrawHalfTorusMesh()

	// DrawTorusMeshLines draws the torus in wireframe.
	DrawTorusMeshLines()

	// Destroy releases all uploaded GPU buffers.
	Destroy()
}

var _ Shapes = &shapesImpl{}

// NewShapes creates an empty shape catalog. Load the primitives a scene needs
// before its first frame.
//
// Returns:
//   - Shapes: a new Shapes instance
func NewShapes() Shapes {
	return &shapesImpl{}
}

func (s *shapesImpl) LoadBoxMesh() {
	s.box.destroy()
	s.box = uploadGeometry(BoxGeometry())
}

func (s *shapesImpl) LoadConeMesh(radius, height float32, numSlices int) {
	s.cone.destroy()
	g, slices := ConeGeometry(radius, height, numSlices)
	s.cone = uploadGeometry(g)
	s.coneSlices = int32(slices)
}

func (s *shapesImpl) LoadCylinderMesh(radius, height float32, numSlices int) {
	s.cylinder.destroy()
	g, slices := CylinderGeometry(radius, height, numSlices)
	s.cylinder = uploadGeometry(g)
	s.cylinderSlices = int32(slices)
}

func (s *shapesImpl) LoadTaperedCylinderMesh(radius, height float32, numSlices int, taper float32) {
	s.tapered.destroy()
	g, slices := TaperedCylinderGeometry(radius, height, numSlices, taper)
	s.tapered = uploadGeometry(g)
	s.taperedSlices = int32(slices)
}

func (s *shapesImpl) LoadPlaneMesh(width, height float32) {
	s.plane.destroy()
	s.plane = uploadGeometry(PlaneGeometry(width, height))
}

func (s *shapesImpl) LoadPrismMesh(width, height, depth float32) {
	s.prism.destroy()
	s.prism = uploadGeometry(PrismGeometry(width, height, depth))
}

func (s *shapesImpl) LoadPyramid3Mesh() {
	s.pyramid3.destroy()
	s.pyramid3 = uploadGeometry(Pyramid3Geometry())
}

func (s *shapesImpl) LoadPyramid4Mesh(baseSize, height float32) {
	s.pyramid4.destroy()
	s.pyramid4 = uploadGeometry(Pyramid4Geometry(baseSize, height))
}

func (s *shapesImpl) LoadSphereMesh(latitudeSegments, longitudeSegments int, radius float32) {
	s.sphere.destroy()
	s.sphere = uploadGeometry(SphereGeometry(latitudeSegments, longitudeSegments, radius))
}

func (s *shapesImpl) LoadTorusMesh(mainRadius, tubeRadius float32, mainSegments, tubeSegments int) {
	s.torus.destroy()
	s.torus = uploadGeometry(TorusGeometry(mainRadius, tubeRadius, mainSegments, tubeSegments))
}

func (s *shapesImpl) DrawBoxMesh() {
	if !s.box.loaded() {
		return
	}
	gl.BindVertexArray(s.box.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, s.box.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawBoxMeshSide(side BoxSide) {
	if !s.box.loaded() || side < BoxSideBack || side > BoxSideFront {
		return
	}
	gl.BindVertexArray(s.box.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, int32(side)*verticesPerBoxSide, verticesPerBoxSide)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawBoxMeshLines() {
	if !s.box.loaded() {
		return
	}
	gl.BindVertexArray(s.box.vao)
	gl.DrawElementsWithOffset(gl.LINE_STRIP, s.box.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawConeMesh(drawBottom bool) {
	if !s.cone.loaded() {
		return
	}
	gl.BindVertexArray(s.cone.vao)
	if drawBottom {
		gl.DrawArrays(gl.TRIANGLE_FAN, 0, discFanCount(s.coneSlices))
	}
	gl.DrawArrays(gl.TRIANGLE_STRIP, discFanCount(s.coneSlices), sideStripCount(s.coneSlices))
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawConeMeshLines() {
	if !s.cone.loaded() {
		return
	}
	gl.BindVertexArray(s.cone.vao)
	gl.DrawArrays(gl.LINE_LOOP, 1, s.coneSlices)
	gl.DrawArrays(gl.LINE_STRIP, discFanCount(s.coneSlices), sideStripCount(s.coneSlices))
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawCylinderMesh(drawBottom, drawTop, drawSides bool) {
	drawCylinderParts(s.cylinder, s.cylinderSlices, drawBottom, drawTop, drawSides)
}

func (s *shapesImpl) DrawCylinderMeshLines() {
	drawCylinderLines(s.cylinder, s.cylinderSlices)
}

func (s *shapesImpl) DrawTaperedCylinderMesh(drawBottom, drawTop, drawSides bool) {
	drawCylinderParts(s.tapered, s.taperedSlices, drawBottom, drawTop, drawSides)
}

func (s *shapesImpl) DrawTaperedCylinderMeshLines() {
	drawCylinderLines(s.tapered, s.taperedSlices)
}

func (s *shapesImpl) DrawPlaneMesh() {
	if !s.plane.loaded() {
		return
	}
	gl.BindVertexArray(s.plane.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, s.plane.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawPlaneMeshLines() {
	if !s.plane.loaded() {
		return
	}
	gl.BindVertexArray(s.plane.vao)
	gl.DrawArrays(gl.LINE_LOOP, 0, 4)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawPrismMesh() {
	if !s.prism.loaded() {
		return
	}
	gl.BindVertexArray(s.prism.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, s.prism.vertexCount)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawPrismMeshLines() {
	if !s.prism.loaded() {
		return
	}
	gl.BindVertexArray(s.prism.vao)
	gl.DrawArrays(gl.LINE_STRIP, 0, s.prism.vertexCount)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawPyramid3Mesh() {
	if !s.pyramid3.loaded() {
		return
	}
	gl.BindVertexArray(s.pyramid3.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, s.pyramid3.vertexCount)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawPyramid4Mesh() {
	if !s.pyramid4.loaded() {
		return
	}
	gl.BindVertexArray(s.pyramid4.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, s.pyramid4.vertexCount)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawSphereMesh() {
	if !s.sphere.loaded() {
		return
	}
	gl.BindVertexArray(s.sphere.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, s.sphere.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawHalfSphereMesh() {
	if !s.sphere.loaded() {
		return
	}
	// Indices are ordered ring by ring from the pole, so the first half of
	// the list is the upper hemisphere.
	gl.BindVertexArray(s.sphere.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, s.sphere.indexCount/2, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawSphereMeshLines() {
	if !s.sphere.loaded() {
		return
	}
	gl.BindVertexArray(s.sphere.vao)
	gl.DrawElementsWithOffset(gl.LINES, s.sphere.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawTorusMesh() {
	if !s.torus.loaded() {
		return
	}
	gl.BindVertexArray(s.torus.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, s.torus.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawHalfTorusMesh() {
	if !s.torus.loaded() {
		return
	}
	// Indices walk the main ring in order, so the first half of the list is
	// a contiguous half ring.
	gl.BindVertexArray(s.torus.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, s.torus.indexCount/2, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) DrawTorusMeshLines() {
	if !s.torus.loaded() {
		return
	}
	gl.BindVertexArray(s.torus.vao)
	gl.DrawElementsWithOffset(gl.LINES, s.torus.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (s *shapesImpl) Destroy() {
	s.box.destroy()
	s.cone.destroy()
	s.cylinder.destroy()
	s.tapered.destroy()
	s.plane.destroy()
	s.prism.destroy()
	s.pyramid3.destroy()
	s.pyramid4.destroy()
	s.sphere.destroy()
	s.torus.destroy()
}

// drawCylinderParts issues the range draws shared by the straight and
// tapered cylinders: bottom fan, top fan, then the side strip.
func drawCylinderParts(b buffers, slices int32, drawBottom, drawTop, drawSides bool) {
	if !b.loaded() {
		return
	}
	gl.BindVertexArray(b.vao)
	if drawBottom {
		gl.DrawArrays(gl.TRIANGLE_FAN, 0, discFanCount(slices))
	}
	if drawTop {
		gl.DrawArrays(gl.TRIANGLE_FAN, discFanCount(slices), discFanCount(slices))
	}
	if drawSides {
		gl.DrawArrays(gl.TRIANGLE_STRIP, sideStripStart(slices), sideStripCount(slices))
	}
	gl.BindVertexArray(0)
}

// drawCylinderLines draws both disc rims and the side seams in wireframe.
func drawCylinderLines(b buffers, slices int32) {
	if !b.loaded() {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.LINE_LOOP, 1, slices)
	gl.DrawArrays(gl.LINE_LOOP, discFanCount(slices)+1, slices)
	gl.DrawArrays(gl.LINE_STRIP, sideStripStart(slices), sideStripCount(slices))
	gl.BindVertexArray(0)
}

// discFanCount is the vertex count of one disc fan: center plus a closed rim.
func discFanCount(slices int32) int32 {
	return slices + 2
}

// sideStripStart is the first vertex of the side strip in the two-disc layout.
func sideStripStart(slices int32) int32 {
	return 2 * discFanCount(slices)
}

// sideStripCount is the vertex count of the side strip.
func sideStripCount(slices int32) int32 {
	return 2 * (slices + 1)
}
