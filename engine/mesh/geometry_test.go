package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireStrideAligned(t *testing.T, g Geometry) {
	t.Helper()
	require.Zero(t, len(g.Vertices)%VertexStride, "vertex data must be a whole number of interleaved vertices")
}

func requireIndicesInBounds(t *testing.T, g Geometry) {
	t.Helper()
	count := uint32(g.VertexCount())
	for _, idx := range g.Indices {
		require.Less(t, idx, count)
	}
}

func assertUnitNormals(t *testing.T, g Geometry) {
	t.Helper()
	for i := 0; i < len(g.Vertices); i += VertexStride {
		nx := float64(g.Vertices[i+3])
		ny := float64(g.Vertices[i+4])
		nz := float64(g.Vertices[i+5])
		length := math.Sqrt(nx*nx + ny*ny + nz*nz)
		assert.InDelta(t, 1.0, length, 1e-5)
	}
}

func assertUVsInRange(t *testing.T, g Geometry) {
	t.Helper()
	for i := 0; i < len(g.Vertices); i += VertexStride {
		u := g.Vertices[i+6]
		v := g.Vertices[i+7]
		assert.GreaterOrEqual(t, u, float32(0))
		assert.LessOrEqual(t, u, float32(1))
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

// triangleWindings returns, for each indexed triangle, the dot product of
// its geometric normal (right-hand rule over the index order) with the
// summed vertex normals of its corners. Positive means counter-clockwise
// viewed from outside, negative clockwise; near-zero triangles are
// degenerate and reported as exactly zero.
func triangleWindings(g Geometry) []float64 {
	read := func(idx uint32, offset int) [3]float64 {
		base := int(idx)*VertexStride + offset
		return [3]float64{
			float64(g.Vertices[base]),
			float64(g.Vertices[base+1]),
			float64(g.Vertices[base+2]),
		}
	}

	dots := make([]float64, 0, len(g.Indices)/3)
	for i := 0; i+2 < len(g.Indices); i += 3 {
		i0, i1, i2 := g.Indices[i], g.Indices[i+1], g.Indices[i+2]
		v0, v1, v2 := read(i0, 0), read(i1, 0), read(i2, 0)

		e1 := [3]float64{v1[0] - v0[0], v1[1] - v0[1], v1[2] - v0[2]}
		e2 := [3]float64{v2[0] - v0[0], v2[1] - v0[1], v2[2] - v0[2]}
		cx := e1[1]*e2[2] - e1[2]*e2[1]
		cy := e1[2]*e2[0] - e1[0]*e2[2]
		cz := e1[0]*e2[1] - e1[1]*e2[0]
		if math.Sqrt(cx*cx+cy*cy+cz*cz) < 1e-9 {
			dots = append(dots, 0)
			continue
		}

		n0, n1, n2 := read(i0, 3), read(i1, 3), read(i2, 3)
		nx := n0[0] + n1[0] + n2[0]
		ny := n0[1] + n1[1] + n2[1]
		nz := n0[2] + n1[2] + n2[2]
		dots = append(dots, cx*nx+cy*ny+cz*nz)
	}
	return dots
}

func TestPlaneWindingCounterClockwise(t *testing.T) {
	for _, dot := range triangleWindings(PlaneGeometry(2, 2)) {
		assert.Greater(t, dot, 0.0)
	}
}

func TestTorusWindingCounterClockwise(t *testing.T) {
	for _, dot := range triangleWindings(TorusGeometry(1, 0.25, 12, 8)) {
		assert.Greater(t, dot, 0.0)
	}
}

func TestSphereWindingUniform(t *testing.T) {
	// The sphere parametrization emits clockwise faces throughout. Face
	// culling stays disabled, so what matters is that no triangle flips
	// orientation relative to its neighbors. Zero-area pole triangles are
	// skipped.
	for _, dot := range triangleWindings(SphereGeometry(8, 8, 1)) {
		if dot == 0 {
			continue
		}
		assert.Less(t, dot, 0.0)
	}
}

func TestBoxGeometry(t *testing.T) {
	g := BoxGeometry()

	requireStrideAligned(t, g)
	assert.Equal(t, 24, g.VertexCount())
	assert.Len(t, g.Indices, 36)
	requireIndicesInBounds(t, g)
	assertUnitNormals(t, g)
	assertUVsInRange(t, g)

	// Every face's indices stay within that face's four vertices.
	for face := 0; face < 6; face++ {
		for _, idx := range g.Indices[face*6 : face*6+6] {
			assert.GreaterOrEqual(t, idx, uint32(face*4))
			assert.Less(t, idx, uint32(face*4+4))
		}
	}
}

func TestPlaneGeometry(t *testing.T) {
	g := PlaneGeometry(20, 16)

	requireStrideAligned(t, g)
	assert.Equal(t, 4, g.VertexCount())
	assert.Len(t, g.Indices, 6)
	requireIndicesInBounds(t, g)

	// All vertices sit on the y=0 plane at the half extents.
	for i := 0; i < len(g.Vertices); i += VertexStride {
		assert.InDelta(t, 10, math.Abs(float64(g.Vertices[i])), 1e-6)
		assert.Zero(t, g.Vertices[i+1])
		assert.InDelta(t, 8, math.Abs(float64(g.Vertices[i+2])), 1e-6)
		assert.Equal(t, [3]float32{0, 1, 0}, [3]float32{g.Vertices[i+3], g.Vertices[i+4], g.Vertices[i+5]})
	}
}

func TestConeGeometryLayout(t *testing.T) {
	const slices = 12
	g, effective := ConeGeometry(1, 2, slices)

	requireStrideAligned(t, g)
	assert.Equal(t, slices, effective)
	// Base fan plus rim/apex pairs for the sides.
	assert.Equal(t, (slices+2)+2*(slices+1), g.VertexCount())
	assertUnitNormals(t, g)
	assertUVsInRange(t, g)

	// The side strip begins right after the fan and alternates rim/apex.
	apex := g.Vertices[(slices+3)*VertexStride : (slices+3)*VertexStride+3]
	assert.Equal(t, []float32{0, 2, 0}, apex)
}

func TestConeGeometryClampsSlices(t *testing.T) {
	_, effective := ConeGeometry(1, 1, 0)
	assert.Equal(t, 3, effective)
}

func TestCylinderGeometryLayout(t *testing.T) {
	const slices = 16
	g, effective := CylinderGeometry(0.8, 2.0, slices)

	requireStrideAligned(t, g)
	assert.Equal(t, slices, effective)
	assert.Equal(t, 2*(slices+2)+2*(slices+1), g.VertexCount())
	assertUnitNormals(t, g)
	assertUVsInRange(t, g)

	// Bottom fan center at the origin, top fan center at the full height.
	assert.Equal(t, float32(0), g.Vertices[1])
	topCenter := (slices + 2) * VertexStride
	assert.Equal(t, float32(2.0), g.Vertices[topCenter+1])

	// The first rim vertex closes the loop with the last.
	first := g.Vertices[VertexStride : VertexStride+3]
	last := g.Vertices[(slices+1)*VertexStride : (slices+1)*VertexStride+3]
	assert.InDelta(t, float64(first[0]), float64(last[0]), 1e-5)
	assert.InDelta(t, float64(first[2]), float64(last[2]), 1e-5)
}

func TestTaperedCylinderGeometry(t *testing.T) {
	const slices = 36
	const radius float32 = 1
	const height float32 = 1
	const taper float32 = 0.5
	g, effective := TaperedCylinderGeometry(radius, height, slices, taper)

	requireStrideAligned(t, g)
	assert.Equal(t, slices, effective)
	assert.Equal(t, 2*(slices+2)+2*(slices+1), g.VertexCount())
	assertUnitNormals(t, g)

	// The top ring radius shrinks by the taper factor.
	topRim := ((slices + 2) + 1) * VertexStride
	x := float64(g.Vertices[topRim])
	z := float64(g.Vertices[topRim+2])
	assert.InDelta(t, float64(radius*taper), math.Sqrt(x*x+z*z), 1e-5)

	// Side normals tilt upward for a narrowing profile.
	sideStart := 2 * (slices + 2) * VertexStride
	assert.Greater(t, g.Vertices[sideStart+4], float32(0))
}

func TestPrismGeometry(t *testing.T) {
	g := PrismGeometry(1, 1, 1)

	requireStrideAligned(t, g)
	assert.Equal(t, 32, g.VertexCount())
	assertUnitNormals(t, g)
	assertUVsInRange(t, g)

	// The apex edge sits at x=0, z=+depth/2.
	foundApex := false
	for i := 0; i < len(g.Vertices); i += VertexStride {
		if g.Vertices[i] == 0 && g.Vertices[i+2] == 0.5 {
			foundApex = true
			break
		}
	}
	assert.True(t, foundApex)
}

func TestPrismGeometrySlantNormals(t *testing.T) {
	g := PrismGeometry(1, 1, 1)

	// With unit extents the slanted faces carry the classic 2:1 slope normal.
	want := float32(2 / math.Sqrt(5))
	found := false
	for i := 0; i < len(g.Vertices); i += VertexStride {
		nx := g.Vertices[i+3]
		nz := g.Vertices[i+5]
		if math.Abs(float64(nx-want)) < 1e-5 && math.Abs(float64(nz+want/2)) < 1e-5 {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestPyramid3Geometry(t *testing.T) {
	g := Pyramid3Geometry()

	requireStrideAligned(t, g)
	assert.Equal(t, 12, g.VertexCount())
	assertUnitNormals(t, g)
	assertUVsInRange(t, g)
}

func TestPyramid4Geometry(t *testing.T) {
	g := Pyramid4Geometry(2, 2)

	requireStrideAligned(t, g)
	assert.Equal(t, 16, g.VertexCount())
	assertUnitNormals(t, g)

	// Side normals point away from the axis and upward.
	for i := 4 * VertexStride; i < len(g.Vertices); i += VertexStride {
		assert.Greater(t, g.Vertices[i+4], float32(0))
	}
}

func TestSphereGeometry(t *testing.T) {
	const lat, lon = 20, 20
	g := SphereGeometry(lat, lon, 2)

	requireStrideAligned(t, g)
	assert.Equal(t, (lat+1)*(lon+1), g.VertexCount())
	assert.Len(t, g.Indices, lat*lon*6)
	requireIndicesInBounds(t, g)
	assertUnitNormals(t, g)
	assertUVsInRange(t, g)

	// Every vertex lies on the sphere and its normal matches position/radius.
	for i := 0; i < len(g.Vertices); i += VertexStride {
		px := float64(g.Vertices[i])
		py := float64(g.Vertices[i+1])
		pz := float64(g.Vertices[i+2])
		assert.InDelta(t, 2.0, math.Sqrt(px*px+py*py+pz*pz), 1e-5)
		assert.InDelta(t, px/2, float64(g.Vertices[i+3]), 1e-5)
	}
}

func TestTorusGeometry(t *testing.T) {
	const mainSeg, tubeSeg = 24, 8
	g := TorusGeometry(1, 0.06, mainSeg, tubeSeg)

	requireStrideAligned(t, g)
	assert.Equal(t, (mainSeg+1)*(tubeSeg+1), g.VertexCount())
	assert.Len(t, g.Indices, mainSeg*tubeSeg*6)
	requireIndicesInBounds(t, g)
	assertUnitNormals(t, g)
	assertUVsInRange(t, g)

	// Every vertex sits tubeRadius away from its ring center.
	for i := 0; i < len(g.Vertices); i += VertexStride {
		px := float64(g.Vertices[i])
		py := float64(g.Vertices[i+1])
		pz := float64(g.Vertices[i+2])
		ringDist := math.Sqrt(px*px+py*py) - 1
		assert.InDelta(t, 0.06, math.Sqrt(ringDist*ringDist+pz*pz), 1e-5)
	}
}

func TestTorusGeometryClamps(t *testing.T) {
	g := TorusGeometry(1, 0, 2, 2)

	assert.Equal(t, (3+1)*(3+1), g.VertexCount())
	// Tube radius floor keeps the surface off the ring center line.
	for i := 0; i < len(g.Vertices); i += VertexStride {
		px := float64(g.Vertices[i])
		py := float64(g.Vertices[i+1])
		pz := float64(g.Vertices[i+2])
		ringDist := math.Sqrt(px*px+py*py) - 1
		assert.InDelta(t, 0.01, math.Sqrt(ringDist*ringDist+pz*pz), 1e-5)
	}
}

func TestDrawRangeBookkeeping(t *testing.T) {
	const slices int32 = 12

	assert.Equal(t, slices+2, discFanCount(slices))
	assert.Equal(t, 2*(slices+2), sideStripStart(slices))
	assert.Equal(t, 2*(slices+1), sideStripCount(slices))

	// The three ranges tile the cylinder vertex buffer exactly.
	g, _ := CylinderGeometry(1, 1, int(slices))
	assert.Equal(t, int(sideStripStart(slices)+sideStripCount(slices)), g.VertexCount())

	// The cone's fan plus full side strip tile its buffer too: the strip
	// count includes the repeated seam pair, so the last segment is drawn
	// rather than left open.
	cone, _ := ConeGeometry(1, 1, int(slices))
	assert.Equal(t, int(discFanCount(slices)+sideStripCount(slices)), cone.VertexCount())
}
