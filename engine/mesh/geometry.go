// package mesh synthesizes vertex data for the catalog of parametric
// primitives and uploads it to GPU buffers with a fixed interleaved layout.
// Geometry generation is pure (no GL calls) so it can be tested headless;
// upload and draw live in gpu.go and shapes.go.
package mesh

import "math"

const (
	floatsPerPosition = 3
	floatsPerNormal   = 3
	floatsPerUV       = 2

	// VertexStride is the number of float32 components per interleaved vertex:
	// position (3), normal (3), texture coordinate (2).
	VertexStride = floatsPerPosition + floatsPerNormal + floatsPerUV
)

// Geometry holds interleaved vertex data and an optional index list for one
// primitive. Vertices are laid out position/normal/uv per VertexStride.
// Indexed primitives (box, plane, sphere, torus) carry Indices; fan/strip
// primitives leave it empty and are drawn by vertex ranges.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of interleaved vertices in the geometry.
//
// Returns:
//   - int: the vertex count
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / VertexStride
}

// appendVertex appends one interleaved vertex to dst.
func appendVertex(dst []float32, px, py, pz, nx, ny, nz, u, v float32) []float32 {
	return append(dst, px, py, pz, nx, ny, nz, u, v)
}

// faceNormal computes the normalized cross product of two edge vectors.
// Returns a zero vector when the edges are parallel or degenerate.
func faceNormal(ax, ay, az, bx, by, bz float32) [3]float32 {
	nx := ay*bz - az*by
	ny := az*bx - ax*bz
	nz := ax*by - ay*bx
	length := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
	if length == 0 {
		return [3]float32{0, 0, 0}
	}
	inv := 1.0 / length
	return [3]float32{nx * inv, ny * inv, nz * inv}
}

// clampSlices enforces the minimum slice count for radial primitives.
func clampSlices(numSlices int) int {
	if numSlices < 3 {
		return 3
	}
	return numSlices
}

// BoxGeometry builds a unit cube centered at the origin with per-face normals
// and unit UV quads. Each of the 6 faces contributes 4 vertices so faces can
// carry distinct normals and be drawn individually as triangle fans; the
// index list covers all faces as triangles.
//
// Side draw offsets (4 vertices each): back 0, bottom 4, left 8, right 12,
// top 16, front 20.
//
// Returns:
//   - Geometry: the box geometry (24 vertices, 36 indices)
func BoxGeometry() Geometry {
	verts := []float32{
		// Positions            // Normals           // Texture Coords
		// Back face
		0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
		0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
		-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
		-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
		// Bottom face
		-0.5, -0.5, 0.5, 0, -1, 0, 0, 1,
		-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
		0.5, -0.5, -0.5, 0, -1, 0, 1, 0,
		0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
		// Left face
		-0.5, 0.5, -0.5, -1, 0, 0, 0, 1,
		-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
		-0.5, -0.5, 0.5, -1, 0, 0, 1, 0,
		-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
		// Right face
		0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
		0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
		0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
		0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
		// Top face
		-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
		-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
		0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
		0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
		// Front face
		-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
		-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
		0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
		0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	}

	indices := []uint32{
		0, 1, 2, 0, 3, 2, // back
		4, 5, 6, 4, 7, 6, // bottom
		8, 9, 10, 8, 11, 10, // left
		12, 13, 14, 12, 15, 14, // right
		16, 17, 18, 16, 19, 18, // top
		20, 21, 22, 20, 23, 22, // front
	}

	return Geometry{Vertices: verts, Indices: indices}
}

// ConeGeometry builds a cone with its base disc on the y=0 plane and apex at
// (0, height, 0). The vertex buffer is laid out for two range draws: a
// triangle fan for the base (numSlices+2 vertices starting at 0) followed by
// a triangle strip for the sides (2*numSlices vertices). Side normals are
// radial; the apex repeats per slice so each strip segment carries its slice
// normal.
//
// Parameters:
//   - radius: the base disc radius
//   - height: the apex height above the base
//   - numSlices: the number of radial subdivisions (clamped to a minimum of 3)
//
// Returns:
//   - Geometry: the cone geometry (no index list; range-drawn)
//   - int: the effective slice count after clamping
func ConeGeometry(radius, height float32, numSlices int) (Geometry, int) {
	numSlices = clampSlices(numSlices)
	angleStep := 2 * math.Pi / float64(numSlices)

	verts := make([]float32, 0, (numSlices+2+2*(numSlices+1))*VertexStride)

	// Base disc fan: center then rim, with disc-projected UVs.
	verts = appendVertex(verts, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= numSlices; i++ {
		angle := float64(i) * angleStep
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		verts = appendVertex(verts, radius*c, 0, radius*s, 0, -1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}

	// Side strip: rim/apex pairs sharing the slice's radial normal.
	for i := 0; i <= numSlices; i++ {
		angle := float64(i) * angleStep
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		u := float32(i) / float32(numSlices)
		verts = appendVertex(verts, radius*c, 0, radius*s, c, 0, s, u, 1)
		verts = appendVertex(verts, 0, height, 0, c, 0, s, u, 0)
	}

	return Geometry{Vertices: verts}, numSlices
}

// CylinderGeometry builds a cylinder with its base disc on the y=0 plane and
// top disc at y=height. The vertex buffer is laid out for three range draws:
// bottom fan (numSlices+2 vertices), top fan (numSlices+2), then the side
// strip (2*(numSlices+1) vertices).
//
// Parameters:
//   - radius: the disc radius
//   - height: the cylinder height
//   - numSlices: the number of radial subdivisions (clamped to a minimum of 3)
//
// Returns:
//   - Geometry: the cylinder geometry (no index list; range-drawn)
//   - int: the effective slice count after clamping
func CylinderGeometry(radius, height float32, numSlices int) (Geometry, int) {
	numSlices = clampSlices(numSlices)
	angleStep := 2 * math.Pi / float64(numSlices)

	verts := make([]float32, 0, (2*(numSlices+2)+2*(numSlices+1))*VertexStride)

	// Bottom disc fan.
	verts = appendVertex(verts, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= numSlices; i++ {
		angle := float64(i) * angleStep
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		verts = appendVertex(verts, radius*c, 0, radius*s, 0, -1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}

	// Top disc fan.
	verts = appendVertex(verts, 0, height, 0, 0, 1, 0, 0.5, 0.5)
	for i := 0; i <= numSlices; i++ {
		angle := float64(i) * angleStep
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		verts = appendVertex(verts, radius*c, height, radius*s, 0, 1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}

	// Side strip: bottom/top pairs with radial normals.
	for i := 0; i <= numSlices; i++ {
		angle := float64(i) * angleStep
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		u := float32(i) / float32(numSlices)
		verts = appendVertex(verts, radius*c, 0, radius*s, c, 0, s, u, 0)
		verts = appendVertex(verts, radius*c, height, radius*s, c, 0, s, u, 1)
	}

	return Geometry{Vertices: verts}, numSlices
}

// TaperedCylinderGeometry builds a cylinder whose top disc radius is
// radius*taper, with the same three-range layout as CylinderGeometry.
// Side normals tilt outward according to the taper slope and are unit length.
//
// Parameters:
//   - radius: the bottom disc radius
//   - height: the cylinder height
//   - numSlices: the number of radial subdivisions (clamped to a minimum of 3)
//   - taper: the top radius as a fraction of the bottom radius
//
// Returns:
//   - Geometry: the tapered cylinder geometry (no index list; range-drawn)
//   - int: the effective slice count after clamping
func TaperedCylinderGeometry(radius, height float32, numSlices int, taper float32) (Geometry, int) {
	numSlices = clampSlices(numSlices)
	angleStep := 2 * math.Pi / float64(numSlices)
	topRadius := radius * taper

	// The side profile runs from (radius, 0) to (topRadius, height); its
	// outward normal in the radial/vertical plane is (height, radius-topRadius).
	slopeR := float64(height)
	slopeY := float64(radius - topRadius)
	slopeLen := math.Sqrt(slopeR*slopeR + slopeY*slopeY)
	nr := float32(slopeR / slopeLen)
	ny := float32(slopeY / slopeLen)

	verts := make([]float32, 0, (2*(numSlices+2)+2*(numSlices+1))*VertexStride)

	// Bottom disc fan.
	verts = appendVertex(verts, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
	for i := 0; i <= numSlices; i++ {
		angle := float64(i) * angleStep
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		verts = appendVertex(verts, radius*c, 0, radius*s, 0, -1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}

	// Top disc fan.
	verts = appendVertex(verts, 0, height, 0, 0, 1, 0, 0.5, 0.5)
	for i := 0; i <= numSlices; i++ {
		angle := float64(i) * angleStep
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		verts = appendVertex(verts, topRadius*c, height, topRadius*s, 0, 1, 0, 0.5+0.5*c, 0.5+0.5*s)
	}

	// Side strip with slanted normals.
	for i := 0; i <= numSlices; i++ {
		angle := float64(i) * angleStep
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		u := float32(i) / float32(numSlices)
		verts = appendVertex(verts, radius*c, 0, radius*s, c*nr, ny, s*nr, u, 0)
		verts = appendVertex(verts, topRadius*c, height, topRadius*s, c*nr, ny, s*nr, u, 1)
	}

	return Geometry{Vertices: verts}, numSlices
}

// PlaneGeometry builds a flat quad on the y=0 plane centered at the origin,
// facing up, with corner UVs covering the unit square.
//
// Parameters:
//   - width: the extent along x
//   - height: the extent along z
//
// Returns:
//   - Geometry: the plane geometry (4 vertices, 6 indices)
func PlaneGeometry(width, height float32) Geometry {
	halfWidth := width / 2
	halfHeight := height / 2

	verts := []float32{
		-halfWidth, 0, halfHeight, 0, 1, 0, 0, 0, // bottom-left
		halfWidth, 0, halfHeight, 0, 1, 0, 1, 0, // bottom-right
		halfWidth, 0, -halfHeight, 0, 1, 0, 1, 1, // top-right
		-halfWidth, 0, -halfHeight, 0, 1, 0, 0, 1, // top-left
	}

	indices := []uint32{
		0, 1, 2,
		0, 2, 3,
	}

	return Geometry{Vertices: verts, Indices: indices}
}

// PrismGeometry builds a triangular prism as a single triangle strip. The
// rectangular back face sits at z=-depth/2 and the apex edge runs along
// x=0, z=+depth/2. Faces are stitched with repeated vertices so each keeps
// its own flat normal; the slanted side normals are derived from the actual
// width/depth slope.
//
// Parameters:
//   - width: the back face extent along x
//   - height: the prism extent along y
//   - depth: the extent along z from back face to apex edge
//
// Returns:
//   - Geometry: the prism geometry (32 strip vertices, no index list)
func PrismGeometry(width, height, depth float32) Geometry {
	hw := width / 2
	hh := height / 2
	hd := depth / 2

	// The left slanted face carries a +x normal, the right face its mirror.
	ln := normalizedSlant(depth, -hw)
	rn := [3]float32{-ln[0], ln[1], ln[2]}

	verts := make([]float32, 0, 32*VertexStride)

	// Back face (normal -z), 8 strip vertices covering the quad.
	verts = appendVertex(verts, hw, hh, -hd, 0, 0, -1, 0, 1)
	verts = appendVertex(verts, hw, -hh, -hd, 0, 0, -1, 0, 0)
	verts = appendVertex(verts, -hw, -hh, -hd, 0, 0, -1, 1, 0)
	verts = appendVertex(verts, hw, hh, -hd, 0, 0, -1, 0, 1)
	verts = appendVertex(verts, hw, hh, -hd, 0, 0, -1, 0, 1)
	verts = appendVertex(verts, -hw, hh, -hd, 0, 0, -1, 1, 1)
	verts = appendVertex(verts, -hw, -hh, -hd, 0, 0, -1, 1, 0)
	verts = appendVertex(verts, hw, hh, -hd, 0, 0, -1, 0, 1)

	// Bottom face (normal -y).
	verts = appendVertex(verts, hw, -hh, -hd, 0, -1, 0, 0, 0)
	verts = appendVertex(verts, -hw, -hh, -hd, 0, -1, 0, 1, 0)
	verts = appendVertex(verts, 0, -hh, hd, 0, -1, 0, 0.5, 1)
	verts = appendVertex(verts, -hw, -hh, -hd, 0, -1, 0, 0, 0)

	// Left slanted face.
	verts = appendVertex(verts, -hw, -hh, -hd, ln[0], ln[1], ln[2], 0, 0)
	verts = appendVertex(verts, -hw, hh, -hd, ln[0], ln[1], ln[2], 0, 1)
	verts = appendVertex(verts, 0, hh, hd, ln[0], ln[1], ln[2], 1, 1)
	verts = appendVertex(verts, -hw, -hh, -hd, ln[0], ln[1], ln[2], 0, 0)
	verts = appendVertex(verts, -hw, -hh, -hd, ln[0], ln[1], ln[2], 0, 0)
	verts = appendVertex(verts, 0, -hh, hd, ln[0], ln[1], ln[2], 1, 0)
	verts = appendVertex(verts, 0, hh, hd, ln[0], ln[1], ln[2], 1, 1)
	verts = appendVertex(verts, -hw, -hh, -hd, ln[0], ln[1], ln[2], 0, 0)

	// Right slanted face.
	verts = appendVertex(verts, 0, hh, hd, rn[0], rn[1], rn[2], 0, 1)
	verts = appendVertex(verts, hw, hh, -hd, rn[0], rn[1], rn[2], 1, 1)
	verts = appendVertex(verts, hw, -hh, -hd, rn[0], rn[1], rn[2], 1, 0)
	verts = appendVertex(verts, 0, hh, hd, rn[0], rn[1], rn[2], 0, 1)
	verts = appendVertex(verts, 0, hh, hd, rn[0], rn[1], rn[2], 0, 1)
	verts = appendVertex(verts, 0, -hh, hd, rn[0], rn[1], rn[2], 0, 0)
	verts = appendVertex(verts, hw, -hh, -hd, rn[0], rn[1], rn[2], 1, 0)
	verts = appendVertex(verts, 0, hh, hd, rn[0], rn[1], rn[2], 0, 1)

	// Top face (normal +y).
	verts = appendVertex(verts, hw, hh, -hd, 0, 1, 0, 0, 0)
	verts = appendVertex(verts, 0, hh, hd, 0, 1, 0, 0.5, 1)
	verts = appendVertex(verts, -hw, hh, -hd, 0, 1, 0, 1, 0)
	verts = appendVertex(verts, hw, hh, -hd, 0, 1, 0, 0, 0)

	return Geometry{Vertices: verts}
}

// normalizedSlant normalizes a vector in the xz plane.
func normalizedSlant(x, z float32) [3]float32 {
	length := float32(math.Sqrt(float64(x*x + z*z)))
	if length == 0 {
		return [3]float32{0, 0, 0}
	}
	return [3]float32{x / length, 0, z / length}
}

// Pyramid3Geometry builds a three-sided pyramid (tetrahedron) with half-base
// 0.5 and height 0.5, drawn as a triangle strip of 12 vertices: three side
// faces with cross-product normals followed by the downward-facing base.
//
// Returns:
//   - Geometry: the pyramid geometry (12 strip vertices, no index list)
func Pyramid3Geometry() Geometry {
	const halfBase float32 = 0.5
	const height float32 = 0.5

	type face struct {
		top, bottom1, bottom2 [3]float32
	}

	faces := []face{
		// Left face
		{[3]float32{0, height, 0}, [3]float32{-halfBase, -height, halfBase}, [3]float32{0, -height, -halfBase}},
		// Right face
		{[3]float32{0, height, 0}, [3]float32{0, -height, -halfBase}, [3]float32{halfBase, -height, halfBase}},
		// Front face
		{[3]float32{0, height, 0}, [3]float32{halfBase, -height, halfBase}, [3]float32{-halfBase, -height, halfBase}},
	}

	verts := make([]float32, 0, 12*VertexStride)
	for _, f := range faces {
		n := faceNormal(
			f.bottom1[0]-f.top[0], f.bottom1[1]-f.top[1], f.bottom1[2]-f.top[2],
			f.bottom2[0]-f.top[0], f.bottom2[1]-f.top[1], f.bottom2[2]-f.top[2],
		)
		verts = appendVertex(verts, f.top[0], f.top[1], f.top[2], n[0], n[1], n[2], 0.5, 1)
		verts = appendVertex(verts, f.bottom1[0], f.bottom1[1], f.bottom1[2], n[0], n[1], n[2], 0, 0)
		verts = appendVertex(verts, f.bottom2[0], f.bottom2[1], f.bottom2[2], n[0], n[1], n[2], 1, 0)
	}

	// Base triangle.
	verts = appendVertex(verts, -halfBase, -height, halfBase, 0, -1, 0, 0, 1)
	verts = appendVertex(verts, halfBase, -height, halfBase, 0, -1, 0, 1, 1)
	verts = appendVertex(verts, 0, -height, -halfBase, 0, -1, 0, 0.5, 0)

	return Geometry{Vertices: verts}
}

// Pyramid4Geometry builds a four-sided pyramid centered at the origin: a
// square base at y=-baseSize/2 facing down, four triangular sides meeting at
// the apex (0, height/2, 0), drawn as a triangle strip. Side normals are the
// normalized cross product of the base edge and the edge to the apex.
//
// Parameters:
//   - baseSize: the edge length of the square base
//   - height: the total pyramid height
//
// Returns:
//   - Geometry: the pyramid geometry (16 strip vertices, no index list)
func Pyramid4Geometry(baseSize, height float32) Geometry {
	halfBase := baseSize / 2
	apexY := height / 2

	verts := make([]float32, 0, 16*VertexStride)

	// Base quad (normal -y).
	verts = appendVertex(verts, -halfBase, -halfBase, halfBase, 0, -1, 0, 0, 1)
	verts = appendVertex(verts, -halfBase, -halfBase, -halfBase, 0, -1, 0, 0, 0)
	verts = appendVertex(verts, halfBase, -halfBase, -halfBase, 0, -1, 0, 1, 0)
	verts = appendVertex(verts, halfBase, -halfBase, halfBase, 0, -1, 0, 1, 1)

	type face struct {
		bottomLeft, bottomRight [3]float32
	}

	apex := [3]float32{0, apexY, 0}
	faces := []face{
		{[3]float32{-halfBase, -halfBase, -halfBase}, [3]float32{-halfBase, -halfBase, halfBase}},  // left
		{[3]float32{halfBase, -halfBase, -halfBase}, [3]float32{-halfBase, -halfBase, -halfBase}}, // back
		{[3]float32{halfBase, -halfBase, halfBase}, [3]float32{halfBase, -halfBase, -halfBase}},   // right
		{[3]float32{-halfBase, -halfBase, halfBase}, [3]float32{halfBase, -halfBase, halfBase}},   // front
	}

	for _, f := range faces {
		n := faceNormal(
			f.bottomRight[0]-f.bottomLeft[0], f.bottomRight[1]-f.bottomLeft[1], f.bottomRight[2]-f.bottomLeft[2],
			apex[0]-f.bottomLeft[0], apex[1]-f.bottomLeft[1], apex[2]-f.bottomLeft[2],
		)
		verts = appendVertex(verts, apex[0], apex[1], apex[2], n[0], n[1], n[2], 0.5, 1)
		verts = appendVertex(verts, f.bottomLeft[0], f.bottomLeft[1], f.bottomLeft[2], n[0], n[1], n[2], 0, 0)
		verts = appendVertex(verts, f.bottomRight[0], f.bottomRight[1], f.bottomRight[2], n[0], n[1], n[2], 1, 0)
	}

	return Geometry{Vertices: verts}
}

// SphereGeometry builds a UV sphere centered at the origin. Vertices walk
// latitude rings pole to pole, each ring holding longitudeSegments+1 vertices
// so the seam column is duplicated for clean UV wrapping. Normals point
// radially outward; u runs 1..0 with longitude and v runs 1..0 with latitude.
//
// The index list is ordered ring by ring, so drawing the first half of it
// renders the upper hemisphere.
//
// Parameters:
//   - latitudeSegments: the number of pole-to-pole subdivisions
//   - longitudeSegments: the number of equatorial subdivisions
//   - radius: the sphere radius
//
// Returns:
//   - Geometry: the sphere geometry,
//     (latitudeSegments+1)*(longitudeSegments+1) vertices and
//     latitudeSegments*longitudeSegments*6 indices
func SphereGeometry(latitudeSegments, longitudeSegments int, radius float32) Geometry {
	latitudeSegments = clampSlices(latitudeSegments)
	longitudeSegments = clampSlices(longitudeSegments)

	verts := make([]float32, 0, (latitudeSegments+1)*(longitudeSegments+1)*VertexStride)
	for lat := 0; lat <= latitudeSegments; lat++ {
		theta := float64(lat) * math.Pi / float64(latitudeSegments)
		sinTheta := math.Sin(theta)
		cosTheta := math.Cos(theta)

		for lon := 0; lon <= longitudeSegments; lon++ {
			phi := float64(lon) * 2 * math.Pi / float64(longitudeSegments)
			nx := float32(sinTheta * math.Cos(phi))
			ny := float32(cosTheta)
			nz := float32(sinTheta * math.Sin(phi))
			u := 1 - float32(lon)/float32(longitudeSegments)
			v := 1 - float32(lat)/float32(latitudeSegments)
			verts = appendVertex(verts, radius*nx, radius*ny, radius*nz, nx, ny, nz, u, v)
		}
	}

	indices := make([]uint32, 0, latitudeSegments*longitudeSegments*6)
	for lat := 0; lat < latitudeSegments; lat++ {
		for lon := 0; lon < longitudeSegments; lon++ {
			first := uint32(lat*(longitudeSegments+1) + lon)
			second := first + uint32(longitudeSegments) + 1
			indices = append(indices, first, second, first+1)
			indices = append(indices, second, second+1, first+1)
		}
	}

	return Geometry{Vertices: verts, Indices: indices}
}

// TorusGeometry builds a torus in the xy plane centered at the origin.
// Vertices walk the main ring, each carrying tubeSegments+1 tube vertices
// with the seam duplicated. Normals point from each tube ring's center to
// the vertex. The index list is ordered along the main ring, so drawing the
// first half of it renders half the torus.
//
// Parameters:
//   - mainRadius: the distance from the torus center to the tube center
//   - tubeRadius: the tube radius (clamped to a minimum of 0.01)
//   - mainSegments: subdivisions around the main ring (clamped to a minimum of 3)
//   - tubeSegments: subdivisions around the tube (clamped to a minimum of 3)
//
// Returns:
//   - Geometry: the torus geometry,
//     (mainSegments+1)*(tubeSegments+1) vertices and
//     mainSegments*tubeSegments*6 indices
func TorusGeometry(mainRadius, tubeRadius float32, mainSegments, tubeSegments int) Geometry {
	mainSegments = clampSlices(mainSegments)
	tubeSegments = clampSlices(tubeSegments)
	if tubeRadius < 0.01 {
		tubeRadius = 0.01
	}

	verts := make([]float32, 0, (mainSegments+1)*(tubeSegments+1)*VertexStride)
	for i := 0; i <= mainSegments; i++ {
		mainAngle := float64(i) * 2 * math.Pi / float64(mainSegments)
		cosMain := float32(math.Cos(mainAngle))
		sinMain := float32(math.Sin(mainAngle))
		ringCenterX := mainRadius * cosMain
		ringCenterY := mainRadius * sinMain

		for j := 0; j <= tubeSegments; j++ {
			tubeAngle := float64(j) * 2 * math.Pi / float64(tubeSegments)
			cosTube := float32(math.Cos(tubeAngle))
			sinTube := float32(math.Sin(tubeAngle))

			px := (mainRadius + tubeRadius*cosTube) * cosMain
			py := (mainRadius + tubeRadius*cosTube) * sinMain
			pz := tubeRadius * sinTube

			nx := px - ringCenterX
			ny := py - ringCenterY
			nz := pz
			length := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
			if length > 0 {
				nx, ny, nz = nx/length, ny/length, nz/length
			}

			u := float32(i) / float32(mainSegments)
			v := float32(j) / float32(tubeSegments)
			verts = appendVertex(verts, px, py, pz, nx, ny, nz, u, v)
		}
	}

	indices := make([]uint32, 0, mainSegments*tubeSegments*6)
	for i := 0; i < mainSegments; i++ {
		for j := 0; j < tubeSegments; j++ {
			current := uint32(i*(tubeSegments+1) + j)
			next := current + uint32(tubeSegments) + 1
			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return Geometry{Vertices: verts, Indices: indices}
}
