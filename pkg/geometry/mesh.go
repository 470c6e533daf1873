package geometry

import (
	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// TriangleMesh is an indexed triangle mesh with lazily retransformed caches.
// Positions, Indices and Normals hold the source data; the Transformed*
// fields are rebuilt by UpdateTransforms whenever a mutator marked the mesh
// dirty. The BVH is built over face indices through the FaceIndex permutation
// so the source arrays stay immutable across builds.
type TriangleMesh struct {
	Positions []math.Vec3 // source vertices
	Indices   []int       // three per face
	Normals   []math.Vec3 // one per face

	translation math.Matrix
	rotation    math.Matrix
	scale       math.Matrix
	dirty       bool

	MinAABB math.Vec3
	MaxAABB math.Vec3

	TransformedPositions []math.Vec3
	TransformedNormals   []math.Vec3

	TransformedMinAABB math.Vec3
	TransformedMaxAABB math.Vec3

	BVH       []BVHNode // bvh[0] is the root; empty means brute force
	FaceIndex []int     // permutation applied by the BVH build

	CullMode      CullMode
	MaterialIndex uint8
}

// NewTriangleMesh creates an empty mesh with the given cull mode and material
func NewTriangleMesh(cullMode CullMode, materialIndex uint8) *TriangleMesh {
	return &TriangleMesh{
		translation:   math.Identity(),
		rotation:      math.Identity(),
		scale:         math.Identity(),
		CullMode:      cullMode,
		MaterialIndex: materialIndex,
	}
}

// FaceCount returns the number of triangles in the mesh
func (m *TriangleMesh) FaceCount() int {
	return len(m.Indices) / 3
}

// Translate sets the mesh translation and marks the caches dirty
func (m *TriangleMesh) Translate(t math.Vec3) {
	m.translation = math.CreateTranslation(t)
	m.dirty = true
}

// RotateY sets the mesh yaw rotation and marks the caches dirty
func (m *TriangleMesh) RotateY(yaw float32) {
	m.rotation = math.CreateRotationY(yaw)
	m.dirty = true
}

// Scale sets the mesh scale and marks the caches dirty
func (m *TriangleMesh) Scale(s math.Vec3) {
	m.scale = math.CreateScale(s)
	m.dirty = true
}

// AppendTriangle adds a triangle's vertices, indices and face normal
func (m *TriangleMesh) AppendTriangle(t Triangle) {
	startIndex := len(m.Positions)

	m.Positions = append(m.Positions, t.V0, t.V1, t.V2)
	m.Indices = append(m.Indices, startIndex, startIndex+1, startIndex+2)
	m.Normals = append(m.Normals, t.Normal)

	m.dirty = true
}

// SetGeometry replaces the mesh data with parsed positions, indices and
// per-face normals, then refreshes the local AABB
func (m *TriangleMesh) SetGeometry(positions []math.Vec3, indices []int, normals []math.Vec3) {
	m.Positions = positions
	m.Indices = indices
	m.Normals = normals
	m.UpdateAABB()
	m.dirty = true
}

// CalculateNormals recomputes one face normal per index triple
func (m *TriangleMesh) CalculateNormals() {
	m.Normals = m.Normals[:0]

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Positions[m.Indices[i+1]].Subtract(m.Positions[m.Indices[i]])
		b := m.Positions[m.Indices[i+2]].Subtract(m.Positions[m.Indices[i]])
		m.Normals = append(m.Normals, a.Cross(b).Normalize())
	}
}

// UpdateAABB recomputes the local-space bounding box from source positions
func (m *TriangleMesh) UpdateAABB() {
	if len(m.Positions) == 0 {
		return
	}

	minAABB := m.Positions[0]
	maxAABB := m.Positions[0]
	for _, p := range m.Positions {
		minAABB = math.Min(p, minAABB)
		maxAABB = math.Max(p, maxAABB)
	}

	m.MinAABB = minAABB
	m.MaxAABB = maxAABB
}

// UpdateTransforms rebuilds the transformed caches when the mesh is dirty,
// applying translation * rotation * scale to the source data. BVH node
// bounds are refitted in place when a BVH exists.
func (m *TriangleMesh) UpdateTransforms(force bool) {
	if !force && !m.dirty {
		return
	}

	finalTransform := m.translation.MultiplyMatrix(m.rotation).MultiplyMatrix(m.scale)

	m.TransformedPositions = m.TransformedPositions[:0]
	for _, pos := range m.Positions {
		m.TransformedPositions = append(m.TransformedPositions, finalTransform.TransformPoint(pos))
	}

	m.TransformedNormals = m.TransformedNormals[:0]
	for _, n := range m.Normals {
		m.TransformedNormals = append(m.TransformedNormals, finalTransform.TransformVector(n))
	}

	m.updateTransformedAABB(finalTransform)

	if len(m.BVH) > 0 {
		m.refitBVH()
	}

	m.dirty = false
}

// updateTransformedAABB envelopes the eight transformed corners of the local
// AABB
func (m *TriangleMesh) updateTransformedAABB(transform math.Matrix) {
	corners := [8]math.Vec3{
		{X: m.MinAABB.X, Y: m.MinAABB.Y, Z: m.MinAABB.Z},
		{X: m.MaxAABB.X, Y: m.MinAABB.Y, Z: m.MinAABB.Z},
		{X: m.MaxAABB.X, Y: m.MinAABB.Y, Z: m.MaxAABB.Z},
		{X: m.MinAABB.X, Y: m.MinAABB.Y, Z: m.MaxAABB.Z},
		{X: m.MinAABB.X, Y: m.MaxAABB.Y, Z: m.MinAABB.Z},
		{X: m.MaxAABB.X, Y: m.MaxAABB.Y, Z: m.MinAABB.Z},
		{X: m.MaxAABB.X, Y: m.MaxAABB.Y, Z: m.MaxAABB.Z},
		{X: m.MinAABB.X, Y: m.MaxAABB.Y, Z: m.MaxAABB.Z},
	}

	tMin := transform.TransformPoint(corners[0])
	tMax := tMin
	for _, c := range corners[1:] {
		t := transform.TransformPoint(c)
		tMin = math.Min(t, tMin)
		tMax = math.Max(t, tMax)
	}

	m.TransformedMinAABB = tMin
	m.TransformedMaxAABB = tMax
}

// slabTest checks the ray against the transformed mesh envelope
func (m *TriangleMesh) slabTest(ray math.Ray) bool {
	return IntersectAABB(ray, m.TransformedMinAABB, m.TransformedMaxAABB)
}

// face builds the world-space triangle for face f, inheriting the mesh's
// cull mode and material
func (m *TriangleMesh) face(f int) Triangle {
	t := Triangle{
		V0:            m.TransformedPositions[m.Indices[f*3]],
		V1:            m.TransformedPositions[m.Indices[f*3+1]],
		V2:            m.TransformedPositions[m.Indices[f*3+2]],
		Normal:        m.TransformedNormals[f],
		CullMode:      m.CullMode,
		MaterialIndex: m.MaterialIndex,
	}
	return t
}

// Hit performs a closest-hit query against the mesh. With a BVH the
// traversal is depth-first from the root; without one every face is tested
// after the envelope slab test.
func (m *TriangleMesh) Hit(ray math.Ray, hit *HitRecord) bool {
	if len(m.BVH) > 0 {
		return m.hitBVH(0, ray, hit)
	}

	if !m.slabTest(ray) {
		return false
	}

	anyHit := false
	for f := 0; f < m.FaceCount(); f++ {
		tri := m.face(f)

		temp := NewHitRecord()
		if tri.Hit(ray, &temp) && temp.T < hit.T {
			*hit = temp
			anyHit = true
		}
	}

	return anyHit
}

// AnyHit performs a shadow query against the mesh, returning on the first
// face accepted by the inverted cull sense
func (m *TriangleMesh) AnyHit(ray math.Ray) bool {
	if len(m.BVH) > 0 {
		return m.anyHitBVH(0, ray)
	}

	if !m.slabTest(ray) {
		return false
	}

	for f := 0; f < m.FaceCount(); f++ {
		tri := m.face(f)
		if tri.AnyHit(ray) {
			return true
		}
	}

	return false
}
