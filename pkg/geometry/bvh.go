package geometry

import (
	"github.com/chewxy/math32"

	"github.com/dverhaert/go-direct-raytracer/pkg/math"
)

// BVHNode is one node of the mesh's bounding-volume hierarchy. For a leaf
// (TriangleCount > 0) LeftFirst is the first slot in the face-index
// permutation; for an interior node it is the index of the left child and
// the right child is LeftFirst+1.
type BVHNode struct {
	AABBMin       math.Vec3
	AABBMax       math.Vec3
	LeftFirst     uint32
	TriangleCount uint32
}

// IsLeaf reports whether the node holds faces directly
func (n *BVHNode) IsLeaf() bool {
	return n.TriangleCount > 0
}

// InitializeBVH builds the hierarchy over the mesh's current transformed
// positions. The build permutes FaceIndex only; the source index and normal
// arrays stay untouched, so transform updates never reshuffle data.
func (m *TriangleMesh) InitializeBVH() {
	faceCount := m.FaceCount()
	if faceCount == 0 {
		return
	}

	if len(m.TransformedPositions) != len(m.Positions) {
		m.UpdateTransforms(true)
	}

	m.FaceIndex = make([]int, faceCount)
	for i := range m.FaceIndex {
		m.FaceIndex[i] = i
	}

	m.BVH = m.BVH[:0]
	m.BVH = append(m.BVH, BVHNode{TriangleCount: uint32(faceCount)})

	m.updateNodeBounds(0)
	m.subdivide(0)
}

// refitBVH recomputes every node's bounds over the current transformed
// positions without re-partitioning. The topology stays valid because leaves
// reference faces through the permutation.
func (m *TriangleMesh) refitBVH() {
	for i := len(m.BVH) - 1; i >= 0; i-- {
		node := &m.BVH[i]
		if node.IsLeaf() {
			m.updateNodeBounds(uint32(i))
			continue
		}

		left := &m.BVH[node.LeftFirst]
		right := &m.BVH[node.LeftFirst+1]
		node.AABBMin = math.Min(left.AABBMin, right.AABBMin)
		node.AABBMax = math.Max(left.AABBMax, right.AABBMax)
	}
}

// updateNodeBounds grows a leaf's AABB around the vertices of its faces
func (m *TriangleMesh) updateNodeBounds(nodeIdx uint32) {
	node := &m.BVH[nodeIdx]

	node.AABBMin = math.NewVec3(math32.Inf(1), math32.Inf(1), math32.Inf(1))
	node.AABBMax = math.NewVec3(math32.Inf(-1), math32.Inf(-1), math32.Inf(-1))

	for i := uint32(0); i < node.TriangleCount; i++ {
		f := m.FaceIndex[node.LeftFirst+i]
		for k := 0; k < 3; k++ {
			v := m.TransformedPositions[m.Indices[f*3+k]]
			node.AABBMin = math.Min(node.AABBMin, v)
			node.AABBMax = math.Max(node.AABBMax, v)
		}
	}
}

// subdivide splits a node at the midpoint of its longest axis, partitioning
// the face-index range in place by centroid. The split aborts when one side
// would be empty.
func (m *TriangleMesh) subdivide(nodeIdx uint32) {
	node := &m.BVH[nodeIdx]

	if node.TriangleCount <= 2 {
		return
	}

	extent := node.AABBMax.Subtract(node.AABBMin)
	axis := 0
	if extent.Y > extent.X {
		axis = 1
	}
	if extent.Z > extent.Axis(axis) {
		axis = 2
	}

	splitPos := node.AABBMin.Axis(axis) + extent.Axis(axis)*0.5

	i := int(node.LeftFirst)
	j := i + int(node.TriangleCount) - 1
	for i <= j {
		f := m.FaceIndex[i]
		centroid := m.TransformedPositions[m.Indices[f*3]].
			Add(m.TransformedPositions[m.Indices[f*3+1]]).
			Add(m.TransformedPositions[m.Indices[f*3+2]]).
			Multiply(1.0 / 3.0)

		if centroid.Axis(axis) < splitPos {
			i++
		} else {
			m.FaceIndex[i], m.FaceIndex[j] = m.FaceIndex[j], m.FaceIndex[i]
			j--
		}
	}

	leftCount := uint32(i) - node.LeftFirst
	if leftCount == 0 || leftCount == node.TriangleCount {
		return
	}

	m.BVH = append(m.BVH, BVHNode{LeftFirst: node.LeftFirst, TriangleCount: leftCount})
	leftChildIdx := uint32(len(m.BVH) - 1)
	m.BVH = append(m.BVH, BVHNode{LeftFirst: uint32(i), TriangleCount: node.TriangleCount - leftCount})
	rightChildIdx := uint32(len(m.BVH) - 1)

	// append may have moved the backing array
	node = &m.BVH[nodeIdx]
	node.LeftFirst = leftChildIdx
	node.TriangleCount = 0

	m.updateNodeBounds(leftChildIdx)
	m.updateNodeBounds(rightChildIdx)

	m.subdivide(leftChildIdx)
	m.subdivide(rightChildIdx)
}

// hitBVH walks the hierarchy depth-first for a closest-hit query. Both
// children are always visited; the shared record keeps the least t.
func (m *TriangleMesh) hitBVH(nodeIdx uint32, ray math.Ray, hit *HitRecord) bool {
	node := &m.BVH[nodeIdx]

	if !IntersectAABB(ray, node.AABBMin, node.AABBMax) {
		return false
	}

	if node.IsLeaf() {
		anyHit := false
		for i := uint32(0); i < node.TriangleCount; i++ {
			tri := m.face(m.FaceIndex[node.LeftFirst+i])

			temp := NewHitRecord()
			if tri.Hit(ray, &temp) && temp.T < hit.T {
				*hit = temp
				anyHit = true
			}
		}
		return anyHit
	}

	hitLeft := m.hitBVH(node.LeftFirst, ray, hit)
	hitRight := m.hitBVH(node.LeftFirst+1, ray, hit)

	return hitLeft || hitRight
}

// anyHitBVH walks the hierarchy for a shadow query, returning on the first
// accepted face
func (m *TriangleMesh) anyHitBVH(nodeIdx uint32, ray math.Ray) bool {
	node := &m.BVH[nodeIdx]

	if !IntersectAABB(ray, node.AABBMin, node.AABBMax) {
		return false
	}

	if node.IsLeaf() {
		for i := uint32(0); i < node.TriangleCount; i++ {
			tri := m.face(m.FaceIndex[node.LeftFirst+i])
			if tri.AnyHit(ray) {
				return true
			}
		}
		return false
	}

	return m.anyHitBVH(node.LeftFirst, ray) || m.anyHitBVH(node.LeftFirst+1, ray)
}
