package math

import "github.com/chewxy/math32"

// Matrix is a 4x4 row-major transform. The basis axes live in the columns:
// column 0 is the x-axis, column 1 the y-axis, column 2 the z-axis and
// column 3 the translation.
type Matrix struct {
	m [4][4]float32
}

// Identity returns the identity matrix
func Identity() Matrix {
	return Matrix{m: [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// NewMatrixFromAxes builds a matrix from basis axes and an origin
func NewMatrixFromAxes(xAxis, yAxis, zAxis, origin Vec3) Matrix {
	return Matrix{m: [4][4]float32{
		{xAxis.X, yAxis.X, zAxis.X, origin.X},
		{xAxis.Y, yAxis.Y, zAxis.Y, origin.Y},
		{xAxis.Z, yAxis.Z, zAxis.Z, origin.Z},
		{0, 0, 0, 1},
	}}
}

// CreateTranslation returns a translation matrix
func CreateTranslation(t Vec3) Matrix {
	out := Identity()
	out.m[0][3] = t.X
	out.m[1][3] = t.Y
	out.m[2][3] = t.Z
	return out
}

// CreateScale returns a non-uniform scale matrix
func CreateScale(s Vec3) Matrix {
	out := Identity()
	out.m[0][0] = s.X
	out.m[1][1] = s.Y
	out.m[2][2] = s.Z
	return out
}

// CreateRotationX returns a rotation about the x-axis
func CreateRotationX(angle float32) Matrix {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	out := Identity()
	out.m[1][1] = cos
	out.m[1][2] = -sin
	out.m[2][1] = sin
	out.m[2][2] = cos
	return out
}

// CreateRotationY returns a rotation about the y-axis
func CreateRotationY(angle float32) Matrix {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	out := Identity()
	out.m[0][0] = cos
	out.m[0][2] = sin
	out.m[2][0] = -sin
	out.m[2][2] = cos
	return out
}

// CreateRotationZ returns a rotation about the z-axis
func CreateRotationZ(angle float32) Matrix {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	out := Identity()
	out.m[0][0] = cos
	out.m[0][1] = -sin
	out.m[1][0] = sin
	out.m[1][1] = cos
	return out
}

// CreateRotation returns the combined Euler rotation: pitch about x applied
// first, then yaw about y, then roll about z.
func CreateRotation(pitch, yaw, roll float32) Matrix {
	return CreateRotationZ(roll).MultiplyMatrix(CreateRotationY(yaw)).MultiplyMatrix(CreateRotationX(pitch))
}

// MultiplyMatrix returns m * other
func (m Matrix) MultiplyMatrix(other Matrix) Matrix {
	var out Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.m[r][k] * other.m[k][c]
			}
			out.m[r][c] = sum
		}
	}
	return out
}

// TransformPoint applies the full transform including translation
func (m Matrix) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m.m[0][0]*p.X + m.m[0][1]*p.Y + m.m[0][2]*p.Z + m.m[0][3],
		Y: m.m[1][0]*p.X + m.m[1][1]*p.Y + m.m[1][2]*p.Z + m.m[1][3],
		Z: m.m[2][0]*p.X + m.m[2][1]*p.Y + m.m[2][2]*p.Z + m.m[2][3],
	}
}

// TransformVector applies the transform ignoring translation
func (m Matrix) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: m.m[0][0]*v.X + m.m[0][1]*v.Y + m.m[0][2]*v.Z,
		Y: m.m[1][0]*v.X + m.m[1][1]*v.Y + m.m[1][2]*v.Z,
		Z: m.m[2][0]*v.X + m.m[2][1]*v.Y + m.m[2][2]*v.Z,
	}
}

// Translation returns the translation column
func (m Matrix) Translation() Vec3 {
	return Vec3{X: m.m[0][3], Y: m.m[1][3], Z: m.m[2][3]}
}
