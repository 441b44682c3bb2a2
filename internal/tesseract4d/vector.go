package tesseract4d

import "math"

// Vector4 represents a direction (not a position) in 4D space.
type Vector4 struct {
	X, Y, Z, W Real
}

func (a Vector4) Sub(b Vector4) Vector4 { return Vector4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }

// Dot returns the dot product between two 4D vectors.
func (a Vector4) Dot(b Vector4) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Len returns the Euclidean length of the vector.
func (v Vector4) Len() Real { return math.Sqrt(v.Dot(v)) }

func (A Mat4) MulVec(v Vector4) Vector4 {
	return Vector4{
		A.M[0][0]*v.X + A.M[0][1]*v.Y + A.M[0][2]*v.Z + A.M[0][3]*v.W,
		A.M[1][0]*v.X + A.M[1][1]*v.Y + A.M[1][2]*v.Z + A.M[1][3]*v.W,
		A.M[2][0]*v.X + A.M[2][1]*v.Y + A.M[2][2]*v.Z + A.M[2][3]*v.W,
		A.M[3][0]*v.X + A.M[3][1]*v.Y + A.M[3][2]*v.Z + A.M[3][3]*v.W,
	}
}

// MulPoint rotates a point about the origin.
func (A Mat4) MulPoint(p Point4) Point4 {
	v := A.MulVec(p.Vec())
	return Point4{v.X, v.Y, v.Z, v.W}
}
