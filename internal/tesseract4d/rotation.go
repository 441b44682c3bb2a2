package tesseract4d

import "math"

// Rot4W holds the angles (radians) of the three rotations that mix W with a spatial axis.
type Rot4W struct {
	XW, YW, ZW Real
}

func rotXW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][3] = c, -s
	M.M[3][0], M.M[3][3] = s, c
	return M
}
func rotYW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][3] = c, -s
	M.M[3][1], M.M[3][3] = s, c
	return M
}
func rotZW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[2][2], M.M[2][3] = c, -s
	M.M[3][2], M.M[3][3] = s, c
	return M
}

// Stages returns the XW, YW and ZW plane rotations in the order they are applied.
func (r Rot4W) Stages() [3]Mat4 {
	return [3]Mat4{rotXW(r.XW), rotYW(r.YW), rotZW(r.ZW)}
}

// Matrix composes the stages into a single rotation: ZW·YW·XW.
func (r Rot4W) Matrix() Mat4 {
	R := I4()
	for _, S := range r.Stages() {
		R = S.Mul(R)
	}
	return R
}

// rotate applies the stages one after another so that each stage sees the W produced by the
// previous one.
func rotate(p Point4, stages [3]Mat4) Point4 {
	for _, S := range stages {
		p = S.MulPoint(p)
	}
	return p
}
