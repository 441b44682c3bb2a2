package tesseract4d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Params are the five inputs of the projection.
type Params struct {
	ViewerDistance Real  // eye position on the W axis
	WShift         Real  // translation along W applied after rotation
	Rot            Rot4W // radians
}

// DefaultParams returns the parameters a freshly tagged object starts with.
func DefaultParams() Params {
	return Params{ViewerDistance: DefaultViewerDistance, WShift: DefaultWShift}
}

// Projection is the projected tesseract: Points[i] is the image of Vertices4D[i].
type Projection struct {
	Params   Params
	Points   [VertexCount]mgl64.Vec3
	Scales   [VertexCount]Real // perspective factor used for each vertex
	Fallback [VertexCount]bool // vertex was within SingularEps of the eye
}

// Faces returns the fixed face table the points are indexed by.
func (p *Projection) Faces() []Face { return Faces[:] }

// Singular returns how many vertices fell back to SingularScale.
func (p *Projection) Singular() int {
	n := 0
	for _, f := range p.Fallback {
		if f {
			n++
		}
	}
	return n
}

// Finite reports whether every projected coordinate is a finite number.
func (p *Projection) Finite() bool {
	for _, v := range p.Points {
		if !isFiniteVec(v) {
			return false
		}
	}
	return true
}

// perspective returns the factor applied to x,y,z for a vertex at w, and whether the
// near-singular fallback was used.
func perspective(viewerDistance, w Real) (Real, bool) {
	denom := viewerDistance - w
	if math.Abs(denom) < SingularEps {
		return SingularScale, true
	}
	return viewerDistance / denom, false
}

// Project rotates the canonical tesseract in the XW, YW and ZW planes (in that order), shifts it
// along W and projects it to 3D with a perspective divide by (ViewerDistance - w).
// Parameters are not validated; non-finite inputs give non-finite points.
func Project(p Params) Projection {
	out := Projection{Params: p}
	stages := p.Rot.Stages()
	for i, v := range Vertices4D {
		q := rotate(v, stages).Add(Vector4{W: p.WShift})
		s, fb := perspective(p.ViewerDistance, q.W)
		out.Scales[i], out.Fallback[i] = s, fb
		out.Points[i] = mgl64.Vec3{q.X * s, q.Y * s, q.Z * s}
	}
	return out
}

// ProjectAngles is Project with positional arguments, returning the points and the face table.
func ProjectAngles(viewerDistance, wShift, angleXW, angleYW, angleZW Real) ([VertexCount]mgl64.Vec3, [FaceCount]Face) {
	pr := Project(Params{
		ViewerDistance: viewerDistance,
		WShift:         wShift,
		Rot:            Rot4W{XW: angleXW, YW: angleYW, ZW: angleZW},
	})
	return pr.Points, Faces
}
