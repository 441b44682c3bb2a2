package tesseract4d

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera looks at the origin of the projected 3D space from Distance along -Z after turning the
// scene by Yaw (about Y) and Pitch (about X).
type Camera struct {
	Distance   Real // distance from origin
	FOV        Real // pixels per unit at unit depth
	Yaw, Pitch Real // radians
	CenterX    int  // screen center X
	CenterY    int  // screen center Y
	view       mgl64.Mat3
}

// NewCamera returns a camera centered on a w×h image.
func NewCamera(w, h int, distance, fov, yaw, pitch Real) *Camera {
	c := &Camera{Distance: distance, FOV: fov, Yaw: yaw, Pitch: pitch, CenterX: w / 2, CenterY: h / 2}
	c.view = mgl64.Rotate3DX(pitch).Mul3(mgl64.Rotate3DY(yaw))
	return c
}

// Project maps a 3D point to pixel coordinates; ok is false for points behind the near plane.
func (c *Camera) Project(p mgl64.Vec3) (x, y int, ok bool) {
	v := c.view.Mul3x1(p)
	z := v.Z() + c.Distance
	if z < 0.1 {
		return 0, 0, false
	}
	sx := c.FOV * v.X() / z
	sy := c.FOV * v.Y() / z
	if !isFinite(sx) || !isFinite(sy) || math.Abs(sx) > 1<<20 || math.Abs(sy) > 1<<20 {
		return 0, 0, false
	}
	// flip Y so up is up
	return int(math.Round(sx)) + c.CenterX, c.CenterY - int(math.Round(sy)), true
}

// DrawLine draws a line on the image from (x1, y1) to (x2, y2), clipping to the bounds.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := Real(x2 - x1)
	dy := Real(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		setPixel(img, x1, y1, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := Real(x1)
	y := Real(y1)

	for i := 0; i <= int(steps); i++ {
		setPixel(img, int(math.Round(x)), int(math.Round(y)), col)
		x += xInc
		y += yInc
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}

var (
	Background    = color.RGBA{16, 16, 24, 255}
	InnerCellEdge = color.RGBA{255, 200, 64, 255}  // edges of the x = -1 cell
	OuterCellEdge = color.RGBA{64, 200, 255, 255}  // edges of the x = +1 cell
	ConnectEdge   = color.RGBA{180, 180, 180, 255} // edges joining the two cells
	VertexColor   = color.RGBA{255, 255, 255, 255}
)

func edgeColor(e Edge) color.RGBA {
	a, b := e[0]>>3, e[1]>>3
	switch {
	case a != b:
		return ConnectEdge
	case a == 0:
		return InnerCellEdge
	default:
		return OuterCellEdge
	}
}

// RenderWireframe clears img and draws the edges and vertices of d as seen by cam.
// Lines with an endpoint behind the camera are skipped.
func RenderWireframe(img *image.RGBA, d MeshData, cam *Camera) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			setPixel(img, x, y, Background)
		}
	}

	type pt struct {
		x, y int
		ok   bool
	}
	pts := make([]pt, len(d.Vertices))
	for i, v := range d.Vertices {
		x, y, ok := cam.Project(v)
		pts[i] = pt{x, y, ok}
	}
	for _, e := range d.Edges {
		p1, p2 := pts[e[0]], pts[e[1]]
		if !p1.ok || !p2.ok {
			continue
		}
		DrawLine(img, p1.x, p1.y, p2.x, p2.y, edgeColor(e))
	}
	for _, p := range pts {
		if !p.ok {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				setPixel(img, p.x+dx, p.y+dy, VertexColor)
			}
		}
	}
}
