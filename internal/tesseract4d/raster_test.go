package tesseract4d

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDrawLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	red := color.RGBA{255, 0, 0, 255}
	DrawLine(img, 0, 0, 7, 7, red)
	for i := 0; i < 8; i++ {
		if img.RGBAAt(i, i) != red {
			t.Fatalf("diagonal pixel %d not set", i)
		}
	}
	// clipped, single point and off-image lines must not panic
	DrawLine(img, -20, 3, 30, 3, red)
	DrawLine(img, 5, 1, 5, 1, red)
	DrawLine(img, 100, 100, 200, 200, red)
	if img.RGBAAt(5, 1) != red || img.RGBAAt(0, 3) != red || img.RGBAAt(7, 3) != red {
		t.Fatal("clipped lines not drawn")
	}
}

func TestCameraProject(t *testing.T) {
	cam := NewCamera(100, 100, 5, 50, 0, 0)
	x, y, ok := cam.Project(mgl64.Vec3{0, 0, 0})
	if !ok || x != 50 || y != 50 {
		t.Fatalf("origin: %d,%d ok=%v", x, y, ok)
	}
	x, y, ok = cam.Project(mgl64.Vec3{1, 1, 0})
	if !ok || x != 60 || y != 40 {
		t.Fatalf("(1,1,0): %d,%d ok=%v", x, y, ok)
	}
	if _, _, ok := cam.Project(mgl64.Vec3{0, 0, -5}); ok {
		t.Fatal("point behind the camera projected")
	}
}

func TestRenderWireframe(t *testing.T) {
	m := NewMesh("t")
	pr := Project(DefaultParams())
	if err := m.Update(&pr); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	RenderWireframe(img, m.Snapshot(), NewCamera(64, 64, CamDistance, 20, 0.5, 0.3))
	counts := map[color.RGBA]int{}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			counts[img.RGBAAt(x, y)]++
		}
	}
	if counts[Background] == 0 || counts[VertexColor] == 0 {
		t.Fatalf("nothing drawn: %v", counts)
	}
	if counts[InnerCellEdge]+counts[OuterCellEdge]+counts[ConnectEdge] == 0 {
		t.Fatal("no edges drawn")
	}
}

func TestEdgeColor(t *testing.T) {
	if edgeColor(Edge{0, 1}) != InnerCellEdge || edgeColor(Edge{8, 9}) != OuterCellEdge || edgeColor(Edge{0, 8}) != ConnectEdge {
		t.Fatal("edge classes wrong")
	}
}
