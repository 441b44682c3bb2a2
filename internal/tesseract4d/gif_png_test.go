package tesseract4d

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func tinyFrames(n int) []*image.RGBA {
	m := NewMesh("t")
	cam := NewCamera(16, 16, CamDistance, 8, 0, 0)
	out := make([]*image.RGBA, 0, n)
	for k := 0; k < n; k++ {
		pr := Project(Params{ViewerDistance: 3, Rot: Rot4W{XW: Real(k) * 0.3}})
		if err := m.Update(&pr); err != nil {
			panic(err)
		}
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		RenderWireframe(img, m.Snapshot(), cam)
		out = append(out, img)
	}
	return out
}

func TestSaveAnimatedGIF(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "out.gif")
	if err := SaveAnimatedGIF(tinyFrames(3), tmp, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(tmp); err != nil {
		t.Fatalf("gif not written: %v", err)
	}
	if err := SaveAnimatedGIF(nil, tmp, 5); err == nil {
		t.Fatal("empty animation accepted")
	}
}

func TestSavePNGSequence(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "frame")
	if err := SavePNGSequence(tinyFrames(12), prefix); err != nil {
		t.Fatal(err)
	}
	// 12 frames => two digits
	for _, f := range []string{prefix + "_00.png", prefix + "_11.png"} {
		if _, err := os.Stat(f); err != nil {
			t.Fatalf("png not written: %v", err)
		}
	}
}
