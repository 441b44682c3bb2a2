package tesseract4d

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	gifOut := filepath.Join(dir, "t.gif")
	objOut := filepath.Join(dir, "t.obj")
	stlOut := filepath.Join(dir, "t.stl")
	cfg := fmt.Sprintf(`{
		"viewerDistance": 3, "rotDeg": {"xw": 10},
		"frames": 4, "width": 24, "height": 24,
		"gifOut": %q, "objOut": %q, "stlOut": %q
	}`, gifOut, objOut, stlOut)
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Run(path); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{gifOut, objOut, stlOut} {
		if st, err := os.Stat(f); err != nil || st.Size() == 0 {
			t.Fatalf("%s not written: %v", f, err)
		}
	}
}

func TestRenderFramesFollowStore(t *testing.T) {
	cfg, err := parseConfig([]byte(`{"frames": 3, "width": 8, "height": 8}`), "inline")
	if err != nil {
		t.Fatal(err)
	}
	reg := NewRegistry()
	mesh := NewMesh("t")
	store, err := reg.Register("t", mesh)
	if err != nil {
		t.Fatal(err)
	}
	frames, err := renderFrames(cfg, store, mesh)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Fatalf("got %d frames", len(frames))
	}
	if store.Params() != cfg.FrameParams(2) {
		t.Fatalf("store not at last frame: %+v", store.Params())
	}
}
