package tesseract4d

import (
	"errors"
	"math"
	"testing"
)

func TestRot4WDegRadians(t *testing.T) {
	r := Rot4WDeg{XW: 90, YW: 180, ZW: -45}.Radians()
	if math.Abs(r.XW-math.Pi/2) > 1e-12 || math.Abs(r.YW-math.Pi) > 1e-12 || math.Abs(r.ZW+math.Pi/4) > 1e-12 {
		t.Fatalf("degree->radian conversion wrong: %+v", r)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig([]byte(`{}`), "inline")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Params() != DefaultParams() {
		t.Fatalf("default params: %+v", cfg.Params())
	}
	if cfg.Frames != Frames || cfg.Width != ImageWidth || cfg.Height != ImageHeight || cfg.GIFOut != GIFOut || cfg.GIFDelay != GIFDelay {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Camera.Distance != CamDistance || cfg.Camera.FOV != FOV {
		t.Fatalf("camera defaults: %+v", cfg.Camera)
	}
	// a full XW turn across the animation
	if math.Abs(Real(cfg.Frames)*cfg.SweepDeg.XW-360) > 1e-9 {
		t.Fatalf("sweep default: %+v", cfg.SweepDeg)
	}
}

func TestParseConfigValues(t *testing.T) {
	cfg, err := parseConfig([]byte(`{
		"viewerDistance": 4, "wShift": 0.5,
		"rotDeg": {"xw": 45, "yw": 0, "zw": 10},
		"sweepDeg": {"xw": 0, "yw": 2, "zw": 0},
		"frames": 3, "gifOut": "x.gif"
	}`), "inline")
	if err != nil {
		t.Fatal(err)
	}
	p := cfg.FrameParams(2)
	if p.ViewerDistance != 4 || p.WShift != 0.5 {
		t.Fatalf("params: %+v", p)
	}
	if math.Abs(p.Rot.XW-math.Pi/4) > 1e-12 || math.Abs(p.Rot.YW-4*math.Pi/180) > 1e-12 || math.Abs(p.Rot.ZW-10*math.Pi/180) > 1e-12 {
		t.Fatalf("frame rotation: %+v", p.Rot)
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := parseConfig([]byte(`{"viewerDistance": -1}`), "inline"); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam, got %v", err)
	}
	if _, err := parseConfig([]byte(`{`), "inline"); err == nil {
		t.Fatal("bad JSON accepted")
	}
	if _, err := loadConfig("does/not/exist.json"); err == nil {
		t.Fatal("missing file accepted")
	}
}
