package tesseract4d

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Rotation in degrees for JSON (friendlier than radians).
type Rot4WDeg struct {
	XW Real `json:"xw"`
	YW Real `json:"yw"`
	ZW Real `json:"zw"`
}

func (r Rot4WDeg) Radians() Rot4W {
	const k = math.Pi / 180
	return Rot4W{XW: r.XW * k, YW: r.YW * k, ZW: r.ZW * k}
}

func (r Rot4WDeg) IsZero() bool { return r == Rot4WDeg{} }

// CameraCfg places the 3D camera that renders the projected mesh.
type CameraCfg struct {
	Distance Real `json:"distance,omitempty"`
	FOV      Real `json:"fov,omitempty"`
	YawDeg   Real `json:"yawDeg"`
	PitchDeg Real `json:"pitchDeg"`
}

type Config struct {
	Name           string    `json:"name,omitempty"`
	ViewerDistance Real      `json:"viewerDistance"`
	WShift         Real      `json:"wShift"`
	RotDeg         Rot4WDeg  `json:"rotDeg"`
	SweepDeg       Rot4WDeg  `json:"sweepDeg"` // added to RotDeg per frame
	Frames         int       `json:"frames"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	Camera         CameraCfg `json:"camera"`
	GIFOut         string    `json:"gifOut"`
	GIFDelay       int       `json:"gifDelay,omitempty"`
	PNGPrefix      string    `json:"pngPrefix,omitempty"`
	OBJOut         string    `json:"objOut,omitempty"`
	STLOut         string    `json:"stlOut,omitempty"`
}

// Params returns the projection parameters of the first frame.
func (c *Config) Params() Params {
	return Params{ViewerDistance: c.ViewerDistance, WShift: c.WShift, Rot: c.RotDeg.Radians()}
}

// FrameParams returns the parameters of frame k: the base rotation plus k sweeps.
func (c *Config) FrameParams(k int) Params {
	p := c.Params()
	s := c.SweepDeg.Radians()
	p.Rot.XW += Real(k) * s.XW
	p.Rot.YW += Real(k) * s.YW
	p.Rot.ZW += Real(k) * s.ZW
	return p
}

// NewCamera builds the render camera for the configured image size.
func (c *Config) NewCamera() *Camera {
	const k = math.Pi / 180
	return NewCamera(c.Width, c.Height, c.Camera.Distance, c.Camera.FOV, c.Camera.YawDeg*k, c.Camera.PitchDeg*k)
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(data, path)
}

func parseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	// Defaults / validation
	if cfg.Name == "" {
		cfg.Name = "tesseract"
	}
	if cfg.ViewerDistance == 0 {
		cfg.ViewerDistance = DefaultViewerDistance
	}
	if cfg.ViewerDistance < 0 {
		return nil, fmt.Errorf("%s: %w: viewerDistance must be > 0, got %.6g", path, ErrInvalidParam, cfg.ViewerDistance)
	}
	if cfg.Frames <= 0 {
		cfg.Frames = Frames
	}
	if cfg.SweepDeg.IsZero() && cfg.Frames > 1 {
		// one full XW turn over the animation
		cfg.SweepDeg.XW = 360 / Real(cfg.Frames)
	}
	if cfg.Width <= 0 {
		cfg.Width = ImageWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = ImageHeight
	}
	if cfg.Camera.Distance <= 0 {
		cfg.Camera.Distance = CamDistance
	}
	if cfg.Camera.FOV <= 0 {
		cfg.Camera.FOV = FOV
	}
	if cfg.GIFOut == "" {
		cfg.GIFOut = GIFOut
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	DebugLog("Loaded config from %s: params=%+v, frames=%d, size=(%d, %d), sweep=%+v", path, cfg.Params(), cfg.Frames, cfg.Width, cfg.Height, cfg.SweepDeg)
	return &cfg, nil
}
