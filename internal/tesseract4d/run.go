package tesseract4d

import (
	"image"
	"strings"
	"time"
)

// Run renders the animation described by the config at cfgPath and writes the requested outputs.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	reg := NewRegistry()
	mesh := NewMesh(cfg.Name)
	store, err := reg.Register(cfg.Name, mesh)
	if err != nil {
		return err
	}

	start := time.Now()
	frames, err := renderFrames(cfg, store, mesh)
	if err != nil {
		return err
	}
	DebugLog("Frames: %d, time: %s", len(frames), time.Since(start))

	if Debug {
		updateStats()
	}

	if PNG {
		prefix := cfg.PNGPrefix
		if prefix == "" {
			prefix = strings.TrimSuffix(cfg.GIFOut, ".gif")
		}
		if err := SavePNGSequence(frames, prefix); err != nil {
			return err
		}
		DebugLog("Saved PNG sequence with prefix: %s", prefix)
	}
	if !NoGIF {
		if err := SaveAnimatedGIF(frames, cfg.GIFOut, cfg.GIFDelay); err != nil {
			return err
		}
		DebugLog("Saved animated GIF: %s", cfg.GIFOut)
	}

	// exports use the first frame's geometry
	if cfg.OBJOut == "" && cfg.STLOut == "" {
		return nil
	}
	if err := store.SetAll(cfg.Params()); err != nil {
		return err
	}
	snap := mesh.Snapshot()
	if cfg.OBJOut != "" {
		if err := SaveOBJ(cfg.OBJOut, cfg.Name, snap); err != nil {
			return err
		}
		DebugLog("Saved OBJ: %s", cfg.OBJOut)
	}
	if cfg.STLOut != "" {
		if err := SaveSTL(cfg.STLOut, cfg.Name, snap); err != nil {
			return err
		}
		DebugLog("Saved STL: %s", cfg.STLOut)
	}
	return nil
}

// renderFrames drives the store through every frame and rasterizes the mesh after each update.
func renderFrames(cfg *Config, store *Store, mesh *Mesh) ([]*image.RGBA, error) {
	cam := cfg.NewCamera()
	DebugLogOnce("Camera: distance=%.2f fov=%.1f yaw=%.3f pitch=%.3f", cam.Distance, cam.FOV, cam.Yaw, cam.Pitch)
	frames := make([]*image.RGBA, 0, cfg.Frames)
	for k := 0; k < cfg.Frames; k++ {
		if err := store.SetAll(cfg.FrameParams(k)); err != nil {
			return nil, err
		}
		img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
		RenderWireframe(img, mesh.Snapshot(), cam)
		frames = append(frames, img)
	}
	return frames, nil
}
