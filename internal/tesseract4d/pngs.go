package tesseract4d

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// SavePNGSequence writes one lossless PNG per frame as <prefix>_<k>.png, zero padded.
func SavePNGSequence(frames []*image.RGBA, prefix string) error {
	n := len(frames)

	// Zero-padding width based on number of frames.
	width := 1
	if n > 1 {
		width = int(math.Log10(Real(n-1))) + 1
	}

	for k, img := range frames {
		if k%imax(1, n/10) == 0 {
			percent := Real(k+1) * 100 / Real(n)
			fmt.Printf("[PNG]  %.2f%%\n", percent)
		}
		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		f, err := os.Create(full)
		if err != nil {
			return err
		}

		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
