package tesseract4d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func isFiniteVec(v mgl64.Vec3) bool { return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2]) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
