package geom

// Planar angle and distance helpers for the radar scan. The world is Y-up:
// gameplay distances and bearings are computed on the XZ plane.

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TwoPi is a full turn in radians.
const TwoPi = float32(2 * math.Pi)

// NormAngle reduces an angle to [0, 2π).
func NormAngle(a float32) float32 {
	a = float32(math.Mod(float64(a), float64(TwoPi)))
	if a < 0 {
		a += TwoPi
	}
	return a
}

// RotateAngle returns the angle of the point (x, y) measured from the +X
// axis, in [0, 2π). The origin maps to 0.
func RotateAngle(x, y float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}
	a := float32(math.Atan2(float64(y), float64(x)))
	if a < 0 {
		a += TwoPi
	}
	return a
}

// TestAngle reports whether angle lies in the circular interval [min, max].
// All three are normalized first, so the interval may wrap through zero.
func TestAngle(angle, min, max float32) bool {
	angle = NormAngle(angle)
	min = NormAngle(min)
	max = NormAngle(max)
	if min > max {
		return angle <= max || angle >= min
	}
	return angle >= min && angle <= max
}

// DistanceProjected returns the distance between a and b projected onto the
// horizontal (XZ) plane. Height differences are ignored.
func DistanceProjected(a, b mgl32.Vec3) float32 {
	dx := float64(a.X() - b.X())
	dz := float64(a.Z() - b.Z())
	return float32(math.Sqrt(dx*dx + dz*dz))
}
