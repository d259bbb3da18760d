package sceneedit

import "math"

// Angles are in degrees. 0° points along +X and angles grow clockwise on
// screen (Y down), which is the same direction camera rotation turns.
const degToRad = math.Pi / 180

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle returns the direction from a to b in degrees, in [0, 360).
// Coincident points yield 0.
func Angle(a, b Vec2) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	return normalizeDegrees(math.Atan2(dy, dx) / degToRad)
}

// RotateTranslate moves p by distance along angleDegrees. A negative distance
// moves in the opposite direction.
func RotateTranslate(p Vec2, angleDegrees, distance float64) Vec2 {
	sin, cos := math.Sincos(angleDegrees * degToRad)
	return Vec2{p.X + cos*distance, p.Y + sin*distance}
}

// normalizeDegrees wraps d into [0, 360).
func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

// mapRange linearly maps v from [inMin, inMax] onto [outMin, outMax].
func mapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
