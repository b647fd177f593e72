// Package astigmatism interprets fan-dial responses: which radial meridians
// a user reports as anomalous, across two independent rounds per eye. All
// angle work treats meridians as undirected lines in [0°,180°) — 0° and
// 180° are the same line — because a naive directed mean breaks across the
// wrap (10° and 170° average near 0°/180°, not 90°).
package astigmatism

import "math"

// Meridian is an undirected line angle in degrees, normalized to [0°,180°).
type Meridian float64

// NewMeridian normalizes any degree value into [0°,180°).
func NewMeridian(deg float64) Meridian {
	m := math.Mod(deg, 180)
	if m < 0 {
		m += 180
	}
	return Meridian(m)
}

// Distance is the wrap-aware separation between two meridians, in [0°,90°].
func Distance(a, b Meridian) float64 {
	d := math.Abs(float64(a) - float64(b))
	if d > 90 {
		d = 180 - d
	}
	return d
}

// CircularMean averages meridians by doubling each angle into the full
// [0°,360°) circle, summing the unit vectors, and halving the resultant
// angle back. ok is false for an empty input.
func CircularMean(ms []Meridian) (mean Meridian, ok bool) {
	if len(ms) == 0 {
		return 0, false
	}
	var sinSum, cosSum float64
	for _, m := range ms {
		doubled := 2 * float64(m) * math.Pi / 180
		sinSum += math.Sin(doubled)
		cosSum += math.Cos(doubled)
	}
	halved := math.Atan2(sinSum, cosSum) / 2 * 180 / math.Pi
	return NewMeridian(halved), true
}
