// Package calibration converts clinically defined optotype sizes into
// on-screen logical units. The visual-angle relation h = 2·tan(θ/2)·d fixes
// θ at 5 arc-minutes for the reference (decimal 1.0) acuity level; coarser
// levels scale θ by the inverse of their decimal score.
package calibration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// referenceAngleArcmin is the visual angle subtended by a full optotype at
// the reference acuity level (the classic 5-arc-minute letter).
const referenceAngleArcmin = 5.0

const arcminToRadians = math.Pi / (180.0 * 60.0)

// RequiredHeightMm returns the physical optotype height, in millimetres,
// required for an acuity level at the given viewing distance. At the
// standard 6000 mm chart distance and decimal score 1.0 this evaluates to
// ~8.73 mm.
func RequiredHeightMm(decimalScore, distanceMm float64) (float64, error) {
	if decimalScore <= 0 {
		return 0, fmt.Errorf("decimal score must be positive, got %v", decimalScore)
	}
	if distanceMm <= 0 {
		return 0, fmt.Errorf("distance must be positive, got %v mm", distanceMm)
	}
	theta := referenceAngleArcmin / decimalScore * arcminToRadians
	return 2 * math.Tan(theta/2) * distanceMm, nil
}

// ParseDenominator converts a Snellen label like "6/12" into its decimal
// score (0.5 for "6/12").
func ParseDenominator(label string) (float64, error) {
	parts := strings.Split(label, "/")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed denominator %q", label)
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed denominator %q: %w", label, err)
	}
	den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("malformed denominator %q: %w", label, err)
	}
	if num <= 0 || den <= 0 {
		return 0, fmt.Errorf("denominator %q must be positive on both sides", label)
	}
	return num / den, nil
}

// LogicalSize is a physical length converted into logical display units.
// Clamped is set when the requested size exceeded the available screen
// space; callers must surface this, since a clamped optotype invalidates
// the acuity level it was meant to represent.
type LogicalSize struct {
	Value   float64 `json:"value"`
	Clamped bool    `json:"clamped"`
}

// PhysicalMmToLogical converts a physical length to logical units using the
// caller-supplied density. maxLogical <= 0 disables clamping.
func PhysicalMmToLogical(mm, unitsPerMm, maxLogical float64) LogicalSize {
	size := mm * unitsPerMm
	if maxLogical > 0 && size > maxLogical {
		return LogicalSize{Value: maxLogical, Clamped: true}
	}
	return LogicalSize{Value: size}
}
