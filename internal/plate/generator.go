// Package plate procedurally generates pseudoisochromatic test plates and
// classifies the user's plate answers into a deficiency type and severity.
package plate

import (
	"fmt"
	"math"

	"visioncheck-go/internal/models"
)

// Dot is one generated disc of the plate. Dots are ephemeral: they are
// recomputed from (plate id, render size) on every render and never stored.
type Dot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Color string  `json:"color"`
}

// Layout constants, expressed as fractions of the grid spacing so plates
// look the same at any render size.
const (
	gridColumns    = 38   // dot columns across the plate diameter
	baseRadiusFrac = 0.42 // dot radius before variance
	radiusVariance = 0.22 // +/- applied from the sequence
	jitterFrac     = 0.30 // positional jitter amplitude
)

// Generate lays out the dots for a plate at the given square render size.
// Points are hexagonally packed over the circular plate area; each point is
// jittered, sized, and coloured from a sequence seeded by the plate id, so
// identical inputs always produce an identical dot list. Digit membership
// is tested against the dot centre only, keeping glyph edges crisp.
func Generate(p models.IshiharaPlate, sizePx float64) ([]Dot, error) {
	return GenerateWith(p, sizePx, NewSequence(int64(p.ID)))
}

// GenerateWith is Generate with a caller-supplied sequence, for tests that
// need to pin or substitute the randomness.
func GenerateWith(p models.IshiharaPlate, sizePx float64, seq Sequence) ([]Dot, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("render size must be positive, got %v", sizePx)
	}
	if len(p.DigitMask) == 0 || len(p.DigitMask[0]) == 0 {
		return nil, fmt.Errorf("plate %d has an empty digit mask", p.ID)
	}
	if len(p.FigurePalette) == 0 || len(p.BackgroundPalette) == 0 {
		return nil, fmt.Errorf("plate %d is missing a palette", p.ID)
	}

	var (
		spacing = sizePx / gridColumns
		rowStep = spacing * math.Sqrt(3) / 2
		center  = sizePx / 2
		// Keep whole dots inside the plate circle: worst case is maximum
		// radius plus maximum diagonal jitter.
		maxDist = center - spacing*(baseRadiusFrac+radiusVariance/2+jitterFrac/2*math.Sqrt2)
		rows    = len(p.DigitMask)
		cols    = len(p.DigitMask[0])
	)

	dots := make([]Dot, 0, gridColumns*gridColumns)
	for row := 0; ; row++ {
		y := spacing/2 + float64(row)*rowStep
		if y > sizePx {
			break
		}
		offset := 0.0
		if row%2 == 1 {
			offset = spacing / 2
		}
		for col := 0; ; col++ {
			x := spacing/2 + offset + float64(col)*spacing
			if x > sizePx {
				break
			}
			if math.Hypot(x-center, y-center) > maxDist {
				continue
			}

			// Draw order is fixed: jitter x, jitter y, radius, colour.
			dx := (seq.Next() - 0.5) * spacing * jitterFrac
			dy := (seq.Next() - 0.5) * spacing * jitterFrac
			r := spacing * (baseRadiusFrac + (seq.Next()-0.5)*radiusVariance)
			pick := seq.Next()

			px, py := x+dx, y+dy
			palette := p.BackgroundPalette
			if maskCell(p.DigitMask, rows, cols, px, py, sizePx) {
				palette = p.FigurePalette
			}
			dots = append(dots, Dot{
				X:     px,
				Y:     py,
				R:     r,
				Color: palette[int(pick*float64(len(palette)))],
			})
		}
	}
	return dots, nil
}

// maskCell maps a dot centre onto the digit-mask grid.
func maskCell(mask [][]bool, rows, cols int, x, y, sizePx float64) bool {
	cx := int(x / sizePx * float64(cols))
	cy := int(y / sizePx * float64(rows))
	if cx < 0 {
		cx = 0
	} else if cx >= cols {
		cx = cols - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= rows {
		cy = rows - 1
	}
	return mask[cy][cx]
}
