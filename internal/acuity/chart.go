package acuity

import (
	"visioncheck-go/internal/calibration"
	"visioncheck-go/internal/models"
)

// Sloan letters have equal legibility, which is why chart rows never use
// the full alphabet.
var distanceRows = []struct {
	denominator string
	decimal     float64
	letters     []string
}{
	{"6/60", 0.1, []string{"N"}},
	{"6/36", 1.0 / 6.0, []string{"C", "Z"}},
	{"6/24", 0.25, []string{"O", "S", "K"}},
	{"6/18", 1.0 / 3.0, []string{"V", "R", "H", "D"}},
	{"6/12", 0.5, []string{"N", "C", "Z", "O", "K"}},
	{"6/9", 2.0 / 3.0, []string{"D", "V", "S", "H", "R"}},
	{"6/6", 1.0, []string{"Z", "N", "K", "C", "S"}},
}

var nearRows = []struct {
	level      string
	equivalent string
	decimal    float64
	sample     string
}{
	{"N48", "J16", 5.0 / 48.0, "Look at the light."},
	{"N36", "J14", 5.0 / 36.0, "The bus stops here every day."},
	{"N24", "J12", 5.0 / 24.0, "She poured tea while the rain kept falling."},
	{"N18", "J10", 5.0 / 18.0, "A narrow path wound down between the old stone walls."},
	{"N12", "J7", 5.0 / 12.0, "He folded the letter twice and slid it under the green door."},
	{"N10", "J6", 0.5, "The market opened early and the street filled with slow morning voices."},
	{"N8", "J5", 0.625, "Small birds crossed the pale sky long before the first ferry left the harbour."},
	{"N6", "J3", 5.0 / 6.0, "Every evening she counted the lights on the far shore until they blurred into one."},
	{"N5", "J1", 1.0, "The clockmaker worked by the window where the thin winter light was steadiest of all."},
}

// DistanceChart builds the Snellen-style catalogue for a viewing distance,
// largest optotype first. Heights come from the visual-angle formula, so a
// chart built for 3000 mm is exactly half the size of the 6000 mm reference.
func DistanceChart(distanceMm float64) ([]models.AcuityLevel, error) {
	levels := make([]models.AcuityLevel, 0, len(distanceRows))
	for _, row := range distanceRows {
		h, err := calibration.RequiredHeightMm(row.decimal, distanceMm)
		if err != nil {
			return nil, err
		}
		levels = append(levels, models.AcuityLevel{
			Denominator:  row.denominator,
			DecimalScore: row.decimal,
			HeightMm:     h,
			Letters:      row.letters,
		})
	}
	return levels, nil
}

// NearChart builds the near-reading catalogue for a reading distance
// (400 mm is the conventional default), largest text first.
func NearChart(distanceMm float64) ([]models.NearVisionLevel, error) {
	levels := make([]models.NearVisionLevel, 0, len(nearRows))
	for _, row := range nearRows {
		h, err := calibration.RequiredHeightMm(row.decimal, distanceMm)
		if err != nil {
			return nil, err
		}
		levels = append(levels, models.NearVisionLevel{
			Level:           row.level,
			EquivalentScale: row.equivalent,
			DecimalScore:    row.decimal,
			HeightMm:        h,
			SampleText:      row.sample,
		})
	}
	return levels, nil
}
