// plateset.go
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// plateEntry matches the YAML structure of one catalogue entry.
type plateEntry struct {
	ID                int      `yaml:"id"`
	Answer            string   `yaml:"answer"`
	Alternate         string   `yaml:"alternate,omitempty"`
	Category          string   `yaml:"category"`
	FigurePalette     []string `yaml:"figure_palette"`
	BackgroundPalette []string `yaml:"background_palette"`
}

type plateFile struct {
	Plates []plateEntry `yaml:"plates"`
}

// PlateSet holds the full plate catalogue loaded at startup.
type PlateSet struct {
	Plates []IshiharaPlate
	byID   map[int]*IshiharaPlate
}

var validCategories = map[PlateCategory]bool{
	CategoryDemonstration:  true,
	CategoryTransformation: true,
	CategoryVanishing:      true,
	CategoryDiagnosticAxis: true,
	CategoryTritan:         true,
}

// LoadPlateSet reads and parses the plates.yaml catalogue, composing each
// plate's digit mask from its answer string.
func LoadPlateSet(path string) (*PlateSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plate catalogue: %w", err)
	}

	var file plateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plate catalogue YAML: %w", err)
	}
	if len(file.Plates) == 0 {
		return nil, fmt.Errorf("plate catalogue %s contains no plates", path)
	}

	seen := make(map[int]bool, len(file.Plates))
	plates := make([]IshiharaPlate, 0, len(file.Plates))
	for _, e := range file.Plates {
		if err := validatePlateEntry(e); err != nil {
			return nil, fmt.Errorf("plate %d: %w", e.ID, err)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("plate %d: duplicate id", e.ID)
		}
		seen[e.ID] = true
		plates = append(plates, IshiharaPlate{
			ID:                e.ID,
			CorrectAnswer:     e.Answer,
			AlternateAnswer:   e.Alternate,
			Category:          PlateCategory(e.Category),
			FigurePalette:     e.FigurePalette,
			BackgroundPalette: e.BackgroundPalette,
		})
	}
	return NewPlateSet(plates), nil
}

// NewPlateSet builds a catalogue from already-constructed plates. Masks are
// composed for any plate that lacks one.
func NewPlateSet(plates []IshiharaPlate) *PlateSet {
	set := &PlateSet{Plates: plates, byID: make(map[int]*IshiharaPlate, len(plates))}
	for i := range set.Plates {
		if set.Plates[i].DigitMask == nil {
			set.Plates[i].DigitMask = MaskForDigits(set.Plates[i].CorrectAnswer)
		}
		set.byID[set.Plates[i].ID] = &set.Plates[i]
	}
	return set
}

// Find returns the plate with the given id, or false if it is not in the
// catalogue.
func (s *PlateSet) Find(id int) (*IshiharaPlate, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func validatePlateEntry(e plateEntry) error {
	if e.ID <= 0 {
		return fmt.Errorf("id must be positive")
	}
	if e.Answer == "" {
		return fmt.Errorf("answer is required")
	}
	if !validCategories[PlateCategory(e.Category)] {
		return fmt.Errorf("unknown category %q", e.Category)
	}
	if len(e.FigurePalette) == 0 || len(e.BackgroundPalette) == 0 {
		return fmt.Errorf("both palettes are required")
	}
	return nil
}
