package models

// PlateCategory classifies what a pseudoisochromatic plate is for. The
// red-green screening subset is transformation + vanishing; the single
// diagnostic-axis plate separates protan from deutan responses; tritan
// plates screen the blue-yellow axis.
type PlateCategory string

const (
	CategoryDemonstration  PlateCategory = "demonstration"
	CategoryTransformation PlateCategory = "transformation"
	CategoryVanishing      PlateCategory = "vanishing"
	CategoryDiagnosticAxis PlateCategory = "diagnostic-axis"
	CategoryTritan         PlateCategory = "tritan-screening"
)

// IshiharaPlate is a static catalogue entry. DigitMask marks which cells of
// a normalized grid belong to the digit glyph; it is composed from the
// answer string when the catalogue is loaded, never stored in YAML.
type IshiharaPlate struct {
	ID                int           `json:"id"`
	CorrectAnswer     string        `json:"correctAnswer"`
	AlternateAnswer   string        `json:"alternateAnswer,omitempty"` // what a deficient observer reads, if known
	Category          PlateCategory `json:"category"`
	FigurePalette     []string      `json:"figurePalette"`
	BackgroundPalette []string      `json:"backgroundPalette"`
	DigitMask         [][]bool      `json:"-"`
}

// PlateAnswer is a single raw user response as submitted: the plate shown
// and what the user read off it ("none" when they saw no figure).
type PlateAnswer struct {
	PlateID int    `json:"plateId"`
	Answer  string `json:"answer"`
}

// PlateResponse is an evaluated answer.
type PlateResponse struct {
	PlateID int    `json:"plateId"`
	Answer  string `json:"answer"`
	Correct bool   `json:"correct"`
}

// DeficiencyType is the classified colour-vision deficiency axis.
type DeficiencyType string

const (
	DeficiencyNone   DeficiencyType = "none"
	DeficiencyProtan DeficiencyType = "red-green-a" // red-weak
	DeficiencyDeutan DeficiencyType = "red-green-b" // green-weak
	DeficiencyTritan DeficiencyType = "blue-yellow"
)

// ColorSeverity grades a colour-vision deficiency.
type ColorSeverity string

const (
	ColorSeverityNone     ColorSeverity = "none"
	ColorSeverityMild     ColorSeverity = "mild"
	ColorSeverityModerate ColorSeverity = "moderate"
	ColorSeverityStrong   ColorSeverity = "strong"
)

// ColorVisionDiagnosis is computed once from the full response sequence.
type ColorVisionDiagnosis struct {
	Deficiency   DeficiencyType `json:"deficiencyType"`
	Severity     ColorSeverity  `json:"severity"`
	ScorePercent int            `json:"scorePercent"`
}
