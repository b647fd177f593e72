package plate

import (
	"errors"
	"fmt"
	"math"

	"visioncheck-go/internal/models"
)

// Invalid-input errors. These are caller programming errors and never
// degenerate diagnoses.
var (
	ErrNoResponses  = errors.New("no plate responses to diagnose")
	ErrUnknownPlate = errors.New("plate id not in catalogue")
)

// Red-green severity thresholds on the screening-plate error rate.
const (
	mildErrorRate     = 0.25
	moderateErrorRate = 0.6
)

// Evaluate marks each raw answer correct or incorrect against the
// catalogue. An answer matching neither the correct answer nor the recorded
// alternate is simply incorrect; no special-casing.
func Evaluate(set *models.PlateSet, answers []models.PlateAnswer) ([]models.PlateResponse, error) {
	if len(answers) == 0 {
		return nil, ErrNoResponses
	}
	responses := make([]models.PlateResponse, 0, len(answers))
	for _, a := range answers {
		p, ok := set.Find(a.PlateID)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownPlate, a.PlateID)
		}
		responses = append(responses, models.PlateResponse{
			PlateID: a.PlateID,
			Answer:  a.Answer,
			Correct: a.Answer == p.CorrectAnswer,
		})
	}
	return responses, nil
}

// Diagnose classifies a full response sequence.
//
// Tritan plates are checked first: one or more tritan errors alongside at
// most one red-green error reads as a blue-yellow deficiency. Otherwise the
// red-green screening plates (transformation + vanishing) drive the result,
// with the diagnostic-axis plate splitting type A (red-weak) from type B
// (green-weak).
func Diagnose(set *models.PlateSet, responses []models.PlateResponse) (models.ColorVisionDiagnosis, error) {
	if len(responses) == 0 {
		return models.ColorVisionDiagnosis{}, ErrNoResponses
	}

	var (
		correct      int
		rgPlates     int
		rgErrors     int
		tritanErrors int
		axisAnswer   string
		axisAlt      string
	)
	for _, r := range responses {
		p, ok := set.Find(r.PlateID)
		if !ok {
			return models.ColorVisionDiagnosis{}, fmt.Errorf("%w: %d", ErrUnknownPlate, r.PlateID)
		}
		if r.Correct {
			correct++
		}
		switch p.Category {
		case models.CategoryTransformation, models.CategoryVanishing:
			rgPlates++
			if !r.Correct {
				rgErrors++
			}
		case models.CategoryTritan:
			if !r.Correct {
				tritanErrors++
			}
		case models.CategoryDiagnosticAxis:
			axisAnswer = r.Answer
			axisAlt = p.AlternateAnswer
		}
	}

	score := int(math.Round(float64(correct) / float64(len(responses)) * 100))

	diag := models.ColorVisionDiagnosis{ScorePercent: score}
	switch {
	case tritanErrors >= 1 && rgErrors <= 1:
		diag.Deficiency = models.DeficiencyTritan
		diag.Severity = tritanSeverity(tritanErrors)
	case rgErrors == 0:
		diag.Deficiency = models.DeficiencyNone
		diag.Severity = models.ColorSeverityNone
	default:
		diag.Deficiency = classifyRedGreen(axisAnswer, axisAlt)
		diag.Severity = redGreenSeverity(rgErrors, rgPlates)
	}
	return diag, nil
}

// classifyRedGreen splits the red-green axis on the diagnostic plate. Only
// an answer equal to the plate's recorded protan alternate reads as type A;
// anything else, including a plain wrong answer on the diagnostic plate,
// defaults to type B. Deutan deficiency is the statistically more common
// form, so this is a prevalence default, not a clinical inference.
func classifyRedGreen(axisAnswer, axisAlt string) models.DeficiencyType {
	if axisAlt != "" && axisAnswer == axisAlt {
		return models.DeficiencyProtan
	}
	return models.DeficiencyDeutan
}

func redGreenSeverity(rgErrors, rgPlates int) models.ColorSeverity {
	if rgPlates == 0 {
		return models.ColorSeverityNone
	}
	rate := float64(rgErrors) / float64(rgPlates)
	switch {
	case rate <= mildErrorRate:
		return models.ColorSeverityMild
	case rate <= moderateErrorRate:
		return models.ColorSeverityModerate
	default:
		return models.ColorSeverityStrong
	}
}

func tritanSeverity(count int) models.ColorSeverity {
	switch {
	case count <= 1:
		return models.ColorSeverityMild
	case count == 2:
		return models.ColorSeverityModerate
	default:
		return models.ColorSeverityStrong
	}
}
