package astigmatism

import (
	"visioncheck-go/internal/models"
)

// Two flags within this separation count as the same meridian between
// rounds; it matches the 15° spacing of the dial.
const matchToleranceDegrees = 15.0

// DiagnoseEye interprets both rounds for one eye. Round 1 drives the
// finding; round 2 is only ever compared against it for consistency, so a
// user cannot be led by their own earlier answers.
func DiagnoseEye(eye models.Eye, round1, round2 models.AstigmatismRound) models.EyeAstigmatismResult {
	first := normalize(round1.SelectedMeridians)
	second := normalize(round2.SelectedMeridians)

	if len(first) == 0 {
		// A uniform dial is a clean negative regardless of severity rules.
		return models.EyeAstigmatismResult{
			Eye:              eye,
			IsUniform:        true,
			Severity:         models.AstigSeverityNone,
			RoundsConsistent: len(second) == 0,
		}
	}

	consistent := roundsConsistent(first, second)
	mean, _ := CircularMean(first)
	// The astigmatic axis sits perpendicular to the meridian the user saw
	// as different.
	axis := float64(NewMeridian(float64(mean) + 90))

	return models.EyeAstigmatismResult{
		Eye:              eye,
		SuspectedAxis:    &axis,
		Severity:         gradeSeverity(len(first), consistent),
		RoundsConsistent: consistent,
	}
}

// Combine aggregates both eyes: the worse severity sets the overall
// suspicion, with a derived recommendation attached for presentation.
func Combine(left, right models.EyeAstigmatismResult) models.OverallAstigmatismResult {
	overall := models.WorseAstigSeverity(left.Severity, right.Severity)
	return models.OverallAstigmatismResult{
		Left:             left,
		Right:            right,
		OverallSuspicion: overall,
		Recommendation:   recommendation(overall),
	}
}

func normalize(angles []float64) []Meridian {
	ms := make([]Meridian, 0, len(angles))
	for _, a := range angles {
		ms = append(ms, NewMeridian(a))
	}
	return ms
}

// roundsConsistent checks whether at least half of the smaller round's
// flags find a counterpart in the other round within the tolerance.
func roundsConsistent(first, second []Meridian) bool {
	smaller, larger := first, second
	if len(second) < len(first) {
		smaller, larger = second, first
	}
	if len(smaller) == 0 {
		return false
	}
	matched := 0
	for _, a := range smaller {
		for _, b := range larger {
			if Distance(a, b) <= matchToleranceDegrees {
				matched++
				break
			}
		}
	}
	return matched*2 >= len(smaller)
}

// gradeSeverity maps flag count and consistency to a grade. Three or more
// flags, or an inconsistent repeat, read as significant — except that a
// single inconsistent flag downgrades to mild, since one noisy tap should
// not manufacture a high-severity finding.
func gradeSeverity(flagged int, consistent bool) models.AstigSeverity {
	if flagged >= 3 {
		return models.AstigSeveritySignificant
	}
	if !consistent {
		if flagged == 1 {
			return models.AstigSeverityMild
		}
		return models.AstigSeveritySignificant
	}
	if flagged == 1 {
		return models.AstigSeverityMild
	}
	return models.AstigSeverityModerate
}

func recommendation(s models.AstigSeverity) string {
	switch s {
	case models.AstigSeverityNone:
		return "No signs of astigmatism were detected in this screening."
	case models.AstigSeverityMild:
		return "A mild irregularity was reported. Consider repeating the test; see an optometrist if it persists."
	case models.AstigSeverityModerate:
		return "A moderate irregularity was reported consistently. An optometrist visit is recommended."
	default:
		return "A significant irregularity was reported. Please arrange a full refraction exam with an eye-care professional."
	}
}
