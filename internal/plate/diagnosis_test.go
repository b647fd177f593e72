package plate

import (
	"errors"
	"testing"

	"visioncheck-go/internal/models"
)

// testSet mirrors the production catalogue shape: one demonstration plate,
// eight red-green screening plates, one diagnostic-axis plate, two tritan
// plates.
func testSet() *models.PlateSet {
	palette := []string{"#C05C50"}
	background := []string{"#A3A964"}
	mk := func(id int, answer, alternate string, cat models.PlateCategory) models.IshiharaPlate {
		return models.IshiharaPlate{
			ID:                id,
			CorrectAnswer:     answer,
			AlternateAnswer:   alternate,
			Category:          cat,
			FigurePalette:     palette,
			BackgroundPalette: background,
		}
	}
	return models.NewPlateSet([]models.IshiharaPlate{
		mk(1, "12", "", models.CategoryDemonstration),
		mk(2, "8", "3", models.CategoryTransformation),
		mk(3, "6", "5", models.CategoryTransformation),
		mk(4, "29", "70", models.CategoryTransformation),
		mk(5, "57", "35", models.CategoryTransformation),
		mk(6, "5", "", models.CategoryVanishing),
		mk(7, "3", "", models.CategoryVanishing),
		mk(8, "15", "", models.CategoryVanishing),
		mk(9, "74", "", models.CategoryVanishing),
		mk(10, "26", "6", models.CategoryDiagnosticAxis),
		mk(11, "56", "", models.CategoryTritan),
		mk(12, "96", "", models.CategoryTritan),
	})
}

// allCorrect returns a full correct answer sheet, which individual tests
// then corrupt.
func allCorrect(set *models.PlateSet) []models.PlateAnswer {
	answers := make([]models.PlateAnswer, 0, len(set.Plates))
	for _, p := range set.Plates {
		answers = append(answers, models.PlateAnswer{PlateID: p.ID, Answer: p.CorrectAnswer})
	}
	return answers
}

func setAnswer(answers []models.PlateAnswer, plateID int, answer string) {
	for i := range answers {
		if answers[i].PlateID == plateID {
			answers[i].Answer = answer
			return
		}
	}
}

func diagnose(t *testing.T, set *models.PlateSet, answers []models.PlateAnswer) models.ColorVisionDiagnosis {
	t.Helper()
	responses, err := Evaluate(set, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diag, err := Diagnose(set, responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return diag
}

func TestDiagnose_AllCorrect(t *testing.T) {
	set := testSet()
	diag := diagnose(t, set, allCorrect(set))
	if diag.Deficiency != models.DeficiencyNone {
		t.Errorf("expected no deficiency, got %s", diag.Deficiency)
	}
	if diag.Severity != models.ColorSeverityNone {
		t.Errorf("expected severity none, got %s", diag.Severity)
	}
	if diag.ScorePercent != 100 {
		t.Errorf("expected score 100, got %d", diag.ScorePercent)
	}
}

func TestDiagnose_EmptyInputIsAnError(t *testing.T) {
	set := testSet()
	if _, err := Evaluate(set, nil); !errors.Is(err, ErrNoResponses) {
		t.Errorf("Evaluate(nil) = %v, want ErrNoResponses", err)
	}
	if _, err := Diagnose(set, nil); !errors.Is(err, ErrNoResponses) {
		t.Errorf("Diagnose(nil) = %v, want ErrNoResponses", err)
	}
}

func TestDiagnose_UnknownPlateIsAnError(t *testing.T) {
	set := testSet()
	answers := []models.PlateAnswer{{PlateID: 999, Answer: "8"}}
	if _, err := Evaluate(set, answers); !errors.Is(err, ErrUnknownPlate) {
		t.Errorf("expected ErrUnknownPlate, got %v", err)
	}
}

func TestDiagnose_MildRedGreen(t *testing.T) {
	// 2 errors out of 8 screening plates: a 0.25 rate is still mild.
	set := testSet()
	answers := allCorrect(set)
	setAnswer(answers, 2, "3")
	setAnswer(answers, 6, "none")
	diag := diagnose(t, set, answers)
	if diag.Deficiency != models.DeficiencyDeutan {
		t.Errorf("expected the deutan default, got %s", diag.Deficiency)
	}
	if diag.Severity != models.ColorSeverityMild {
		t.Errorf("expected mild severity at an error rate of 0.25, got %s", diag.Severity)
	}
}

func TestDiagnose_ModerateAndStrongRedGreen(t *testing.T) {
	set := testSet()

	answers := allCorrect(set)
	for _, id := range []int{2, 3, 6, 7} { // 4/8 = 0.5
		setAnswer(answers, id, "none")
	}
	if diag := diagnose(t, set, answers); diag.Severity != models.ColorSeverityModerate {
		t.Errorf("expected moderate at an error rate of 0.5, got %s", diag.Severity)
	}

	answers = allCorrect(set)
	for _, id := range []int{2, 3, 4, 5, 6, 7} { // 6/8 = 0.75
		setAnswer(answers, id, "none")
	}
	if diag := diagnose(t, set, answers); diag.Severity != models.ColorSeverityStrong {
		t.Errorf("expected strong at an error rate of 0.75, got %s", diag.Severity)
	}
}

func TestDiagnose_ProtanViaDiagnosticPlate(t *testing.T) {
	set := testSet()
	answers := allCorrect(set)
	setAnswer(answers, 2, "3")
	setAnswer(answers, 3, "5")
	setAnswer(answers, 10, "6") // the recorded protan alternate
	diag := diagnose(t, set, answers)
	if diag.Deficiency != models.DeficiencyProtan {
		t.Errorf("the protan alternate on the diagnostic plate must classify type A, got %s", diag.Deficiency)
	}
}

func TestDiagnose_DeutanDefaultWhenDiagnosticPlateIsAmbiguous(t *testing.T) {
	// Wrong on the diagnostic plate, but not with the protan alternate:
	// fall back to the more common deutan type.
	set := testSet()
	answers := allCorrect(set)
	setAnswer(answers, 2, "3")
	setAnswer(answers, 3, "5")
	setAnswer(answers, 10, "88")
	diag := diagnose(t, set, answers)
	if diag.Deficiency != models.DeficiencyDeutan {
		t.Errorf("an ambiguous diagnostic answer must default to type B, got %s", diag.Deficiency)
	}
}

func TestDiagnose_TritanTakesPriority(t *testing.T) {
	set := testSet()

	answers := allCorrect(set)
	setAnswer(answers, 11, "none")
	diag := diagnose(t, set, answers)
	if diag.Deficiency != models.DeficiencyTritan {
		t.Errorf("expected blue-yellow, got %s", diag.Deficiency)
	}
	if diag.Severity != models.ColorSeverityMild {
		t.Errorf("one tritan error should grade mild, got %s", diag.Severity)
	}

	// A second tritan error escalates the grade; one red-green slip does
	// not flip the axis.
	setAnswer(answers, 12, "none")
	setAnswer(answers, 2, "3")
	diag = diagnose(t, set, answers)
	if diag.Deficiency != models.DeficiencyTritan {
		t.Errorf("expected blue-yellow with one red-green error, got %s", diag.Deficiency)
	}
	if diag.Severity != models.ColorSeverityModerate {
		t.Errorf("two tritan errors should grade moderate, got %s", diag.Severity)
	}
}

func TestDiagnose_ManyRedGreenErrorsOverrideTritan(t *testing.T) {
	set := testSet()
	answers := allCorrect(set)
	setAnswer(answers, 11, "none")
	setAnswer(answers, 2, "3")
	setAnswer(answers, 3, "5")
	diag := diagnose(t, set, answers)
	if diag.Deficiency == models.DeficiencyTritan {
		t.Error("two or more red-green errors must route to the red-green axis")
	}
}

func TestDiagnose_ScorePercentRounds(t *testing.T) {
	set := testSet()
	answers := allCorrect(set)
	setAnswer(answers, 6, "none") // 11/12 correct = 91.67%
	diag := diagnose(t, set, answers)
	if diag.ScorePercent != 92 {
		t.Errorf("expected score 92, got %d", diag.ScorePercent)
	}
}

func TestEvaluate_WrongAnswersAreJustIncorrect(t *testing.T) {
	// An answer equal to neither the correct nor the alternate answer is
	// counted incorrect without special-casing.
	set := testSet()
	responses, err := Evaluate(set, []models.PlateAnswer{{PlateID: 2, Answer: "999"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if responses[0].Correct {
		t.Error("unrecognized answer must evaluate as incorrect")
	}
}
