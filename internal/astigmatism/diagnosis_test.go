package astigmatism

import (
	"math"
	"testing"

	"visioncheck-go/internal/models"
)

func round(angles ...float64) models.AstigmatismRound {
	return models.AstigmatismRound{SelectedMeridians: angles}
}

func TestCircularMean_StraddlesTheWrap(t *testing.T) {
	// 10° and 170° are 20° apart across the 0°/180° wrap; a naive
	// arithmetic mean would report 90°.
	mean, ok := CircularMean([]Meridian{10, 170})
	if !ok {
		t.Fatal("expected a mean for a non-empty set")
	}
	if d := Distance(mean, 0); d > 1e-6 {
		t.Errorf("mean of {10°,170°} should sit on the wrap, got %v° (%v° away)", mean, d)
	}
}

func TestCircularMean_SimpleCases(t *testing.T) {
	tests := []struct {
		name   string
		angles []Meridian
		want   Meridian
	}{
		{"single angle", []Meridian{45}, 45},
		{"symmetric pair", []Meridian{30, 60}, 45},
		{"identical angles", []Meridian{120, 120, 120}, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, ok := CircularMean(tt.angles)
			if !ok {
				t.Fatal("expected a mean for a non-empty set")
			}
			if Distance(mean, tt.want) > 1e-6 {
				t.Errorf("mean = %v°, want %v°", mean, tt.want)
			}
		})
	}

	if _, ok := CircularMean(nil); ok {
		t.Error("an empty set has no mean")
	}
}

func TestDistance_WrapAware(t *testing.T) {
	tests := []struct {
		a, b Meridian
		want float64
	}{
		{45, 50, 5},
		{175, 5, 10},
		{0, 90, 90},
		{10, 170, 20},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Distance(%v,%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := Distance(tt.b, tt.a); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Distance(%v,%v) = %v, want %v (distance must be symmetric)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestNewMeridian_Normalizes(t *testing.T) {
	tests := []struct {
		in   float64
		want Meridian
	}{
		{0, 0},
		{180, 0},
		{195, 15},
		{-15, 165},
	}
	for _, tt := range tests {
		if got := NewMeridian(tt.in); math.Abs(float64(got-tt.want)) > 1e-9 {
			t.Errorf("NewMeridian(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDiagnoseEye_UniformDial(t *testing.T) {
	// An empty round 1 is a clean negative regardless of round 2.
	result := DiagnoseEye(models.EyeLeft, round(), round(45, 90))
	if !result.IsUniform {
		t.Error("empty round 1 must read as uniform")
	}
	if result.Severity != models.AstigSeverityNone {
		t.Errorf("uniform dial must grade none, got %s", result.Severity)
	}
	if result.SuspectedAxis != nil {
		t.Errorf("uniform dial has no axis, got %v", *result.SuspectedAxis)
	}
	if result.RoundsConsistent {
		t.Error("a non-empty round 2 contradicts an empty round 1")
	}

	agreeing := DiagnoseEye(models.EyeLeft, round(), round())
	if !agreeing.RoundsConsistent {
		t.Error("two empty rounds agree")
	}
}

func TestDiagnoseEye_AxisPerpendicularToFlaggedMeridian(t *testing.T) {
	result := DiagnoseEye(models.EyeRight, round(90), round(90))
	if result.SuspectedAxis == nil {
		t.Fatal("expected an axis estimate")
	}
	if Distance(NewMeridian(*result.SuspectedAxis), 0) > 1e-6 {
		t.Errorf("axis should be the flagged meridian rotated 90°, got %v°", *result.SuspectedAxis)
	}
}

func TestDiagnoseEye_Consistency(t *testing.T) {
	within := DiagnoseEye(models.EyeLeft, round(45), round(50))
	if !within.RoundsConsistent {
		t.Error("45° and 50° are within the 15° tolerance")
	}

	apart := DiagnoseEye(models.EyeLeft, round(45), round(120))
	if apart.RoundsConsistent {
		t.Error("45° and 120° are not within the 15° tolerance")
	}
}

func TestDiagnoseEye_SeverityGrading(t *testing.T) {
	tests := []struct {
		name   string
		round1 models.AstigmatismRound
		round2 models.AstigmatismRound
		want   models.AstigSeverity
	}{
		{"single consistent flag", round(30), round(30), models.AstigSeverityMild},
		{"two consistent flags", round(30, 45), round(30, 45), models.AstigSeverityModerate},
		{"three flags", round(0, 45, 90), round(0, 45, 90), models.AstigSeveritySignificant},
		{"two inconsistent flags", round(30, 45), round(120, 135), models.AstigSeveritySignificant},
		// One noisy tap must not manufacture a high-severity result.
		{"single inconsistent flag", round(30), round(120), models.AstigSeverityMild},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DiagnoseEye(models.EyeLeft, tt.round1, tt.round2)
			if result.Severity != tt.want {
				t.Errorf("severity = %s, want %s", result.Severity, tt.want)
			}
		})
	}
}

func TestCombine_WorseEyeWins(t *testing.T) {
	left := DiagnoseEye(models.EyeLeft, round(30), round(30))            // mild
	right := DiagnoseEye(models.EyeRight, round(0, 45, 90), round(0))   // significant
	overall := Combine(left, right)
	if overall.OverallSuspicion != models.AstigSeveritySignificant {
		t.Errorf("overall suspicion must follow the worse eye, got %s", overall.OverallSuspicion)
	}
	if overall.Recommendation == "" {
		t.Error("a recommendation string is always attached")
	}

	both := Combine(left, left)
	if both.OverallSuspicion != models.AstigSeverityMild {
		t.Errorf("two mild eyes aggregate to mild, got %s", both.OverallSuspicion)
	}
}

func TestWorseAstigSeverity_TotalOrder(t *testing.T) {
	order := []models.AstigSeverity{
		models.AstigSeverityNone,
		models.AstigSeverityMild,
		models.AstigSeverityModerate,
		models.AstigSeveritySignificant,
	}
	for i, lo := range order {
		for _, hi := range order[i:] {
			if got := models.WorseAstigSeverity(lo, hi); got != hi {
				t.Errorf("WorseAstigSeverity(%s,%s) = %s, want %s", lo, hi, got, hi)
			}
			if got := models.WorseAstigSeverity(hi, lo); got != hi {
				t.Errorf("WorseAstigSeverity(%s,%s) = %s, want %s", hi, lo, got, hi)
			}
		}
	}
}
