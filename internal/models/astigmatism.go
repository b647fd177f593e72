package models

// AstigmatismRound is one pass over the fan dial: the meridian angles the
// user flagged as looking darker or sharper than the rest, in degrees.
// A meridian is an undirected line through the centre, so angles live in
// [0°,180°) at 15° steps; an empty set means every line looked equal.
type AstigmatismRound struct {
	SelectedMeridians []float64 `json:"selectedMeridians"`
}

// AstigSeverity grades the astigmatism suspicion for one eye. Values are
// totally ordered: none < mild < moderate < significant.
type AstigSeverity string

const (
	AstigSeverityNone        AstigSeverity = "none"
	AstigSeverityMild        AstigSeverity = "mild"
	AstigSeverityModerate    AstigSeverity = "moderate"
	AstigSeveritySignificant AstigSeverity = "significant"
)

var astigSeverityRank = map[AstigSeverity]int{
	AstigSeverityNone:        0,
	AstigSeverityMild:        1,
	AstigSeverityModerate:    2,
	AstigSeveritySignificant: 3,
}

// WorseAstigSeverity returns the more severe of a and b.
func WorseAstigSeverity(a, b AstigSeverity) AstigSeverity {
	if astigSeverityRank[b] > astigSeverityRank[a] {
		return b
	}
	return a
}

// EyeAstigmatismResult is computed once both rounds for an eye are in.
// SuspectedAxis is nil when the dial looked uniform in round 1.
type EyeAstigmatismResult struct {
	Eye              Eye           `json:"eye"`
	IsUniform        bool          `json:"isUniform"`
	SuspectedAxis    *float64      `json:"suspectedAxisDegrees,omitempty"`
	Severity         AstigSeverity `json:"severity"`
	RoundsConsistent bool          `json:"roundsConsistent"`
}

// OverallAstigmatismResult aggregates both eyes; the worse eye sets the
// overall suspicion. Recommendation is presentation text, not a finding.
type OverallAstigmatismResult struct {
	Left             EyeAstigmatismResult `json:"left"`
	Right            EyeAstigmatismResult `json:"right"`
	OverallSuspicion AstigSeverity        `json:"overallSuspicion"`
	Recommendation   string               `json:"recommendation"`
}
