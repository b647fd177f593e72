package models

// Eye identifies which eye is under test. Each eye is always scored
// independently; nothing in a result ever mixes the two.
type Eye string

const (
	EyeLeft  Eye = "left"
	EyeRight Eye = "right"
)

// Protocol names the acuity protocol a result was produced by.
type Protocol string

const (
	ProtocolDistance Protocol = "distance"
	ProtocolNear     Protocol = "near"
)

// AcuityLevel is one row of a distance (Snellen-style) chart. Levels are
// ordered by strictly decreasing HeightMm: index 0 is the largest optotype
// and the worst confirmable acuity.
type AcuityLevel struct {
	Denominator  string   `json:"denominator"` // e.g. "6/12"
	DecimalScore float64  `json:"decimalScore"`
	HeightMm     float64  `json:"heightMm"`
	Letters      []string `json:"letters"` // Sloan letters shown on this row, in order
}

// NearVisionLevel is one entry of the near (Jaeger-style) chart, ordered by
// decreasing HeightMm like the distance rows. Near rows have a single sample
// text instead of individual letters.
type NearVisionLevel struct {
	Level           string  `json:"level"`           // e.g. "N8"
	EquivalentScale string  `json:"equivalentScale"` // e.g. "J5"
	DecimalScore    float64 `json:"decimalScore"`
	HeightMm        float64 `json:"heightMm"`
	SampleText      string  `json:"sampleText"`
}

// EyeAcuityResult is the immutable outcome of one progression run: the best
// level the eye confirmed under the given protocol.
type EyeAcuityResult struct {
	Eye          Eye      `json:"eye"`
	Protocol     Protocol `json:"protocol"`
	Level        string   `json:"level"` // denominator or near level label
	DecimalScore float64  `json:"decimalScore"`
}
