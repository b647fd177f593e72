package plate

// Sequence is the injectable source of pseudo-randomness for dot layout.
// Implementations must be deterministic for a given seed; dot generation is
// required to be a pure function of (plate id, render size), so nothing in
// this package ever touches wall-clock or global randomness.
type Sequence interface {
	// Next returns the next value in [0, 1).
	Next() float64
}

// lcg is a 64-bit linear congruential generator (Knuth's MMIX multiplier).
// math/rand with a fixed seed was not an option here: its stream is not
// guaranteed stable across Go releases, and regenerating a plate must yield
// bit-identical dots forever.
type lcg struct {
	state uint64
}

const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// NewSequence returns a deterministic Sequence keyed by seed. Plate
// generation seeds it with the plate id.
func NewSequence(seed int64) Sequence {
	// One warm-up step so small consecutive seeds don't start on nearly
	// identical states.
	l := &lcg{state: uint64(seed)}
	l.Next()
	return l
}

func (l *lcg) Next() float64 {
	l.state = l.state*lcgMultiplier + lcgIncrement
	// Top 53 bits map exactly onto the float64 mantissa.
	return float64(l.state>>11) / float64(1<<53)
}
