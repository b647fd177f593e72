// Package acuity walks one eye through rows of shrinking optotypes and
// records the best row the eye confirmed. Sessions are immutable values:
// every transition returns the next state, so the caller (not this package)
// owns all state between UI steps.
package acuity

import (
	"fmt"

	"visioncheck-go/internal/models"
)

// Session is the distance-protocol state machine for a single eye. The zero
// value is not usable; build one with NewSession.
type Session struct {
	eye    models.Eye
	levels []models.AcuityLevel

	levelIndex        int
	letterIndex       int
	consecutiveErrors int

	finished  bool
	bestLevel int
}

// NewSession starts a distance run at the largest row, first letter.
func NewSession(eye models.Eye, levels []models.AcuityLevel) (Session, error) {
	if len(levels) == 0 {
		return Session{}, fmt.Errorf("acuity chart has no levels")
	}
	for _, l := range levels {
		if len(l.Letters) == 0 {
			return Session{}, fmt.Errorf("level %s has no letters", l.Denominator)
		}
	}
	return Session{eye: eye, levels: levels}, nil
}

// Finished reports whether the run has terminated.
func (s Session) Finished() bool { return s.finished }

// Current returns the level and letter the user should be shown next.
func (s Session) Current() (models.AcuityLevel, string, error) {
	if s.finished {
		return models.AcuityLevel{}, "", fmt.Errorf("session already finished")
	}
	level := s.levels[s.levelIndex]
	return level, level.Letters[s.letterIndex], nil
}

// Submit consumes one answer and returns the next state.
//
// A correct answer advances within the row, then to the next row (resetting
// the error count), and finishes the run at the last row. An incorrect
// answer advances to the next letter (wrapping at the end of the row); the
// second consecutive error terminates at the previous row, flooring at the
// largest row so failing the very first level still yields a valid result.
func (s Session) Submit(correct bool) Session {
	if s.finished {
		return s
	}
	if correct {
		s.consecutiveErrors = 0
		row := s.levels[s.levelIndex].Letters
		if s.letterIndex+1 < len(row) {
			s.letterIndex++
			return s
		}
		if s.levelIndex+1 < len(s.levels) {
			s.levelIndex++
			s.letterIndex = 0
			return s
		}
		return s.finish(s.levelIndex)
	}

	s.consecutiveErrors++
	if s.consecutiveErrors >= 2 {
		return s.finish(s.levelIndex - 1)
	}
	s.letterIndex = (s.letterIndex + 1) % len(s.levels[s.levelIndex].Letters)
	return s
}

// GiveUp handles an explicit "cannot see" action: immediate termination at
// the previous row.
func (s Session) GiveUp() Session {
	if s.finished {
		return s
	}
	return s.finish(s.levelIndex - 1)
}

func (s Session) finish(best int) Session {
	if best < 0 {
		best = 0
	}
	s.finished = true
	s.bestLevel = best
	return s
}

// Result returns the immutable outcome of a finished run.
func (s Session) Result() (models.EyeAcuityResult, error) {
	if !s.finished {
		return models.EyeAcuityResult{}, fmt.Errorf("session still in progress")
	}
	level := s.levels[s.bestLevel]
	return models.EyeAcuityResult{
		Eye:          s.eye,
		Protocol:     models.ProtocolDistance,
		Level:        level.Denominator,
		DecimalScore: level.DecimalScore,
	}, nil
}

// NearSession is the near-protocol variant: one sample text per level and a
// binary can-read answer, terminating on the first "cannot read".
type NearSession struct {
	eye    models.Eye
	levels []models.NearVisionLevel

	index     int
	finished  bool
	bestLevel int
}

// NewNearSession starts a near-reading run at the largest text.
func NewNearSession(eye models.Eye, levels []models.NearVisionLevel) (NearSession, error) {
	if len(levels) == 0 {
		return NearSession{}, fmt.Errorf("near chart has no levels")
	}
	return NearSession{eye: eye, levels: levels}, nil
}

// Finished reports whether the run has terminated.
func (s NearSession) Finished() bool { return s.finished }

// Current returns the level whose sample text should be shown next.
func (s NearSession) Current() (models.NearVisionLevel, error) {
	if s.finished {
		return models.NearVisionLevel{}, fmt.Errorf("session already finished")
	}
	return s.levels[s.index], nil
}

// Submit consumes one can-read answer and returns the next state. "Cannot
// read" terminates at the previous level, flooring at the largest text.
func (s NearSession) Submit(canRead bool) NearSession {
	if s.finished {
		return s
	}
	if !canRead {
		return s.finishNear(s.index - 1)
	}
	if s.index+1 < len(s.levels) {
		s.index++
		return s
	}
	return s.finishNear(s.index)
}

func (s NearSession) finishNear(best int) NearSession {
	if best < 0 {
		best = 0
	}
	s.finished = true
	s.bestLevel = best
	return s
}

// Result returns the immutable outcome of a finished run.
func (s NearSession) Result() (models.EyeAcuityResult, error) {
	if !s.finished {
		return models.EyeAcuityResult{}, fmt.Errorf("session still in progress")
	}
	level := s.levels[s.bestLevel]
	return models.EyeAcuityResult{
		Eye:          s.eye,
		Protocol:     models.ProtocolNear,
		Level:        level.Level,
		DecimalScore: level.DecimalScore,
	}, nil
}
