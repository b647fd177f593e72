package handlers

import (
	"errors"
	"net/http"

	"visioncheck-go/internal/acuity"
	"visioncheck-go/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errAnswersPastEnd  = errors.New("answers continue past the end of the run")
	errAnswersTooShort = errors.New("answer sequence ended before the run finished")
)

type AcuityHandler struct {
	log      *zap.Logger
	distance []models.AcuityLevel
	near     []models.NearVisionLevel
}

func NewAcuityHandler(log *zap.Logger, distance []models.AcuityLevel, near []models.NearVisionLevel) *AcuityHandler {
	return &AcuityHandler{log: log, distance: distance, near: near}
}

// acuityAnswer is one recorded tap: correct/incorrect, or an explicit
// "cannot see / cannot read".
type acuityAnswer struct {
	Correct bool `json:"correct"`
	GaveUp  bool `json:"gaveUp,omitempty"`
}

type acuityScoreRequest struct {
	Eye      models.Eye      `json:"eye" binding:"required"`
	Protocol models.Protocol `json:"protocol" binding:"required"`
	Answers  []acuityAnswer  `json:"answers" binding:"required"`
}

// Score replays a recorded answer sequence through the progression machine
// and returns the resulting EyeAcuityResult. The sequence must terminate
// the run exactly: too few or too many answers is a client error.
func (h *AcuityHandler) Score(c *gin.Context) {
	var req acuityScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind acuity score request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if req.Eye != models.EyeLeft && req.Eye != models.EyeRight {
		c.JSON(http.StatusBadRequest, gin.H{"error": "eye must be \"left\" or \"right\""})
		return
	}

	var (
		result models.EyeAcuityResult
		err    error
	)
	switch req.Protocol {
	case models.ProtocolDistance:
		result, err = h.replayDistance(req.Eye, req.Answers)
	case models.ProtocolNear:
		result, err = h.replayNear(req.Eye, req.Answers)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "protocol must be \"distance\" or \"near\""})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.Debug("Scored acuity run",
		zap.String("eye", string(req.Eye)),
		zap.String("protocol", string(req.Protocol)),
		zap.String("level", result.Level))
	c.JSON(http.StatusOK, result)
}

func (h *AcuityHandler) replayDistance(eye models.Eye, answers []acuityAnswer) (models.EyeAcuityResult, error) {
	session, err := acuity.NewSession(eye, h.distance)
	if err != nil {
		return models.EyeAcuityResult{}, err
	}
	for _, a := range answers {
		if session.Finished() {
			return models.EyeAcuityResult{}, errAnswersPastEnd
		}
		if a.GaveUp {
			session = session.GiveUp()
		} else {
			session = session.Submit(a.Correct)
		}
	}
	if !session.Finished() {
		return models.EyeAcuityResult{}, errAnswersTooShort
	}
	return session.Result()
}

func (h *AcuityHandler) replayNear(eye models.Eye, answers []acuityAnswer) (models.EyeAcuityResult, error) {
	session, err := acuity.NewNearSession(eye, h.near)
	if err != nil {
		return models.EyeAcuityResult{}, err
	}
	for _, a := range answers {
		if session.Finished() {
			return models.EyeAcuityResult{}, errAnswersPastEnd
		}
		// An explicit "cannot read" is the near protocol's negative answer.
		session = session.Submit(a.Correct && !a.GaveUp)
	}
	if !session.Finished() {
		return models.EyeAcuityResult{}, errAnswersTooShort
	}
	return session.Result()
}
