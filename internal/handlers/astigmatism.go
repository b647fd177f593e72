package handlers

import (
	"net/http"

	"visioncheck-go/internal/astigmatism"
	"visioncheck-go/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AstigmatismHandler struct {
	log *zap.Logger
}

func NewAstigmatismHandler(log *zap.Logger) *AstigmatismHandler {
	return &AstigmatismHandler{log: log}
}

type eyeRounds struct {
	Round1 models.AstigmatismRound `json:"round1"`
	Round2 models.AstigmatismRound `json:"round2"`
}

type astigmatismRequest struct {
	Left  eyeRounds `json:"left"`
	Right eyeRounds `json:"right"`
}

// Diagnose interprets both rounds for both eyes and aggregates an overall
// suspicion. Empty rounds are valid answers ("all lines look equal"), so
// there is nothing to reject here beyond malformed JSON.
func (h *AstigmatismHandler) Diagnose(c *gin.Context) {
	var req astigmatismRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind astigmatism request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	left := astigmatism.DiagnoseEye(models.EyeLeft, req.Left.Round1, req.Left.Round2)
	right := astigmatism.DiagnoseEye(models.EyeRight, req.Right.Round1, req.Right.Round2)
	overall := astigmatism.Combine(left, right)

	h.log.Debug("Diagnosed astigmatism",
		zap.String("left", string(left.Severity)),
		zap.String("right", string(right.Severity)),
		zap.String("overall", string(overall.OverallSuspicion)))
	c.JSON(http.StatusOK, overall)
}
