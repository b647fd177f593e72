package handlers

import (
	"net/http"
	"strconv"

	"visioncheck-go/internal/models"
	"visioncheck-go/internal/plate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ColorHandler struct {
	log    *zap.Logger
	plates *models.PlateSet
}

func NewColorHandler(log *zap.Logger, plates *models.PlateSet) *ColorHandler {
	return &ColorHandler{log: log, plates: plates}
}

type colorDiagnoseRequest struct {
	Answers []models.PlateAnswer `json:"answers" binding:"required"`
}

type colorDiagnoseResponse struct {
	Responses []models.PlateResponse      `json:"responses"`
	Diagnosis models.ColorVisionDiagnosis `json:"diagnosis"`
}

// Diagnose evaluates a full plate-answer sequence and classifies it.
func (h *ColorHandler) Diagnose(c *gin.Context) {
	var req colorDiagnoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind colour diagnosis request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	responses, err := plate.Evaluate(h.plates, req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	diagnosis, err := plate.Diagnose(h.plates, responses)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.Debug("Diagnosed colour vision",
		zap.String("deficiency", string(diagnosis.Deficiency)),
		zap.Int("scorePercent", diagnosis.ScorePercent))
	c.JSON(http.StatusOK, colorDiagnoseResponse{Responses: responses, Diagnosis: diagnosis})
}

// PlateDots returns the generated dot layout for a plate at a render size.
// Generation is deterministic, so clients may cache the response forever.
func (h *ColorHandler) PlateDots(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plate id must be an integer"})
		return
	}
	size, err := strconv.ParseFloat(c.DefaultQuery("size", "600"), 64)
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be a positive number"})
		return
	}

	p, ok := h.plates.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": plate.ErrUnknownPlate.Error()})
		return
	}
	dots, err := plate.Generate(*p, size)
	if err != nil {
		h.log.Error("Failed to generate plate", zap.Int("plateId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate plate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plateId": id,
		"size":    size,
		"dots":    dots,
	})
}
