package handlers

import (
	"net/http"
	"strconv"

	"visioncheck-go/internal/calibration"
	"visioncheck-go/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CalibrationHandler struct {
	log *zap.Logger
}

func NewCalibrationHandler(log *zap.Logger) *CalibrationHandler {
	return &CalibrationHandler{log: log}
}

// Height resolves the physical and logical optotype height for an acuity
// level. Distance, density, and the clamp ceiling default to the configured
// screening parameters; the clamp flag is passed through untouched because
// a clamped size invalidates the level at that distance.
func (h *CalibrationHandler) Height(c *gin.Context) {
	denominator := c.Query("denominator")
	if denominator == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "denominator is required, e.g. 6/12"})
		return
	}
	decimal, err := calibration.ParseDenominator(denominator)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	screening := config.Conf.Screening
	distance, err := queryFloat(c, "distance_mm", screening.TestDistanceMm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	unitsPerMm, err := queryFloat(c, "units_per_mm", screening.UnitsPerMm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	maxLogical, err := queryFloat(c, "max_logical", screening.MaxLogicalHeight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	heightMm, err := calibration.RequiredHeightMm(decimal, distance)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logical := calibration.PhysicalMmToLogical(heightMm, unitsPerMm, maxLogical)

	c.JSON(http.StatusOK, gin.H{
		"denominator":  denominator,
		"decimalScore": decimal,
		"distanceMm":   distance,
		"heightMm":     heightMm,
		"logical":      logical,
	})
}

func queryFloat(c *gin.Context, key string, fallback float64) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
