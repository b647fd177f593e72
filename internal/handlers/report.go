package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type ReportHandler struct {
	log *zap.Logger
}

func NewReportHandler(log *zap.Logger) *ReportHandler {
	return &ReportHandler{log: log}
}

// Chart renders an echarts summary page for a completed screening. The
// summary is query-encoded so a phone client can open the report as a plain
// link: decimal acuity per eye/protocol, colour score, astigmatism grade.
func (h *ReportHandler) Chart(c *gin.Context) {
	acuityValues := make([]opts.BarData, 0, 4)
	labels := []string{"Right distance", "Left distance", "Right near", "Left near"}
	for _, key := range []string{"right_distance", "left_distance", "right_near", "left_near"} {
		v, err := strconv.ParseFloat(c.DefaultQuery(key, "0"), 64)
		if err != nil || v < 0 || v > 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s must be a decimal acuity in [0,1]", key)})
			return
		}
		acuityValues = append(acuityValues, opts.BarData{Value: v})
	}
	colorScore := c.DefaultQuery("color_score", "-")
	astig := c.DefaultQuery("astigmatism", "none")

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Vision screening summary",
			Subtitle: fmt.Sprintf("Colour score: %s%% · Astigmatism suspicion: %s", colorScore, astig),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Decimal acuity",
			Max:  1,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(labels).AddSeries("Decimal acuity", acuityValues)

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := bar.Render(c.Writer); err != nil {
		h.log.Error("Failed to render screening report", zap.Error(err))
		c.Status(http.StatusInternalServerError)
	}
}
