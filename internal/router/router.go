// internal/router/router.go
package router

import (
	"time"

	"visioncheck-go/internal/handlers"
	"visioncheck-go/internal/models"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}
func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(429, "Too many requests. Try again later.")
}

func Setup(log *zap.Logger, plates *models.PlateSet, distance []models.AcuityLevel, near []models.NearVisionLevel) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	acuityHandler := handlers.NewAcuityHandler(log, distance, near)
	colorHandler := handlers.NewColorHandler(log, plates)
	astigmatismHandler := handlers.NewAstigmatismHandler(log)
	calibrationHandler := handlers.NewCalibrationHandler(log)
	reportHandler := handlers.NewReportHandler(log)

	// Scoring is cheap but the endpoints are unauthenticated, so cap the
	// request rate per client.
	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 60,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")
	{
		api.POST("/acuity/score", limiter, acuityHandler.Score)
		api.POST("/color/diagnose", limiter, colorHandler.Diagnose)
		api.POST("/astigmatism/diagnose", limiter, astigmatismHandler.Diagnose)
		api.GET("/plates/:id/dots", colorHandler.PlateDots)
		api.GET("/calibration/height", calibrationHandler.Height)
	}

	router.GET("/report", reportHandler.Chart)

	return router
}
