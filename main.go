package main

import (
	"visioncheck-go/internal/acuity"
	"visioncheck-go/internal/config"
	logger "visioncheck-go/internal/logging"
	"visioncheck-go/internal/models"
	"visioncheck-go/internal/router"

	"go.uber.org/zap"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".", logger.Defaults())
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	screening := config.Conf.Screening

	// Load the plate catalogue and build the acuity charts at startup
	plates, err := models.LoadPlateSet(screening.PlatesFile)
	if err != nil {
		log.Fatal("Failed to load plate catalogue", zap.Error(err))
	}
	distance, err := acuity.DistanceChart(screening.TestDistanceMm)
	if err != nil {
		log.Fatal("Failed to build distance chart", zap.Error(err))
	}
	near, err := acuity.NearChart(screening.NearDistanceMm)
	if err != nil {
		log.Fatal("Failed to build near chart", zap.Error(err))
	}
	log.Info("Screening catalogues ready",
		zap.Int("plates", len(plates.Plates)),
		zap.Int("distanceLevels", len(distance)),
		zap.Int("nearLevels", len(near)))

	// Setup router, passing the logger to it
	r := router.Setup(log, plates, distance, near)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
