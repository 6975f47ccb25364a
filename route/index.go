package route

import (
	"github.com/gofiber/fiber/v2"

	service "nobel-stats/app/service/statistics"
	"nobel-stats/metrics"
)

func SetupRoutes(app *fiber.App, statisticsService *service.StatisticsService, collector *metrics.Collector) {
	// Page
	app.Get("/", statisticsService.Index)

	// Operational
	app.Get("/healthz", statisticsService.Health)
	app.Get("/metrics", collector.Handler())

	api := app.Group("/api/v1")

	// Statistics
	api.Get("/statistics/countries", statisticsService.GetTopCountries)

	// Laureates
	laureates := api.Group("/laureates")
	laureates.Get("/", statisticsService.GetLaureates)
	laureates.Get("/:id/biography", statisticsService.GetBiography)
}
