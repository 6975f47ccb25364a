package fiberapp

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"nobel-stats/metrics"
	"nobel-stats/middleware"
)

// SetupFiber creates the app with the shared middleware stack.
func SetupFiber(logger *zap.Logger, collector *metrics.Collector) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "nobel-stats",
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(logger))
	app.Use(collector.Middleware())
	app.Use(recover.New())

	return app
}

// ErrorHandler answers every unhandled error as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
