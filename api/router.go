package api

import "github.com/gofiber/fiber/v2"

// NewApp wires handler under /api/v1.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}
