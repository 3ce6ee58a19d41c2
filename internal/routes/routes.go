package routes

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"okta-sentinel/internal/controller"
)

// Register attaches all HTTP routes to the Fiber app.
func Register(app *fiber.App, dashboard controller.DashboardController) {
	api := app.Group("/api")

	api.Get("/trends/7d", dashboard.Trends7Day)
	api.Get("/trends/30d", dashboard.Trends30Day)
	api.Get("/trends/custom", dashboard.TrendsCustom)
	api.Get("/trends/week-over-week", dashboard.WeekOverWeek)

	api.Get("/summary", dashboard.Summary)
	api.Get("/threats", dashboard.Threats)
	api.Get("/mfa", dashboard.MFA)
	api.Get("/geography", dashboard.Geography)
	api.Get("/status", dashboard.Status)
	api.Get("/analysis", dashboard.Analysis)
	api.Post("/refresh", dashboard.Refresh)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
