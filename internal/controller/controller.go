package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"okta-sentinel/internal/service"
	"okta-sentinel/internal/trends"
)

// Custom trend windows accepted over HTTP, one hour to one year.
const (
	minTrendHours = 1
	maxTrendHours = 8760
)

// DashboardController exposes HTTP handlers for the monitoring API.
type DashboardController interface {
	Trends7Day(c *fiber.Ctx) error
	Trends30Day(c *fiber.Ctx) error
	TrendsCustom(c *fiber.Ctx) error
	WeekOverWeek(c *fiber.Ctx) error
	Summary(c *fiber.Ctx) error
	Threats(c *fiber.Ctx) error
	MFA(c *fiber.Ctx) error
	Geography(c *fiber.Ctx) error
	Status(c *fiber.Ctx) error
	Analysis(c *fiber.Ctx) error
	Refresh(c *fiber.Ctx) error
}

type dashboardController struct {
	trends  trends.Service
	monitor service.MonitorService
}

// NewDashboardController builds a DashboardController.
func NewDashboardController(trendsSvc trends.Service, monitor service.MonitorService) DashboardController {
	return &dashboardController{trends: trendsSvc, monitor: monitor}
}

// Trends7Day serves the 7-day trend preset.
func (h *dashboardController) Trends7Day(c *fiber.Ctx) error {
	return c.JSON(h.trends.SevenDay())
}

// Trends30Day serves the 30-day trend preset.
func (h *dashboardController) Trends30Day(c *fiber.Ctx) error {
	return c.JSON(h.trends.ThirtyDay())
}

// TrendsCustom serves an arbitrary hour window, bounded to [1, 8760].
func (h *dashboardController) TrendsCustom(c *fiber.Ctx) error {
	hours := c.QueryInt("hours", 24)
	if hours < minTrendHours || hours > maxTrendHours {
		return fiber.NewError(fiber.StatusBadRequest, "hours must be between 1 and 8760")
	}
	return c.JSON(h.trends.Custom(hours))
}

// WeekOverWeek serves the trailing week comparison.
func (h *dashboardController) WeekOverWeek(c *fiber.Ctx) error {
	return c.JSON(h.trends.WeekOverWeek())
}

// Summary returns the latest snapshot's headline statistics.
func (h *dashboardController) Summary(c *fiber.Ctx) error {
	analysis, _ := h.monitor.LatestAnalysis()
	return c.JSON(analysis.Summary)
}

// Threats returns the latest suspicious users and IPs.
func (h *dashboardController) Threats(c *fiber.Ctx) error {
	analysis, _ := h.monitor.LatestAnalysis()
	return c.JSON(fiber.Map{
		"suspicious_users": analysis.FailedLogins.SuspiciousUsers,
		"suspicious_ips":   analysis.FailedLogins.SuspiciousIPs,
	})
}

// MFA returns the latest MFA analysis.
func (h *dashboardController) MFA(c *fiber.Ctx) error {
	analysis, _ := h.monitor.LatestAnalysis()
	return c.JSON(analysis.MFAAnalysis)
}

// Geography returns the latest login location distribution.
func (h *dashboardController) Geography(c *fiber.Ctx) error {
	analysis, _ := h.monitor.LatestAnalysis()
	return c.JSON(analysis.GeographicPatterns)
}

// Status reports data availability.
func (h *dashboardController) Status(c *fiber.Ctx) error {
	return c.JSON(h.monitor.Status())
}

// Analysis returns the latest full analysis result.
func (h *dashboardController) Analysis(c *fiber.Ctx) error {
	analysis, _ := h.monitor.LatestAnalysis()
	return c.JSON(analysis)
}

// Refresh triggers a fresh fetch and analysis cycle.
func (h *dashboardController) Refresh(c *fiber.Ctx) error {
	result, err := h.monitor.RunOnce(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoEvents):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoSource):
			return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch fresh data")
		}
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"message":   "Fresh data fetched successfully",
		"data":      result,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
