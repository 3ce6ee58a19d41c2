package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"okta-sentinel/internal/controller"
	"okta-sentinel/internal/model"
	"okta-sentinel/internal/routes"
	"okta-sentinel/internal/service"
	"okta-sentinel/internal/testdata/mockmonitor"
	"okta-sentinel/internal/testdata/mocktrends"
)

type ControllerTestSuite struct {
	suite.Suite
	app     *fiber.App
	trends  *mocktrends.Service
	monitor *mockmonitor.Monitor
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) SetupTest() {
	s.trends = &mocktrends.Service{}
	s.monitor = &mockmonitor.Monitor{}

	s.app = fiber.New()
	s.app.Use(recover.New())
	routes.Register(s.app, controller.NewDashboardController(s.trends, s.monitor))
}

func (s *ControllerTestSuite) get(path string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(s.T(), err)
	return resp
}

func (s *ControllerTestSuite) TestTrends7Day() {
	expected := model.TrendResponse{TrendType: "last_168h"}
	s.trends.On("SevenDay").Return(expected)

	resp := s.get("/api/trends/7d")

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var body model.TrendResponse
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(s.T(), "last_168h", body.TrendType)
}

func (s *ControllerTestSuite) TestTrends30Day() {
	s.trends.On("ThirtyDay").Return(model.TrendResponse{TrendType: "last_720h"})

	resp := s.get("/api/trends/30d")

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
}

func (s *ControllerTestSuite) TestTrendsCustom_DefaultsTo24Hours() {
	s.trends.On("Custom", 24).Return(model.TrendResponse{TrendType: "last_24h"})

	resp := s.get("/api/trends/custom")

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	s.trends.AssertExpectations(s.T())
}

func (s *ControllerTestSuite) TestTrendsCustom_ValidHours() {
	s.trends.On("Custom", 48).Return(model.TrendResponse{TrendType: "last_48h"})

	resp := s.get("/api/trends/custom?hours=48")

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
}

func (s *ControllerTestSuite) TestTrendsCustom_OutOfBounds() {
	for _, hours := range []string{"0", "-5", "8761"} {
		resp := s.get("/api/trends/custom?hours=" + hours)
		require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode, "hours=%s", hours)
	}
	s.trends.AssertNotCalled(s.T(), "Custom", mock.Anything)
}

func (s *ControllerTestSuite) TestTrendsCustom_BoundaryHours() {
	s.trends.On("Custom", 1).Return(model.TrendResponse{})
	s.trends.On("Custom", 8760).Return(model.TrendResponse{})

	require.Equal(s.T(), http.StatusOK, s.get("/api/trends/custom?hours=1").StatusCode)
	require.Equal(s.T(), http.StatusOK, s.get("/api/trends/custom?hours=8760").StatusCode)
}

func (s *ControllerTestSuite) TestWeekOverWeek() {
	s.trends.On("WeekOverWeek").Return(model.WeekComparison{
		Comparison: model.WeekChanges{
			EventsChange: model.MetricChange{ChangePercent: 50.0, Direction: "up"},
		},
	})

	resp := s.get("/api/trends/week-over-week")

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var body model.WeekComparison
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(s.T(), "up", body.Comparison.EventsChange.Direction)
}

func (s *ControllerTestSuite) TestSummary() {
	s.monitor.On("LatestAnalysis").Return(model.AnalysisResult{
		Summary: model.Summary{TotalEvents: 42},
	}, true)

	resp := s.get("/api/summary")

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var body model.Summary
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(s.T(), 42, body.TotalEvents)
}

func (s *ControllerTestSuite) TestThreats() {
	s.monitor.On("LatestAnalysis").Return(model.AnalysisResult{
		FailedLogins: model.FailedLoginReport{
			SuspiciousUsers: map[string]model.SuspiciousActor{
				"user@example.com": {FailureCount: 7, RiskLevel: "MEDIUM"},
			},
		},
	}, true)

	resp := s.get("/api/threats")

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var body map[string]map[string]model.SuspiciousActor
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(s.T(), body["suspicious_users"], "user@example.com")
}

func (s *ControllerTestSuite) TestStatus() {
	s.monitor.On("Status").Return(model.StatusReport{Status: "no_data"})

	resp := s.get("/api/status")

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
}

func (s *ControllerTestSuite) TestRefresh_Success() {
	s.monitor.On("RunOnce", mock.Anything).Return(model.AnalysisResult{
		Summary: model.Summary{TotalEvents: 10},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	resp, err := s.app.Test(req, -1)

	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
}

func (s *ControllerTestSuite) TestRefresh_NoEvents() {
	s.monitor.On("RunOnce", mock.Anything).Return(model.AnalysisResult{}, service.ErrNoEvents)

	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	resp, err := s.app.Test(req, -1)

	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusNotFound, resp.StatusCode)
}

func (s *ControllerTestSuite) TestRefresh_OfflineMode() {
	s.monitor.On("RunOnce", mock.Anything).Return(model.AnalysisResult{}, service.ErrNoSource)

	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	resp, err := s.app.Test(req, -1)

	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusServiceUnavailable, resp.StatusCode)
}

func (s *ControllerTestSuite) TestRefresh_InternalError() {
	s.monitor.On("RunOnce", mock.Anything).Return(model.AnalysisResult{}, context.DeadlineExceeded)

	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	resp, err := s.app.Test(req, -1)

	require.NoError(s.T(), err)
	require.Equal(s.T(), http.StatusInternalServerError, resp.StatusCode)
}

func (s *ControllerTestSuite) TestHealth() {
	resp := s.get("/health")
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
}
