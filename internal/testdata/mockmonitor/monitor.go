package mockmonitor

import (
	"context"

	"github.com/stretchr/testify/mock"

	"okta-sentinel/internal/model"
	"okta-sentinel/internal/service"
)

type Monitor struct {
	mock.Mock
}

// Interface compliance check
var _ service.MonitorService = &Monitor{}

func (m *Monitor) RunOnce(ctx context.Context) (model.AnalysisResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.AnalysisResult), args.Error(1)
}

func (m *Monitor) LatestAnalysis() (model.AnalysisResult, bool) {
	args := m.Called()
	return args.Get(0).(model.AnalysisResult), args.Bool(1)
}

func (m *Monitor) Status() model.StatusReport {
	args := m.Called()
	return args.Get(0).(model.StatusReport)
}
