package mocktrends

import (
	"github.com/stretchr/testify/mock"

	"okta-sentinel/internal/model"
	"okta-sentinel/internal/trends"
)

type Service struct {
	mock.Mock
}

// Interface compliance check
var _ trends.Service = &Service{}

func (m *Service) SevenDay() model.TrendResponse {
	args := m.Called()
	return args.Get(0).(model.TrendResponse)
}

func (m *Service) ThirtyDay() model.TrendResponse {
	args := m.Called()
	return args.Get(0).(model.TrendResponse)
}

func (m *Service) Custom(hours int) model.TrendResponse {
	args := m.Called(hours)
	return args.Get(0).(model.TrendResponse)
}

func (m *Service) WeekOverWeek() model.WeekComparison {
	args := m.Called()
	return args.Get(0).(model.WeekComparison)
}
