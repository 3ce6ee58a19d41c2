package trends

import (
	"github.com/sirupsen/logrus"

	"okta-sentinel/internal/model"
	"okta-sentinel/internal/snapshot"
)

// Service names the reporting presets exposed to the HTTP layer. Each
// call scans the data directory fresh, so responses always reflect the
// snapshots on disk at request time.
type Service interface {
	SevenDay() model.TrendResponse
	ThirtyDay() model.TrendResponse
	Custom(hours int) model.TrendResponse
	WeekOverWeek() model.WeekComparison
}

type trendsService struct {
	store *snapshot.Store
	log   logrus.FieldLogger
}

// NewService builds the reporting facade over a snapshot store.
func NewService(store *snapshot.Store, log logrus.FieldLogger) Service {
	return &trendsService{store: store, log: log}
}

func (s *trendsService) SevenDay() model.TrendResponse {
	return NewAnalyzer(s.store, s.log).SevenDay()
}

func (s *trendsService) ThirtyDay() model.TrendResponse {
	return NewAnalyzer(s.store, s.log).ThirtyDay()
}

// Custom serves an arbitrary hour window. Bounds checking happens at
// the HTTP layer; any positive hour count is valid here.
func (s *trendsService) Custom(hours int) model.TrendResponse {
	return NewAnalyzer(s.store, s.log).TrendData(hours)
}

func (s *trendsService) WeekOverWeek() model.WeekComparison {
	return NewAnalyzer(s.store, s.log).WeekOverWeek()
}
