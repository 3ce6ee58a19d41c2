package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"okta-sentinel/internal/analyzer"
	"okta-sentinel/internal/model"
	"okta-sentinel/internal/observability"
	"okta-sentinel/internal/snapshot"
)

// ErrNoEvents is returned by RunOnce when the provider window holds no
// authentication events to analyze.
var ErrNoEvents = errors.New("no log events retrieved")

// ErrNoSource is returned when a fetch is requested in offline mode.
var ErrNoSource = errors.New("log source not configured")

// LogSource provides raw audit events for a trailing window. The Okta
// client satisfies this; tests substitute a mock.
type LogSource interface {
	TestConnection(ctx context.Context) error
	AuthenticationLogs(ctx context.Context, hoursBack, limit int) ([]model.AuditEvent, error)
}

// MonitorService orchestrates one monitoring cycle: fetch, analyze,
// persist a snapshot, and archive the raw events.
type MonitorService interface {
	RunOnce(ctx context.Context) (model.AnalysisResult, error)
	LatestAnalysis() (model.AnalysisResult, bool)
	Status() model.StatusReport
}

type monitorService struct {
	source        LogSource
	analyzer      *analyzer.Analyzer
	store         *snapshot.Store
	worker        ArchiveWorker
	lookbackHours int
	logLimit      int
	now           func() time.Time
	log           logrus.FieldLogger
}

// NewMonitorService wires the monitoring pipeline. source and worker
// may be nil: a nil source disables fetching (offline mode) and a nil
// worker disables the raw-event archive.
func NewMonitorService(source LogSource, a *analyzer.Analyzer, store *snapshot.Store, worker ArchiveWorker, lookbackHours, logLimit int, log logrus.FieldLogger) MonitorService {
	return &monitorService{
		source:        source,
		analyzer:      a,
		store:         store,
		worker:        worker,
		lookbackHours: lookbackHours,
		logLimit:      logLimit,
		now:           time.Now,
		log:           log,
	}
}

// RunOnce fetches the trailing window of authentication events, runs
// the full analysis, and writes a timestamped snapshot.
func (s *monitorService) RunOnce(ctx context.Context) (model.AnalysisResult, error) {
	if s.source == nil {
		return model.AnalysisResult{}, ErrNoSource
	}

	fetchStart := time.Now()
	events, err := s.source.AuthenticationLogs(ctx, s.lookbackHours, s.logLimit)
	observability.FetchDuration.Observe(time.Since(fetchStart).Seconds())
	if err != nil {
		return model.AnalysisResult{}, err
	}
	if len(events) == 0 {
		return model.AnalysisResult{}, ErrNoEvents
	}

	analysisStart := time.Now()
	result := s.analyzer.RunFullAnalysis(events)
	observability.AnalysisDuration.Observe(time.Since(analysisStart).Seconds())

	path, err := s.store.Write(result, s.now())
	if err != nil {
		return model.AnalysisResult{}, err
	}
	s.log.WithField("path", path).Info("analysis snapshot saved")

	if s.worker != nil {
		for _, ev := range events {
			s.worker.Enqueue(ev)
		}
	}

	return result, nil
}

// LatestAnalysis returns the newest snapshot's full analysis result.
func (s *monitorService) LatestAnalysis() (model.AnalysisResult, bool) {
	return s.store.Latest()
}

// Status reports whether any analysis data is available to serve.
func (s *monitorService) Status() model.StatusReport {
	_, ok := s.store.Latest()

	report := model.StatusReport{
		Status:    "ok",
		HasData:   ok,
		Message:   "Analysis data loaded successfully",
		Timestamp: s.now().Format(time.RFC3339),
	}
	if !ok {
		report.Status = "no_data"
		report.Message = "No analysis data available. Trigger a refresh to generate analysis."
	}
	return report
}
