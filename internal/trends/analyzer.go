package trends

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"okta-sentinel/internal/model"
	"okta-sentinel/internal/snapshot"
)

// Hour windows for the named presets.
const (
	sevenDayHours  = 168
	thirtyDayHours = 720
)

// Analyzer computes trend series and week-over-week comparisons over a
// snapshot catalog. The catalog is bound at construction; build a new
// Analyzer to pick up files written since.
type Analyzer struct {
	catalog snapshot.Catalog
	store   *snapshot.Store
	now     func() time.Time
	log     logrus.FieldLogger
}

// NewAnalyzer scans the store's directory and returns an Analyzer over
// the snapshots found at that instant.
func NewAnalyzer(store *snapshot.Store, log logrus.FieldLogger) *Analyzer {
	return &Analyzer{
		catalog: store.BuildCatalog(),
		store:   store,
		now:     time.Now,
		log:     log,
	}
}

// TrendData returns the time-series view for the trailing window of the
// given hour count. Snapshots timestamped at or after now-hours are
// included; ones that fail to load are skipped. An empty window yields
// an empty series, not an error.
func (a *Analyzer) TrendData(hours int) model.TrendResponse {
	cutoff := a.now().Add(-time.Duration(hours) * time.Hour)

	var relevant snapshot.Catalog
	for _, entry := range a.catalog {
		if !entry.Timestamp.Before(cutoff) {
			relevant = append(relevant, entry)
		}
	}

	resp := model.TrendResponse{
		TrendType:  fmt.Sprintf("last_%dh", hours),
		Timestamps: []string{},
		DataPoints: model.TrendPoints{
			TotalEvents:      []int{},
			FailedLogins:     []int{},
			SuccessfulLogins: []int{},
			UniqueUsers:      []int{},
			LoginSuccessRate: []float64{},
		},
	}

	if len(relevant) == 0 {
		a.log.WithField("hours", hours).Warn("no snapshots found within window")
		return resp
	}

	for _, entry := range relevant {
		snap, err := a.store.Load(entry)
		if err != nil {
			a.log.WithError(err).Error("error loading snapshot")
			continue
		}

		resp.Timestamps = append(resp.Timestamps, snap.Timestamp.Format(time.RFC3339))
		resp.DataPoints.TotalEvents = append(resp.DataPoints.TotalEvents, snap.Summary.TotalEvents)
		resp.DataPoints.FailedLogins = append(resp.DataPoints.FailedLogins, snap.Summary.FailedLogins)
		resp.DataPoints.SuccessfulLogins = append(resp.DataPoints.SuccessfulLogins, snap.Summary.SuccessfulLogins)
		resp.DataPoints.UniqueUsers = append(resp.DataPoints.UniqueUsers, snap.Summary.UniqueUsers)
		resp.DataPoints.LoginSuccessRate = append(resp.DataPoints.LoginSuccessRate, round2(snap.Summary.LoginSuccessRate))
	}

	resp.Summary = summarize(resp.DataPoints.TotalEvents, resp.DataPoints.FailedLogins)
	return resp
}

// SevenDay is the 7-day preset.
func (a *Analyzer) SevenDay() model.TrendResponse {
	return a.TrendData(sevenDayHours)
}

// ThirtyDay is the 30-day preset.
func (a *Analyzer) ThirtyDay() model.TrendResponse {
	return a.TrendData(thirtyDayHours)
}

// WeekOverWeek compares the trailing 7-day bucket against the 7 days
// before it. The shared boundary instant belongs to the current week
// only, so a snapshot landing exactly on it is never counted twice.
func (a *Analyzer) WeekOverWeek() model.WeekComparison {
	now := a.now()
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	var currentWeek, lastWeek snapshot.Catalog
	for _, entry := range a.catalog {
		ts := entry.Timestamp
		switch {
		case !ts.Before(weekAgo) && !ts.After(now):
			currentWeek = append(currentWeek, entry)
		case !ts.Before(twoWeeksAgo) && ts.Before(weekAgo):
			lastWeek = append(lastWeek, entry)
		}
	}

	current := a.aggregateWeek(currentWeek)
	last := a.aggregateWeek(lastWeek)

	return model.WeekComparison{
		CurrentWeek: current,
		LastWeek:    last,
		Comparison: model.WeekChanges{
			EventsChange:      calcChange(float64(current.TotalEvents), float64(last.TotalEvents)),
			FailuresChange:    calcChange(float64(current.FailedLogins), float64(last.FailedLogins)),
			SuccessRateChange: calcChange(current.AvgSuccessRate, last.AvgSuccessRate),
		},
	}
}

// aggregateWeek sums counts and averages the stored success rates over
// one bucket. The mean is taken over the per-snapshot rates as written,
// preserving per-snapshot weighting.
func (a *Analyzer) aggregateWeek(entries snapshot.Catalog) model.WeekAggregate {
	var agg model.WeekAggregate
	var rates []float64

	for _, entry := range entries {
		snap, err := a.store.Load(entry)
		if err != nil {
			a.log.WithError(err).Error("error loading snapshot")
			continue
		}
		agg.TotalEvents += snap.Summary.TotalEvents
		agg.FailedLogins += snap.Summary.FailedLogins
		agg.SuccessfulLogins += snap.Summary.SuccessfulLogins
		rates = append(rates, snap.Summary.LoginSuccessRate)
	}

	if len(rates) > 0 {
		var sum float64
		for _, r := range rates {
			sum += r
		}
		agg.AvgSuccessRate = round2(sum / float64(len(rates)))
	}
	return agg
}

// calcChange computes the percentage delta and its direction. Growth
// from zero is reported as the fixed 100% sentinel.
func calcChange(current, previous float64) model.MetricChange {
	var pct float64
	switch {
	case previous == 0 && current == 0:
		pct = 0
	case previous == 0:
		pct = 100
	default:
		pct = round2((current - previous) / previous * 100)
	}

	direction := "stable"
	if pct > 0 {
		direction = "up"
	} else if pct < 0 {
		direction = "down"
	}
	return model.MetricChange{ChangePercent: pct, Direction: direction}
}

func summarize(events, failures []int) model.TrendSummary {
	if len(events) == 0 {
		return model.TrendSummary{}
	}
	minE, maxE, sumE := stats(events)
	minF, maxF, sumF := stats(failures)
	return model.TrendSummary{
		MinEvents:       minE,
		MaxEvents:       maxE,
		AvgEvents:       round2(float64(sumE) / float64(len(events))),
		MinFailures:     minF,
		MaxFailures:     maxF,
		AvgFailures:     round2(float64(sumF) / float64(len(failures))),
		DataPointsCount: len(events),
	}
}

func stats(values []int) (minV, maxV, sum int) {
	minV, maxV = values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		sum += v
	}
	return minV, maxV, sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
