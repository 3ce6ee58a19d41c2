package model

// TrendResponse is the time-series view over a trailing window of
// snapshots. Slices are parallel: index i of every series belongs to
// Timestamps[i].
type TrendResponse struct {
	TrendType  string       `json:"trend_type"`
	Timestamps []string     `json:"timestamps"`
	DataPoints TrendPoints  `json:"data_points"`
	Summary    TrendSummary `json:"summary"`
}

// TrendPoints holds one series per tracked metric.
type TrendPoints struct {
	TotalEvents      []int     `json:"total_events"`
	FailedLogins     []int     `json:"failed_logins"`
	SuccessfulLogins []int     `json:"successful_logins"`
	UniqueUsers      []int     `json:"unique_users"`
	LoginSuccessRate []float64 `json:"login_success_rate"`
}

// TrendSummary carries scalar aggregates over the window.
type TrendSummary struct {
	MinEvents       int     `json:"min_events"`
	MaxEvents       int     `json:"max_events"`
	AvgEvents       float64 `json:"avg_events"`
	MinFailures     int     `json:"min_failures"`
	MaxFailures     int     `json:"max_failures"`
	AvgFailures     float64 `json:"avg_failures"`
	DataPointsCount int     `json:"data_points_count"`
}

// WeekAggregate sums a 7-day bucket of snapshots. AvgSuccessRate is the
// arithmetic mean of the stored per-snapshot rates, not a recomputation
// from the summed totals.
type WeekAggregate struct {
	TotalEvents      int     `json:"total_events"`
	FailedLogins     int     `json:"failed_logins"`
	SuccessfulLogins int     `json:"successful_logins"`
	AvgSuccessRate   float64 `json:"avg_success_rate"`
}

// MetricChange is a percentage delta with a qualitative direction.
type MetricChange struct {
	ChangePercent float64 `json:"change_percent"`
	Direction     string  `json:"direction"`
}

// WeekChanges compares the tracked metric pairs between two weeks.
// Successful logins are aggregated but intentionally not compared.
type WeekChanges struct {
	EventsChange      MetricChange `json:"events_change"`
	FailuresChange    MetricChange `json:"failures_change"`
	SuccessRateChange MetricChange `json:"success_rate_change"`
}

// WeekComparison is the week-over-week response.
type WeekComparison struct {
	CurrentWeek WeekAggregate `json:"current_week"`
	LastWeek    WeekAggregate `json:"last_week"`
	Comparison  WeekChanges   `json:"comparison"`
}
