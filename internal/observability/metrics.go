package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sentinel_okta_fetch_seconds",
		Help:    "Time spent fetching logs from the Okta System Log API.",
		Buckets: prometheus.DefBuckets,
	})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sentinel_analysis_seconds",
		Help:    "Time spent running a full threat analysis pass.",
		Buckets: prometheus.DefBuckets,
	})

	SnapshotLoadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_snapshot_loads_total",
		Help: "Total number of snapshot files loaded successfully.",
	})

	SnapshotSkipsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_snapshot_skips_total",
		Help: "Total number of snapshot files skipped due to parse or read failures.",
	})

	SnapshotsWrittenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_snapshots_written_total",
		Help: "Total number of analysis snapshots persisted to disk.",
	})

	ArchiveQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sentinel_archive_queue_depth",
		Help: "Current number of audit events waiting to be archived.",
	})

	ArchiveFlushTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_archive_flush_total",
		Help: "Total number of archive batches flushed to ClickHouse.",
	})

	ArchiveFlushErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_archive_flush_errors_total",
		Help: "Total number of archive batch flushes that failed.",
	})
)
