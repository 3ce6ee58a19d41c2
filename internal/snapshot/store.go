package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"okta-sentinel/internal/model"
	"okta-sentinel/internal/observability"
)

const (
	filePrefix      = "analysis_results_"
	fileSuffix      = ".json"
	timestampLayout = "20060102_150405"
)

// Entry is one catalog record: the timestamp embedded in a snapshot
// filename and the path to load it from.
type Entry struct {
	Timestamp time.Time
	Path      string
}

// Catalog is the ordered index of snapshots available in a data
// directory. It is built once and never mutated; callers needing fresh
// directory state build a new one.
type Catalog []Entry

// Store reads and writes analysis snapshots in a flat directory using
// the analysis_results_<YYYYMMDD>_<HHMMSS>.json naming convention.
type Store struct {
	dir string
	log logrus.FieldLogger
}

// NewStore creates a Store for the given directory.
func NewStore(dir string, log logrus.FieldLogger) *Store {
	return &Store{dir: dir, log: log}
}

// Dir returns the directory this store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// BuildCatalog scans the directory for snapshot files and returns them
// sorted by embedded timestamp, ascending. Files whose name does not
// parse are skipped with a warning; a scan never fails outright.
func (s *Store) BuildCatalog() Catalog {
	matches, err := filepath.Glob(filepath.Join(s.dir, filePrefix+"*"+fileSuffix))
	if err != nil {
		s.log.WithError(err).Warn("snapshot directory scan failed")
		return nil
	}

	catalog := make(Catalog, 0, len(matches))
	for _, path := range matches {
		ts, ok := parseTimestamp(filepath.Base(path))
		if !ok {
			s.log.WithField("file", filepath.Base(path)).Warn("could not parse timestamp from filename, skipping")
			continue
		}
		catalog = append(catalog, Entry{Timestamp: ts, Path: path})
	}

	sort.SliceStable(catalog, func(i, j int) bool {
		return catalog[i].Timestamp.Before(catalog[j].Timestamp)
	})
	return catalog
}

// Load deserializes one snapshot file. Malformed content or a read
// failure comes back as an error for the caller to skip; fields missing
// from the file decode to zero values.
func (s *Store) Load(entry Entry) (model.Snapshot, error) {
	data, err := os.ReadFile(entry.Path)
	if err != nil {
		observability.SnapshotSkipsTotal.Inc()
		return model.Snapshot{}, fmt.Errorf("read snapshot %s: %w", filepath.Base(entry.Path), err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		observability.SnapshotSkipsTotal.Inc()
		return model.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", filepath.Base(entry.Path), err)
	}

	snap.Timestamp = entry.Timestamp
	observability.SnapshotLoadsTotal.Inc()
	return snap, nil
}

// Write persists an analysis result under the timestamped naming
// convention and returns the path written.
func (s *Store) Write(result model.AnalysisResult, ts time.Time) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	name := filePrefix + ts.Format(timestampLayout) + fileSuffix
	path := filepath.Join(s.dir, name)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode analysis result: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot %s: %w", name, err)
	}

	observability.SnapshotsWrittenTotal.Inc()
	return path, nil
}

// Latest loads the newest snapshot's full analysis result for the live
// dashboard endpoints. The second return is false when the directory
// holds no loadable snapshot.
func (s *Store) Latest() (model.AnalysisResult, bool) {
	catalog := s.BuildCatalog()
	for i := len(catalog) - 1; i >= 0; i-- {
		data, err := os.ReadFile(catalog[i].Path)
		if err != nil {
			s.log.WithError(err).WithField("file", filepath.Base(catalog[i].Path)).Error("error loading snapshot")
			continue
		}
		var result model.AnalysisResult
		if err := json.Unmarshal(data, &result); err != nil {
			s.log.WithError(err).WithField("file", filepath.Base(catalog[i].Path)).Error("error decoding snapshot")
			continue
		}
		return result, true
	}
	return model.AnalysisResult{}, false
}

func parseTimestamp(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return time.Time{}, false
	}
	stem := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	ts, err := time.ParseInLocation(timestampLayout, stem, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
