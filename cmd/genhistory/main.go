// genhistory writes synthetic historical analysis snapshots so the
// trend endpoints have data to serve before real monitoring cycles
// accumulate.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"okta-sentinel/internal/model"
	"okta-sentinel/internal/snapshot"
)

func main() {
	dir := flag.String("dir", "./data", "Directory to write snapshots into")
	days := flag.Int("days", 30, "Number of days of history to generate")
	perDay := flag.Int("per-day", 4, "Snapshots per day")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *perDay < 1 || *perDay > 16 {
		log.Fatal("per-day must be between 1 and 16")
	}

	store := snapshot.NewStore(*dir, log)
	now := time.Now()
	written := 0

	for day := *days; day >= 1; day-- {
		for i := 0; i < *perDay; i++ {
			// Spread snapshots across the working day.
			hour := 6 + i*(16 / *perDay)
			ts := now.AddDate(0, 0, -day)
			ts = time.Date(ts.Year(), ts.Month(), ts.Day(), hour, rand.Intn(60), rand.Intn(60), 0, ts.Location())

			if _, err := store.Write(synthesize(ts), ts); err != nil {
				log.WithError(err).Fatal("write snapshot")
			}
			written++
		}
	}

	log.WithFields(logrus.Fields{"count": written, "dir": *dir}).Info("historical snapshots generated")
}

// synthesize fabricates one analysis result with a diurnal load curve:
// quiet mornings, busy middays, moderate evenings.
func synthesize(ts time.Time) model.AnalysisResult {
	var baseEvents int
	var failureRate float64

	switch hour := ts.Hour(); {
	case hour >= 6 && hour < 9:
		baseEvents = 40 + rand.Intn(21)
		failureRate = 0.15 + rand.Float64()*0.10
	case hour >= 10 && hour < 17:
		baseEvents = 80 + rand.Intn(41)
		failureRate = 0.20 + rand.Float64()*0.15
	default:
		baseEvents = 50 + rand.Intn(31)
		failureRate = 0.25 + rand.Float64()*0.15
	}

	totalEvents := baseEvents + rand.Intn(16) - 5
	failedLogins := int(float64(totalEvents)*failureRate) + rand.Intn(5) - 2
	if failedLogins < 0 {
		failedLogins = 0
	}
	successfulLogins := totalEvents - failedLogins

	successRate := 0.0
	if totalEvents > 0 {
		successRate = float64(successfulLogins) / float64(totalEvents) * 100
	}

	mfaTotal := totalEvents * 3 / 10
	mfaSuccess := int(float64(mfaTotal) * (0.85 + rand.Float64()*0.13))
	mfaRate := 0.0
	if mfaTotal > 0 {
		mfaRate = float64(mfaSuccess) / float64(mfaTotal) * 100
	}

	result := model.AnalysisResult{
		Summary: model.Summary{
			TotalEvents:          totalEvents,
			TotalAuthentications: totalEvents,
			SuccessfulLogins:     successfulLogins,
			FailedLogins:         failedLogins,
			UniqueUsers:          3 + rand.Intn(10),
			UniqueIPs:            2 + rand.Intn(7),
			LoginSuccessRate:     float64(int(successRate*100)) / 100,
		},
		FailedLogins: model.FailedLoginReport{
			SuspiciousUsers: make(map[string]model.SuspiciousActor),
			SuspiciousIPs:   make(map[string]model.SuspiciousActor),
		},
		MFAAnalysis: model.MFAReport{
			TotalChallenges:   mfaTotal,
			Successful:        mfaSuccess,
			Failed:            mfaTotal - mfaSuccess,
			SuccessRate:       float64(int(mfaRate*100)) / 100,
			UsersWithFailures: make(map[string]int),
			SuspiciousUsers:   make(map[string]int),
		},
		GeographicPatterns: map[string]model.LocationStats{
			"San Francisco, United States": {Count: totalEvents * 7 / 10},
			"Toronto, Canada":              {Count: totalEvents * 15 / 100},
			"London, United Kingdom":       {Count: totalEvents / 10},
		},
	}

	if rand.Float64() < 0.6 {
		for i := 0; i < 1+rand.Intn(3); i++ {
			user := fmt.Sprintf("user_%d@company.com", 100+rand.Intn(900))
			count := 5 + rand.Intn(6)
			result.FailedLogins.SuspiciousUsers[user] = model.SuspiciousActor{
				FailureCount: count,
				RiskLevel:    riskFor(count),
			}
		}
	}

	return result
}

func riskFor(count int) string {
	if count >= 10 {
		return "HIGH"
	}
	return "MEDIUM"
}
