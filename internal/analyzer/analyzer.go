package analyzer

import (
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"okta-sentinel/internal/model"
)

// Risk classification boundaries, in failed attempts.
const (
	riskMedium   = 5
	riskHigh     = 10
	riskCritical = 20
)

// Analyzer classifies authentication events into threat categories.
type Analyzer struct {
	failedLoginThreshold int
	mfaFailureThreshold  int
	log                  logrus.FieldLogger
}

// New returns an Analyzer with the default detection thresholds:
// 5+ failed logins or 3+ MFA failures flag an actor as suspicious.
func New(log logrus.FieldLogger) *Analyzer {
	return &Analyzer{
		failedLoginThreshold: 5,
		mfaFailureThreshold:  3,
		log:                  log,
	}
}

// RunFullAnalysis runs every detector over the event batch and bundles
// the results into the snapshot-file shape.
func (a *Analyzer) RunFullAnalysis(events []model.AuditEvent) model.AnalysisResult {
	return model.AnalysisResult{
		Summary:            a.BuildSummary(events),
		FailedLogins:       a.AnalyzeFailedLogins(events),
		MFAAnalysis:        a.AnalyzeMFA(events),
		GeographicPatterns: a.AnalyzeGeography(events),
	}
}

// AnalyzeFailedLogins finds users and source IPs with excessive failed
// authentication attempts.
func (a *Analyzer) AnalyzeFailedLogins(events []model.AuditEvent) model.FailedLoginReport {
	userFailures := make(map[string][]model.FailureRecord)
	ipFailures := make(map[string][]model.FailureRecord)

	for _, ev := range events {
		if !isAuthentication(ev) || ev.Outcome.Result != "FAILURE" {
			continue
		}

		user := orUnknown(ev.Actor.AlternateID)
		ip := orUnknown(ev.Client.IPAddress)

		record := model.FailureRecord{
			Time:   ev.Published.Format(time.RFC3339),
			IP:     ip,
			Reason: orUnknown(ev.Outcome.Reason),
		}

		userFailures[user] = append(userFailures[user], record)
		ipFailures[ip] = append(ipFailures[ip], record)
	}

	report := model.FailedLoginReport{
		SuspiciousUsers: make(map[string]model.SuspiciousActor),
		SuspiciousIPs:   make(map[string]model.SuspiciousActor),
	}

	for user, failures := range userFailures {
		if len(failures) >= a.failedLoginThreshold {
			report.SuspiciousUsers[user] = model.SuspiciousActor{
				FailureCount: len(failures),
				Failures:     failures,
				RiskLevel:    riskLevel(len(failures)),
			}
		}
	}
	for ip, failures := range ipFailures {
		if len(failures) >= a.failedLoginThreshold {
			report.SuspiciousIPs[ip] = model.SuspiciousActor{
				FailureCount: len(failures),
				Failures:     failures,
				RiskLevel:    riskLevel(len(failures)),
			}
		}
	}

	a.log.WithFields(logrus.Fields{
		"suspicious_users": len(report.SuspiciousUsers),
		"suspicious_ips":   len(report.SuspiciousIPs),
	}).Info("failed login analysis complete")

	return report
}

// AnalyzeMFA summarizes multi-factor challenge outcomes and flags users
// accumulating failures.
func (a *Analyzer) AnalyzeMFA(events []model.AuditEvent) model.MFAReport {
	report := model.MFAReport{
		UsersWithFailures: make(map[string]int),
		SuspiciousUsers:   make(map[string]int),
	}

	for _, ev := range events {
		eventType := strings.ToLower(ev.EventType)
		if !strings.Contains(eventType, "mfa") {
			continue
		}

		user := orUnknown(ev.Actor.AlternateID)
		report.TotalChallenges++

		switch {
		case ev.Outcome.Result == "SUCCESS":
			report.Successful++
		case ev.Outcome.Result == "FAILURE":
			report.Failed++
			report.UsersWithFailures[user]++
		case strings.Contains(eventType, "deny"):
			report.Denied++
			report.UsersWithFailures[user]++
		}
	}

	if report.TotalChallenges > 0 {
		report.SuccessRate = round2(float64(report.Successful) / float64(report.TotalChallenges) * 100)
	}

	for user, count := range report.UsersWithFailures {
		if count >= a.mfaFailureThreshold {
			report.SuspiciousUsers[user] = count
		}
	}

	return report
}

// AnalyzeGeography maps authentication volume per resolved location.
func (a *Analyzer) AnalyzeGeography(events []model.AuditEvent) map[string]model.LocationStats {
	type bucket struct {
		count int
		users map[string]struct{}
	}
	locations := make(map[string]*bucket)

	for _, ev := range events {
		if !isAuthentication(ev) {
			continue
		}

		city := orUnknown(ev.Client.GeographicalContext.City)
		country := orUnknown(ev.Client.GeographicalContext.Country)
		key := city + ", " + country

		b, ok := locations[key]
		if !ok {
			b = &bucket{users: make(map[string]struct{})}
			locations[key] = b
		}
		b.count++
		b.users[orUnknown(ev.Actor.AlternateID)] = struct{}{}
	}

	result := make(map[string]model.LocationStats, len(locations))
	for key, b := range locations {
		users := make([]string, 0, len(b.users))
		for user := range b.users {
			users = append(users, user)
		}
		result[key] = model.LocationStats{Count: b.count, Users: users}
	}
	return result
}

// BuildSummary computes the headline statistics for the batch. The
// success rate is successes over total authentications, zero when no
// authentication events are present.
func (a *Analyzer) BuildSummary(events []model.AuditEvent) model.Summary {
	summary := model.Summary{TotalEvents: len(events)}

	users := make(map[string]struct{})
	ips := make(map[string]struct{})

	for _, ev := range events {
		if !isAuthentication(ev) {
			continue
		}
		summary.TotalAuthentications++

		if ev.Actor.AlternateID != "" {
			users[ev.Actor.AlternateID] = struct{}{}
		}
		if ev.Client.IPAddress != "" {
			ips[ev.Client.IPAddress] = struct{}{}
		}

		switch ev.Outcome.Result {
		case "SUCCESS":
			summary.SuccessfulLogins++
		case "FAILURE":
			summary.FailedLogins++
		}
	}

	summary.UniqueUsers = len(users)
	summary.UniqueIPs = len(ips)

	if summary.TotalAuthentications > 0 {
		summary.LoginSuccessRate = round2(float64(summary.SuccessfulLogins) / float64(summary.TotalAuthentications) * 100)
	}
	return summary
}

func riskLevel(failureCount int) string {
	switch {
	case failureCount >= riskCritical:
		return "CRITICAL"
	case failureCount >= riskHigh:
		return "HIGH"
	case failureCount >= riskMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func isAuthentication(ev model.AuditEvent) bool {
	return strings.Contains(strings.ToLower(ev.EventType), "authentication")
}

func orUnknown(val string) string {
	if val == "" {
		return "Unknown"
	}
	return val
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
