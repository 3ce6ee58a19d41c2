package model

import "time"

// Summary holds the headline statistics for one analysis run. The JSON
// field names are part of the snapshot file format and must not change.
type Summary struct {
	TotalEvents          int     `json:"total_events"`
	TotalAuthentications int     `json:"total_authentications"`
	SuccessfulLogins     int     `json:"successful_logins"`
	FailedLogins         int     `json:"failed_logins"`
	UniqueUsers          int     `json:"unique_users"`
	UniqueIPs            int     `json:"unique_ips"`
	LoginSuccessRate     float64 `json:"login_success_rate"`
}

// FailureRecord is one failed authentication attempt.
type FailureRecord struct {
	Time   string `json:"time"`
	IP     string `json:"ip"`
	Reason string `json:"reason"`
}

// SuspiciousActor is a user or IP that crossed the failure threshold.
type SuspiciousActor struct {
	FailureCount int             `json:"failure_count"`
	Failures     []FailureRecord `json:"failures"`
	RiskLevel    string          `json:"risk_level"`
}

// FailedLoginReport groups suspicious users and source IPs.
type FailedLoginReport struct {
	SuspiciousUsers map[string]SuspiciousActor `json:"suspicious_users"`
	SuspiciousIPs   map[string]SuspiciousActor `json:"suspicious_ips"`
}

// MFAReport summarizes multi-factor challenge outcomes.
type MFAReport struct {
	TotalChallenges   int            `json:"total_challenges"`
	Successful        int            `json:"successful"`
	Failed            int            `json:"failed"`
	Denied            int            `json:"denied"`
	SuccessRate       float64        `json:"success_rate"`
	UsersWithFailures map[string]int `json:"users_with_failures"`
	SuspiciousUsers   map[string]int `json:"suspicious_users"`
}

// LocationStats counts authentications seen from one location.
type LocationStats struct {
	Count int      `json:"count"`
	Users []string `json:"users"`
}

// AnalysisResult is the full output of one analysis run and the exact
// shape persisted to analysis_results_*.json snapshot files.
type AnalysisResult struct {
	Summary            Summary                  `json:"summary"`
	FailedLogins       FailedLoginReport        `json:"failed_logins"`
	MFAAnalysis        MFAReport                `json:"mfa_analysis"`
	GeographicPatterns map[string]LocationStats `json:"geographic_patterns"`
}

// Snapshot is one persisted analysis record loaded back from disk. The
// timestamp comes from the filename, not the file content. Missing or
// malformed fields decode to their zero values.
type Snapshot struct {
	Timestamp time.Time `json:"-"`
	Summary   Summary   `json:"summary"`
}

// StatusReport describes whether the service has analysis data to serve.
type StatusReport struct {
	Status    string `json:"status"`
	HasData   bool   `json:"has_data"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
