package model

import "time"

// AuditEvent is a single record from the Okta System Log API. Only the
// fields the analyzers read are mapped; everything else is dropped at
// decode time.
type AuditEvent struct {
	EventType string       `json:"eventType"`
	Outcome   EventOutcome `json:"outcome"`
	Actor     EventActor   `json:"actor"`
	Client    EventClient  `json:"client"`
	Published time.Time    `json:"published"`
}

// EventOutcome carries the result of the logged operation.
type EventOutcome struct {
	Result string `json:"result"`
	Reason string `json:"reason"`
}

// EventActor identifies who triggered the event.
type EventActor struct {
	AlternateID string `json:"alternateId"`
}

// EventClient describes where the event originated.
type EventClient struct {
	IPAddress           string        `json:"ipAddress"`
	GeographicalContext EventGeoLabel `json:"geographicalContext"`
}

// EventGeoLabel is the client's resolved location.
type EventGeoLabel struct {
	City    string `json:"city"`
	Country string `json:"country"`
}
