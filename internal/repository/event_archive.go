package repository

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"

	"okta-sentinel/internal/model"
)

// EventArchive defines storage operations for raw audit events.
type EventArchive interface {
	// InsertBatch appends multiple events in a single ClickHouse batch.
	InsertBatch(ctx context.Context, events []model.AuditEvent) error
}

type eventArchive struct {
	conn clickhouse.Conn
}

// NewEventArchive creates an EventArchive backed by ClickHouse.
func NewEventArchive(conn clickhouse.Conn) EventArchive {
	return &eventArchive{conn: conn}
}

func (r *eventArchive) InsertBatch(ctx context.Context, events []model.AuditEvent) error {
	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, `
		INSERT INTO audit_events (event_type, outcome, outcome_reason, actor, ip_address, city, country, published)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, ev := range events {
		err := batch.Append(
			ev.EventType,
			ev.Outcome.Result,
			ev.Outcome.Reason,
			ev.Actor.AlternateID,
			ev.Client.IPAddress,
			ev.Client.GeographicalContext.City,
			ev.Client.GeographicalContext.Country,
			ev.Published,
		)
		if err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}
