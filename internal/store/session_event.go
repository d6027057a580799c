package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdeck/ent"
	"github.com/abhisek/prepdeck/ent/sessionevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopicID(data.TopicID).
		SetAction(data.Action).
		SetPlannedMins(data.PlannedMins).
		SetActualMins(data.ActualMins).
		SetOutcome(data.Outcome).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionEventRecord, error) {
	q := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	records := make([]SessionEventRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, SessionEventRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			SessionEventData: SessionEventData{
				SessionID:   row.SessionID,
				TopicID:     row.TopicID,
				Action:      row.Action,
				PlannedMins: row.PlannedMins,
				ActualMins:  row.ActualMins,
				Outcome:     row.Outcome,
			},
		})
	}
	return records, nil
}
