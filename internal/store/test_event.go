package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdeck/ent"
	"github.com/abhisek/prepdeck/ent/testevent"
)

func (r *eventRepo) AppendTestEvent(ctx context.Context, data TestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TestEvent.Create().
		SetSequence(seqNum).
		SetTestID(data.TestID).
		SetSessionID(data.SessionID).
		SetTopicID(data.TopicID).
		SetQuestionCount(data.QuestionCount).
		SetCorrectCount(data.CorrectCount).
		SetIncorrectCount(data.IncorrectCount).
		SetScore(data.Score).
		SetStarEarned(data.StarEarned).
		SetTotalTimeSecs(data.TotalTimeSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save test event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentTests(ctx context.Context, limit int) ([]TestEventRecord, error) {
	q := r.client.TestEvent.Query().
		Order(ent.Desc(testevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query test events: %w", err)
	}

	records := make([]TestEventRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, TestEventRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			TestEventData: TestEventData{
				TestID:         row.TestID,
				SessionID:      row.SessionID,
				TopicID:        row.TopicID,
				QuestionCount:  row.QuestionCount,
				CorrectCount:   row.CorrectCount,
				IncorrectCount: row.IncorrectCount,
				Score:          row.Score,
				StarEarned:     row.StarEarned,
				TotalTimeSecs:  row.TotalTimeSecs,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) Clear(ctx context.Context) error {
	if _, err := r.client.SessionEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear session events: %w", err)
	}
	if _, err := r.client.TestEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear test events: %w", err)
	}
	return nil
}
