package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdeck/ent"
	"github.com/abhisek/prepdeck/ent/seenquestion"
)

// seenRepo implements SeenQuestionRepo using the ent client.
type seenRepo struct {
	client *ent.Client
}

func (r *seenRepo) Seen(ctx context.Context, topicID int) ([]int, error) {
	rows, err := r.client.SeenQuestion.Query().
		Where(seenquestion.TopicID(topicID)).
		Order(ent.Asc(seenquestion.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query seen questions: %w", err)
	}

	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.QuestionID)
	}
	return ids, nil
}

func (r *seenRepo) MarkSeen(ctx context.Context, topicID int, questionIDs []int) error {
	for _, id := range questionIDs {
		_, err := r.client.SeenQuestion.Create().
			SetTopicID(topicID).
			SetQuestionID(id).
			Save(ctx)
		if err != nil {
			// The (topic, question) pair is unique; a re-delivered id is
			// already registered and not an error.
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("mark question %d seen: %w", id, err)
		}
	}
	return nil
}

func (r *seenRepo) Clear(ctx context.Context) error {
	if _, err := r.client.SeenQuestion.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear seen questions: %w", err)
	}
	return nil
}
