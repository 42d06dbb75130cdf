package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// masteryRepo implements MasteryRepo over the mastery table.
type masteryRepo struct {
	db *sql.DB
}

func (r *masteryRepo) Set(ctx context.Context, topicID string, mastered bool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO mastery (topic_id, mastered, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(topic_id) DO UPDATE SET mastered = excluded.mastered, updated_at = excluded.updated_at`,
		topicID, mastered, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("set mastery %s: %w", topicID, err)
	}
	return nil
}

func (r *masteryRepo) All(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT topic_id, mastered FROM mastery`)
	if err != nil {
		return nil, fmt.Errorf("query mastery: %w", err)
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var (
			id       string
			mastered bool
		)
		if err := rows.Scan(&id, &mastered); err != nil {
			return nil, fmt.Errorf("scan mastery: %w", err)
		}
		result[id] = mastered
	}
	return result, rows.Err()
}

func (r *masteryRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mastery`); err != nil {
		return fmt.Errorf("reset mastery: %w", err)
	}
	return nil
}
