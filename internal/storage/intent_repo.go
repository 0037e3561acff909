package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"library-assistant/internal/contextutil"
	"library-assistant/internal/matcher"
)

// IntentRepo reads and writes the intents table.
type IntentRepo struct {
	db *sql.DB
}

// NewIntentRepo creates a new IntentRepo.
func NewIntentRepo(db *sql.DB) *IntentRepo {
	return &IntentRepo{db: db}
}

// Upsert inserts an intent or replaces the patterns and responses of the intent with the same tag.
func (r *IntentRepo) Upsert(ctx context.Context, intent matcher.Intent) error {
	if err := intent.Validate(); err != nil {
		return err
	}

	patterns, err := json.Marshal(intent.Patterns)
	if err != nil {
		return fmt.Errorf("encode patterns: %w", err)
	}
	responses, err := json.Marshal(intent.Responses)
	if err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO intents (tag, patterns, responses) VALUES (?, ?, ?)
		ON CONFLICT(tag) DO UPDATE SET
			patterns = excluded.patterns,
			responses = excluded.responses,
			updated_at = CURRENT_TIMESTAMP`,
		intent.Tag, string(patterns), string(responses),
	)
	return err
}

// ListIntents returns every well-formed intent ordered by id.
// A row whose pattern or response list cannot be decoded is logged and skipped.
func (r *IntentRepo) ListIntents(ctx context.Context) ([]matcher.Intent, error) {
	logger := contextutil.LoggerFromContext(ctx)

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, tag, patterns, responses FROM intents ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intents []matcher.Intent
	for rows.Next() {
		var (
			id                  int64
			intent              matcher.Intent
			patterns, responses string
		)
		if err := rows.Scan(&id, &intent.Tag, &patterns, &responses); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(patterns), &intent.Patterns); err != nil {
			logger.WarnContext(ctx, "skipping intent with unparseable patterns", "id", id, "tag", intent.Tag, "error", err)
			continue
		}
		if err := json.Unmarshal([]byte(responses), &intent.Responses); err != nil {
			logger.WarnContext(ctx, "skipping intent with unparseable responses", "id", id, "tag", intent.Tag, "error", err)
			continue
		}
		if err := intent.Validate(); err != nil {
			logger.WarnContext(ctx, "skipping invalid intent", "id", id, "error", err)
			continue
		}

		intents = append(intents, intent)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return intents, nil
}

// Count returns the number of rows in the intents table.
func (r *IntentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM intents").Scan(&n)
	return n, err
}
