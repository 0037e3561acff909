package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"library-assistant/internal/matcher"
)

// SeedResult reports how many rows Seed inserted.
type SeedResult struct {
	Books   int
	Intents int
}

// Seed fills the books and intents tables when they are empty. Tables that
// already hold rows are left untouched. All inserts run in one transaction.
func Seed(ctx context.Context, db *sql.DB, books []matcher.Book, intents []matcher.Intent) (SeedResult, error) {
	var result SeedResult

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return result, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		return result, err
	}
	if count == 0 {
		for _, b := range books {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO books (title, subject, location, availability) VALUES (?, ?, ?, ?)",
				b.Title, b.Subject, b.Location, b.Availability.String(),
			); err != nil {
				return SeedResult{}, fmt.Errorf("seed book %q: %w", b.Title, err)
			}
			result.Books++
		}
	}

	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM intents").Scan(&count); err != nil {
		return SeedResult{}, err
	}
	if count == 0 {
		for _, in := range intents {
			patterns, err := json.Marshal(in.Patterns)
			if err != nil {
				return SeedResult{}, err
			}
			responses, err := json.Marshal(in.Responses)
			if err != nil {
				return SeedResult{}, err
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO intents (tag, patterns, responses) VALUES (?, ?, ?)",
				in.Tag, string(patterns), string(responses),
			); err != nil {
				return SeedResult{}, fmt.Errorf("seed intent %q: %w", in.Tag, err)
			}
			result.Intents++
		}
	}

	if err := tx.Commit(); err != nil {
		return SeedResult{}, err
	}
	return result, nil
}
