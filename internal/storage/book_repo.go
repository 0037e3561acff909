package storage

import (
	"context"
	"database/sql"
	"strings"

	"library-assistant/internal/contextutil"
	"library-assistant/internal/matcher"
)

// BookRepo reads and writes the books table.
type BookRepo struct {
	db *sql.DB
}

// NewBookRepo creates a new BookRepo.
func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{db: db}
}

// Insert stores a book and returns its id.
func (r *BookRepo) Insert(ctx context.Context, book matcher.Book) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO books (title, subject, location, availability) VALUES (?, ?, ?, ?)",
		book.Title, book.Subject, book.Location, book.Availability.String(),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListBooks returns every well-formed book ordered by id, which is the catalog's canonical order.
// Rows with an empty title or an unknown availability are logged and skipped.
func (r *BookRepo) ListBooks(ctx context.Context) ([]matcher.Book, error) {
	logger := contextutil.LoggerFromContext(ctx)

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, subject, location, availability FROM books ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []matcher.Book
	for rows.Next() {
		var (
			id           int64
			book         matcher.Book
			availability string
		)
		if err := rows.Scan(&id, &book.Title, &book.Subject, &book.Location, &availability); err != nil {
			return nil, err
		}

		if strings.TrimSpace(book.Title) == "" {
			logger.WarnContext(ctx, "skipping book without title", "id", id)
			continue
		}
		book.Availability, err = matcher.ParseAvailability(availability)
		if err != nil {
			logger.WarnContext(ctx, "skipping malformed book", "id", id, "error", err)
			continue
		}

		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

// Count returns the number of rows in the books table.
func (r *BookRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&n)
	return n, err
}
