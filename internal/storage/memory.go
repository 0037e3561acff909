package storage

import (
	"context"
	"slices"

	"library-assistant/internal/matcher"
)

// MemoryStore serves fixed in-process tables.
type MemoryStore struct {
	books   []matcher.Book
	intents []matcher.Intent
}

// NewMemoryStore creates a store over copies of books and intents.
func NewMemoryStore(books []matcher.Book, intents []matcher.Intent) *MemoryStore {
	return &MemoryStore{
		books:   slices.Clone(books),
		intents: slices.Clone(intents),
	}
}

// ListBooks returns a copy of the catalog.
func (s *MemoryStore) ListBooks(context.Context) ([]matcher.Book, error) {
	return slices.Clone(s.books), nil
}

// ListIntents returns a copy of the intent table.
func (s *MemoryStore) ListIntents(context.Context) ([]matcher.Intent, error) {
	return slices.Clone(s.intents), nil
}
