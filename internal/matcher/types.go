package matcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Availability is the lending state of a book.
type Availability int

const (
	// Available means the book is on the shelf.
	Available Availability = iota
	// Borrowed means the book is currently lent out.
	Borrowed
)

// String returns the canonical storage value.
func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Borrowed:
		return "borrowed"
	default:
		return fmt.Sprintf("availability(%d)", int(a))
	}
}

// ParseAvailability accepts the English and Indonesian spellings used by the catalog sources.
func ParseAvailability(s string) (Availability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available", "tersedia":
		return Available, nil
	case "borrowed", "dipinjam", "sedang dipinjam":
		return Borrowed, nil
	default:
		return 0, fmt.Errorf("unknown availability %q", s)
	}
}

// Book is a catalog record.
type Book struct {
	Title        string
	Subject      string
	Location     string // shelf code, e.g. "A1"
	Availability Availability
}

// Intent groups equivalent user phrasings with the replies they map to.
type Intent struct {
	Tag       string
	Patterns  []string
	Responses []string
}

// Validate reports whether the intent can take part in matching.
func (i Intent) Validate() error {
	if strings.TrimSpace(i.Tag) == "" {
		return errors.New("intent tag is empty")
	}
	if len(i.Patterns) == 0 {
		return fmt.Errorf("intent %q has no patterns", i.Tag)
	}
	if len(i.Responses) == 0 {
		return fmt.Errorf("intent %q has no responses", i.Tag)
	}
	for _, r := range i.Responses {
		if strings.TrimSpace(r) == "" {
			return fmt.Errorf("intent %q has a blank response", i.Tag)
		}
	}
	return nil
}

// Strategy names the step of the escalation order that produced a result.
type Strategy string

const (
	StrategyPrompt   Strategy = "prompt"
	StrategyTooLong  Strategy = "too_long"
	StrategySubject  Strategy = "subject"
	StrategyTitle    Strategy = "title"
	StrategyIntent   Strategy = "intent"
	StrategyFallback Strategy = "fallback"
)

// MatchResult is the single value produced per request.
type MatchResult struct {
	Response   string
	Score      int    // 0-100
	MatchedKey string // pattern, book title or subject; empty when nothing matched
	Strategy   Strategy
}

// CatalogProvider exposes the book catalog to the matchers.
type CatalogProvider interface {
	ListBooks(ctx context.Context) ([]Book, error)
}

// CatalogFunc adapts a function to CatalogProvider.
type CatalogFunc func(ctx context.Context) ([]Book, error)

// ListBooks calls f(ctx).
func (f CatalogFunc) ListBooks(ctx context.Context) ([]Book, error) {
	return f(ctx)
}

// Books is a fixed catalog snapshot.
type Books []Book

// ListBooks returns the snapshot itself.
func (b Books) ListBooks(context.Context) ([]Book, error) {
	return b, nil
}
