package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_sources.go -package=mocks library-assistant/internal/service BookSource,IntentSource
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService library-assistant/internal/service ChatService

import (
	"context"
	"fmt"

	"library-assistant/internal/cache"
	"library-assistant/internal/contextutil"
	"library-assistant/internal/matcher"
)

// Table names accepted by Reload.
const (
	TableBooks   = "books"
	TableIntents = "intents"
	TableAll     = "all"
)

// BookSource provides the book catalog.
// This interface is defined from the service layer's perspective (consumer-first).
type BookSource interface {
	// ListBooks returns the catalog in its canonical order.
	ListBooks(ctx context.Context) ([]matcher.Book, error)
}

// IntentSource provides the intent table.
type IntentSource interface {
	// ListIntents returns the active intents.
	ListIntents(ctx context.Context) ([]matcher.Intent, error)
}

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Message string
}

// ChatResponse represents a chat response in the domain layer.
type ChatResponse struct {
	Response string
	Score    int
	Pattern  string
	Strategy string
}

// Stats summarizes the loaded tables.
type Stats struct {
	Books   int
	Intents int
	Tables  []cache.Info
}

// ChatService answers library questions.
type ChatService interface {
	// Respond picks the best reply for a message. Provider failures degrade to the
	// fallback reply; only invalid requests return an error.
	Respond(ctx context.Context, req ChatRequest) (ChatResponse, error)
	// Stats reports the number of books and intents currently available and the
	// state of their caches.
	Stats(ctx context.Context) (Stats, error)
	// Reload drops the cached snapshot of the named table ("books", "intents" or "all").
	Reload(ctx context.Context, table string) error
}

// chatService implements ChatService.
type chatService struct {
	engine  *matcher.Engine
	books   *cache.Table[matcher.Book]
	intents *cache.Table[matcher.Intent]
}

// NewChatService creates a new ChatService. Both sources are read through
// snapshot caches.
func NewChatService(engine *matcher.Engine, books BookSource, intents IntentSource) ChatService {
	return &chatService{
		engine:  engine,
		books:   cache.NewTable[matcher.Book](TableBooks, books.ListBooks),
		intents: cache.NewTable[matcher.Intent](TableIntents, intents.ListIntents),
	}
}

// Respond processes a chat request.
func (s *chatService) Respond(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	intents, err := s.intents.Get(ctx)
	if err != nil {
		logger.WarnContext(ctx, "intent table unavailable, matching without intents", "error", err)
		intents = nil
	}

	res := s.engine.Respond(ctx, req.Message, matcher.CatalogFunc(s.books.Get), intents)

	logger.InfoContext(ctx, "chat request processed",
		"strategy", res.Strategy,
		"score", res.Score,
		"pattern", res.MatchedKey,
		"message_length", len(req.Message),
	)
	return ChatResponse{
		Response: res.Response,
		Score:    res.Score,
		Pattern:  res.MatchedKey,
		Strategy: string(res.Strategy),
	}, nil
}

// Stats loads both tables (through the caches) and counts them.
func (s *chatService) Stats(ctx context.Context) (Stats, error) {
	books, err := s.books.Get(ctx)
	if err != nil {
		return Stats{}, ProviderError(err, "failed to load books")
	}
	intents, err := s.intents.Get(ctx)
	if err != nil {
		return Stats{}, ProviderError(err, "failed to load intents")
	}
	return Stats{
		Books:   len(books),
		Intents: len(intents),
		Tables:  []cache.Info{s.books.Info(), s.intents.Info()},
	}, nil
}

// Reload invalidates cached snapshots.
func (s *chatService) Reload(ctx context.Context, table string) error {
	switch table {
	case TableBooks:
		s.books.Invalidate()
	case TableIntents:
		s.intents.Invalidate()
	case TableAll:
		s.books.Invalidate()
		s.intents.Invalidate()
	default:
		return WrapError(ErrNotFound, fmt.Sprintf("unknown table %q", table))
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "table cache invalidated", "table", table)
	return nil
}
