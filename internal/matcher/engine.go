// Package matcher scores free-text input against the book catalog and the intent table
// and picks a single canned reply.
package matcher

import (
	"context"
	"math/rand"
	"strings"
	"unicode/utf8"

	"library-assistant/internal/contextutil"
)

// Picker chooses an index in [0,n).
type Picker interface {
	IntN(n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

// IntN calls f(n).
func (f PickerFunc) IntN(n int) int {
	return f(n)
}

// Engine runs the escalation order subject → title → intent → fallback.
// It keeps no per-request state and is safe for concurrent use as long as its Picker is.
type Engine struct {
	thresholds Thresholds
	scorer     Scorer
	picker     Picker
	messages   Messages
	maxRunes   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithThresholds overrides the standalone preset.
func WithThresholds(t Thresholds) Option {
	return func(e *Engine) { e.thresholds = t }
}

// WithScorer replaces the FuzzyScorer.
func WithScorer(s Scorer) Option {
	return func(e *Engine) { e.scorer = s }
}

// WithPicker replaces the random response picker.
func WithPicker(p Picker) Option {
	return func(e *Engine) { e.picker = p }
}

// WithMessages replaces DefaultMessages.
func WithMessages(m Messages) Option {
	return func(e *Engine) { e.messages = m }
}

// WithMaxInputLength answers input longer than n runes with Messages.TooLong
// without matching it. n <= 0 means no limit.
func WithMaxInputLength(n int) Option {
	return func(e *Engine) { e.maxRunes = n }
}

// NewEngine creates an Engine with the standalone thresholds, FuzzyScorer and a
// math/rand/v2 backed picker unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		thresholds: StandaloneThresholds,
		scorer:     FuzzyScorer{},
		picker:     PickerFunc(rand.Intn),
		messages:   DefaultMessages,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Thresholds returns the thresholds in effect.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Respond returns the first applicable result of subject, title and intent matching.
func (e *Engine) Respond(ctx context.Context, raw string, catalog CatalogProvider, intents []Intent) MatchResult {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(raw) == "" {
		return MatchResult{Response: e.messages.Prompt, Strategy: StrategyPrompt}
	}

	if e.maxRunes > 0 && utf8.RuneCountInString(raw) > e.maxRunes {
		logger.WarnContext(ctx, "input too long, not matched", "length", utf8.RuneCountInString(raw), "limit", e.maxRunes)
		return MatchResult{Response: e.messages.TooLong, Strategy: StrategyTooLong}
	}

	if res, ok := e.MatchSubject(ctx, raw, catalog); ok {
		logger.DebugContext(ctx, "subject match", "subject", res.MatchedKey)
		return res
	}

	if res, ok := e.MatchTitle(ctx, raw, catalog); ok {
		logger.DebugContext(ctx, "title match", "title", res.MatchedKey, "score", res.Score)
		return res
	}

	res := e.MatchIntent(Normalize(raw), intents)
	logger.DebugContext(ctx, "intent match", "strategy", res.Strategy, "pattern", res.MatchedKey, "score", res.Score)
	return res
}

func (e *Engine) listBooks(ctx context.Context, catalog CatalogProvider) []Book {
	if catalog == nil {
		return nil
	}
	books, err := catalog.ListBooks(ctx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "catalog unavailable, skipping catalog match", "error", err)
		return nil
	}
	return books
}
