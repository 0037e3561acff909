package matcher

import (
	"context"
	"strings"
)

// MatchSubject looks for a catalog subject mentioned verbatim in raw.
// Subjects are tried in the order they first appear in the catalog. A recognized
// subject is a confident match (score 100) even when none of its books are on the shelf.
func (e *Engine) MatchSubject(ctx context.Context, raw string, catalog CatalogProvider) (MatchResult, bool) {
	books := e.listBooks(ctx, catalog)
	if len(books) == 0 {
		return MatchResult{}, false
	}

	input := strings.ToLower(raw)
	subject := ""
	for _, s := range distinctSubjects(books) {
		if strings.Contains(input, s) {
			subject = s
			break
		}
	}
	if subject == "" {
		return MatchResult{}, false
	}

	var available []Book
	for _, b := range books {
		if strings.ToLower(b.Subject) == subject && b.Availability == Available {
			available = append(available, b)
		}
	}

	res := MatchResult{Score: 100, MatchedKey: subject, Strategy: StrategySubject}
	if len(available) == 0 {
		res.Response = e.messages.subjectUnavailable(subject)
	} else {
		res.Response = e.messages.subjectList(subject, available)
	}
	return res, true
}

// distinctSubjects returns the lowercase non-empty subjects in first-seen order.
func distinctSubjects(books []Book) []string {
	seen := make(map[string]struct{}, len(books))
	subjects := make([]string, 0, len(books))
	for _, b := range books {
		s := strings.ToLower(b.Subject)
		if strings.TrimSpace(s) == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		subjects = append(subjects, s)
	}
	return subjects
}

// MatchTitle finds the book whose title best aligns with raw.
// The first book reaching the highest score wins; the match needs at least the title threshold.
func (e *Engine) MatchTitle(ctx context.Context, raw string, catalog CatalogProvider) (MatchResult, bool) {
	books := e.listBooks(ctx, catalog)

	input := strings.ToLower(raw)
	bestScore := -1
	var best *Book
	for i := range books {
		if strings.TrimSpace(books[i].Title) == "" {
			continue
		}
		score := e.scorer.Partial(input, strings.ToLower(books[i].Title))
		if score > bestScore {
			bestScore = score
			best = &books[i]
		}
	}

	if best == nil || bestScore < e.thresholds.Title {
		return MatchResult{}, false
	}

	return MatchResult{
		Response:   e.messages.titleStatus(*best),
		Score:      bestScore,
		MatchedKey: best.Title,
		Strategy:   StrategyTitle,
	}, true
}
