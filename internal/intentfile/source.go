// Package intentfile loads the intent table from a JSON file and watches it for edits.
//
// The file format is:
//
//	{"intents": [{"tag": "greeting", "patterns": ["halo"], "responses": ["Halo!"]}]}
package intentfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"library-assistant/internal/contextutil"
	"library-assistant/internal/matcher"
)

type fileIntents struct {
	Intents []json.RawMessage `json:"intents"`
}

type rawIntent struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// Source reads intents from a JSON file on every call.
type Source struct {
	Path string
}

// NewSource creates a Source for path.
func NewSource(path string) *Source {
	return &Source{Path: path}
}

// ListIntents parses the file. Entries that fail to decode, fail validation or
// repeat an earlier tag are logged and skipped; only an unreadable file or a broken
// top-level document is an error.
func (s *Source) ListIntents(ctx context.Context) ([]matcher.Intent, error) {
	logger := contextutil.LoggerFromContext(ctx)

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read intents file: %w", err)
	}

	var doc fileIntents
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse intents file: %w", err)
	}

	intents := make([]matcher.Intent, 0, len(doc.Intents))
	seen := make(map[string]struct{}, len(doc.Intents))
	for i, raw := range doc.Intents {
		var ri rawIntent
		if err := json.Unmarshal(raw, &ri); err != nil {
			logger.WarnContext(ctx, "skipping malformed intent", "path", s.Path, "index", i, "error", err)
			continue
		}

		intent := matcher.Intent{Tag: ri.Tag, Patterns: ri.Patterns, Responses: ri.Responses}
		if err := intent.Validate(); err != nil {
			logger.WarnContext(ctx, "skipping invalid intent", "path", s.Path, "index", i, "error", err)
			continue
		}
		if _, dup := seen[intent.Tag]; dup {
			logger.WarnContext(ctx, "skipping duplicate intent tag", "path", s.Path, "tag", intent.Tag)
			continue
		}
		seen[intent.Tag] = struct{}{}

		intents = append(intents, intent)
	}

	return intents, nil
}
