package matcher

// MatchIntent scores normalized input against every pattern of every valid intent.
// Below the intent threshold the fallback reply is returned, still carrying the best
// score seen so callers can tell how close the rejected candidate was.
func (e *Engine) MatchIntent(normalized string, intents []Intent) MatchResult {
	bestScore := 0
	bestResponse := e.messages.Fallback
	bestPattern := ""

	for _, intent := range intents {
		if intent.Validate() != nil {
			continue
		}
		for _, pattern := range intent.Patterns {
			score := e.scorer.Combined(normalized, Normalize(pattern))
			if score > bestScore {
				bestScore = score
				bestResponse = intent.Responses[e.picker.IntN(len(intent.Responses))]
				bestPattern = pattern
			}
		}
	}

	if bestPattern == "" || bestScore < e.thresholds.Intent {
		return MatchResult{
			Response: e.messages.Fallback,
			Score:    bestScore,
			Strategy: StrategyFallback,
		}
	}

	return MatchResult{
		Response:   bestResponse,
		Score:      bestScore,
		MatchedKey: bestPattern,
		Strategy:   StrategyIntent,
	}
}
