package trigram

import (
	"log/slog"
)

// Prune removes all trigram continuations with a count less than or equal
// to minCount, keeping the bigram marginals in lockstep so that backoff
// never offers a continuation the trigram table no longer supports at its
// level. This is useful for shrinking a model trained on a noisy corpus by
// removing rare transitions. The unigram table is left untouched so the
// final fallback still covers the full vocabulary. It returns the number
// of continuations removed.
func (m *Model) Prune(minCount int) int {
	var removed int

	for ctx, next := range m.counts {
		for token, count := range next {
			if count > minCount {
				continue
			}
			delete(next, token)
			removed++

			marginal := m.bigrams[ctx.W2]
			if marginal != nil {
				marginal[token] -= count
				if marginal[token] <= 0 {
					delete(marginal, token)
				}
				if len(marginal) == 0 {
					delete(m.bigrams, ctx.W2)
				}
			}
		}
		if len(next) == 0 {
			delete(m.counts, ctx)
		}
	}

	m.logger.Info("Model pruned",
		slog.Int("min_count", minCount),
		slog.Int("links_removed", removed),
	)

	return removed
}
