package trigram

import (
	"log/slog"
	"sort"
	"strings"
)

// DefaultMaxLength is the bound on generated word tokens when no
// WithMaxLength option is given.
const DefaultMaxLength = 50

// generateOptions Is used by Generate to configure default options.
type generateOptions struct {
	maxLength int
}

// GenerateOption is a function that configures generation parameters. It's
// used as a variadic argument to Generate.
type GenerateOption func(*generateOptions)

// WithMaxLength sets the maximum number of word tokens to generate. The
// generation may stop earlier if the end marker is sampled. Values <= 0
// produce an empty result.
func WithMaxLength(n int) GenerateOption {
	return func(o *generateOptions) { o.maxLength = n }
}

// Generate produces a new word sequence from the trained model and returns
// it as a single string: tokens joined by spaces with the first character
// capitalized. Generation starts from a context of two start markers and
// stops when the end marker is sampled or maxLength tokens have been
// produced. An untrained or empty-corpus model yields the empty string.
func (m *Model) Generate(opts ...GenerateOption) string {
	options := &generateOptions{
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(options)
	}

	ctx := Context{W1: SentStart, W2: SentStart}
	var output []string

	for i := 0; i < options.maxLength; i++ {
		next := m.backoffSample(ctx)
		if next == SentEnd {
			m.logger.Debug("Generation terminated by end marker",
				slog.Int("generated_length", len(output)),
			)
			break
		}
		output = append(output, next)
		ctx = Context{W1: ctx.W2, W2: next}
	}

	if len(output) == 0 {
		return ""
	}

	text := strings.Join(output, " ")
	// Tokens are lowercased ASCII, so a byte-level capitalize is safe.
	return strings.ToUpper(text[:1]) + text[1:]
}

// backoffSample draws one next token for the context (w1, w2), backing off
// through strictly coarser distributions: the trigram continuations for
// (w1, w2), then the bigram continuations for w2, then the unigram table.
// The first non-empty distribution wins. With nothing trained at all it
// returns the end marker deterministically.
func (m *Model) backoffSample(ctx Context) string {
	if next := m.counts[ctx]; len(next) > 0 {
		return m.sample(next)
	}
	if next := m.bigrams[ctx.W2]; len(next) > 0 {
		return m.sample(next)
	}
	if len(m.unigrams) > 0 {
		return m.sample(m.unigrams)
	}
	return SentEnd
}

// sample draws one key from a counter proportionally to its counts, using
// an explicit cumulative-weight walk. Candidates are visited in sorted
// order because Go's map iteration order is randomized, which would break
// seed reproducibility. An empty counter returns the end marker.
func (m *Model) sample(counter map[string]int) string {
	if len(counter) == 0 {
		return SentEnd
	}

	keys := make([]string, 0, len(counter))
	var total int
	for key, count := range counter {
		keys = append(keys, key)
		total += count
	}
	sort.Strings(keys)

	draw := m.rng.IntN(total)
	for _, key := range keys {
		draw -= counter[key]
		if draw < 0 {
			return key
		}
	}
	return keys[len(keys)-1]
}
