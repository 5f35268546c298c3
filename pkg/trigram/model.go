package trigram

import (
	"io"
	"log/slog"
	"math/rand/v2"
)

const (
	// SentStart is the sentinel token padded twice before every sentence.
	// Real tokens are lowercased word characters, so it can never collide
	// with vocabulary.
	SentStart = "<s>"
	// SentEnd is the sentinel token appended once after every sentence.
	SentEnd = "</s>"

	// DefaultSeed is the seed used for the model's random source when no
	// WithSeed option is given.
	DefaultSeed uint64 = 42
)

// Context is an ordered pair of two consecutive tokens, used as the key
// into the trigram table.
type Context struct {
	W1, W2 string
}

// Model is the main entry point for the trigram library. It holds the
// frequency tables built by Fit, a tokenizer, and a private seeded random
// source used during generation.
//
// A Model is not safe for concurrent use: Fit replaces the tables that
// Generate reads, and sequential Generate calls advance the shared random
// source. Callers needing concurrency must serialize calls or use one
// Model per goroutine.
type Model struct {
	tokenizer Tokenizer

	counts   map[Context]map[string]int // (w1, w2) -> next -> count
	bigrams  map[string]map[string]int  // w2 -> next -> count, marginal view for backoff
	unigrams map[string]int             // token -> count, final fallback

	seed uint64
	rng  *rand.Rand

	logger *slog.Logger
}

// ModelOption Is a function that configures a Model during construction.
type ModelOption func(*Model)

// WithSeed sets the seed for the model's random source. Two models built
// with the same seed and trained on the same text generate identical
// output for identical call sequences.
func WithSeed(seed uint64) ModelOption {
	return func(m *Model) {
		m.seed = seed
	}
}

// New creates and returns a new Model using the provided Tokenizer.
// The random source is seeded with DefaultSeed unless overridden
// with WithSeed.
func New(tokenizer Tokenizer, opts ...ModelOption) *Model {
	m := &Model{
		tokenizer: tokenizer,
		counts:    make(map[Context]map[string]int),
		bigrams:   make(map[string]map[string]int),
		unigrams:  make(map[string]int),
		seed:      DefaultSeed,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.rng = rand.New(rand.NewPCG(m.seed, 0))

	return m
}

// SetLogger sets the logger for the Model. By default, all logs are
// discarded. Providing a `log/slog.Logger` will enable logging for
// training, generation, and pruning.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// ResetRand restores the model's random source to its construction seed.
// Sequential Generate calls on one Model advance shared random state and
// are order-dependent; call ResetRand between them to make each call
// independently reproducible.
func (m *Model) ResetRand() {
	m.rng = rand.New(rand.NewPCG(m.seed, 0))
}

// NextCounts returns a copy of the recorded trigram continuations for the
// context (w1, w2), along with the total of their counts. If the context
// was never seen, it returns a nil map and a total of 0.
func (m *Model) NextCounts(w1, w2 string) (map[string]int, int) {
	next, ok := m.counts[Context{W1: w1, W2: w2}]
	if !ok {
		return nil, 0
	}
	out := make(map[string]int, len(next))
	var total int
	for token, count := range next {
		out[token] = count
		total += count
	}
	return out, total
}

// ModelStats holds aggregated statistics for a trained Model.
type ModelStats struct {
	VocabSize      int // The number of unique tokens seen during training (includes the end marker).
	Contexts       int // The number of unique two-token contexts in the trigram table.
	TotalTrigrams  int // The sum of all trigram counts; the total number of trained transitions.
	StartingTokens int // The number of unique tokens that can start a sentence.
}

// Stats returns a snapshot of statistics for the trained model. All counts
// are zero for an untrained model.
func (m *Model) Stats() ModelStats {
	var total int
	for _, next := range m.counts {
		for _, count := range next {
			total += count
		}
	}
	return ModelStats{
		VocabSize:      len(m.unigrams),
		Contexts:       len(m.counts),
		TotalTrigrams:  total,
		StartingTokens: len(m.counts[Context{W1: SentStart, W2: SentStart}]),
	}
}
