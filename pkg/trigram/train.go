package trigram

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Fit trains the model on the text read from r, fully replacing any
// previous tables. The text is tokenized and split into sentences at
// sentence-ending punctuation; tokens remaining after the last terminator
// still form one final sentence. Each non-empty sentence is padded with
// two start markers and one end marker before counting; empty sentences
// contribute nothing. Text that yields zero sentences leaves all tables
// empty, which is not an error — the only error source is the reader.
func (m *Model) Fit(r io.Reader) error {
	m.counts = make(map[Context]map[string]int)
	m.bigrams = make(map[string]map[string]int)
	m.unigrams = make(map[string]int)

	stream := m.tokenizer.NewStream(r)

	var sentence []string
	var sentenceCount, tokenCount int

	for {
		token, err := stream.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("tokenizer error: %w", err)
		}

		if !token.EOS {
			sentence = append(sentence, token.Text)
			continue
		}

		if len(sentence) > 0 {
			tokenCount += m.countSentence(sentence)
			sentenceCount++
			sentence = sentence[:0]
		}
	}

	// Leftover tokens with no terminating punctuation still form a sentence.
	if len(sentence) > 0 {
		tokenCount += m.countSentence(sentence)
		sentenceCount++
	}

	m.logger.Info("Training completed",
		slog.Int("sentences_processed", sentenceCount),
		slog.Int("tokens_counted", tokenCount),
	)

	return nil
}

// FitString is a convenience wrapper around Fit that trains on a string.
func (m *Model) FitString(text string) error {
	return m.Fit(strings.NewReader(text))
}

// countSentence pads one non-empty sentence and accumulates its unigram,
// bigram and trigram counts. It returns the number of unigram occurrences
// recorded (every padded token except the start markers).
func (m *Model) countSentence(sentence []string) int {
	padded := make([]string, 0, len(sentence)+3)
	padded = append(padded, SentStart, SentStart)
	padded = append(padded, sentence...)
	padded = append(padded, SentEnd)

	for _, token := range padded[2:] {
		m.unigrams[token]++
	}

	for i := 0; i+2 < len(padded); i++ {
		ctx := Context{W1: padded[i], W2: padded[i+1]}
		next := padded[i+2]

		if m.counts[ctx] == nil {
			m.counts[ctx] = make(map[string]int)
		}
		m.counts[ctx][next]++

		// The bigram table is a marginal view of the trigram table keyed by
		// the second context word; it must move in lockstep for backoff.
		if m.bigrams[ctx.W2] == nil {
			m.bigrams[ctx.W2] = make(map[string]int)
		}
		m.bigrams[ctx.W2][next]++
	}

	return len(padded) - 2
}
