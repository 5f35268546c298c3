package trigram

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// Token represents a single tokenized unit of text. It contains the text
// itself and a boolean flag indicating whether it is a sentence terminator.
type Token struct {
	Text string
	EOS  bool
}

// Tokenizer is an interface that defines the contract for splitting input
// text into tokens. This allows the core model logic to be independent of
// the specific tokenization strategy.
type Tokenizer interface {
	// NewStream returns a stateful StreamTokenizer for processing an io.Reader.
	NewStream(io.Reader) StreamTokenizer
}

// StreamTokenizer is an interface for a stateful tokenizer that processes a
// stream of data, returning one token at a time.
type StreamTokenizer interface {
	// Next returns the next token from the stream. It returns io.EOF as the
	// error when the stream is fully consumed.
	Next() (*Token, error)
}

// DefaultTokenizer is the default implementation of the Tokenizer interface.
// It lowercases its input and uses regular expressions to extract word
// tokens and sentence-terminating punctuation; everything else (whitespace,
// other punctuation) is discarded and acts only as a separator.
// Its behavior can be customized with functional options.
type DefaultTokenizer struct {
	wordRegex       *regexp.Regexp
	terminatorRegex *regexp.Regexp
}

// Option Is a function that configures a DefaultTokenizer.
type Option func(*DefaultTokenizer)

// WithWordRegex sets the regex string used to extract tokens from input text.
// Default: `[a-z0-9']+|[.!?]`
func WithWordRegex(wordRegex string) Option {
	return func(t *DefaultTokenizer) {
		t.wordRegex = regexp.MustCompile(wordRegex)
	}
}

// WithTerminatorRegex sets the regex string used to decide whether a token
// ends a sentence.
// Default: `^[.!?]$`
func WithTerminatorRegex(terminatorRegex string) Option {
	return func(t *DefaultTokenizer) {
		t.terminatorRegex = regexp.MustCompile(terminatorRegex)
	}
}

// NewDefaultTokenizer creates a new tokenizer with default settings, which
// can be overridden by providing one or more Option functions.
func NewDefaultTokenizer(opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{
		// This regex finds maximal runs of letters, digits and apostrophes
		// (input is lowercased first) OR single sentence-ending marks.
		wordRegex: regexp.MustCompile(`[a-z0-9']+|[.!?]`),
		// This regex checks if a token is one of the sentence-ending punctuation marks.
		terminatorRegex: regexp.MustCompile(`^[.!?]$`),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// NewStream Returns the stream processor.
func (t *DefaultTokenizer) NewStream(r io.Reader) StreamTokenizer {
	return &DefaultStreamTokenizer{
		scanner:         bufio.NewScanner(r),
		buffer:          []string{},
		wordRegex:       t.wordRegex,
		terminatorRegex: t.terminatorRegex,
	}
}

// DefaultStreamTokenizer is the default implementation of the StreamTokenizer
// interface. It uses a bufio.Scanner and regular expressions to read and
// tokenize a stream line by line.
type DefaultStreamTokenizer struct {
	scanner         *bufio.Scanner
	buffer          []string
	wordRegex       *regexp.Regexp
	terminatorRegex *regexp.Regexp
}

// Next returns the next token from the stream. It returns a Token and a nil
// error on success. When the stream is exhausted, it returns a nil Token and
// io.EOF. Any other error indicates a problem reading from the underlying
// stream.
func (s *DefaultStreamTokenizer) Next() (*Token, error) {
	for len(s.buffer) == 0 { // Loop until we have tokens
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		s.buffer = s.wordRegex.FindAllString(strings.ToLower(s.scanner.Text()), -1)
	}

	// We have tokens in the buffer. Process the next one.
	word := s.buffer[0]
	s.buffer = s.buffer[1:] // Consume the token

	// Return the word and whether it terminates a sentence or not
	return &Token{Text: word, EOS: s.terminatorRegex.MatchString(word)}, nil
}
