package trigram

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// newTestModel creates a Model with the default tokenizer and trains it on
// the given text, failing the test on any error.
func newTestModel(t *testing.T, text string, opts ...ModelOption) *Model {
	t.Helper()
	m := New(NewDefaultTokenizer(), opts...)
	if err := m.FitString(text); err != nil {
		t.Fatalf("FitString() failed: %v", err)
	}
	return m
}

// rebuildMarginal recomputes the bigram table from the trigram table, for
// verifying that the two stay in lockstep.
func rebuildMarginal(m *Model) map[string]map[string]int {
	marginal := make(map[string]map[string]int)
	for ctx, next := range m.counts {
		for token, count := range next {
			if marginal[ctx.W2] == nil {
				marginal[ctx.W2] = make(map[string]int)
			}
			marginal[ctx.W2][token] += count
		}
	}
	return marginal
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
