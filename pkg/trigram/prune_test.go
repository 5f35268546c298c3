package trigram

import (
	"reflect"
	"testing"
)

func TestPrune(t *testing.T) {
	m := newTestModel(t, "a b c. a b c. a b d.")

	// (a, b) -> c has count 2 and survives; (a, b) -> d and (b, d) -> </s>
	// have count 1 and are removed.
	removed := m.Prune(1)
	if removed != 2 {
		t.Errorf("Prune(1) removed %d links, want 2", removed)
	}

	next, _ := m.NextCounts("a", "b")
	if !reflect.DeepEqual(next, map[string]int{"c": 2}) {
		t.Errorf("continuations after (a, b) = %v, want map[c:2]", next)
	}
	if next, _ := m.NextCounts("b", "d"); next != nil {
		t.Errorf("pruned context (b, d) still present: %v", next)
	}

	// The bigram marginal must follow the trigram table.
	if got := rebuildMarginal(m); !reflect.DeepEqual(m.bigrams, got) {
		t.Errorf("bigram table diverged from the trigram marginal after pruning:\ngot  %v\nwant %v", m.bigrams, got)
	}

	// Unigram fallback keeps the full vocabulary.
	if _, ok := m.unigrams["d"]; !ok {
		t.Error("pruning should not touch the unigram table")
	}
}

func TestPruneNothingToRemove(t *testing.T) {
	m := newTestModel(t, "a b c. a b c.")

	counts := make(map[Context]map[string]int, len(m.counts))
	for ctx, next := range m.counts {
		inner := make(map[string]int, len(next))
		for token, count := range next {
			inner[token] = count
		}
		counts[ctx] = inner
	}

	if removed := m.Prune(0); removed != 0 {
		t.Errorf("Prune(0) removed %d links, want 0", removed)
	}
	if !reflect.DeepEqual(m.counts, counts) {
		t.Error("Prune(0) changed the trigram table")
	}
}

func TestPruneUntrained(t *testing.T) {
	m := New(NewDefaultTokenizer())
	if removed := m.Prune(5); removed != 0 {
		t.Errorf("Prune on untrained model removed %d links, want 0", removed)
	}
}
