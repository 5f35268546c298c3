package trigram

import (
	"reflect"
	"testing"
)

func TestStats(t *testing.T) {
	m := newTestModel(t, "one fish two fish. red fish blue fish.")

	got := m.Stats()
	want := ModelStats{
		VocabSize:      6, // one, fish, two, red, blue, </s>
		Contexts:       9,
		TotalTrigrams:  10, // each 4-word sentence yields 5 transitions
		StartingTokens: 2,  // one, red
	}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestStatsUntrained(t *testing.T) {
	m := New(NewDefaultTokenizer())
	if got := m.Stats(); got != (ModelStats{}) {
		t.Errorf("Stats() on untrained model = %+v, want all zeros", got)
	}
}

func TestNextCounts(t *testing.T) {
	m := newTestModel(t, "one fish two fish. red fish blue fish.")

	next, total := m.NextCounts("one", "fish")
	if !reflect.DeepEqual(next, map[string]int{"two": 1}) {
		t.Errorf("NextCounts(one, fish) = %v, want map[two:1]", next)
	}
	if total != 1 {
		t.Errorf("NextCounts(one, fish) total = %d, want 1", total)
	}

	// Unseen context.
	next, total = m.NextCounts("blue", "moon")
	if next != nil || total != 0 {
		t.Errorf("NextCounts on unseen context = (%v, %d), want (nil, 0)", next, total)
	}

	// The returned map is a copy; mutating it must not affect the model.
	next, _ = m.NextCounts("one", "fish")
	next["two"] = 999
	if again, _ := m.NextCounts("one", "fish"); again["two"] != 1 {
		t.Error("mutating the returned map leaked into the model's tables")
	}
}

func TestSetLogger(t *testing.T) {
	m := New(NewDefaultTokenizer())
	original := m.logger

	m.SetLogger(nil)
	if m.logger != original {
		t.Error("SetLogger(nil) should keep the existing logger")
	}
}
