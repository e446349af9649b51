package lexicon

import (
	"math"
	"testing"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/language"
	"github.com/in-tuned/emotion-engine/internal/logging"
)

func testEntry(lang, phrase string, weights domain.Vector) domain.LexiconEntry {
	return domain.LexiconEntry{
		Language:   lang,
		Phrase:     phrase,
		Weights:    weights,
		Provenance: domain.ProvenanceCurated,
		Confidence: 1,
	}
}

func joyVec(w float64) domain.Vector {
	return domain.Vec(domain.Joy, w)
}

func TestFoldPhrase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"On  Cloud   Nine", "on cloud nine"},
		{"CORAÇÃO partido", "coracao partido"},
		{"feliz", "feliz"},
	}
	for _, tt := range tests {
		if got := FoldPhrase(tt.input); got != tt.expected {
			t.Errorf("FoldPhrase(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStoreLoadRejectsBadRowsIndividually(t *testing.T) {
	st := NewStore(logging.Nop())

	entries := []domain.LexiconEntry{
		testEntry("en", "happy", joyVec(2.0)),
		testEntry("en", "", joyVec(1.0)),                  // empty phrase
		testEntry("en", "broken", joyVec(math.NaN())),     // non-finite
		testEntry("en", "huge", joyVec(99)),               // over the weight cap
		testEntry("en", "empty", domain.Vector{}),         // all-zero
		testEntry("en", "sad song", domain.Vec(domain.Sadness, 1.5)),
	}

	accepted, rejected := st.Load(entries)
	if accepted != 2 || rejected != 4 {
		t.Errorf("expected 2 accepted / 4 rejected, got %d / %d", accepted, rejected)
	}

	if _, ok := st.Get("en", "happy"); !ok {
		t.Error("expected happy to survive the load")
	}
	if _, ok := st.Get("en", "broken"); ok {
		t.Error("expected broken to be rejected")
	}
}

func TestStoreSnapshotSwap(t *testing.T) {
	st := NewStore(logging.Nop())
	before := st.Snapshot()

	st.Load([]domain.LexiconEntry{testEntry("en", "happy", joyVec(2.0))})
	after := st.Snapshot()

	if after.Version() <= before.Version() {
		t.Error("expected snapshot version to increase on load")
	}
	if before.Size() != 0 {
		t.Error("old snapshot must remain unchanged after the swap")
	}
	if after.Size() != 1 {
		t.Errorf("expected 1 entry in new snapshot, got %d", after.Size())
	}
}

func TestStoreApplyAllOrNothing(t *testing.T) {
	st := NewStore(logging.Nop())
	st.Load([]domain.LexiconEntry{testEntry("en", "happy", joyVec(2.0))})
	version := st.Snapshot().Version()

	err := st.Apply([]domain.LexiconEntry{
		testEntry("en", "glad", joyVec(1.5)),
		testEntry("en", "bad", joyVec(-1)), // invalid
	}, nil)
	if err == nil {
		t.Fatal("expected apply to fail on the invalid entry")
	}
	if st.Snapshot().Version() != version {
		t.Error("a failed apply must not publish a new snapshot")
	}
	if _, ok := st.Get("en", "glad"); ok {
		t.Error("no entry from a failed apply may be visible")
	}
}

func TestStoreApplyUpsertAndRemove(t *testing.T) {
	st := NewStore(logging.Nop())
	st.Load([]domain.LexiconEntry{
		testEntry("en", "happy", joyVec(2.0)),
		testEntry("en", "on cloud nine", joyVec(3.0)),
	})

	if got := st.Snapshot().MaxPhraseTokens("en"); got != 3 {
		t.Fatalf("expected max phrase length 3, got %d", got)
	}

	err := st.Apply(
		[]domain.LexiconEntry{testEntry("en", "happy", joyVec(2.5))},
		[]Key{{Language: "en", Phrase: "on cloud nine"}},
	)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	e, ok := st.Get("en", "happy")
	if !ok || e.Weights[domain.Joy] != 2.5 {
		t.Error("expected upsert to replace the happy entry")
	}
	if _, ok := st.Get("en", "on cloud nine"); ok {
		t.Error("expected the phrase to be removed")
	}
	if got := st.Snapshot().MaxPhraseTokens("en"); got != 1 {
		t.Errorf("expected max phrase length to shrink to 1, got %d", got)
	}
}

func TestContains(t *testing.T) {
	st := NewStore(logging.Nop())
	st.Load([]domain.LexiconEntry{testEntry("es", "Feliz", joyVec(2.0))})

	if !st.Contains("es", "feliz") {
		t.Error("expected case-insensitive containment")
	}
	if !st.Contains("es", "féliz") {
		t.Error("expected diacritic-folded containment")
	}
	if st.Contains("en", "feliz") {
		t.Error("containment must be per-language")
	}
}

func TestWiden(t *testing.T) {
	profiles := language.DefaultProfiles()
	base := []domain.LexiconEntry{
		testEntry("en", "excited", domain.Vec(domain.Joy, 2.0, domain.Passion, 1.0)),
		testEntry("en", "on cloud nine", joyVec(3.0)), // multi-word, skipped
		testEntry("en", "ok", joyVec(1.0)),            // too short, skipped
	}

	variants := Widen(base, profiles)
	if len(variants) == 0 {
		t.Fatal("expected variants for excited")
	}

	byPhrase := make(map[string]domain.LexiconEntry, len(variants))
	for _, v := range variants {
		byPhrase[v.Phrase] = v
	}

	v, ok := byPhrase["exciteds"]
	if !ok {
		t.Fatalf("expected plural variant, got %v", byPhrase)
	}
	if v.Weights[domain.Joy] != 2.0*0.8 {
		t.Errorf("expected scaled weight %.2f, got %.2f", 2.0*0.8, v.Weights[domain.Joy])
	}
	if v.Confidence != 0.8 {
		t.Errorf("expected scaled confidence 0.8, got %.2f", v.Confidence)
	}

	for _, v := range variants {
		if v.Phrase == "on cloud nines" {
			t.Error("multi-word phrases must not be widened")
		}
	}
}

func TestWidenNeverOverwritesCurated(t *testing.T) {
	profiles := language.DefaultProfiles()
	base := []domain.LexiconEntry{
		testEntry("en", "excite", joyVec(2.0)),
		testEntry("en", "excited", domain.Vec(domain.Passion, 3.0)), // curated inflection
	}

	variants := Widen(base, profiles)
	for _, v := range variants {
		if v.Phrase == "excited" {
			t.Error("widening must not shadow an existing curated entry")
		}
	}
}
