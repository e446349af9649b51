package engine

import (
	"reflect"
	"testing"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/language"
	"github.com/in-tuned/emotion-engine/internal/lexicon"
	"github.com/in-tuned/emotion-engine/internal/logging"
	"github.com/in-tuned/emotion-engine/internal/textproc"
)

func testSnapshot(t *testing.T, entries ...domain.LexiconEntry) *lexicon.Snapshot {
	t.Helper()
	st := lexicon.NewStore(logging.Nop())
	accepted, rejected := st.Load(entries)
	if rejected != 0 {
		t.Fatalf("test lexicon rejected %d entries (%d accepted)", rejected, accepted)
	}
	return st.Snapshot()
}

func testEntry(lang, phrase string, pairs ...any) domain.LexiconEntry {
	return domain.LexiconEntry{
		Language:   lang,
		Phrase:     phrase,
		Weights:    domain.Vec(pairs...),
		Provenance: domain.ProvenanceCurated,
		Confidence: 1,
	}
}

func score(snap *lexicon.Snapshot, text string) ScoreResult {
	profile := language.English{}
	normalized := textproc.Normalize(text)
	tokens := textproc.Tokenize(normalized)
	textproc.MarkNegation(tokens, profile.Negators(), DefaultTuning().ModifierWindow)
	scorer := NewScorer(DefaultTuning())
	return scorer.Score(normalized, tokens, snap, profile)
}

func TestScoreDeterministic(t *testing.T) {
	snap := testSnapshot(t,
		testEntry("en", "happy", domain.Joy, 2.0),
		testEntry("en", "scared", domain.Fear, 2.0),
	)

	a := score(snap, "I am happy but scared too")
	b := score(snap, "I am happy but scared too")
	if !reflect.DeepEqual(a, b) {
		t.Error("identical input must produce identical score results")
	}
}

func TestScorePhraseSupersedesWords(t *testing.T) {
	snap := testSnapshot(t,
		testEntry("en", "cloud", domain.Fear, 1.5),
		testEntry("en", "on cloud nine", domain.Joy, 3.0),
	)

	res := score(snap, "I was on cloud nine")
	if res.Raw[domain.Fear] != 0 {
		t.Errorf("phrase match must consume its span, got fear %.2f", res.Raw[domain.Fear])
	}
	if res.Raw[domain.Joy] <= 0 {
		t.Error("expected joy contribution from the phrase entry")
	}
	if res.MatchedTokens != 3 {
		t.Errorf("expected 3 matched tokens for the phrase, got %d", res.MatchedTokens)
	}
}

func TestScorePhraseStopsAtSentenceBoundary(t *testing.T) {
	snap := testSnapshot(t,
		testEntry("en", "cloud nine", domain.Joy, 3.0),
	)

	// The phrase spans a sentence boundary, so it must not match.
	res := score(snap, "look at that cloud. nine things happened")
	if res.Raw[domain.Joy] != 0 {
		t.Errorf("phrase must not match across a sentence boundary, got joy %.2f", res.Raw[domain.Joy])
	}
}

func TestScoreEmphasisMonotone(t *testing.T) {
	snap := testSnapshot(t, testEntry("en", "happy", domain.Joy, 2.0))

	plain := score(snap, "I am happy")
	emphasized := score(snap, "I am so HAPPY!!!")

	if emphasized.Raw[domain.Joy] <= plain.Raw[domain.Joy] {
		t.Errorf("emphasis must not lower the matched weight: plain %.3f, emphasized %.3f",
			plain.Raw[domain.Joy], emphasized.Raw[domain.Joy])
	}
}

func TestScoreIntensifierAndDiminisher(t *testing.T) {
	snap := testSnapshot(t, testEntry("en", "happy", domain.Joy, 2.0))

	boosted := score(snap, "very happy")
	damped := score(snap, "a little happy")
	plain := score(snap, "simply happy")

	if boosted.Raw[domain.Joy] <= plain.Raw[domain.Joy] {
		t.Error("intensifier must raise the contribution")
	}
	if damped.Raw[domain.Joy] >= plain.Raw[domain.Joy] {
		t.Error("diminisher must lower the contribution")
	}
}

func TestScoreNegationInverts(t *testing.T) {
	snap := testSnapshot(t, testEntry("en", "happy", domain.Joy, 2.0))

	res := score(snap, "I am not happy")
	if res.Raw[domain.Joy] >= 0 {
		t.Errorf("negated match must contribute negatively, got %.3f", res.Raw[domain.Joy])
	}
}

func TestScoreEmoticons(t *testing.T) {
	snap := testSnapshot(t, testEntry("en", "fine", domain.Joy, 0.5))

	res := score(snap, "it went well :)")
	if res.Raw[domain.Joy] <= 0 {
		t.Error("expected emoticon contribution to joy")
	}

	res = score(snap, "terrible day :(")
	if res.Raw[domain.Sadness] <= 0 {
		t.Error("expected emoticon contribution to sadness")
	}
}

func TestScoreEmphasisCounts(t *testing.T) {
	snap := testSnapshot(t)

	res := score(snap, "WHAT is going onnnn??? this is BAD!!")
	if res.QuestionCount != 3 {
		t.Errorf("expected 3 question marks, got %d", res.QuestionCount)
	}
	if res.ExclaimCount != 2 {
		t.Errorf("expected 2 exclamation marks, got %d", res.ExclaimCount)
	}
	if res.AllCapsCount != 2 {
		t.Errorf("expected 2 all-caps tokens, got %d", res.AllCapsCount)
	}
	if res.ElongatedCount != 1 {
		t.Errorf("expected 1 elongated token, got %d", res.ElongatedCount)
	}
}

func TestScoreContrastClauseWeighting(t *testing.T) {
	snap := testSnapshot(t,
		testEntry("en", "fine", domain.Joy, 2.0),
		testEntry("en", "empty", domain.Sadness, 2.0),
	)

	// "empty" sits after the contrast marker and in the second half, so its
	// contribution must outweigh the symmetric "fine".
	res := score(snap, "today was fine but I feel empty")
	if res.Raw[domain.Sadness] <= res.Raw[domain.Joy] {
		t.Errorf("post-contrast clause must be weighted up: joy %.3f, sadness %.3f",
			res.Raw[domain.Joy], res.Raw[domain.Sadness])
	}
}

func TestLastContrastIndexSpanishPhrase(t *testing.T) {
	profile := language.Spanish{}

	tokens := textproc.Tokenize(textproc.Normalize("estaba bien sin embargo me siento triste"))
	if got := lastContrastIndex(tokens, profile); got != 3 {
		t.Errorf("expected the marker at the end of \"sin embargo\" (3), got %d", got)
	}

	// Bare "sin" means "without" and must not mark a contrast.
	tokens = textproc.Tokenize(textproc.Normalize("hoy estoy sin trabajo"))
	if got := lastContrastIndex(tokens, profile); got != -1 {
		t.Errorf("bare sin must not mark a contrast, got index %d", got)
	}
}

func TestScoreDiacriticFoldedLookup(t *testing.T) {
	st := lexicon.NewStore(logging.Nop())
	st.Load([]domain.LexiconEntry{testEntry("es", "feliz", domain.Joy, 2.0)})
	snap := st.Snapshot()

	profile := language.Spanish{}
	normalized := textproc.Normalize("estoy muy FÉLIZ")
	tokens := textproc.Tokenize(normalized)
	res := NewScorer(DefaultTuning()).Score(normalized, tokens, snap, profile)

	if res.Raw[domain.Joy] <= 0 {
		t.Error("expected accented form to hit the folded lexicon key")
	}
}
