package safety

import (
	"testing"

	"github.com/cloudflare/ahocorasick"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/logging"
	"github.com/in-tuned/emotion-engine/internal/textproc"
)

func assess(t *testing.T, c *Classifier, text, lang, region string) domain.RiskAssessment {
	t.Helper()
	tokens := textproc.Tokenize(textproc.Normalize(text))
	return c.Assess(tokens, lang, region)
}

func hasCategory(a domain.RiskAssessment, category string) bool {
	for _, c := range a.MatchedCategories {
		if c == category {
			return true
		}
	}
	return false
}

func TestAssessSeverePhrases(t *testing.T) {
	c := NewClassifier(logging.Nop())

	tests := []struct {
		lang string
		text string
	}{
		{"en", "I am going to kill myself"},
		{"es", "me voy a matar"},
		{"pt", "eu vou me matar"},
	}
	for _, tt := range tests {
		out := assess(t, c, tt.text, tt.lang, "US")
		if out.Level != domain.RiskSevere {
			t.Errorf("%s: expected severe, got %s", tt.lang, out.Level)
		}
		if !hasCategory(out, "severe_phrase") {
			t.Errorf("%s: expected severe_phrase category, got %v", tt.lang, out.MatchedCategories)
		}
	}
}

func TestAssessHardPhrase(t *testing.T) {
	c := NewClassifier(logging.Nop())

	out := assess(t, c, "some days I just want to die", "en", "US")
	if out.Level != domain.RiskLikely {
		t.Errorf("expected likely, got %s", out.Level)
	}
	if !hasCategory(out, "hard_phrase") {
		t.Errorf("expected hard_phrase category, got %v", out.MatchedCategories)
	}
}

func TestAssessHardPhraseEscalatesOnUrgency(t *testing.T) {
	c := NewClassifier(logging.Nop())

	out := assess(t, c, "I want to die tonight", "en", "US")
	if out.Level != domain.RiskSevere {
		t.Errorf("urgency must escalate a hard match to severe, got %s", out.Level)
	}
	if !hasCategory(out, "urgency") {
		t.Errorf("expected urgency category, got %v", out.MatchedCategories)
	}
}

func TestAssessSoftPhrases(t *testing.T) {
	c := NewClassifier(logging.Nop())

	single := assess(t, c, "sometimes I just want to disappear", "en", "US")
	if single.Level != domain.RiskPossible {
		t.Errorf("single soft match must be possible, got %s", single.Level)
	}
	if !hasCategory(single, "soft_phrase") {
		t.Errorf("expected soft_phrase category, got %v", single.MatchedCategories)
	}

	double := assess(t, c, "I want to disappear and make it stop", "en", "US")
	if double.Level != domain.RiskLikely {
		t.Errorf("two soft matches must be likely, got %s", double.Level)
	}

	escalated := assess(t, c, "I want to disappear forever", "en", "US")
	if escalated.Level != domain.RiskLikely {
		t.Errorf("finality must escalate a soft match to likely, got %s", escalated.Level)
	}
	if !hasCategory(escalated, "finality") {
		t.Errorf("expected finality category, got %v", escalated.MatchedCategories)
	}
}

func TestAssessHelpSeekingNeverEscalates(t *testing.T) {
	c := NewClassifier(logging.Nop())

	out := assess(t, c, "I need help please", "en", "US")
	if out.Level != domain.RiskNone {
		t.Errorf("help seeking alone must not raise the level, got %s", out.Level)
	}
	if !hasCategory(out, "help_seeking") {
		t.Errorf("help seeking must still be recorded, got %v", out.MatchedCategories)
	}
}

func TestAssessCleanText(t *testing.T) {
	c := NewClassifier(logging.Nop())

	out := assess(t, c, "the weather is lovely this morning", "en", "US")
	if out.Level != domain.RiskNone {
		t.Errorf("expected none, got %s", out.Level)
	}
	if len(out.MatchedCategories) != 0 {
		t.Errorf("expected no categories, got %v", out.MatchedCategories)
	}
}

func TestAssessWordBoundaries(t *testing.T) {
	c := NewClassifier(logging.Nop())

	// "skills" must not fire the "kill" prefix of any pattern.
	out := assess(t, c, "my skills myself improved a lot", "en", "US")
	if out.Level != domain.RiskNone {
		t.Errorf("substring inside a longer word must not match, got %s (%v)",
			out.Level, out.MatchedCategories)
	}
}

func TestAssessUnknownLanguageUsesUnion(t *testing.T) {
	c := NewClassifier(logging.Nop())

	out := assess(t, c, "quiero morir", "fr", "US")
	if out.Level != domain.RiskLikely {
		t.Errorf("union matchers must catch known phrases in any language, got %s", out.Level)
	}
}

func TestAssessFoldsDiacritics(t *testing.T) {
	c := NewClassifier(logging.Nop())

	out := assess(t, c, "estou pensando em suicídio", "pt", "BR")
	if out.Level != domain.RiskLikely {
		t.Errorf("accented input must hit the folded patterns, got %s", out.Level)
	}
}

func TestAssessResolvesHotline(t *testing.T) {
	c := NewClassifier(logging.Nop())

	br := assess(t, c, "tudo bem por aqui", "pt", "br")
	if br.Region != "BR" || br.Hotline.Number != "188" {
		t.Errorf("expected BR hotline 188, got %s / %s", br.Region, br.Hotline.Number)
	}

	unknown := assess(t, c, "all good here", "en", "ZZ")
	if unknown.Region != "INTL" {
		t.Errorf("unknown region must fall back to INTL, got %s", unknown.Region)
	}
	if unknown.Hotline.Number == "" {
		t.Error("the INTL fallback must always carry a number")
	}
}

func TestAssessFailsClosed(t *testing.T) {
	// Nil tier matchers panic inside the match path; the classifier must
	// recover and report an elevated level instead of a silent none.
	c := &Classifier{
		languages:  map[string]*tierMatchers{"en": {}},
		indicators: map[string]*ahocorasick.Matcher{},
		log:        logging.Nop(),
	}

	out := assess(t, c, "anything at all", "en", "US")
	if out.Level != domain.RiskLikely {
		t.Errorf("internal errors must fail closed to likely, got %s", out.Level)
	}
	if !hasCategory(out, "internal_error") {
		t.Errorf("expected internal_error category, got %v", out.MatchedCategories)
	}
	if out.Region != "US" {
		t.Errorf("the hotline must resolve before matching, got %s", out.Region)
	}
}

func TestAssessMonotonicLevels(t *testing.T) {
	c := NewClassifier(logging.Nop())

	// Severe, hard and soft tiers all fire; the level must stay severe.
	out := assess(t, c, "I want to die and I am going to kill myself just make it stop", "en", "US")
	if out.Level != domain.RiskSevere {
		t.Errorf("mixed tiers must keep the highest level, got %s", out.Level)
	}
	for _, cat := range []string{"severe_phrase", "hard_phrase", "soft_phrase"} {
		if !hasCategory(out, cat) {
			t.Errorf("expected %s in categories, got %v", cat, out.MatchedCategories)
		}
	}
}
