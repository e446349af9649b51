package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/language"
	"github.com/in-tuned/emotion-engine/internal/lexicon"
	"github.com/in-tuned/emotion-engine/internal/logging"
	"github.com/in-tuned/emotion-engine/internal/telemetry"
	"github.com/in-tuned/emotion-engine/internal/textproc"
)

// One provider per test binary; prometheus collectors register globally.
var testTelemetry = telemetry.NewProvider()

// stubRisk returns a fixed assessment and records the tokens it saw.
type stubRisk struct {
	level  domain.RiskLevel
	region string
}

func (s *stubRisk) Assess(_ []textproc.Token, _, region string) domain.RiskAssessment {
	s.region = region
	return domain.RiskAssessment{
		Level:   s.level,
		Region:  region,
		Hotline: domain.Hotline{RegionCode: region, Number: "988"},
	}
}

func newTestAnalyzer(risk RiskAssessor, entries ...domain.LexiconEntry) *Analyzer {
	st := lexicon.NewStore(logging.Nop())
	st.Load(entries)
	detector := language.NewDetector(language.DefaultProfiles(), st, "en")
	return NewAnalyzer(AnalyzerParams{
		Detector:      detector,
		Store:         st,
		Tuning:        DefaultTuning(),
		Risk:          risk,
		Telemetry:     testTelemetry,
		Logger:        logging.Nop(),
		MaxInputChars: 200,
		DefaultRegion: "US",
	})
}

func TestAnalyzeJoyfulText(t *testing.T) {
	a := newTestAnalyzer(&stubRisk{level: domain.RiskNone},
		testEntry("en", "happy", domain.Joy, 2.0),
		testEntry("en", "amazing", domain.Joy, 1.8, domain.Surprise, 0.8),
	)

	result, err := a.Analyze(context.Background(), Request{Text: "I am SO happy!!! This is amazing"})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if result.Language != "en" {
		t.Errorf("expected en, got %q", result.Language)
	}
	if result.Profile.LowSignal {
		t.Fatal("expected a real signal")
	}
	if result.Dominant != domain.Joy {
		t.Errorf("expected joy dominant, got %s", result.Dominant)
	}
	if result.Valence <= 0 {
		t.Errorf("expected positive valence, got %.3f", result.Valence)
	}
	if result.Meta.Arousal <= 0 {
		t.Error("exclamations and caps must produce arousal")
	}
	if result.Risk.Level != domain.RiskNone {
		t.Errorf("stub risk must pass through, got %s", result.Risk.Level)
	}
}

func TestAnalyzeLowSignal(t *testing.T) {
	a := newTestAnalyzer(&stubRisk{level: domain.RiskNone},
		testEntry("en", "happy", domain.Joy, 2.0),
	)

	result, err := a.Analyze(context.Background(), Request{Text: "meh"})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if !result.Profile.LowSignal {
		t.Fatal("unmatched text must be low signal")
	}
	if !result.Profile.Mixture.IsZero() {
		t.Error("low-signal mixture must be all zero")
	}
	if result.Current != "Neutral" {
		t.Errorf("expected Neutral, got %q", result.Current)
	}
	if result.Pattern != domain.PatternDiffuse {
		t.Errorf("expected diffuse, got %s", result.Pattern)
	}
}

func TestAnalyzeRejectsEmptyInput(t *testing.T) {
	a := newTestAnalyzer(&stubRisk{})

	for _, text := range []string{"", "   ", "!!! ..."} {
		if _, err := a.Analyze(context.Background(), Request{Text: text}); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Analyze(%q) error = %v, want ErrEmptyInput", text, err)
		}
	}
}

func TestAnalyzeRejectsOverlongInput(t *testing.T) {
	a := newTestAnalyzer(&stubRisk{})

	long := strings.Repeat("word ", 60)
	if _, err := a.Analyze(context.Background(), Request{Text: long}); !errors.Is(err, ErrInputTooLong) {
		t.Errorf("expected ErrInputTooLong, got %v", err)
	}
}

func TestAnalyzeRegionDefaulting(t *testing.T) {
	risk := &stubRisk{level: domain.RiskNone}
	a := newTestAnalyzer(risk, testEntry("en", "happy", domain.Joy, 2.0))

	if _, err := a.Analyze(context.Background(), Request{Text: "I am happy"}); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if risk.region != "US" {
		t.Errorf("expected default region US, got %q", risk.region)
	}

	if _, err := a.Analyze(context.Background(), Request{Text: "I am happy", RegionHint: "BR"}); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if risk.region != "BR" {
		t.Errorf("expected region hint BR, got %q", risk.region)
	}
}

func TestAnalyzeNegatedJoy(t *testing.T) {
	a := newTestAnalyzer(&stubRisk{level: domain.RiskNone},
		testEntry("en", "happy", domain.Joy, 2.0),
	)

	result, err := a.Analyze(context.Background(), Request{Text: "I am not happy"})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	// The inverted contribution clamps to zero, leaving nothing to report.
	if !result.Profile.LowSignal {
		t.Error("a single negated match must not fabricate an emotion")
	}
}

func TestAnalyzeSpanishText(t *testing.T) {
	a := newTestAnalyzer(&stubRisk{level: domain.RiskNone},
		testEntry("es", "feliz", domain.Joy, 2.0),
	)

	result, err := a.Analyze(context.Background(), Request{Text: "yo estoy muy feliz con mi vida"})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if result.Language != "es" {
		t.Errorf("expected es, got %q", result.Language)
	}
	if result.Dominant != domain.Joy || result.Profile.LowSignal {
		t.Error("expected a joyful spanish result")
	}
	if want := NuancedLabel("es", result.Dominant, result.Intensity); result.Current != want {
		t.Errorf("spanish analysis must carry the spanish label %q, got %q", want, result.Current)
	}
}

func TestAnalyzeUsesOneSnapshot(t *testing.T) {
	st := lexicon.NewStore(logging.Nop())
	st.Load([]domain.LexiconEntry{testEntry("en", "happy", domain.Joy, 2.0)})
	detector := language.NewDetector(language.DefaultProfiles(), st, "en")
	a := NewAnalyzer(AnalyzerParams{
		Detector:      detector,
		Store:         st,
		Tuning:        DefaultTuning(),
		Risk:          &stubRisk{level: domain.RiskNone},
		Telemetry:     testTelemetry,
		Logger:        logging.Nop(),
		MaxInputChars: 200,
		DefaultRegion: "US",
	})

	before, err := a.Analyze(context.Background(), Request{Text: "I am happy"})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	// Publish a new snapshot; previous result is untouched, next call sees it.
	if err := st.Apply([]domain.LexiconEntry{testEntry("en", "happy", domain.Sadness, 2.0)}, nil); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	after, err := a.Analyze(context.Background(), Request{Text: "I am happy"})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if before.Dominant != domain.Joy {
		t.Errorf("first analysis must reflect the old snapshot, got %s", before.Dominant)
	}
	if after.Dominant != domain.Sadness {
		t.Errorf("second analysis must reflect the new snapshot, got %s", after.Dominant)
	}
}
