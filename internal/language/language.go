// Package language defines per-language behavior profiles and the detector
// that resolves which profile applies to a piece of text. New languages are
// added by implementing Profile and registering it; nothing else changes.
package language

import (
	"strings"

	"github.com/in-tuned/emotion-engine/internal/textproc"
)

// Profile captures everything language-specific the scoring and safety
// passes need: marker word sets, orthographic detection signal, and simple
// morphology for lexicon widening.
type Profile interface {
	Code() string

	FunctionWords() map[string]struct{}
	Negators() map[string]struct{}
	Intensifiers() map[string]struct{}
	Diminishers() map[string]struct{}
	CertaintyWords() map[string]struct{}
	UncertaintyWords() map[string]struct{}
	ContrastWords() map[string]struct{}
	Profanities() map[string]struct{}

	// OrthographicSignal scores a single lowercase token on orthography
	// unique to the language, e.g. tildes for Spanish.
	OrthographicSignal(token string) float64

	// MorphVariants returns inflected forms of a lexicon word used to widen
	// coverage. Variants inherit the base word's weights at reduced scale.
	MorphVariants(word string) []string
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Coverage reports whether a word exists in the active lexicon for a
// language. Implemented by the lexicon store; used as a detection signal.
type Coverage interface {
	Contains(language, word string) bool
}

// Detection weights. Function words are the strongest signal since they are
// frequent and rarely shared across the supported languages.
const (
	functionWordScore = 1.5
	coverageScore     = 0.6
	minDetectSignal   = 1.5
)

// Detector resolves the language of tokenized text. It never fails: below
// the minimum signal it falls back to the hint, then to the default.
type Detector struct {
	profiles    map[string]Profile
	order       []string
	coverage    Coverage
	defaultLang string
}

// NewDetector builds a detector over the given profiles. coverage may be nil
// when no lexicon is available, e.g. in isolated tests.
func NewDetector(profiles []Profile, coverage Coverage, defaultLang string) *Detector {
	d := &Detector{
		profiles:    make(map[string]Profile, len(profiles)),
		coverage:    coverage,
		defaultLang: defaultLang,
	}
	for _, p := range profiles {
		d.profiles[p.Code()] = p
		d.order = append(d.order, p.Code())
	}
	return d
}

// Profile returns the registered profile for a language code, falling back
// to the default language's profile.
func (d *Detector) Profile(code string) Profile {
	if p, ok := d.profiles[code]; ok {
		return p
	}
	return d.profiles[d.defaultLang]
}

// Supported reports whether the code has a registered profile.
func (d *Detector) Supported(code string) bool {
	_, ok := d.profiles[code]
	return ok
}

// Detect scores each candidate language over the token sequence and returns
// the best code. Ties resolve in registration order, which keeps the result
// deterministic.
func (d *Detector) Detect(tokens []textproc.Token, hint string) string {
	scores := make(map[string]float64, len(d.order))

	for i := range tokens {
		tok := tokens[i].Canonical
		if tok == "" {
			continue
		}
		for _, code := range d.order {
			p := d.profiles[code]
			if _, ok := p.FunctionWords()[tok]; ok {
				scores[code] += functionWordScore
			}
			scores[code] += p.OrthographicSignal(tok)
			if d.coverage != nil && d.coverage.Contains(code, tok) {
				scores[code] += coverageScore
			}
		}
	}

	best := ""
	bestScore := 0.0
	for _, code := range d.order {
		if scores[code] > bestScore {
			best = code
			bestScore = scores[code]
		}
	}

	if bestScore >= minDetectSignal && best != "" {
		return best
	}
	if hint = normalizeHint(hint); hint != "" && d.Supported(hint) {
		return hint
	}
	return d.defaultLang
}

// normalizeHint reduces a UI locale like "pt-BR" to a bare language code.
func normalizeHint(hint string) string {
	hint = strings.ToLower(strings.TrimSpace(hint))
	if hint == "" {
		return ""
	}
	if i := strings.IndexAny(hint, "-_"); i > 0 {
		hint = hint[:i]
	}
	if hint == "br" {
		hint = "pt"
	}
	return hint
}

// DefaultProfiles returns the built-in language set.
func DefaultProfiles() []Profile {
	return []Profile{English{}, Spanish{}, Portuguese{}}
}
