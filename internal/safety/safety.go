// Package safety runs the crisis-risk pass, independent of emotional
// scoring. It matches tiered self-harm phrase sets per language, escalates
// on crisis indicators and resolves a regional hotline. The pass fails
// closed: an internal error yields an elevated level, never a silent none.
package safety

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/logging"
	"github.com/in-tuned/emotion-engine/internal/textproc"
)

// Matched-category tags. These are audit labels; raw input text never
// appears in the assessment.
const (
	categorySevere        = "severe_phrase"
	categoryHard          = "hard_phrase"
	categorySoft          = "soft_phrase"
	categoryInternalError = "internal_error"
)

// escalating indicator categories; help_seeking is recorded but never
// changes the level.
var escalatingIndicators = []string{"urgency", "finality", "settling"}

type tierMatchers struct {
	severe *ahocorasick.Matcher
	hard   *ahocorasick.Matcher
	soft   *ahocorasick.Matcher
}

// Classifier holds the compiled phrase automatons.
type Classifier struct {
	languages  map[string]*tierMatchers
	union      *tierMatchers
	indicators map[string]*ahocorasick.Matcher
	log        logging.Logger
}

// NewClassifier compiles the built-in pattern tiers.
func NewClassifier(log logging.Logger) *Classifier {
	c := &Classifier{
		languages:  make(map[string]*tierMatchers),
		indicators: make(map[string]*ahocorasick.Matcher),
		log:        log,
	}

	var allSevere, allHard, allSoft []string
	for lang := range hardPhrases {
		c.languages[lang] = &tierMatchers{
			severe: buildMatcher(severePhrases[lang]),
			hard:   buildMatcher(hardPhrases[lang]),
			soft:   buildMatcher(softPhrases[lang]),
		}
		allSevere = append(allSevere, severePhrases[lang]...)
		allHard = append(allHard, hardPhrases[lang]...)
		allSoft = append(allSoft, softPhrases[lang]...)
	}
	// union matchers serve unrecognized languages
	c.union = &tierMatchers{
		severe: buildMatcher(allSevere),
		hard:   buildMatcher(allHard),
		soft:   buildMatcher(allSoft),
	}

	for name, phrases := range crisisIndicators {
		c.indicators[name] = buildMatcher(phrases)
	}
	return c
}

// buildMatcher compiles phrases with surrounding spaces so the automaton
// only fires on whole-word boundaries in the padded haystack.
func buildMatcher(phrases []string) *ahocorasick.Matcher {
	padded := make([]string, len(phrases))
	for i, p := range phrases {
		padded[i] = " " + textproc.Fold(p) + " "
	}
	return ahocorasick.NewStringMatcher(padded)
}

// Assess classifies the token sequence and resolves the regional hotline.
// Severity is monotonic: matches only ever escalate the level. Any panic in
// the matching path resolves to likely rather than none.
func (c *Classifier) Assess(tokens []textproc.Token, lang, region string) (out domain.RiskAssessment) {
	regionCode, hotline := HotlineForRegion(region)
	out = domain.RiskAssessment{
		Level:   domain.RiskNone,
		Region:  regionCode,
		Hotline: hotline,
	}

	defer func() {
		if r := recover(); r != nil {
			c.log.Error("safety classification panicked, failing closed",
				logging.Any("panic", r),
				logging.String("language", lang))
			out.Level = domain.MaxRiskLevel(out.Level, domain.RiskLikely)
			out.MatchedCategories = append(out.MatchedCategories, categoryInternalError)
		}
	}()

	haystack := foldedHaystack(tokens)
	if haystack == "" {
		return out
	}

	m, ok := c.languages[lang]
	if !ok {
		m = c.union
	}
	hay := []byte(haystack)

	severeHits := len(m.severe.MatchThreadSafe(hay))
	hardHits := len(m.hard.MatchThreadSafe(hay))
	softHits := len(m.soft.MatchThreadSafe(hay))

	matchedIndicators := make(map[string]bool, len(c.indicators))
	for name, matcher := range c.indicators {
		if len(matcher.MatchThreadSafe(hay)) > 0 {
			matchedIndicators[name] = true
		}
	}
	escalate := false
	for _, name := range escalatingIndicators {
		if matchedIndicators[name] {
			escalate = true
		}
	}

	if severeHits > 0 {
		out.Level = domain.MaxRiskLevel(out.Level, domain.RiskSevere)
		out.MatchedCategories = append(out.MatchedCategories, categorySevere)
	}
	if hardHits > 0 {
		level := domain.RiskLikely
		if escalate {
			level = domain.RiskSevere
		}
		out.Level = domain.MaxRiskLevel(out.Level, level)
		out.MatchedCategories = append(out.MatchedCategories, categoryHard)
	}
	if softHits > 0 {
		level := domain.RiskPossible
		if softHits >= 2 || escalate {
			level = domain.RiskLikely
		}
		out.Level = domain.MaxRiskLevel(out.Level, level)
		out.MatchedCategories = append(out.MatchedCategories, categorySoft)
	}

	// stable category order for indicators
	for _, name := range []string{"urgency", "finality", "settling", "help_seeking"} {
		if matchedIndicators[name] {
			out.MatchedCategories = append(out.MatchedCategories, name)
		}
	}
	return out
}

// foldedHaystack joins folded word tokens with single spaces and pads both
// ends, matching the padded pattern form.
func foldedHaystack(tokens []textproc.Token) string {
	var b strings.Builder
	for i := range tokens {
		if tokens[i].Folded == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(tokens[i].Folded)
	}
	if b.Len() == 0 {
		return ""
	}
	b.WriteByte(' ')
	return b.String()
}
