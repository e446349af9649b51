package engine

import (
	"math"
	"regexp"
	"strings"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/language"
	"github.com/in-tuned/emotion-engine/internal/lexicon"
	"github.com/in-tuned/emotion-engine/internal/textproc"
)

// emoticonPatterns are matched against the raw text and contribute globally,
// independent of token position.
var emoticonPatterns = []struct {
	re      *regexp.Regexp
	weights domain.Vector
}{
	{regexp.MustCompile(`(?:[:=]-?\)+)`), domain.Vec(domain.Joy, 1.8)},
	{regexp.MustCompile(`(?:[:=]-?\(+)`), domain.Vec(domain.Sadness, 1.8)},
	{regexp.MustCompile(`;-?\)`), domain.Vec(domain.Joy, 1.4, domain.Passion, 0.6)},
	{regexp.MustCompile(`:'\(`), domain.Vec(domain.Sadness, 2.0)},
	{regexp.MustCompile(`:'\)`), domain.Vec(domain.Joy, 1.5, domain.Sadness, 0.8)},
	{regexp.MustCompile(`:D+`), domain.Vec(domain.Joy, 2.0)},
	{regexp.MustCompile(`XD+`), domain.Vec(domain.Joy, 2.0, domain.Surprise, 0.8)},
	{regexp.MustCompile(`>:\(`), domain.Vec(domain.Anger, 2.0)},
	{regexp.MustCompile(`:/`), domain.Vec(domain.Sadness, 1.1, domain.Disgust, 0.9)},
}

// ScoreResult is the raw output of one scoring pass, before normalization.
type ScoreResult struct {
	Raw domain.Vector

	TotalTokens   int
	WordCount     int
	MatchedTokens int

	ExclaimCount     int
	QuestionCount    int
	AllCapsCount     int
	ElongatedCount   int
	ProfanityCount   int
	UncertaintyCount int
	CertaintyCount   int
}

// SignalDensity returns matched over total word tokens.
func (r *ScoreResult) SignalDensity() float64 {
	if r.WordCount == 0 {
		return 0
	}
	return float64(r.MatchedTokens) / float64(r.WordCount)
}

// Scorer accumulates a raw emotion vector from annotated tokens against one
// lexicon snapshot. Scoring is deterministic: the same tokens and snapshot
// always produce the same vector, with no map-iteration arithmetic anywhere
// on the path.
type Scorer struct {
	tuning Tuning
}

// NewScorer returns a scorer with the given tuning.
func NewScorer(tuning Tuning) *Scorer {
	return &Scorer{tuning: tuning}
}

// Score runs the full accumulation pass. rawText is the normalized input,
// used only for emoticon patterns; all word matching goes through tokens.
func (s *Scorer) Score(rawText string, tokens []textproc.Token, snap *lexicon.Snapshot, profile language.Profile) ScoreResult {
	res := ScoreResult{
		TotalTokens: len(tokens),
		WordCount:   textproc.CountWords(tokens),
	}

	for _, ep := range emoticonPatterns {
		for range ep.re.FindAllStringIndex(rawText, -1) {
			res.Raw.Add(ep.weights)
		}
	}

	lang := profile.Code()
	maxPhrase := snap.MaxPhraseTokens(lang)
	if maxPhrase < 1 {
		maxPhrase = 1
	}

	contrastIdx := lastContrastIndex(tokens, profile)
	secondHalf := len(tokens) / 2
	lastClause := lastClauseStart(tokens)

	s.countEmphasis(tokens, profile, &res)

	for i := 0; i < len(tokens); {
		if !tokens[i].Word {
			i++
			continue
		}

		entry, span, ok := longestMatch(tokens, i, maxPhrase, snap, lang)
		if !ok {
			i++
			continue
		}
		res.MatchedTokens += span

		alpha := s.modifierAlpha(tokens, i, profile)
		negFactor := 1.0
		if tokens[i].Negated {
			negFactor = s.tuning.NegationFactor
		}

		clause := 1.0
		if contrastIdx >= 0 && i > contrastIdx {
			clause *= s.tuning.ContrastWeight
		}
		if i >= secondHalf {
			clause *= s.tuning.SecondHalfWeight
		}
		if i >= lastClause {
			clause *= s.tuning.LastClauseWeight
		}

		res.Raw.AddScaled(entry.Weights, alpha*negFactor*clause)
		i += span
	}

	return res
}

// longestMatch tries the longest phrase window first, shrinking to a single
// token. A multi-word hit consumes its whole span, so phrase entries always
// supersede their constituent single-word entries.
func longestMatch(tokens []textproc.Token, start, maxPhrase int, snap *lexicon.Snapshot, lang string) (domain.LexiconEntry, int, bool) {
	limit := maxPhrase
	if remaining := len(tokens) - start; remaining < limit {
		limit = remaining
	}
	for span := limit; span >= 1; span-- {
		key, ok := phraseKey(tokens, start, span)
		if !ok {
			continue
		}
		if entry, hit := snap.Lookup(lang, key); hit {
			return entry, span, true
		}
	}
	return domain.LexiconEntry{}, 0, false
}

func phraseKey(tokens []textproc.Token, start, span int) (string, bool) {
	var b strings.Builder
	for j := start; j < start+span; j++ {
		if !tokens[j].Word {
			return "", false
		}
		if j > start {
			// a sentence boundary inside the window breaks the phrase
			if tokens[j-1].SentenceEnd {
				return "", false
			}
			b.WriteByte(' ')
		}
		b.WriteString(tokens[j].Folded)
	}
	return b.String(), true
}

// modifierAlpha computes the emphasis multiplier for a match at position i:
// lookback modifiers, the token's own certainty markers, profanity, caps and
// elongation. Clamped at MinAlpha so no modifier stack can zero a hit.
func (s *Scorer) modifierAlpha(tokens []textproc.Token, i int, profile language.Profile) float64 {
	t := &s.tuning
	alpha := 1.0

	steps := 0
	for j := i - 1; j >= 0 && steps < t.ModifierWindow; j, steps = j-1, steps+1 {
		prev := tokens[j].Canonical
		if _, ok := profile.Intensifiers()[prev]; ok {
			alpha += t.IntensifierBoost
		}
		if _, ok := profile.Diminishers()[prev]; ok {
			alpha -= t.DiminisherDamp
		}
		if _, ok := profile.UncertaintyWords()[prev]; ok {
			alpha -= t.UncertaintyDamp
		}
		if _, ok := profile.CertaintyWords()[prev]; ok {
			alpha += t.CertaintyBoost
		}
		if tokens[j].SentenceEnd {
			break
		}
	}

	cur := tokens[i].Canonical
	if _, ok := profile.UncertaintyWords()[cur]; ok {
		alpha -= t.UncertaintyDamp / 2
	}
	if _, ok := profile.CertaintyWords()[cur]; ok {
		alpha += t.CertaintyBoost
	}
	if _, ok := profile.Profanities()[cur]; ok {
		alpha += t.ProfanityBoost
	}
	if tokens[i].AllCaps {
		alpha += t.CapsBoost
	}
	if tokens[i].Elongated {
		alpha += t.ElongationBoost
	}

	return math.Max(t.MinAlpha, alpha)
}

// countEmphasis tallies global emphasis cues consumed by arousal and
// certainty scoring.
func (s *Scorer) countEmphasis(tokens []textproc.Token, profile language.Profile, res *ScoreResult) {
	for i := range tokens {
		tok := &tokens[i]
		res.ExclaimCount += tok.Exclaims
		res.QuestionCount += tok.Questions
		if tok.AllCaps {
			res.AllCapsCount++
		}
		if tok.Elongated {
			res.ElongatedCount++
		}
		if _, ok := profile.Profanities()[tok.Canonical]; ok {
			res.ProfanityCount++
		}
		if _, ok := profile.UncertaintyWords()[tok.Canonical]; ok {
			res.UncertaintyCount++
		}
		if _, ok := profile.CertaintyWords()[tok.Canonical]; ok {
			res.CertaintyCount++
		}
	}
}

func lastContrastIndex(tokens []textproc.Token, profile language.Profile) int {
	contrast := profile.ContrastWords()
	idx := -1
	for i := range tokens {
		if _, ok := contrast[tokens[i].Canonical]; ok {
			idx = i
			continue
		}
		// two-word markers like "sin embargo"
		if i > 0 {
			if _, ok := contrast[tokens[i-1].Canonical+" "+tokens[i].Canonical]; ok {
				idx = i
			}
		}
	}
	return idx
}

func lastClauseStart(tokens []textproc.Token) int {
	start := 0
	for i := range tokens {
		if tokens[i].SentenceEnd && i+1 < len(tokens) {
			start = i + 1
		}
	}
	return start
}
