package expansion

import (
	"strings"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/textproc"
)

const (
	keywordHitScore   = 1.0
	prefixHitScore    = 0.5
	slangHitScore     = 1.5
	maxProposedWeight = 2.5
	popularThumbsUp   = 1000
	popularBoost      = 1.2
	minWeightKept     = 0.5
	hitsAtFullConf    = 5.0
)

// Proposal is the outcome of scoring definition text against the keyword
// tables. A zero-hit scan produces an empty proposal with zero confidence.
type Proposal struct {
	Weights    domain.Vector
	Confidence float64
	// Definition is the first definition text, kept for admin review.
	Definition string
	Source     string
}

// DeriveWeights scans definitions, examples and synonyms for emotion cues and
// proposes a weight vector. The strongest emotion is scaled to
// maxProposedWeight and weaker components below minWeightKept are dropped, so
// proposals stay sparse.
func DeriveWeights(defs []Definition, language string) (Proposal, bool) {
	table, ok := emotionKeywords[language]
	if !ok {
		return Proposal{}, false
	}

	var hits domain.Vector
	var totalHits float64
	var popular bool
	proposal := Proposal{}

	for _, def := range defs {
		if proposal.Definition == "" && len(def.Definitions) > 0 {
			proposal.Definition = def.Definitions[0]
		}
		if proposal.Source == "" {
			proposal.Source = def.Source
		}
		if def.ThumbsUp > popularThumbsUp {
			popular = true
		}
		slang := def.Source == "urban_dictionary"

		text := foldAll(def)
		for _, emotion := range domain.Emotions {
			for _, kw := range table[emotion] {
				score := matchScore(text, kw)
				if score == 0 {
					continue
				}
				hits[emotion] += score
				totalHits += score
			}
			if !slang {
				continue
			}
			for _, kw := range slangIndicators[emotion] {
				if strings.Contains(text, " "+kw) || strings.HasPrefix(text, kw) {
					hits[emotion] += slangHitScore
					totalHits += slangHitScore
				}
			}
		}
	}

	_, maxHit := hits.Max()
	if maxHit == 0 {
		return Proposal{}, false
	}

	scale := maxProposedWeight / maxHit
	for i := range hits {
		w := hits[i] * scale
		if w < minWeightKept {
			w = 0
		}
		proposal.Weights[i] = w
	}
	if proposal.Weights.IsZero() {
		return Proposal{}, false
	}

	conf := totalHits / hitsAtFullConf
	if conf > 1 {
		conf = 1
	}
	if popular {
		conf *= popularBoost
		if conf > 1 {
			conf = 1
		}
	}
	proposal.Confidence = conf
	return proposal, true
}

// matchScore returns the hit weight for keyword kw in folded text: a full
// word hit, or a half-score prefix hit for keywords longer than four runes.
func matchScore(text, kw string) float64 {
	idx := strings.Index(text, kw)
	if idx < 0 {
		return 0
	}
	atStart := idx == 0 || text[idx-1] == ' '
	end := idx + len(kw)
	atEnd := end == len(text) || text[end] == ' '
	if atStart && atEnd {
		return keywordHitScore
	}
	if atStart && len([]rune(kw)) > 4 {
		return prefixHitScore
	}
	return 0
}

func foldAll(def Definition) string {
	var b strings.Builder
	for _, d := range def.Definitions {
		b.WriteString(d)
		b.WriteByte(' ')
	}
	for _, e := range def.Examples {
		b.WriteString(e)
		b.WriteByte(' ')
	}
	for _, s := range def.Synonyms {
		b.WriteString(s)
		b.WriteByte(' ')
	}
	return textproc.Fold(b.String())
}
