package lexicon

import (
	"strings"

	"github.com/in-tuned/emotion-engine/internal/domain"
	"github.com/in-tuned/emotion-engine/internal/language"
)

// Morphological variants inherit the base word's weights at reduced scale,
// since an inflected form is a weaker signal than the curated base.
const variantWeightScale = 0.8

// Widen generates morphological variants for single-word entries using the
// language profile's inflection rules. Variants never overwrite an existing
// entry, curated data always wins. The returned slice contains only the new
// variant entries.
func Widen(entries []domain.LexiconEntry, profiles []language.Profile) []domain.LexiconEntry {
	byCode := make(map[string]language.Profile, len(profiles))
	for _, p := range profiles {
		byCode[p.Code()] = p
	}

	existing := make(map[Key]struct{}, len(entries))
	for i := range entries {
		existing[Key{entries[i].Language, FoldPhrase(entries[i].Phrase)}] = struct{}{}
	}

	var out []domain.LexiconEntry
	for i := range entries {
		e := &entries[i]
		p, ok := byCode[e.Language]
		if !ok {
			continue
		}
		word := FoldPhrase(e.Phrase)
		if len(word) < 3 || strings.Contains(word, " ") {
			continue
		}
		for _, v := range p.MorphVariants(word) {
			if v == "" {
				continue
			}
			k := Key{e.Language, FoldPhrase(v)}
			if _, dup := existing[k]; dup {
				continue
			}
			existing[k] = struct{}{}

			weights := e.Weights
			weights.Scale(variantWeightScale)
			out = append(out, domain.LexiconEntry{
				Language:   e.Language,
				Phrase:     v,
				Weights:    weights,
				Provenance: e.Provenance,
				Confidence: e.Confidence * variantWeightScale,
			})
		}
	}
	return out
}
