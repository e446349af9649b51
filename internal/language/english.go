package language

import "strings"

// English implements Profile for English, including common online slang
// markers.
type English struct{}

func (English) Code() string { return "en" }

var (
	enFunctionWords = set(
		"the", "and", "is", "am", "are", "you", "i", "my", "me", "it",
		"of", "to", "in",
	)
	enNegators = set(
		"not", "never", "no", "dont", "don't", "isnt", "isn't",
		"cant", "can't", "wont", "won't", "nothing",
	)
	enIntensifiers = set(
		"very", "really", "so", "super", "extremely", "incredibly",
		"totally", "absolutely", "completely", "too",
		"hella", "highkey", "lowkey", "crazy",
	)
	enDiminishers = set("kind", "kinda", "sort", "little", "bit", "maybe", "possibly")
	enCertainty   = set("definitely", "forreal", "fr", "frfr", "literally")
	enUncertainty = set(
		"maybe", "perhaps", "kinda", "sorta", "guess", "idk",
		"unsure", "probably", "possibly",
	)
	enContrast    = set("but", "however", "though", "yet")
	enProfanities = set("fuck", "fucking", "shit", "bitch", "asshole", "damn", "wtf")
)

func (English) FunctionWords() map[string]struct{}    { return enFunctionWords }
func (English) Negators() map[string]struct{}         { return enNegators }
func (English) Intensifiers() map[string]struct{}     { return enIntensifiers }
func (English) Diminishers() map[string]struct{}      { return enDiminishers }
func (English) CertaintyWords() map[string]struct{}   { return enCertainty }
func (English) UncertaintyWords() map[string]struct{} { return enUncertainty }
func (English) ContrastWords() map[string]struct{}    { return enContrast }
func (English) Profanities() map[string]struct{}      { return enProfanities }

// OrthographicSignal rewards common English letter clusters. Weaker than the
// Spanish and Portuguese diacritic signals on purpose: English is also the
// fallback language.
func (English) OrthographicSignal(token string) float64 {
	if strings.Contains(token, "th") || strings.HasSuffix(token, "ing") {
		return 0.4
	}
	return 0
}

// MorphVariants generates plural, past and progressive inflections.
func (English) MorphVariants(word string) []string {
	if len(word) <= 3 {
		return nil
	}
	variants := []string{word + "s", word + "ed", word + "ing", word + "er", word + "est"}
	if strings.HasSuffix(word, "y") {
		variants = append(variants, word[:len(word)-1]+"ies")
	}
	return variants
}
