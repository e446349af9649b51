package language

import "strings"

// Spanish implements Profile for Spanish.
type Spanish struct{}

func (Spanish) Code() string { return "es" }

var (
	esFunctionWords = set(
		"el", "la", "los", "las", "y", "es", "soy", "eres", "estoy",
		"yo", "tú", "tu", "mi", "me",
	)
	esNegators     = set("no", "nunca", "jamás", "jamas", "nada")
	esIntensifiers = set("muy", "re", "súper", "super", "demasiado", "tan")
	esDiminishers  = set("un", "poco", "algo", "quizas", "quizás")
	esCertainty    = set("definitivamente", "seguro", "segura", "claro", "obvio")
	esUncertainty  = set("quizas", "quizás", "tal", "vez", "supongo", "creo")
	esContrast     = set("pero", "sin embargo", "aunque")
	esProfanities  = set("mierda", "joder", "carajo", "puta", "pendejo", "pendeja")
)

func (Spanish) FunctionWords() map[string]struct{}    { return esFunctionWords }
func (Spanish) Negators() map[string]struct{}         { return esNegators }
func (Spanish) Intensifiers() map[string]struct{}     { return esIntensifiers }
func (Spanish) Diminishers() map[string]struct{}      { return esDiminishers }
func (Spanish) CertaintyWords() map[string]struct{}   { return esCertainty }
func (Spanish) UncertaintyWords() map[string]struct{} { return esUncertainty }
func (Spanish) ContrastWords() map[string]struct{}    { return esContrast }
func (Spanish) Profanities() map[string]struct{}      { return esProfanities }

// OrthographicSignal rewards Spanish-only orthography: ñ and the inverted
// punctuation marks.
func (Spanish) OrthographicSignal(token string) float64 {
	if strings.ContainsAny(token, "ñ¿¡") {
		return 1.2
	}
	return 0
}

// MorphVariants generates gender, plural and diminutive inflections.
func (Spanish) MorphVariants(word string) []string {
	var variants []string
	switch {
	case strings.HasSuffix(word, "ísimo") || strings.HasSuffix(word, "isimo"):
		base := strings.TrimSuffix(strings.TrimSuffix(word, "ísimo"), "isimo")
		variants = append(variants, base+"o", base+"a")
	case strings.HasSuffix(word, "ito") || strings.HasSuffix(word, "ita"):
		base := word[:len(word)-3]
		variants = append(variants, base+"o", base+"a")
	case strings.HasSuffix(word, "o"):
		base := word[:len(word)-1]
		variants = append(variants,
			base+"a", base+"os", base+"as",
			base+"ito", base+"itos", base+"ita", base+"itas")
	case strings.HasSuffix(word, "a"):
		base := word[:len(word)-1]
		variants = append(variants, base+"o", base+"os", base+"as")
	}
	return variants
}
