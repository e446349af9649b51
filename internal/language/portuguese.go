package language

import "strings"

// Portuguese implements Profile for Portuguese, covering both Brazilian and
// European forms in its marker sets.
type Portuguese struct{}

func (Portuguese) Code() string { return "pt" }

var (
	ptFunctionWords = set(
		"o", "a", "os", "as", "e", "é", "sou", "estou",
		"você", "voce", "eu", "meu", "minha",
	)
	ptNegators     = set("não", "nao", "nem", "nunca", "jamais")
	ptIntensifiers = set("muito", "super", "demais", "tão", "tao", "pra", "bastante")
	ptDiminishers  = set("um", "pouco", "meio", "talvez")
	ptCertainty    = set("certeza", "claro", "obvio", "óbvio")
	ptUncertainty  = set("talvez", "acho", "provavelmente")
	ptContrast     = set("mas", "porém", "porem", "contudo", "embora")
	ptProfanities  = set("merda", "porra", "caralho", "puta", "bosta", "pqp")
)

func (Portuguese) FunctionWords() map[string]struct{}    { return ptFunctionWords }
func (Portuguese) Negators() map[string]struct{}         { return ptNegators }
func (Portuguese) Intensifiers() map[string]struct{}     { return ptIntensifiers }
func (Portuguese) Diminishers() map[string]struct{}      { return ptDiminishers }
func (Portuguese) CertaintyWords() map[string]struct{}   { return ptCertainty }
func (Portuguese) UncertaintyWords() map[string]struct{} { return ptUncertainty }
func (Portuguese) ContrastWords() map[string]struct{}    { return ptContrast }
func (Portuguese) Profanities() map[string]struct{}      { return ptProfanities }

// OrthographicSignal rewards nasal vowels and cedilla, which Spanish lacks.
// Shared acute accents score lower.
func (Portuguese) OrthographicSignal(token string) float64 {
	if strings.ContainsAny(token, "ãõçêô") {
		return 1.0
	}
	if strings.ContainsAny(token, "áéíóú") {
		return 0.3
	}
	return 0
}

// MorphVariants generates gender, plural and diminutive inflections.
func (Portuguese) MorphVariants(word string) []string {
	var variants []string
	switch {
	case strings.HasSuffix(word, "íssimo") || strings.HasSuffix(word, "issimo"):
		base := strings.TrimSuffix(strings.TrimSuffix(word, "íssimo"), "issimo")
		variants = append(variants, base+"o", base+"a")
	case strings.HasSuffix(word, "inho") || strings.HasSuffix(word, "inha"):
		base := word[:len(word)-4]
		variants = append(variants, base+"o", base+"a")
	case strings.HasSuffix(word, "o"):
		base := word[:len(word)-1]
		variants = append(variants,
			base+"a", base+"os", base+"as",
			base+"inho", base+"inha", base+"inhos", base+"inhas")
	case strings.HasSuffix(word, "a"):
		base := word[:len(word)-1]
		variants = append(variants, base+"o", base+"os", base+"as")
	}
	return variants
}
