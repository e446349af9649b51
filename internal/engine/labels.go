package engine

import "github.com/in-tuned/emotion-engine/internal/domain"

// Static label data. Wording changes here never touch the scoring
// algorithm.

// EmotionLabel returns the display name of an emotion for a locale.
func EmotionLabel(locale string, e domain.Emotion) string {
	if m, ok := emotionLabels[locale]; ok {
		return m[e]
	}
	return emotionLabels["en"][e]
}

// NuancedLabel returns the intensity-aware wording for an emotion, falling
// back to the base display name when no nuanced entry exists.
func NuancedLabel(locale string, e domain.Emotion, bucket domain.IntensityBucket) string {
	table, ok := nuancedLabels[locale]
	if !ok {
		table = nuancedLabels["en"]
	}
	if byBucket, ok := table[e]; ok {
		if label, ok := byBucket[bucket]; ok {
			return label
		}
	}
	return EmotionLabel(locale, e)
}

// NormalizeLocale reduces a UI locale to one of the supported label sets.
func NormalizeLocale(locale string) string {
	if len(locale) >= 2 {
		switch locale[:2] {
		case "es", "Es", "ES":
			return "es"
		case "pt", "Pt", "PT", "br", "BR":
			return "pt"
		}
	}
	return "en"
}

var emotionLabels = map[string]map[domain.Emotion]string{
	"en": {
		domain.Anger: "Anger", domain.Disgust: "Disgust", domain.Fear: "Fear",
		domain.Joy: "Joy", domain.Sadness: "Sadness", domain.Passion: "Passion",
		domain.Surprise: "Surprise",
	},
	"es": {
		domain.Anger: "Ira", domain.Disgust: "Asco", domain.Fear: "Miedo",
		domain.Joy: "Alegría", domain.Sadness: "Tristeza", domain.Passion: "Pasión",
		domain.Surprise: "Sorpresa",
	},
	"pt": {
		domain.Anger: "Raiva", domain.Disgust: "Nojo", domain.Fear: "Medo",
		domain.Joy: "Alegria", domain.Sadness: "Tristeza", domain.Passion: "Paixão",
		domain.Surprise: "Surpresa",
	},
}

type bucketLabels = map[domain.IntensityBucket]string

var nuancedLabels = map[string]map[domain.Emotion]bucketLabels{
	"en": {
		domain.Anger: {
			domain.IntensityVeryLow:  "Slightly annoyed",
			domain.IntensityLow:      "Frustrated",
			domain.IntensityModerate: "Angry",
			domain.IntensityHigh:     "Very angry",
			domain.IntensityVeryHigh: "Furious",
		},
		domain.Sadness: {
			domain.IntensityVeryLow:  "Slightly down",
			domain.IntensityLow:      "Down",
			domain.IntensityModerate: "Sad",
			domain.IntensityHigh:     "Very sad",
			domain.IntensityVeryHigh: "Devastated",
		},
		domain.Joy: {
			domain.IntensityVeryLow:  "Slightly pleased",
			domain.IntensityLow:      "Content",
			domain.IntensityModerate: "Happy",
			domain.IntensityHigh:     "Very happy",
			domain.IntensityVeryHigh: "Overjoyed",
		},
		domain.Fear: {
			domain.IntensityVeryLow:  "Slightly uneasy",
			domain.IntensityLow:      "Nervous",
			domain.IntensityModerate: "Anxious",
			domain.IntensityHigh:     "Very anxious",
			domain.IntensityVeryHigh: "Panicked",
		},
		domain.Passion: {
			domain.IntensityVeryLow:  "Warm affection",
			domain.IntensityLow:      "Affectionate",
			domain.IntensityModerate: "Loving",
			domain.IntensityHigh:     "Very loving",
			domain.IntensityVeryHigh: "Deeply in love",
		},
		domain.Disgust: {
			domain.IntensityVeryLow:  "Mild discomfort",
			domain.IntensityLow:      "Uncomfortable",
			domain.IntensityModerate: "Displeased",
			domain.IntensityHigh:     "Disgusted",
			domain.IntensityVeryHigh: "Repulsed",
		},
		domain.Surprise: {
			domain.IntensityVeryLow:  "Slightly surprised",
			domain.IntensityLow:      "Surprised",
			domain.IntensityModerate: "Very surprised",
			domain.IntensityHigh:     "Shocked",
			domain.IntensityVeryHigh: "Stunned",
		},
	},
	"es": {
		domain.Anger: {
			domain.IntensityVeryLow:  "Levemente molesto",
			domain.IntensityLow:      "Molesto",
			domain.IntensityModerate: "Enojado",
			domain.IntensityHigh:     "Muy enojado",
			domain.IntensityVeryHigh: "Furioso",
		},
		domain.Sadness: {
			domain.IntensityVeryLow:  "Levemente desanimado",
			domain.IntensityLow:      "Desanimado",
			domain.IntensityModerate: "Triste",
			domain.IntensityHigh:     "Muy triste",
			domain.IntensityVeryHigh: "Devastado",
		},
		domain.Joy: {
			domain.IntensityVeryLow:  "Levemente contento",
			domain.IntensityLow:      "Contento",
			domain.IntensityModerate: "Feliz",
			domain.IntensityHigh:     "Muy feliz",
			domain.IntensityVeryHigh: "Eufórico",
		},
		domain.Fear: {
			domain.IntensityVeryLow:  "Levemente inquieto",
			domain.IntensityLow:      "Nervioso",
			domain.IntensityModerate: "Ansioso",
			domain.IntensityHigh:     "Muy ansioso",
			domain.IntensityVeryHigh: "Aterrado",
		},
		domain.Passion: {
			domain.IntensityVeryLow:  "Afecto leve",
			domain.IntensityLow:      "Cariñoso",
			domain.IntensityModerate: "Amoroso",
			domain.IntensityHigh:     "Muy amoroso",
			domain.IntensityVeryHigh: "Profundamente enamorado",
		},
		domain.Disgust: {
			domain.IntensityVeryLow:  "Ligeramente incómodo",
			domain.IntensityLow:      "Incómodo",
			domain.IntensityModerate: "Disgustado",
			domain.IntensityHigh:     "Muy disgustado",
			domain.IntensityVeryHigh: "Repugnado",
		},
		domain.Surprise: {
			domain.IntensityVeryLow:  "Levemente sorprendido",
			domain.IntensityLow:      "Sorprendido",
			domain.IntensityModerate: "Muy sorprendido",
			domain.IntensityHigh:     "Impactado",
			domain.IntensityVeryHigh: "Atónito",
		},
	},
	"pt": {
		domain.Anger: {
			domain.IntensityVeryLow:  "Levemente incomodado",
			domain.IntensityLow:      "Incomodado",
			domain.IntensityModerate: "Com raiva",
			domain.IntensityHigh:     "Muito irritado",
			domain.IntensityVeryHigh: "Furioso",
		},
		domain.Sadness: {
			domain.IntensityVeryLow:  "Levemente abatido",
			domain.IntensityLow:      "Abatido",
			domain.IntensityModerate: "Triste",
			domain.IntensityHigh:     "Muito triste",
			domain.IntensityVeryHigh: "Devastado",
		},
		domain.Joy: {
			domain.IntensityVeryLow:  "Levemente contente",
			domain.IntensityLow:      "Contente",
			domain.IntensityModerate: "Feliz",
			domain.IntensityHigh:     "Muito feliz",
			domain.IntensityVeryHigh: "Radiante",
		},
		domain.Fear: {
			domain.IntensityVeryLow:  "Levemente apreensivo",
			domain.IntensityLow:      "Nervoso",
			domain.IntensityModerate: "Ansioso",
			domain.IntensityHigh:     "Muito ansioso",
			domain.IntensityVeryHigh: "Apavorado",
		},
		domain.Passion: {
			domain.IntensityVeryLow:  "Afeto leve",
			domain.IntensityLow:      "Carinhoso",
			domain.IntensityModerate: "Amoroso",
			domain.IntensityHigh:     "Muito amoroso",
			domain.IntensityVeryHigh: "Profundamente apaixonado",
		},
		domain.Disgust: {
			domain.IntensityVeryLow:  "Levemente desconfortável",
			domain.IntensityLow:      "Desconfortável",
			domain.IntensityModerate: "Com nojo",
			domain.IntensityHigh:     "Muito enojado",
			domain.IntensityVeryHigh: "Repugnado",
		},
		domain.Surprise: {
			domain.IntensityVeryLow:  "Levemente surpreso",
			domain.IntensityLow:      "Surpreso",
			domain.IntensityModerate: "Muito surpreso",
			domain.IntensityHigh:     "Chocado",
			domain.IntensityVeryHigh: "Atônito",
		},
	},
}
