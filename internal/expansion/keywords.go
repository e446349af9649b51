package expansion

import "github.com/in-tuned/emotion-engine/internal/domain"

// emotionKeywords maps emotion to the cue words scanned for in definition
// text, per language. A full keyword hit counts 1.0, a prefix hit 0.5.
var emotionKeywords = map[string]map[domain.Emotion][]string{
	"en": {
		domain.Anger: {
			"anger", "angry", "rage", "fury", "furious", "mad", "irritated",
			"annoyed", "hostile", "aggressive", "outrage", "wrath", "hate",
			"hatred", "resentment", "frustrated", "frustration", "enraged",
		},
		domain.Disgust: {
			"disgust", "disgusting", "revolting", "repulsive", "gross",
			"nauseating", "sickening", "vile", "foul", "repugnant",
			"loathsome", "distaste", "aversion", "nasty",
		},
		domain.Fear: {
			"fear", "afraid", "scared", "terror", "terrified", "anxious",
			"anxiety", "dread", "panic", "frightened", "horror", "worried",
			"nervous", "alarm", "threat", "danger", "phobia",
		},
		domain.Joy: {
			"joy", "happy", "happiness", "delight", "pleasure", "cheerful",
			"glad", "elated", "euphoric", "bliss", "content", "satisfied",
			"excited", "excitement", "fun", "amusing", "wonderful", "great",
		},
		domain.Sadness: {
			"sad", "sadness", "sorrow", "grief", "melancholy", "depressed",
			"depression", "misery", "miserable", "unhappy", "gloomy",
			"despair", "mourning", "heartbroken", "lonely", "loneliness",
		},
		domain.Passion: {
			"passion", "passionate", "love", "desire", "longing", "lust",
			"romance", "romantic", "devotion", "adoration", "infatuation",
			"intense", "fervor", "ardent", "yearning", "craving",
		},
		domain.Surprise: {
			"surprise", "surprised", "astonished", "amazed", "amazement",
			"shocked", "shocking", "unexpected", "startled", "stunned",
			"astounded", "sudden", "wonder", "bewildered",
		},
	},
	"es": {
		domain.Anger: {
			"ira", "enojo", "enojado", "furia", "furioso", "rabia",
			"molesto", "irritado", "odio", "hostil", "indignado",
			"frustrado", "frustracion", "colera",
		},
		domain.Disgust: {
			"asco", "asqueroso", "repugnante", "repulsivo", "nauseabundo",
			"desagradable", "aversion", "repelente", "vil",
		},
		domain.Fear: {
			"miedo", "temor", "terror", "aterrado", "asustado", "panico",
			"ansiedad", "ansioso", "horror", "preocupado", "nervioso",
			"amenaza", "peligro", "fobia",
		},
		domain.Joy: {
			"alegria", "alegre", "feliz", "felicidad", "placer", "contento",
			"dicha", "euforia", "euforico", "gozo", "satisfecho",
			"emocionado", "divertido", "maravilloso",
		},
		domain.Sadness: {
			"tristeza", "triste", "pena", "dolor", "melancolia", "deprimido",
			"depresion", "miseria", "infeliz", "desesperacion", "luto",
			"soledad", "solitario", "llanto",
		},
		domain.Passion: {
			"pasion", "apasionado", "amor", "deseo", "anhelo", "lujuria",
			"romance", "romantico", "devocion", "adoracion", "intenso",
			"fervor", "ardiente",
		},
		domain.Surprise: {
			"sorpresa", "sorprendido", "asombro", "asombrado", "impactado",
			"inesperado", "atonito", "repentino", "maravilla", "perplejo",
		},
	},
	"pt": {
		domain.Anger: {
			"raiva", "irritado", "furia", "furioso", "odio", "bravo",
			"hostil", "indignado", "frustrado", "frustracao", "colera",
			"revolta", "revoltado",
		},
		domain.Disgust: {
			"nojo", "nojento", "repugnante", "repulsivo", "asqueroso",
			"desagradavel", "aversao", "repelente", "vil",
		},
		domain.Fear: {
			"medo", "temor", "terror", "aterrorizado", "assustado", "panico",
			"ansiedade", "ansioso", "horror", "preocupado", "nervoso",
			"ameaca", "perigo", "fobia",
		},
		domain.Joy: {
			"alegria", "alegre", "feliz", "felicidade", "prazer", "contente",
			"euforia", "euforico", "satisfeito", "animado", "divertido",
			"maravilhoso", "otimo",
		},
		domain.Sadness: {
			"tristeza", "triste", "pena", "dor", "melancolia", "deprimido",
			"depressao", "miseria", "infeliz", "desespero", "luto",
			"solidao", "solitario", "saudade", "choro",
		},
		domain.Passion: {
			"paixao", "apaixonado", "amor", "desejo", "anseio", "luxuria",
			"romance", "romantico", "devocao", "adoracao", "intenso",
			"fervor", "ardente",
		},
		domain.Surprise: {
			"surpresa", "surpreso", "espanto", "espantado", "chocado",
			"inesperado", "atonito", "repentino", "maravilha", "perplexo",
		},
	},
}

// slangIndicators are weighted higher when found in urban dictionary entries,
// where definitions describe usage rather than meaning.
var slangIndicators = map[domain.Emotion][]string{
	domain.Anger:    {"pissed", "salty", "triggered", "heated", "fuming"},
	domain.Disgust:  {"cringe", "gross", "nasty", "yuck", "ick"},
	domain.Fear:     {"shook", "spooked", "creeped", "sketchy", "freaked"},
	domain.Joy:      {"hyped", "stoked", "vibing", "lit", "pumped", "buzzing"},
	domain.Sadness:  {"bummed", "gutted", "down bad", "crushed", "heartbroke"},
	domain.Passion:  {"obsessed", "simping", "smitten", "thirsty", "crushing"},
	domain.Surprise: {"mindblown", "shook", "wild", "unreal", "whoa"},
}
