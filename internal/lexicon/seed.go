package lexicon

import "github.com/in-tuned/emotion-engine/internal/domain"

// Curated seed lexicon. Weights follow a 0-2.5 scale: 2.0+ strong
// indicators, 1.0-2.0 moderate, below 1.0 weak or context dependent.

const (
	anger    = domain.Anger
	disgust  = domain.Disgust
	fear     = domain.Fear
	joy      = domain.Joy
	sadness  = domain.Sadness
	passion  = domain.Passion
	surprise = domain.Surprise
)

func entry(lang, phrase string, pairs ...any) domain.LexiconEntry {
	return domain.LexiconEntry{
		Language:   lang,
		Phrase:     phrase,
		Weights:    domain.Vec(pairs...),
		Provenance: domain.ProvenanceCurated,
		Confidence: 1.0,
	}
}

// SeedEntries returns the built-in curated lexicon for all supported
// languages, single words and multi-word phrases alike.
func SeedEntries() []domain.LexiconEntry {
	var out []domain.LexiconEntry
	out = append(out, englishSeed()...)
	out = append(out, spanishSeed()...)
	out = append(out, portugueseSeed()...)
	return out
}

func englishSeed() []domain.LexiconEntry {
	return []domain.LexiconEntry{
		// anger
		entry("en", "angry", anger, 2.2),
		entry("en", "mad", anger, 2.2),
		entry("en", "furious", anger, 2.4),
		entry("en", "enraged", anger, 2.4),
		entry("en", "livid", anger, 2.3),
		entry("en", "outraged", anger, 2.3),
		entry("en", "irritated", anger, 1.8),
		entry("en", "annoyed", anger, 1.8),
		entry("en", "frustrated", anger, 1.9),
		entry("en", "resentful", anger, 1.9),
		entry("en", "bitter", anger, 1.7, sadness, 0.5),
		entry("en", "hate", anger, 2.3),
		entry("en", "loathe", anger, 2.3),
		entry("en", "despise", anger, 2.3),
		entry("en", "pissed", anger, 2.0),
		entry("en", "salty", anger, 1.6),
		entry("en", "triggered", anger, 1.7),
		entry("en", "heated", anger, 1.8),
		entry("en", "ugh", anger, 1.4, disgust, 0.6),
		entry("en", "smh", anger, 1.3),
		entry("en", "wtf", anger, 1.5, surprise, 0.8),
		entry("en", "stupid", anger, 1.8),
		entry("en", "idiot", anger, 1.8),
		entry("en", "pathetic", anger, 1.5, disgust, 0.8),
		entry("en", "unacceptable", anger, 1.8),
		entry("en", "damn", anger, 1.5),
		// disgust
		entry("en", "disgusted", disgust, 2.2),
		entry("en", "disgusting", disgust, 2.2),
		entry("en", "gross", disgust, 2.1),
		entry("en", "nasty", disgust, 2.0),
		entry("en", "repulsive", disgust, 2.3),
		entry("en", "revolting", disgust, 2.3),
		entry("en", "sickening", disgust, 2.2),
		entry("en", "nauseous", disgust, 1.9),
		entry("en", "vile", disgust, 2.2),
		entry("en", "yuck", disgust, 2.0),
		entry("en", "ew", disgust, 2.0),
		entry("en", "icky", disgust, 1.8),
		entry("en", "creepy", disgust, 1.5, fear, 1.0),
		entry("en", "cringe", disgust, 1.7),
		// fear
		entry("en", "afraid", fear, 2.2),
		entry("en", "scared", fear, 2.2),
		entry("en", "terrified", fear, 2.5),
		entry("en", "petrified", fear, 2.4),
		entry("en", "frightened", fear, 2.2),
		entry("en", "anxious", fear, 2.0),
		entry("en", "anxiety", fear, 2.0),
		entry("en", "panic", fear, 2.3),
		entry("en", "panicking", fear, 2.3),
		entry("en", "nervous", fear, 1.8),
		entry("en", "worried", fear, 1.8),
		entry("en", "dread", fear, 2.1),
		entry("en", "uneasy", fear, 1.5),
		entry("en", "overwhelmed", fear, 1.6, sadness, 0.8),
		entry("en", "stressed", fear, 1.7, anger, 0.5),
		// joy
		entry("en", "happy", joy, 2.2),
		entry("en", "glad", joy, 1.9),
		entry("en", "joyful", joy, 2.3),
		entry("en", "delighted", joy, 2.3),
		entry("en", "ecstatic", joy, 2.5),
		entry("en", "thrilled", joy, 2.4, surprise, 0.5),
		entry("en", "excited", joy, 2.1, surprise, 0.6),
		entry("en", "cheerful", joy, 2.0),
		entry("en", "grateful", joy, 1.9, passion, 0.4),
		entry("en", "blessed", joy, 1.8),
		entry("en", "content", joy, 1.5),
		entry("en", "proud", joy, 1.8, passion, 0.5),
		entry("en", "stoked", joy, 2.0),
		entry("en", "hyped", joy, 2.0, surprise, 0.4),
		entry("en", "vibing", joy, 1.6),
		entry("en", "lit", joy, 1.5),
		entry("en", "amazing", joy, 1.8, surprise, 0.6),
		entry("en", "wonderful", joy, 1.9),
		entry("en", "fantastic", joy, 1.9),
		entry("en", "great", joy, 1.5),
		entry("en", "fun", joy, 1.6),
		entry("en", "laughing", joy, 1.8),
		entry("en", "lol", joy, 1.2),
		entry("en", "lmao", joy, 1.4),
		// sadness
		entry("en", "sad", sadness, 2.2),
		entry("en", "unhappy", sadness, 2.0),
		entry("en", "depressed", sadness, 2.4),
		entry("en", "miserable", sadness, 2.3),
		entry("en", "heartbroken", sadness, 2.5),
		entry("en", "devastated", sadness, 2.5),
		entry("en", "grieving", sadness, 2.4),
		entry("en", "lonely", sadness, 2.1),
		entry("en", "alone", sadness, 1.5),
		entry("en", "hopeless", sadness, 2.2, fear, 0.5),
		entry("en", "crying", sadness, 2.1),
		entry("en", "tears", sadness, 1.8),
		entry("en", "hurt", sadness, 1.8, anger, 0.4),
		entry("en", "hurting", sadness, 1.9),
		entry("en", "empty", sadness, 1.8),
		entry("en", "numb", sadness, 1.7),
		entry("en", "down", sadness, 1.3),
		entry("en", "gloomy", sadness, 1.8),
		entry("en", "exhausted", sadness, 1.4, fear, 0.4),
		entry("en", "disappointed", sadness, 1.8, anger, 0.5),
		entry("en", "missing", sadness, 1.4, passion, 0.6),
		// passion
		entry("en", "love", passion, 2.3, joy, 0.8),
		entry("en", "adore", passion, 2.3, joy, 0.6),
		entry("en", "crush", passion, 1.9),
		entry("en", "desire", passion, 2.0),
		entry("en", "longing", passion, 1.9, sadness, 0.5),
		entry("en", "romantic", passion, 2.0, joy, 0.5),
		entry("en", "intimate", passion, 1.9),
		entry("en", "devoted", passion, 2.0),
		entry("en", "smitten", passion, 2.2, joy, 0.5),
		entry("en", "yearning", passion, 2.0, sadness, 0.6),
		entry("en", "cherish", passion, 2.0, joy, 0.5),
		// surprise
		entry("en", "surprised", surprise, 2.2),
		entry("en", "shocked", surprise, 2.3),
		entry("en", "stunned", surprise, 2.3),
		entry("en", "astonished", surprise, 2.4),
		entry("en", "amazed", surprise, 2.1, joy, 0.6),
		entry("en", "unexpected", surprise, 1.8),
		entry("en", "unbelievable", surprise, 1.8),
		entry("en", "whoa", surprise, 1.9),
		entry("en", "omg", surprise, 1.8),
		entry("en", "suddenly", surprise, 1.2),
		// phrases
		entry("en", "on cloud nine", joy, 3.0),
		entry("en", "sick to my stomach", disgust, 2.5, fear, 1.0),
		entry("en", "heart broken", sadness, 3.0),
		entry("en", "to die for", passion, 2.0, joy, 1.0),
		entry("en", "i hate you", anger, 3.0, disgust, 1.5),
		entry("en", "i hate myself", anger, 2.0, sadness, 2.0),
		entry("en", "i am done", sadness, 2.0, anger, 1.0),
		entry("en", "rough day", sadness, 2.0),
		entry("en", "hard day", sadness, 2.0),
		entry("en", "tough day", sadness, 2.0),
		entry("en", "not the easiest week", sadness, 2.3, fear, 0.7),
		entry("en", "lowkey happy", joy, 1.5, sadness, 0.5),
		entry("en", "highkey happy", joy, 2.0),
		entry("en", "so proud of you", joy, 2.0, passion, 1.0),
		entry("en", "proud of you", joy, 1.6, passion, 0.6),
		entry("en", "over the moon", joy, 2.8),
		entry("en", "scared to death", fear, 2.8),
		entry("en", "falling apart", sadness, 2.4, fear, 0.8),
	}
}

func spanishSeed() []domain.LexiconEntry {
	return []domain.LexiconEntry{
		// anger
		entry("es", "enojado", anger, 2.2),
		entry("es", "enfadado", anger, 2.2),
		entry("es", "furioso", anger, 2.4),
		entry("es", "molesto", anger, 1.8),
		entry("es", "irritado", anger, 1.8),
		entry("es", "frustrado", anger, 1.9),
		entry("es", "rabia", anger, 2.2),
		entry("es", "odio", anger, 2.3),
		entry("es", "odiar", anger, 2.3),
		entry("es", "indignado", anger, 2.1),
		entry("es", "harto", anger, 1.8, disgust, 0.5),
		// disgust
		entry("es", "asco", disgust, 2.3),
		entry("es", "asqueroso", disgust, 2.3),
		entry("es", "repugnante", disgust, 2.3),
		entry("es", "guacala", disgust, 2.0),
		entry("es", "vomito", disgust, 1.8),
		// fear
		entry("es", "miedo", fear, 2.2),
		entry("es", "asustado", fear, 2.2),
		entry("es", "aterrado", fear, 2.5),
		entry("es", "ansioso", fear, 2.0),
		entry("es", "ansiedad", fear, 2.0),
		entry("es", "nervioso", fear, 1.8),
		entry("es", "preocupado", fear, 1.8),
		entry("es", "panico", fear, 2.3),
		entry("es", "terror", fear, 2.4),
		// joy
		entry("es", "feliz", joy, 2.2),
		entry("es", "contento", joy, 1.9),
		entry("es", "alegre", joy, 2.1),
		entry("es", "alegria", joy, 2.1),
		entry("es", "encantado", joy, 2.1),
		entry("es", "emocionado", joy, 2.0, surprise, 0.6),
		entry("es", "agradecido", joy, 1.9, passion, 0.4),
		entry("es", "orgulloso", joy, 1.8, passion, 0.5),
		entry("es", "genial", joy, 1.7),
		entry("es", "maravilloso", joy, 1.9),
		entry("es", "increible", joy, 1.5, surprise, 1.0),
		entry("es", "riendo", joy, 1.8),
		// sadness
		entry("es", "triste", sadness, 2.2),
		entry("es", "tristeza", sadness, 2.2),
		entry("es", "deprimido", sadness, 2.4),
		entry("es", "deprimida", sadness, 2.4),
		entry("es", "solo", sadness, 1.4),
		entry("es", "sola", sadness, 1.4),
		entry("es", "soledad", sadness, 2.0),
		entry("es", "llorando", sadness, 2.1),
		entry("es", "lagrimas", sadness, 1.8),
		entry("es", "desesperado", sadness, 2.1, fear, 0.7),
		entry("es", "vacio", sadness, 1.8),
		entry("es", "dolido", sadness, 1.9),
		entry("es", "decepcionado", sadness, 1.8, anger, 0.5),
		entry("es", "agotado", sadness, 1.4, fear, 0.4),
		// passion
		entry("es", "amor", passion, 2.3, joy, 0.8),
		entry("es", "amar", passion, 2.3),
		entry("es", "enamorado", passion, 2.4, joy, 0.6),
		entry("es", "enamorada", passion, 2.4, joy, 0.6),
		entry("es", "deseo", passion, 2.0),
		entry("es", "carino", passion, 1.9, joy, 0.5),
		entry("es", "adorar", passion, 2.2),
		entry("es", "extrano", passion, 1.4, sadness, 1.2),
		// surprise
		entry("es", "sorprendido", surprise, 2.2),
		entry("es", "sorpresa", surprise, 2.1),
		entry("es", "impactado", surprise, 2.2),
		entry("es", "atonito", surprise, 2.3),
		entry("es", "inesperado", surprise, 1.8),
		entry("es", "derrepente", surprise, 1.2),
		// phrases
		entry("es", "no aguanto mas", anger, 1.5, sadness, 2.0),
		entry("es", "no lo soporto", anger, 2.0, disgust, 1.0),
		entry("es", "me rompe el corazon", sadness, 3.0),
		entry("es", "me parte el corazon", sadness, 3.0),
		entry("es", "no fue una semana facil", sadness, 2.3, fear, 0.7),
		entry("es", "que miedo", fear, 2.0),
		entry("es", "que asco", disgust, 2.0),
		entry("es", "que rabia", anger, 2.0),
		entry("es", "que bueno", joy, 2.0),
		entry("es", "te quiero mucho", passion, 2.3, joy, 1.0),
		entry("es", "te amo mucho", passion, 2.5, joy, 1.2),
	}
}

func portugueseSeed() []domain.LexiconEntry {
	return []domain.LexiconEntry{
		// anger
		entry("pt", "raiva", anger, 2.2),
		entry("pt", "bravo", anger, 2.1),
		entry("pt", "brava", anger, 2.1),
		entry("pt", "furioso", anger, 2.4),
		entry("pt", "irritado", anger, 1.8),
		entry("pt", "frustrado", anger, 1.9),
		entry("pt", "odio", anger, 2.3),
		entry("pt", "odeio", anger, 2.3),
		entry("pt", "indignado", anger, 2.1),
		entry("pt", "revoltado", anger, 2.2),
		// disgust
		entry("pt", "nojo", disgust, 2.3),
		entry("pt", "nojento", disgust, 2.3),
		entry("pt", "repugnante", disgust, 2.3),
		entry("pt", "enjoado", disgust, 1.9),
		entry("pt", "eca", disgust, 2.0),
		// fear
		entry("pt", "medo", fear, 2.2),
		entry("pt", "assustado", fear, 2.2),
		entry("pt", "aterrorizado", fear, 2.5),
		entry("pt", "ansioso", fear, 2.0),
		entry("pt", "ansiedade", fear, 2.0),
		entry("pt", "nervoso", fear, 1.8),
		entry("pt", "preocupado", fear, 1.8),
		entry("pt", "panico", fear, 2.3),
		entry("pt", "pavor", fear, 2.4),
		// joy
		entry("pt", "feliz", joy, 2.2),
		entry("pt", "contente", joy, 1.9),
		entry("pt", "alegre", joy, 2.1),
		entry("pt", "alegria", joy, 2.1),
		entry("pt", "animado", joy, 2.0, surprise, 0.5),
		entry("pt", "empolgado", joy, 2.1, surprise, 0.5),
		entry("pt", "grato", joy, 1.9, passion, 0.4),
		entry("pt", "orgulhoso", joy, 1.8, passion, 0.5),
		entry("pt", "maravilhoso", joy, 1.9),
		entry("pt", "incrivel", joy, 1.5, surprise, 1.0),
		entry("pt", "rindo", joy, 1.8),
		entry("pt", "kkk", joy, 1.2),
		// sadness
		entry("pt", "triste", sadness, 2.2),
		entry("pt", "tristeza", sadness, 2.2),
		entry("pt", "deprimido", sadness, 2.4),
		entry("pt", "deprimida", sadness, 2.4),
		entry("pt", "sozinho", sadness, 1.8),
		entry("pt", "sozinha", sadness, 1.8),
		entry("pt", "solidao", sadness, 2.0),
		entry("pt", "chorando", sadness, 2.1),
		entry("pt", "lagrimas", sadness, 1.8),
		entry("pt", "desesperado", sadness, 2.1, fear, 0.7),
		entry("pt", "vazio", sadness, 1.8),
		entry("pt", "magoado", sadness, 1.9),
		entry("pt", "decepcionado", sadness, 1.8, anger, 0.5),
		entry("pt", "cansado", sadness, 1.3),
		entry("pt", "saudade", sadness, 1.6, passion, 1.2),
		// passion
		entry("pt", "amor", passion, 2.3, joy, 0.8),
		entry("pt", "amar", passion, 2.3),
		entry("pt", "amo", passion, 2.3),
		entry("pt", "apaixonado", passion, 2.4, joy, 0.6),
		entry("pt", "apaixonada", passion, 2.4, joy, 0.6),
		entry("pt", "desejo", passion, 2.0),
		entry("pt", "carinho", passion, 1.9, joy, 0.5),
		entry("pt", "adorar", passion, 2.2),
		// surprise
		entry("pt", "surpreso", surprise, 2.2),
		entry("pt", "surpresa", surprise, 2.1),
		entry("pt", "chocado", surprise, 2.3),
		entry("pt", "atonito", surprise, 2.3),
		entry("pt", "inesperado", surprise, 1.8),
		entry("pt", "derepente", surprise, 1.2),
		// phrases
		entry("pt", "nao aguento mais", anger, 1.5, sadness, 2.0),
		entry("pt", "me parte o coracao", sadness, 3.0),
		entry("pt", "nao foi uma semana facil", sadness, 2.3, fear, 0.7),
		entry("pt", "que medo", fear, 2.0),
		entry("pt", "que nojo", disgust, 2.0),
		entry("pt", "que raiva", anger, 2.0),
		entry("pt", "que bom", joy, 2.0),
		entry("pt", "te amo muito", passion, 2.5, joy, 1.2),
		entry("pt", "te amo demais", passion, 2.5, joy, 1.3),
	}
}
