// Package textproc normalizes and tokenizes journal text before scoring.
// Tokens keep their original form and byte offset so no information is lost
// between the raw input and the annotated sequence.
package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Token is a single annotated unit of input text.
type Token struct {
	// Text is the original token exactly as written, punctuation included.
	Text string
	// Canonical is the lowercase, diacritic-preserving, punctuation-stripped
	// form used for lexicon lookup.
	Canonical string
	// Folded is Canonical with diacritics removed and elongation collapsed,
	// the fallback lookup key.
	Folded string
	// Offset is the byte offset of the token in the normalized input.
	Offset int
	// AllCaps is set when the token has two or more letters, all uppercase.
	AllCaps bool
	// Exclaims counts '!' characters in the token.
	Exclaims int
	// Questions counts '?' characters in the token.
	Questions int
	// Elongated is set when a letter repeats three or more times in a row.
	Elongated bool
	// Negated is set by MarkNegation for tokens inside a negation window.
	Negated bool
	// SentenceEnd is set when the token closes a sentence.
	SentenceEnd bool
	// Word reports whether the token contains at least one letter or digit.
	Word bool
}

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares raw input for tokenization: NFC normalization, curly
// quote folding and whitespace trimming. Case and punctuation survive so the
// tokenizer can read emphasis cues from them.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = quoteFolder.Replace(text)
	return strings.TrimSpace(text)
}

var quoteFolder = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'",
	"“", `"`, "”", `"`, "„", `"`,
)

// Fold lowercases s and strips combining diacritical marks, so that
// "Feliz" and "féliz" land on the same lookup key.
func Fold(s string) string {
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Tokenize splits normalized text into annotated tokens. Every whitespace
// separated chunk produces exactly one token; nothing is dropped.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0, len(text)/5+1)

	offset := 0
	for offset < len(text) {
		// skip whitespace
		start := offset
		for start < len(text) && isSpaceByte(text[start]) {
			start++
		}
		if start >= len(text) {
			break
		}
		end := start
		for end < len(text) && !isSpaceByte(text[end]) {
			end++
		}
		tokens = append(tokens, makeToken(text[start:end], start))
		offset = end
	}
	return tokens
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func makeToken(raw string, offset int) Token {
	tok := Token{Text: raw, Offset: offset}

	core := strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
	core = strings.Trim(core, "'")

	tok.Canonical = strings.ToLower(core)
	tok.Word = core != ""
	tok.Exclaims = strings.Count(raw, "!")
	tok.Questions = strings.Count(raw, "?")
	tok.SentenceEnd = endsSentence(raw)
	tok.AllCaps = isAllCaps(core)

	collapsed, elongated := collapseElongation(tok.Canonical)
	tok.Elongated = elongated
	tok.Folded = Fold(collapsed)
	return tok
}

func endsSentence(raw string) bool {
	for i := len(raw) - 1; i >= 0; i-- {
		switch raw[i] {
		case '.', '!', '?', ';':
			return true
		case ',', ')', '"', '\'':
			continue
		default:
			return false
		}
	}
	return false
}

func isAllCaps(core string) bool {
	letters := 0
	for _, r := range core {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= 2
}

// collapseElongation reduces any run of three or more identical letters to a
// single letter, so "soooo" folds to "so". Double letters are left alone
// since many words legitimately contain them.
func collapseElongation(s string) (string, bool) {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	elongated := false

	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		runLen := j - i
		if runLen >= 3 && unicode.IsLetter(runes[i]) {
			elongated = true
			out = append(out, runes[i])
		} else {
			out = append(out, runes[i:j]...)
		}
		i = j
	}
	if !elongated {
		return s, false
	}
	return string(out), true
}

// MarkNegation flags the window tokens following any negation marker.
// Windows end early at a sentence boundary. The input slice is annotated in
// place and returned for convenience.
func MarkNegation(tokens []Token, negators map[string]struct{}, window int) []Token {
	remaining := 0
	for i := range tokens {
		if remaining > 0 {
			tokens[i].Negated = true
			remaining--
		}
		if _, ok := negators[tokens[i].Canonical]; ok {
			remaining = window
		}
		if tokens[i].SentenceEnd {
			remaining = 0
		}
	}
	return tokens
}

// CountWords returns the number of word tokens in the sequence.
func CountWords(tokens []Token) int {
	n := 0
	for i := range tokens {
		if tokens[i].Word {
			n++
		}
	}
	return n
}
