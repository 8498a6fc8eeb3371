// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS OVERVIEW
// ═══════════════════════════════════════════════════════════════════════════════
// Analysis turns raw document or query text into the normalised stems the
// inverted index is keyed on. The builder runs document text through
// Analyze; the query side lexes its own terms (see lex in parse.go) and
// stems them with the same Stem function Analyze uses, so both paths share
// one stemmer.
//
// PIPELINE:
//  1. Tokenize  → maximal runs of ASCII letters, apostrophes allowed mid-run
//  2. Lowercase → ASCII-fold ("Vault" → "vault")
//  3. Filter    → drop tokens shorter than 2 chars or in the stop-word set
//  4. Stem      → classic Porter algorithm ("running" → "run")
// ═══════════════════════════════════════════════════════════════════════════════

package blaze

import "github.com/blevesearch/go-porterstemmer"

// Token pairs a surface token (post-filter, pre-stem — this is what
// length[doc_id] counts) with its stem (what the inverted index is keyed on).
type Token struct {
	Surface string
	Stem    string
}

// Analyze runs the full pipeline over text and returns one Token per
// surviving surface token, in order of appearance.
func Analyze(text string) []Token {
	surfaces := tokenize(text)
	tokens := make([]Token, 0, len(surfaces))
	for _, s := range surfaces {
		lower := asciiLower(s)
		if len(lower) < 2 || isStopword(lower) {
			continue
		}
		tokens = append(tokens, Token{Surface: lower, Stem: Stem(lower)})
	}
	return tokens
}

// Stem reduces a single lowercase ASCII word to its Porter stem. Both the
// builder (via Analyze) and the query evaluator (on already-lexed query
// terms) call this, never a different stemmer.
func Stem(word string) string {
	return porterstemmer.StemString(word)
}

// tokenize walks text byte by byte. A surface token is a maximal run of
// ASCII letters that may contain apostrophes once the run has started —
// "don't" is one token, but a leading "'" is just a separator. Any other
// byte ends the current token.
func tokenize(text string) []string {
	var tokens []string
	var cur []byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case isASCIILetter(c):
			cur = append(cur, c)
		case c == '\'' && len(cur) > 0:
			cur = append(cur, c)
		default:
			if len(cur) > 0 {
				tokens = append(tokens, string(cur))
				cur = nil
			}
		}
	}
	if len(cur) > 0 {
		tokens = append(tokens, string(cur))
	}
	return tokens
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// asciiLower lower-cases the ASCII letters of s and leaves every other byte
// alone.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
