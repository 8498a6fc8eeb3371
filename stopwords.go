package blaze

// stopwords is the closed set of words filtered out of document text before
// stemming. "and", "or", and "not" are deliberately in this list: they are
// stop words when they occur in a document and reserved operators when they
// occur in a query, and both paths consistently strip them from term
// positions.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "by": {},
	"for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {}, "it": {}, "its": {},
	"of": {}, "on": {}, "that": {}, "the": {}, "to": {}, "was": {}, "were": {}, "will": {},
	"with": {}, "this": {}, "but": {}, "they": {}, "have": {}, "had": {}, "what": {},
	"when": {}, "where": {}, "who": {}, "which": {}, "why": {}, "how": {}, "all": {},
	"each": {}, "every": {}, "both": {}, "few": {}, "more": {}, "most": {}, "other": {},
	"some": {}, "such": {}, "no": {}, "nor": {}, "not": {}, "only": {}, "own": {},
	"same": {}, "so": {}, "than": {}, "too": {}, "very": {}, "can": {}, "just": {},
	"should": {}, "now": {}, "you": {}, "your": {}, "we": {}, "our": {}, "us": {},
	"or": {}, "if": {}, "do": {}, "did": {}, "does": {}, "about": {}, "up": {}, "out": {},
	"would": {}, "could": {}, "may": {}, "might": {}, "been": {}, "also": {}, "into": {},
	"over": {}, "after": {}, "before": {}, "through": {}, "between": {}, "her": {},
	"him": {}, "his": {}, "she": {}, "them": {}, "their": {}, "my": {}, "me": {},
	"any": {}, "there": {}, "then": {}, "these": {}, "those": {}, "am": {}, "being": {},
	"here": {}, "while": {}, "during": {}, "under": {}, "again": {}, "once": {},
}

func isStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
