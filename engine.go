package blaze

import "log/slog"

// Engine owns a loaded, read-only Index and answers boolean queries against
// it. It centralises what the parser, evaluator, and ranker each do on
// their own into the one call most callers actually want.
type Engine struct {
	idx *Index
}

// Load reads a saved index from dir and returns a ready-to-query Engine.
func Load(dir string) (*Engine, error) {
	idx, err := LoadIndex(dir)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded index", slog.Int("documents", idx.slots), slog.Int("terms", len(idx.terms)))
	return &Engine{idx: idx}, nil
}

// Search lexes and parses query, evaluates it against the index, ranks the
// result, and returns at most 100 SearchResults plus the pre-truncation
// total. It never returns an error: malformed queries degrade to their
// natural result, never a crash — the query loop is end-user-facing.
func (e *Engine) Search(query string) ([]SearchResult, int) {
	tokens := lex(query)
	rpn := toRPN(tokens)
	candidates := e.idx.evaluate(rpn)
	terms := queryTerms(tokens)
	return e.idx.rank(candidates.ToArray(), terms)
}
