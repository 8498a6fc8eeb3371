// ═══════════════════════════════════════════════════════════════════════════════
// RANKING
// ═══════════════════════════════════════════════════════════════════════════════
// Scores the boolean evaluator's candidate set against the query's unique
// stemmed terms. This is deliberately not BM25: the formula below is the
// one this system specifies, with title/URL substring bonuses and a
// sqrt-length normalisation, not Okapi's saturation curve.
// ═══════════════════════════════════════════════════════════════════════════════

package blaze

import (
	"math"
	"sort"
	"strings"
)

const (
	titleBonus = 0.35
	urlBonus   = 0.15
	maxResults = 100
)

// SearchResult is one ranked hit.
type SearchResult struct {
	DocID int32
	URL   string
	Title string
}

// rank scores every candidate doc_id against terms and returns results
// sorted by score descending, ties broken by doc_id ascending, truncated to
// maxResults. total is the pre-truncation candidate count.
func (idx *Index) rank(candidates []uint32, terms []string) (results []SearchResult, total int) {
	total = len(candidates)
	if total == 0 {
		return nil, 0
	}

	type scored struct {
		docID int32
		score float64
	}
	n := float64(idx.slots)
	out := make([]scored, 0, total)

	for _, c := range candidates {
		docID := int32(c)
		title := strings.ToLower(idx.docs.title[docID])
		url := strings.ToLower(idx.docs.url[docID])

		var numerator float64
		for _, t := range terms {
			tf, present := tfInPostings(idx.terms[t], docID)
			if !present {
				continue
			}
			df := float64(len(idx.terms[t]))
			idfTerm := math.Log((n+1)/(df+1)) + 1
			numerator += (1 + math.Log(float64(tf))) * idfTerm
			if strings.Contains(title, t) {
				numerator += titleBonus
			}
			if strings.Contains(url, t) {
				numerator += urlBonus
			}
		}

		length := idx.docs.length[docID]
		score := numerator
		if length > 0 {
			score = numerator / math.Sqrt(float64(length))
		}
		out = append(out, scored{docID: docID, score: score})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].docID < out[j].docID
	})

	if len(out) > maxResults {
		out = out[:maxResults]
	}
	results = make([]SearchResult, len(out))
	for i, s := range out {
		results[i] = SearchResult{
			DocID: s.docID,
			URL:   idx.docs.url[s.docID],
			Title: idx.docs.title[s.docID],
		}
	}
	return results, total
}

// tfInPostings binary-searches postings (sorted ascending by DocID) for
// docID.
func tfInPostings(postings []Posting, docID int32) (int32, bool) {
	i := sort.Search(len(postings), func(i int) bool { return postings[i].DocID >= docID })
	if i < len(postings) && postings[i].DocID == docID {
		return postings[i].TF, true
	}
	return 0, false
}
