package blaze

import "math/rand"

// postingList is a skip list keyed by ascending doc_id, carrying a term
// frequency as its payload. The container is sorted by construction, so
// posting lists are ascending at save time no matter what order documents
// arrived in — there is no separate sort pass before writing. Re-inserting
// an existing doc_id overwrites its tf.
const maxTowerHeight = 32

type postingNode struct {
	docID int32
	tf    int32
	tower [maxTowerHeight]*postingNode
}

type postingList struct {
	head   *postingNode
	height int
	size   int
	rng    *rand.Rand
}

func newPostingList() *postingList {
	return &postingList{
		head:   &postingNode{},
		height: 1,
		rng:    rand.New(rand.NewSource(1)),
	}
}

// insert adds (docID, tf), or overwrites tf if docID is already present.
func (pl *postingList) insert(docID, tf int32) {
	var journey [maxTowerHeight]*postingNode
	current := pl.head
	for level := pl.height - 1; level >= 0; level-- {
		for current.tower[level] != nil && current.tower[level].docID < docID {
			current = current.tower[level]
		}
		journey[level] = current
	}

	if next := journey[0].tower[0]; next != nil && next.docID == docID {
		next.tf = tf
		return
	}

	height := pl.randomHeight()
	node := &postingNode{docID: docID, tf: tf}
	for level := 0; level < height; level++ {
		predecessor := journey[level]
		if predecessor == nil {
			predecessor = pl.head
		}
		node.tower[level] = predecessor.tower[level]
		predecessor.tower[level] = node
	}
	if height > pl.height {
		pl.height = height
	}
	pl.size++
}

// find returns the tf stored for docID, or (0, false) if absent.
func (pl *postingList) find(docID int32) (int32, bool) {
	current := pl.head
	for level := pl.height - 1; level >= 0; level-- {
		for current.tower[level] != nil && current.tower[level].docID < docID {
			current = current.tower[level]
		}
	}
	next := current.tower[0]
	if next != nil && next.docID == docID {
		return next.tf, true
	}
	return 0, false
}

// postings returns the list's contents as a flat slice, already sorted
// ascending by docID.
func (pl *postingList) postings() []Posting {
	out := make([]Posting, 0, pl.size)
	for n := pl.head.tower[0]; n != nil; n = n.tower[0] {
		out = append(out, Posting{DocID: n.docID, TF: n.tf})
	}
	return out
}

// randomHeight flips a biased coin until it comes up tails, giving the
// standard geometric tower-height distribution (50% height 1, 25% height 2,
// ...). One *rand.Rand lives per list rather than being reseeded on every
// call.
func (pl *postingList) randomHeight() int {
	height := 1
	for pl.rng.Float64() < 0.5 && height < maxTowerHeight {
		height++
	}
	return height
}
