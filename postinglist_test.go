package blaze

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════
// POSTING LIST TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestPostingListInsertAndFind(t *testing.T) {
	pl := newPostingList()
	pl.insert(5, 2)
	pl.insert(1, 9)
	pl.insert(3, 4)

	if tf, ok := pl.find(5); !ok || tf != 2 {
		t.Errorf("find(5) = (%d, %v), want (2, true)", tf, ok)
	}
	if tf, ok := pl.find(1); !ok || tf != 9 {
		t.Errorf("find(1) = (%d, %v), want (9, true)", tf, ok)
	}
	if _, ok := pl.find(42); ok {
		t.Errorf("find(42) reported present, want absent")
	}
}

func TestPostingListOutOfOrderInsertProducesSortedPostings(t *testing.T) {
	pl := newPostingList()
	for _, id := range []int32{7, 2, 9, 0, 4} {
		pl.insert(id, 1)
	}

	postings := pl.postings()
	if len(postings) != 5 {
		t.Fatalf("postings() len = %d, want 5", len(postings))
	}
	for i := 1; i < len(postings); i++ {
		if postings[i-1].DocID >= postings[i].DocID {
			t.Fatalf("postings() not strictly ascending at %d: %v", i, postings)
		}
	}
}

func TestPostingListReinsertOverwritesTF(t *testing.T) {
	pl := newPostingList()
	pl.insert(3, 1)
	pl.insert(3, 99)

	if pl.size != 1 {
		t.Fatalf("size = %d, want 1 after re-inserting the same doc_id", pl.size)
	}
	if tf, ok := pl.find(3); !ok || tf != 99 {
		t.Errorf("find(3) = (%d, %v), want (99, true)", tf, ok)
	}
}

func TestPostingListEmpty(t *testing.T) {
	pl := newPostingList()
	if postings := pl.postings(); len(postings) != 0 {
		t.Errorf("postings() on empty list = %v, want empty", postings)
	}
	if _, ok := pl.find(0); ok {
		t.Errorf("find on empty list reported present")
	}
}
