// ═══════════════════════════════════════════════════════════════════════════════
// QUERY EVALUATOR
// ═══════════════════════════════════════════════════════════════════════════════
// Walks an RPN token sequence with a stack of roaring bitmaps, one bitmap
// per partial result — the same "stack of bitmaps" shape a fluent boolean
// query builder would use, just driven by postfix tokens instead of method
// calls appended in source order. A bitmap iterates its members in ascending
// order, which is exactly the strictly-ascending doc_id sequence every set
// operation here both requires of its inputs and guarantees of its output.
// ═══════════════════════════════════════════════════════════════════════════════

package blaze

import "github.com/RoaringBitmap/roaring"

// bitmapForStem returns a fresh bitmap of every doc_id whose posting list
// contains stem. An unknown stem yields an empty bitmap.
func (idx *Index) bitmapForStem(stem string) *roaring.Bitmap {
	bm := roaring.New()
	for _, p := range idx.terms[stem] {
		bm.Add(uint32(p.DocID))
	}
	return bm
}

// universeBitmap is every non-hole doc_id — the default left operand for a
// bare "NOT b" query.
func (idx *Index) universeBitmap() *roaring.Bitmap {
	bm := roaring.New()
	for i := 0; i < idx.slots; i++ {
		if !idx.docs.isHole(i) {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// evaluate walks rpn and returns the resulting doc_id set, ascending. An
// and/or with fewer than two operands on the stack is skipped outright,
// leaving the stack untouched; a not with no right operand is skipped the
// same way; a not with a right operand but no left operand uses the universe
// of non-hole documents as its left side.
func (idx *Index) evaluate(rpn []queryToken) *roaring.Bitmap {
	var stack []*roaring.Bitmap
	pop := func() *roaring.Bitmap {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for _, t := range rpn {
		switch t.kind {
		case kindTerm:
			stack = append(stack, idx.bitmapForStem(Stem(t.term)))
		case kindAnd:
			if len(stack) < 2 {
				continue
			}
			right, left := pop(), pop()
			stack = append(stack, roaring.And(left, right))
		case kindOr:
			if len(stack) < 2 {
				continue
			}
			right, left := pop(), pop()
			stack = append(stack, roaring.Or(left, right))
		case kindNot:
			if len(stack) == 0 {
				continue
			}
			right := pop()
			var left *roaring.Bitmap
			if len(stack) > 0 {
				left = pop()
			} else {
				left = idx.universeBitmap()
			}
			stack = append(stack, roaring.AndNot(left, right))
		}
	}

	if len(stack) == 0 {
		return roaring.New()
	}
	return stack[len(stack)-1]
}
