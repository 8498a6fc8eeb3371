package blaze

import "testing"

// ═══════════════════════════════════════════════════════════════════════════════
// ENGINE END-TO-END TESTS
// ═══════════════════════════════════════════════════════════════════════════════
// The three-document corpus and six queries below are the worked example this
// package's behaviour is checked against: a vault dweller finding a pip-boy,
// a glowing Nuka-Cola Quantum, and a raider ambush, all set in the Wasteland.
// ═══════════════════════════════════════════════════════════════════════════════

func newFalloutEngine(t *testing.T) *Engine {
	t.Helper()
	idx := buildFalloutIndex(t)
	return &Engine{idx: idx}
}

func docIDs(results []SearchResult) []int32 {
	ids := make([]int32, len(results))
	for i, r := range results {
		ids[i] = r.DocID
	}
	return ids
}

func TestEngineSearchVault(t *testing.T) {
	e := newFalloutEngine(t)
	results, total := e.Search("vault")
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	ids := docIDs(results)
	if len(ids) != 2 || ids[0] != 0 || ids[1] != 2 {
		t.Errorf("Search(vault) docIDs = %v, want [0 2] (title bonus ranks doc 0 first)", ids)
	}
}

func TestEngineSearchVaultAndDweller(t *testing.T) {
	e := newFalloutEngine(t)
	results, total := e.Search("vault AND dweller")
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	ids := docIDs(results)
	if len(ids) != 2 {
		t.Fatalf("docIDs = %v, want 2 entries", ids)
	}
	if !(containsInt32(ids, 0) && containsInt32(ids, 2)) {
		t.Errorf("Search(vault AND dweller) docIDs = %v, want {0, 2}", ids)
	}
}

func TestEngineSearchVaultAndNotRaiders(t *testing.T) {
	e := newFalloutEngine(t)
	results, total := e.Search("vault AND NOT raiders")
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
	if len(results) != 1 || results[0].DocID != 0 {
		t.Errorf("Search(vault AND NOT raiders) = %v, want [doc 0]", docIDs(results))
	}
}

func TestEngineSearchNukaOrRaiders(t *testing.T) {
	e := newFalloutEngine(t)
	results, total := e.Search("nuka OR raiders")
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	ids := docIDs(results)
	if !(containsInt32(ids, 1) && containsInt32(ids, 2)) {
		t.Errorf("Search(nuka OR raiders) docIDs = %v, want {1, 2}", ids)
	}
}

func TestEngineSearchBareNot(t *testing.T) {
	e := newFalloutEngine(t)
	results, total := e.Search("NOT vault")
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
	if len(results) != 1 || results[0].DocID != 1 {
		t.Errorf("Search(NOT vault) = %v, want [doc 1]", docIDs(results))
	}
}

func TestEngineSearchParenthesizedOrAnd(t *testing.T) {
	e := newFalloutEngine(t)
	results, total := e.Search("(vault OR nuka) AND dweller")
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	ids := docIDs(results)
	if !(containsInt32(ids, 0) && containsInt32(ids, 2)) {
		t.Errorf("Search((vault OR nuka) AND dweller) docIDs = %v, want {0, 2}", ids)
	}
}

func TestEngineSearchEmptyQueryDoesNotCrash(t *testing.T) {
	e := newFalloutEngine(t)
	results, total := e.Search("")
	if total != 0 || len(results) != 0 {
		t.Errorf("Search(\"\") = (%v, %d), want (nil, 0)", results, total)
	}
}

func TestEngineSearchUnknownTerm(t *testing.T) {
	e := newFalloutEngine(t)
	results, total := e.Search("xyzzy")
	if total != 0 || len(results) != 0 {
		t.Errorf("Search(xyzzy) = (%v, %d), want (nil, 0)", results, total)
	}
}

func TestEngineSearchStemEquivalence(t *testing.T) {
	idx := buildFalloutIndex(t)
	e := &Engine{idx: idx}
	// "ambush" in doc 2's text stems the same whether the query says
	// "ambush" or "ambushes".
	results, total := e.Search("ambushes")
	if total != 1 || len(results) != 1 || results[0].DocID != 2 {
		t.Errorf("Search(ambushes) = (%v, %d), want ([doc 2], 1)", docIDs(results), total)
	}
}

func containsInt32(haystack []int32, needle int32) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
