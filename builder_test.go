package blaze

import (
	"os"
	"path/filepath"
	"testing"
)

// ═══════════════════════════════════════════════════════════════════════════════
// BUILDER TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestBuilderAddDocumentTermFrequencies(t *testing.T) {
	b := NewBuilder()
	b.AddDocument(0, "http://example.com/vault", "Vault", "The vault dweller found a pip-boy in the vault.")

	postings, ok := b.postings["vault"]
	if !ok {
		t.Fatalf("expected a posting list for stem \"vault\"")
	}
	tf, found := postings.find(0)
	if !found || tf != 2 {
		t.Errorf("tf for \"vault\" in doc 0 = (%d, %v), want (2, true)", tf, found)
	}

	if b.docs.length[0] == 0 {
		t.Errorf("doc 0 length recorded as 0")
	}
}

func TestBuilderAddDocumentAccumulatesStats(t *testing.T) {
	b := NewBuilder()
	b.AddDocument(0, "u", "t", "The vault dweller found a pip-boy in the vault.")
	b.AddDocument(1, "u2", "t2", "Nuka-Cola Quantum glows in the dark.")

	stats := b.Stats()
	if stats.Documents != 2 {
		t.Errorf("Documents = %d, want 2", stats.Documents)
	}
	if stats.Tokens == 0 {
		t.Errorf("Tokens = 0, want > 0")
	}
}

func TestBuilderBuildFromStreamSkipsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs.jsonl")

	longText := "The vault dweller found a pip-boy in the vault and it was very useful indeed."
	content := `{"doc_id": 0, "url": "http://a", "title": "A", "text": "` + longText + `"}
{"url": "http://b", "title": "B", "text": "` + longText + `"}
{"doc_id": 2, "url": "http://c", "title": "C", "text": "too short"}
not even json
{"doc_id": 3, "url": "http://d", "title": "D", "text": "` + longText + `"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b := NewBuilder()
	if err := b.BuildFromStream(path); err != nil {
		t.Fatalf("BuildFromStream: %v", err)
	}

	stats := b.Stats()
	if stats.Documents != 2 {
		t.Errorf("Documents = %d, want 2 (records 0 and 3 survive)", stats.Documents)
	}
}

func TestBuilderAddLineRejectsMissingDocIDAndShortText(t *testing.T) {
	b := NewBuilder()

	if err := b.addLine(`{"url": "u", "title": "t", "text": "this text is long enough to pass the fifty byte minimum length check"}`); err != errMissingDocID {
		t.Errorf("addLine with missing doc_id = %v, want errMissingDocID", err)
	}
	if err := b.addLine(`{"doc_id": 1, "url": "u", "title": "t", "text": "short"}`); err != errTextTooShort {
		t.Errorf("addLine with short text = %v, want errTextTooShort", err)
	}
}
