// ═══════════════════════════════════════════════════════════════════════════════
// INDEX BUILDER
// ═══════════════════════════════════════════════════════════════════════════════
// The builder is the only place documents are mutated into an index. It is
// not reentrant and not safe for concurrent calls to AddDocument — that is a
// deliberate simplification, not an oversight: building is a single offline
// pass over a document stream, and the loaded, read-only index that comes
// out the other end is what concurrent query traffic is served from.
// ═══════════════════════════════════════════════════════════════════════════════

package blaze

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// BuildStats carries diagnostic counters out of a build. Nothing downstream
// depends on these numbers; they exist for a CLI to print a summary line.
type BuildStats struct {
	Documents      int
	Tokens         int64
	Stems          int
	BytesProcessed int64
	Elapsed        time.Duration
}

// Builder accumulates documents into an in-memory inverted index and writes
// it to disk. A zero Builder is not usable; use NewBuilder.
type Builder struct {
	docs     *documentStore
	postings map[string]*postingList
	zipf     *zipfCounter

	documents      int
	tokens         int64
	bytesProcessed int64
	started        time.Time
}

func NewBuilder() *Builder {
	return &Builder{
		docs:     newDocumentStore(),
		postings: make(map[string]*postingList),
		zipf:     newZipfCounter(),
		started:  time.Now(),
	}
}

// AddDocument analyzes text, records the document's metadata and length, and
// appends (doc_id, tf) to every stem's posting list. It is not safe to call
// concurrently with itself or with Save.
func (b *Builder) AddDocument(docID int32, url, title, text string) {
	tokens := Analyze(text)
	b.docs.set(docID, url, title, int32(len(tokens)))

	freq := make(map[string]int32, len(tokens))
	for _, tok := range tokens {
		freq[tok.Stem]++
		b.zipf.add(tok.Stem)
	}
	for stem, tf := range freq {
		list, ok := b.postings[stem]
		if !ok {
			list = newPostingList()
			b.postings[stem] = list
		}
		list.insert(docID, tf)
	}

	b.documents++
	b.tokens += int64(len(tokens))
	b.bytesProcessed += int64(len(text))
}

// jsonRecord mirrors one line of the document stream. DocID is a pointer so
// a missing "doc_id" key can be told apart from an explicit 0.
type jsonRecord struct {
	DocID *int64 `json:"doc_id"`
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// BuildFromStream reads one JSON object per line from path and calls
// AddDocument for every record that passes the record-level checks.
// Malformed lines, missing doc_id, and text shorter than 50 bytes are
// silently skipped — only the open/read of path itself is fatal.
func (b *Builder) BuildFromStream(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open document stream: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		lineNo++
		if len(line) > 0 {
			if skipErr := b.addLine(line); skipErr != nil {
				slog.Debug("skipping record", slog.Int("line", lineNo), slog.String("reason", skipErr.Error()))
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read document stream: %w", err)
		}
	}
}

func (b *Builder) addLine(line string) error {
	var rec jsonRecord
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return err
	}
	if rec.DocID == nil {
		return errMissingDocID
	}
	if len(rec.Text) < 50 {
		return errTextTooShort
	}
	b.AddDocument(int32(*rec.DocID), rec.URL, rec.Title, rec.Text)
	return nil
}

// Stats returns diagnostic counters accumulated since the builder was
// created.
func (b *Builder) Stats() BuildStats {
	return BuildStats{
		Documents:      b.documents,
		Tokens:         b.tokens,
		Stems:          len(b.postings),
		BytesProcessed: b.bytesProcessed,
		Elapsed:        time.Since(b.started),
	}
}

// WriteZipfReport writes the term-frequency table fed by every AddDocument
// call to path as a rank,frequency,term CSV.
func (b *Builder) WriteZipfReport(path string) error {
	return b.zipf.writeCSV(path)
}
