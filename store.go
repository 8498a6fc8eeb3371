// ═══════════════════════════════════════════════════════════════════════════════
// ON-DISK INDEX FORMAT
// ═══════════════════════════════════════════════════════════════════════════════
// Four files, written together and loaded together:
//
//	vocabulary.txt   term_id term doc_freq          (one line per term)
//	index.bin        int32 list_size, then that many (int32 doc_id, int32 tf) pairs,
//	                 one run per vocabulary line, in vocabulary order
//	documents.txt    doc_id<TAB>url<TAB>title        (dense, holes are empty fields)
//	doc_lengths.txt  one integer per line, line i is length[i]
//
// index.bin uses native byte order; there is no header or magic number, to
// match the source format exactly (see the open question in DESIGN.md about
// whether one should be added — deliberately left alone).
// ═══════════════════════════════════════════════════════════════════════════════

package blaze

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Save writes the four on-disk files into dir, creating it if necessary.
// Vocabulary terms are written in alphabetical order so two builds over the
// same corpus produce byte-identical snapshots; nothing downstream depends
// on the order itself.
func (b *Builder) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create index directory: %w", err)
	}

	terms := make([]string, 0, len(b.postings))
	for term := range b.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if err := b.writeVocabulary(dir, terms); err != nil {
		return err
	}
	if err := b.writePostings(dir, terms); err != nil {
		return err
	}
	if err := b.writeDocuments(dir); err != nil {
		return err
	}
	if err := b.writeDocLengths(dir); err != nil {
		return err
	}
	return nil
}

func (b *Builder) writeVocabulary(dir string, terms []string) error {
	f, err := os.Create(dir + "/vocabulary.txt")
	if err != nil {
		return fmt.Errorf("create vocabulary.txt: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for id, term := range terms {
		df := b.postings[term].size
		if _, err := fmt.Fprintf(w, "%d %s %d\n", id, term, df); err != nil {
			return fmt.Errorf("write vocabulary.txt: %w", err)
		}
	}
	return w.Flush()
}

func (b *Builder) writePostings(dir string, terms []string) error {
	f, err := os.Create(dir + "/index.bin")
	if err != nil {
		return fmt.Errorf("create index.bin: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, term := range terms {
		postings := b.postings[term].postings()
		if err := binary.Write(w, binary.NativeEndian, int32(len(postings))); err != nil {
			return fmt.Errorf("write index.bin: %w", err)
		}
		for _, p := range postings {
			if err := binary.Write(w, binary.NativeEndian, p.DocID); err != nil {
				return fmt.Errorf("write index.bin: %w", err)
			}
			if err := binary.Write(w, binary.NativeEndian, p.TF); err != nil {
				return fmt.Errorf("write index.bin: %w", err)
			}
		}
	}
	return w.Flush()
}

func (b *Builder) writeDocuments(dir string) error {
	f, err := os.Create(dir + "/documents.txt")
	if err != nil {
		return fmt.Errorf("create documents.txt: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < b.docs.size(); i++ {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", i, b.docs.url[i], b.docs.title[i]); err != nil {
			return fmt.Errorf("write documents.txt: %w", err)
		}
	}
	return w.Flush()
}

func (b *Builder) writeDocLengths(dir string) error {
	f, err := os.Create(dir + "/doc_lengths.txt")
	if err != nil {
		return fmt.Errorf("create doc_lengths.txt: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < b.docs.size(); i++ {
		if _, err := fmt.Fprintf(w, "%d\n", b.docs.length[i]); err != nil {
			return fmt.Errorf("write doc_lengths.txt: %w", err)
		}
	}
	return w.Flush()
}

// Index is the read-only, in-memory materialisation of a saved index. It is
// safe for concurrent Search calls once loading has finished — nothing
// after LoadIndex returns mutates it.
type Index struct {
	terms map[string][]Posting // stem -> postings, ascending by DocID
	docs  *documentStore

	universeSize int // count of non-hole documents
	slots        int // total document slots, including holes; the N the ranker uses
}

// LoadIndex reads the four files in dir into a runtime Index. A missing
// doc_lengths.txt is tolerated (lengths default to 0); a missing
// vocabulary.txt, index.bin, or documents.txt is fatal.
func LoadIndex(dir string) (*Index, error) {
	vocab, err := loadVocabulary(dir)
	if err != nil {
		return nil, err
	}
	terms, err := loadPostings(dir, vocab)
	if err != nil {
		return nil, err
	}
	docs, err := loadDocuments(dir)
	if err != nil {
		return nil, err
	}
	if err := loadDocLengths(dir, docs); err != nil {
		return nil, err
	}

	idx := &Index{terms: terms, docs: docs, slots: docs.size()}
	for i := 0; i < docs.size(); i++ {
		if !docs.isHole(i) {
			idx.universeSize++
		}
	}
	return idx, nil
}

// loadVocabulary returns the term column of vocabulary.txt in file order.
// The doc_freq column is validated but not kept: each term's posting-list
// length in index.bin is the same number, read moments later.
func loadVocabulary(dir string) ([]string, error) {
	f, err := os.Open(dir + "/vocabulary.txt")
	if err != nil {
		return nil, fmt.Errorf("%w: vocabulary.txt: %v", ErrIndexNotFound, err)
	}
	defer f.Close()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 3)
		if len(fields) != 3 {
			return nil, ErrVocabularyCorrupt
		}
		if _, err := strconv.Atoi(fields[2]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrVocabularyCorrupt, err)
		}
		terms = append(terms, fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary.txt: %w", err)
	}
	return terms, nil
}

func loadPostings(dir string, vocab []string) (map[string][]Posting, error) {
	f, err := os.Open(dir + "/index.bin")
	if err != nil {
		return nil, fmt.Errorf("%w: index.bin: %v", ErrIndexNotFound, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	out := make(map[string][]Posting, len(vocab))
	for _, term := range vocab {
		var listSize int32
		if err := binary.Read(r, binary.NativeEndian, &listSize); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPostingsCorrupt, err)
		}
		postings := make([]Posting, listSize)
		for i := int32(0); i < listSize; i++ {
			if err := binary.Read(r, binary.NativeEndian, &postings[i].DocID); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrPostingsCorrupt, err)
			}
			if err := binary.Read(r, binary.NativeEndian, &postings[i].TF); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrPostingsCorrupt, err)
			}
		}
		out[term] = postings
	}
	return out, nil
}

func loadDocuments(dir string) (*documentStore, error) {
	f, err := os.Open(dir + "/documents.txt")
	if err != nil {
		return nil, fmt.Errorf("%w: documents.txt: %v", ErrIndexNotFound, err)
	}
	defer f.Close()

	docs := newDocumentStore()
	scanner := bufio.NewScanner(f)
	row := 0
	for scanner.Scan() {
		fields := strings.SplitN(scanner.Text(), "\t", 3)
		if len(fields) != 3 {
			return nil, ErrDocumentsCorrupt
		}
		docID, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDocumentsCorrupt, err)
		}
		docs.set(int32(docID), fields[1], fields[2], 0)
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read documents.txt: %w", err)
	}
	return docs, nil
}

// loadDocLengths fills in docs.length from doc_lengths.txt. A missing file
// is tolerated: every length stays 0, and the ranking formula's
// normalisation step is skipped as a consequence.
func loadDocLengths(dir string, docs *documentStore) error {
	f, err := os.Open(dir + "/doc_lengths.txt")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read doc_lengths.txt: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	i := 0
	for scanner.Scan() {
		n, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return fmt.Errorf("parse doc_lengths.txt: %w", err)
		}
		if i < docs.size() {
			docs.length[i] = int32(n)
		}
		i++
	}
	return scanner.Err()
}
