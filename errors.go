package blaze

import "errors"

// Sentinel errors for the small, enumerable failure modes this package
// needs to distinguish by identity. Everything else is wrapped with
// fmt.Errorf("...: %w", err) and returned as-is.
var (
	errMissingDocID = errors.New("record missing doc_id")
	errTextTooShort = errors.New("text shorter than 50 bytes")

	// ErrIndexNotFound is returned when a required on-disk index file
	// (vocabulary.txt, index.bin, or documents.txt) cannot be opened.
	ErrIndexNotFound = errors.New("blaze: required index file not found")

	// ErrVocabularyCorrupt is returned when vocabulary.txt cannot be
	// parsed into term_id/term/doc_freq records.
	ErrVocabularyCorrupt = errors.New("blaze: vocabulary.txt is malformed")

	// ErrPostingsCorrupt is returned when index.bin ends before the
	// posting lists its vocabulary describes have been fully read.
	ErrPostingsCorrupt = errors.New("blaze: index.bin is malformed or truncated")

	// ErrDocumentsCorrupt is returned when documents.txt cannot be split
	// into doc_id/url/title rows.
	ErrDocumentsCorrupt = errors.New("blaze: documents.txt is malformed")
)
