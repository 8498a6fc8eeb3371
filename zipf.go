package blaze

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
)

// zipfCounter tallies how many times each stem occurs across the whole
// corpus, for the informational zipf_stats.csv report. It has no reader
// other than writeCSV; nothing in the query path touches it.
type zipfCounter struct {
	counts map[string]int64
}

func newZipfCounter() *zipfCounter {
	return &zipfCounter{counts: make(map[string]int64)}
}

func (z *zipfCounter) add(stem string) {
	z.counts[stem]++
}

const zipfReportLimit = 10000

// writeCSV writes header "rank,frequency,term" followed by at most
// zipfReportLimit rows, sorted by frequency descending, ties broken by term
// ascending so the row order never depends on map iteration.
func (z *zipfCounter) writeCSV(path string) error {
	type row struct {
		term string
		freq int64
	}
	rows := make([]row, 0, len(z.counts))
	for term, freq := range z.counts {
		rows = append(rows, row{term: term, freq: freq})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].freq != rows[j].freq {
			return rows[i].freq > rows[j].freq
		}
		return rows[i].term < rows[j].term
	})
	if len(rows) > zipfReportLimit {
		rows = rows[:zipfReportLimit]
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create zipf report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"rank", "frequency", "term"}); err != nil {
		return fmt.Errorf("write zipf header: %w", err)
	}
	for i, r := range rows {
		record := []string{fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", r.freq), r.term}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write zipf row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
