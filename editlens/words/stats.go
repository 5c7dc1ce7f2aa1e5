package words

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Stats accumulates word frequencies. It is an explicit accumulator value
// rather than package level state, so independent scans don't interfere
// with each other.
type Stats struct {
	counts map[string]int
	files  int
	total  int
}

// NewStats returns an empty accumulator.
func NewStats() *Stats {
	return &Stats{counts: make(map[string]int)}
}

// AddFile extracts the words of a single file's contents and adds them to
// the accumulated counts.
func (s *Stats) AddFile(text string) {
	words := Extract(text)
	for _, w := range words {
		s.counts[w]++
	}
	s.total += len(words)
	s.files++
}

// Files returns the number of files accumulated so far.
func (s *Stats) Files() int { return s.files }

// Total returns the total number of words counted, including repetitions.
func (s *Stats) Total() int { return s.total }

// Distinct returns the number of distinct words counted.
func (s *Stats) Distinct() int { return len(s.counts) }

// Percent returns count as a percentage of all counted words.
func (s *Stats) Percent(count int) float64 {
	if s.total == 0 {
		return 0
	}
	return float64(count) / float64(s.total) * 100
}

// Entry is a single word together with the number of times it was seen.
type Entry struct {
	Word  string
	Count int
}

// Top returns the n most frequent words, most frequent first. Words with
// equal counts are ordered alphabetically to keep the output stable. A
// negative n returns all words.
func (s *Stats) Top(n int) []Entry {
	entries := make([]Entry, 0, len(s.counts))
	for w, c := range s.counts {
		entries = append(entries, Entry{w, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// WriteCSV writes the accumulated frequencies as CSV with word, count and
// frequency columns, most frequent first.
func (s *Stats) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"word", "count", "frequency(%)"}); err != nil {
		return err
	}
	for _, e := range s.Top(-1) {
		rec := []string{e.Word, strconv.Itoa(e.Count), fmt.Sprintf("%.4f", s.Percent(e.Count))}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteWordList writes one word per line, most frequent first. This is the
// plain list format used to feed the words into other tools.
func (s *Stats) WriteWordList(w io.Writer) error {
	for _, e := range s.Top(-1) {
		if _, err := fmt.Fprintln(w, e.Word); err != nil {
			return err
		}
	}
	return nil
}
