package segmenter

import (
	"github.com/teatak/phonseg/dictionary"
)

// Segmenter enumerates every way to read a phoneme sequence as an ordered
// sequence of dictionary words.
type Segmenter struct {
	Index *dictionary.Index
}

// NewSegmenter creates a segmenter over the given pronunciation index.
func NewSegmenter(idx *dictionary.Index) *Segmenter {
	return &Segmenter{Index: idx}
}

// Segment returns every word combination whose concatenated pronunciations
// reproduce the input exactly.
//
// The table entry for prefix length i holds all combinations decomposing
// input[:i]; entry 0 holds the single empty combination. A position where
// no dictionary segment ends carries the previous entry forward unchanged,
// so unmatched phonemes are silently skipped instead of failing the whole
// input. An empty input yields one empty combination.
//
// Output order is deterministic: segment start positions ascending, then
// bucket words in dictionary declaration order, then previously recorded
// combinations in order.
func (s *Segmenter) Segment(phonemes []string) [][]string {
	n := len(phonemes)
	table := make([][][]string, n+1)
	table[0] = [][]string{{}}

	// Segments longer than the longest pronunciation cannot match,
	// which bounds the lookback.
	maxLen := s.Index.MaxLen()

	for i := 1; i <= n; i++ {
		start := 0
		if maxLen > 0 && i > maxLen {
			start = i - maxLen
		}
		for j := start; j < i; j++ {
			words := s.Index.Lookup(phonemes[j:i])
			if len(words) == 0 {
				continue
			}
			for _, w := range words {
				for _, prev := range table[j] {
					combo := make([]string, len(prev)+1)
					copy(combo, prev)
					combo[len(prev)] = w
					table[i] = append(table[i], combo)
				}
			}
		}
		if len(table[i]) == 0 {
			table[i] = table[i-1]
		}
	}
	return table[n]
}
