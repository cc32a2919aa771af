package dictionary

import (
	"fmt"
	"strings"
)

// Entry is one pronunciation dictionary record: a word and its
// pronunciation as an ordered sequence of phoneme symbols.
// The same word may appear in several entries (alternate pronunciations),
// and different words may share one pronunciation (homophones).
type Entry struct {
	Word     string
	Phonemes []string
}

// keySep joins phoneme symbols into an index key. The unit separator
// never occurs in phoneme symbols, so joined keys cannot collide across
// different token boundaries.
const keySep = "\x1f"

// Index maps an exact phoneme sequence to the words pronounced that way.
// It is built once and read-only afterwards, so a single Index may be
// shared by any number of concurrent segmentation calls.
type Index struct {
	words  map[string][]string
	maxLen int
	size   int
}

// BuildIndex indexes the given entries by their exact pronunciation.
// Words within a bucket keep dictionary declaration order, and duplicate
// (word, phonemes) entries stay duplicated.
// An entry with an empty pronunciation is rejected: a zero-length key
// would match a zero-length segment at every input position.
func BuildIndex(entries []Entry) (*Index, error) {
	idx := &Index{words: make(map[string][]string, len(entries))}
	for _, e := range entries {
		if len(e.Phonemes) == 0 {
			return nil, fmt.Errorf("dictionary: entry %q has an empty pronunciation", e.Word)
		}
		k := key(e.Phonemes)
		idx.words[k] = append(idx.words[k], e.Word)
		if len(e.Phonemes) > idx.maxLen {
			idx.maxLen = len(e.Phonemes)
		}
		idx.size++
	}
	return idx, nil
}

// Lookup returns the words whose pronunciation is exactly segment, in
// dictionary declaration order, or nil when nothing matches. Matching is
// exact-boundary and exact-content; prefixes never match.
func (x *Index) Lookup(segment []string) []string {
	if len(segment) == 0 {
		return nil
	}
	return x.words[key(segment)]
}

// Len returns the number of entries indexed.
func (x *Index) Len() int { return x.size }

// MaxLen returns the length of the longest indexed pronunciation.
func (x *Index) MaxLen() int { return x.maxLen }

func key(phonemes []string) string {
	return strings.Join(phonemes, keySep)
}
