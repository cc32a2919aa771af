package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []Entry {
	return []Entry{
		{Word: "ABACUS", Phonemes: []string{"AE", "B", "AH", "K", "AH", "S"}},
		{Word: "BOOK", Phonemes: []string{"B", "UH", "K"}},
		{Word: "THEIR", Phonemes: []string{"DH", "EH", "R"}},
		{Word: "THERE", Phonemes: []string{"DH", "EH", "R"}},
		{Word: "TOMATO", Phonemes: []string{"T", "AH", "M", "AA", "T", "OW"}},
		{Word: "TOMATO", Phonemes: []string{"T", "AH", "M", "EY", "T", "OW"}},
	}
}

func TestBuildIndex(t *testing.T) {
	idx, err := BuildIndex(sampleEntries())
	require.NoError(t, err)

	assert.Equal(t, 6, idx.Len())
	assert.Equal(t, 6, idx.MaxLen())

	// Homophones share one bucket, in declaration order.
	assert.Equal(t, []string{"THEIR", "THERE"}, idx.Lookup([]string{"DH", "EH", "R"}))

	// Each pronunciation of a word is its own key.
	assert.Equal(t, []string{"TOMATO"}, idx.Lookup([]string{"T", "AH", "M", "AA", "T", "OW"}))
	assert.Equal(t, []string{"TOMATO"}, idx.Lookup([]string{"T", "AH", "M", "EY", "T", "OW"}))
}

func TestIndexLookupExactMatchOnly(t *testing.T) {
	idx, err := BuildIndex(sampleEntries())
	require.NoError(t, err)

	assert.Nil(t, idx.Lookup([]string{"DH", "EH"}), "prefix must not match")
	assert.Nil(t, idx.Lookup([]string{"DH", "EH", "R", "DH"}), "superset must not match")
	assert.Nil(t, idx.Lookup([]string{"ZZ"}))
	assert.Nil(t, idx.Lookup(nil))
}

func TestIndexKeyBoundaries(t *testing.T) {
	// "AB C" and "A BC" must be distinct keys even though the concatenated
	// symbol text is identical.
	idx, err := BuildIndex([]Entry{
		{Word: "X", Phonemes: []string{"AB", "C"}},
		{Word: "Y", Phonemes: []string{"A", "BC"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"X"}, idx.Lookup([]string{"AB", "C"}))
	assert.Equal(t, []string{"Y"}, idx.Lookup([]string{"A", "BC"}))
}

func TestBuildIndexRejectsEmptyPronunciation(t *testing.T) {
	_, err := BuildIndex([]Entry{
		{Word: "BOOK", Phonemes: []string{"B", "UH", "K"}},
		{Word: "SILENT", Phonemes: nil},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SILENT")
}

func TestBuildIndexPreservesDuplicateEntries(t *testing.T) {
	idx, err := BuildIndex([]Entry{
		{Word: "BOOK", Phonemes: []string{"B", "UH", "K"}},
		{Word: "BOOK", Phonemes: []string{"B", "UH", "K"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"BOOK", "BOOK"}, idx.Lookup([]string{"B", "UH", "K"}))
}

func TestLoadFile(t *testing.T) {
	content := "# sample dictionary\n" +
		"THEIR DH EH R\n" +
		"THERE DH EH R\n" +
		"\n" +
		"TOMATO T AH M AA T OW\n" +
		"TOMATO T AH M EY T OW\n"
	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	entries, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, entries, 4)
	assert.Equal(t, Entry{Word: "THEIR", Phonemes: []string{"DH", "EH", "R"}}, entries[0])
	assert.Equal(t, "TOMATO", entries[2].Word)
	assert.Equal(t, "TOMATO", entries[3].Word)
	assert.NotEqual(t, entries[2].Phonemes, entries[3].Phonemes)
}

func TestLoadFileWordWithoutPhonemes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte("BOOK B UH K\nSILENT\n"), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SILENT")
	assert.Contains(t, err.Error(), ":2")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
