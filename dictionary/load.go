package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads a flat pronunciation table.
// File format: one entry per line, word first, then its phoneme symbols,
// whitespace separated:
//
//	THEIR DH EH R
//	THERE DH EH R
//	TOMATO T AH M AA T OW
//
// Blank lines and lines starting with # are skipped. Duplicate lines are
// kept as distinct entries; BuildIndex decides what duplicates mean.
func LoadFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("dictionary: %s:%d: word %q has no phonemes", path, lineNo, fields[0])
		}
		entries = append(entries, Entry{Word: fields[0], Phonemes: fields[1:]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
