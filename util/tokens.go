package util

import (
	"os"
	"strings"
)

// IsPhonemeToken checks if a string looks like a phoneme symbol:
// ASCII letters and digits only (ARPAbet style, e.g. "DH", "AH0").
func IsPhonemeToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isAlphaNum(r) {
			return false
		}
	}
	return true
}

func isAlphaNum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// SplitSequence splits a line of whitespace-separated phoneme symbols.
func SplitSequence(line string) []string {
	return strings.Fields(line)
}

// FileExists checks if a path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
