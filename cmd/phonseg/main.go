package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/teatak/phonseg/dictionary"
	"github.com/teatak/phonseg/segmenter"
	"github.com/teatak/phonseg/util"
)

func main() {
	dictPath := flag.String("dict", "data/dictionary.txt", "Path to pronunciation dictionary file")
	flag.Parse()

	if !util.FileExists(*dictPath) {
		fmt.Fprintf(os.Stderr, "Error: dictionary file not found at %s\n", *dictPath)
		os.Exit(1)
	}
	entries, err := dictionary.LoadFile(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dictionary: %v\n", err)
		os.Exit(1)
	}
	idx, err := dictionary.BuildIndex(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building index: %v\n", err)
		os.Exit(1)
	}
	seg := segmenter.NewSegmenter(idx)

	// If args provided (non-flag args), treat them as one phoneme sequence
	args := flag.Args()
	if len(args) > 0 {
		warnOddTokens(args)
		printCombinations(seg.Segment(args))
		return
	}

	// Otherwise interactive mode
	fmt.Println("Enter a phoneme sequence, symbols separated by spaces (Ctrl+D to exit):")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		phonemes := util.SplitSequence(scanner.Text())
		if len(phonemes) == 0 {
			continue
		}
		printCombinations(seg.Segment(phonemes))
	}
}

// Any token is accepted as input, but a symbol that doesn't look like a
// phoneme is usually a typo, so point it out. It still gets processed and
// simply never matches.
func warnOddTokens(phonemes []string) {
	for _, p := range phonemes {
		if !util.IsPhonemeToken(p) {
			fmt.Fprintf(os.Stderr, "Warning: %q does not look like a phoneme symbol\n", p)
		}
	}
}

func printCombinations(combos [][]string) {
	for _, combo := range combos {
		fmt.Println(strings.Join(combo, " "))
	}
}
