package optimizer

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/teatak/phonseg/dictionary"
)

// Discover scans a log of phoneme inputs (one space-separated sequence per
// line) and writes out the contiguous phoneme N-grams the index cannot
// match, with their counts, for counts >= threshold. The output is a
// candidate list for lexicographers: frequent unmatched runs are the
// pronunciations most worth adding to the dictionary.
//
// Output format: "P1 P2 ...\tcount", one N-gram per line.
func Discover(inputPath, outputPath string, threshold, maxGram int, idx *dictionary.Index) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	counts := make(map[string]int)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		n := len(tokens)
		if n < 2 {
			continue
		}

		for i := 0; i < n; i++ {
			for k := 2; k <= maxGram; k++ {
				if i+k > n {
					break
				}
				gram := tokens[i : i+k]
				if idx.Lookup(gram) != nil {
					continue
				}
				counts[strings.Join(gram, " ")]++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	writer := bufio.NewWriter(outFile)
	for gram, c := range counts {
		if c >= threshold {
			fmt.Fprintf(writer, "%s\t%d\n", gram, c)
		}
	}
	return writer.Flush()
}
