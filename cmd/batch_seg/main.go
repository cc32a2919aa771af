package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/teatak/phonseg/dictionary"
	"github.com/teatak/phonseg/segmenter"
	"github.com/teatak/phonseg/util"
)

func main() {
	inputPath := flag.String("input", "data/input.txt", "Input file, one phoneme sequence per line")
	outputPath := flag.String("output", "data/output.txt", "Output file, one result line per input line")
	dictPath := flag.String("dict", "data/dictionary.txt", "Dictionary path")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of concurrent workers")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	entries, err := dictionary.LoadFile(*dictPath)
	if err != nil {
		logger.Error("load dictionary", "path", *dictPath, "error", err)
		os.Exit(1)
	}
	idx, err := dictionary.BuildIndex(entries)
	if err != nil {
		logger.Error("build index", "error", err)
		os.Exit(1)
	}
	seg := segmenter.NewSegmenter(idx)
	logger.Info("dictionary loaded", "entries", idx.Len())

	inFile, err := os.Open(*inputPath)
	if err != nil {
		logger.Error("open input", "path", *inputPath, "error", err)
		os.Exit(1)
	}
	defer inFile.Close()

	var lines []string
	scanner := bufio.NewScanner(inFile)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Error("read input", "error", err)
		os.Exit(1)
	}

	// The index is read-only, so lines can be segmented independently.
	// Results are written back by line number to keep input order.
	results := make([]string, len(lines))
	var g errgroup.Group
	g.SetLimit(*workers)
	for i, line := range lines {
		g.Go(func() error {
			phonemes := util.SplitSequence(line)
			if len(phonemes) == 0 {
				return nil
			}
			results[i] = formatCombinations(seg.Segment(phonemes))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("segment", "error", err)
		os.Exit(1)
	}

	outFile, err := os.Create(*outputPath)
	if err != nil {
		logger.Error("create output", "path", *outputPath, "error", err)
		os.Exit(1)
	}
	defer outFile.Close()

	writer := bufio.NewWriter(outFile)
	for _, line := range results {
		fmt.Fprintln(writer, line)
	}
	if err := writer.Flush(); err != nil {
		logger.Error("write output", "error", err)
		os.Exit(1)
	}
	logger.Info("done", "lines", len(lines), "output", *outputPath)
}

func formatCombinations(combos [][]string) string {
	parts := make([]string, 0, len(combos))
	for _, combo := range combos {
		parts = append(parts, strings.Join(combo, " "))
	}
	return strings.Join(parts, " | ")
}
