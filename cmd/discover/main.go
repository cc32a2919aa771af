package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/teatak/phonseg/dictionary"
	"github.com/teatak/phonseg/optimizer"
	"github.com/teatak/phonseg/util"
)

func main() {
	inputPath := flag.String("input", "data/server_access.log", "Path to the logged phoneme inputs")
	outputPath := flag.String("output", "data/candidates.txt", "Path to save candidate pronunciations")
	dictPath := flag.String("dict", "data/dictionary.txt", "Dictionary path (known pronunciations are not reported)")
	threshold := flag.Int("threshold", 10, "Minimum frequency for an unmatched N-gram to be reported")
	maxGram := flag.Int("ngram", 6, "Maximum N-gram length in phonemes")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var entries []dictionary.Entry
	if util.FileExists(*dictPath) {
		var err error
		entries, err = dictionary.LoadFile(*dictPath)
		if err != nil {
			logger.Error("load dictionary", "path", *dictPath, "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("dictionary not found, reporting all frequent n-grams", "path", *dictPath)
	}
	idx, err := dictionary.BuildIndex(entries)
	if err != nil {
		logger.Error("build index", "error", err)
		os.Exit(1)
	}

	logger.Info("scanning inputs", "path", *inputPath, "ngram", *maxGram, "threshold", *threshold)
	if err := optimizer.Discover(*inputPath, *outputPath, *threshold, *maxGram, idx); err != nil {
		logger.Error("discover failed", "error", err)
		os.Exit(1)
	}
	logger.Info("done", "output", *outputPath)
}
