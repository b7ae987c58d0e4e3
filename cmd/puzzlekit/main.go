// Copyright 2026 The PuzzleKit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the PuzzleKit word-puzzle solving tools.

PuzzleKit bundles two solvers. The default mode assists a five-letter
guessing game: it tracks which dictionary words are still consistent with the
feedback from each guess and recommends the next guess by a letter-frequency
heuristic weighted toward common words. Jumble mode unscrambles anagram-style
jumbled words against the dictionary.

# Usage

Run the interactive guessing-game assistant:

	puzzlekit

Run jumble mode:

	puzzlekit -j

Expose the solver as a msgpack IPC service over stdin/stdout:

	puzzlekit -ipc

The word list is a plain newline-separated file; the optional frequency file
is a msgpack table of word-commonality scores used to break ties toward real,
frequently-used words.

# Configuration

Runtime configuration is managed through a TOML file that supports solver
parameters, data file locations, and CLI defaults:

	[solver]
	word_length = 5
	max_guesses = 6
	recommendations = 5

	[data]
	words_file = "data/valid_words.txt"
	frequencies_file = "data/frequencies.bin"

The config file is automatically created with defaults if it doesn't exist.

# Command Line Flags

The following flags control application behavior:

	-j  Run jumble mode instead of the guessing-game assistant
	-ipc
	    Run the msgpack IPC server instead of the interactive loop
	-d  Enable debug mode with detailed logging
	-config string
	    Path to a config.toml (default: ~/.config/puzzlekit/config.toml)
	-words string
	    Word list file (overrides the config)
	-freq string
	    Frequency data file (overrides the config)
	-n int
	    Number of recommendations to show per round
	-scores
	    Show heuristic scores next to recommendations
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/ferrisbain/puzzlekit/internal/cli"
	"github.com/ferrisbain/puzzlekit/pkg/config"
	"github.com/ferrisbain/puzzlekit/pkg/dictionary"
	"github.com/ferrisbain/puzzlekit/pkg/freq"
	"github.com/ferrisbain/puzzlekit/pkg/jumble"
	"github.com/ferrisbain/puzzlekit/pkg/server"
	"github.com/ferrisbain/puzzlekit/pkg/solver"
)

const (
	Version = "0.3.0"
	AppName = "puzzlekit"
	gh      = "https://github.com/ferrisbain/puzzlekit"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config and data files together and hands control to the
// selected mode. It implements no solving logic itself.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	jumbleMode := flag.Bool("j", false, "Run jumble mode instead of the guessing-game assistant")
	ipcMode := flag.Bool("ipc", false, "Run the msgpack IPC server on stdin/stdout")
	configPath := flag.String("config", "", "Path to config.toml")
	wordsFile := flag.String("words", "", "Word list file (overrides config)")
	freqFile := flag.String("freq", "", "Frequency data file (overrides config)")
	recCount := flag.Int("n", defaults.Solver.Recommendations, "Number of recommendations to show per round")
	showScores := flag.Bool("scores", defaults.CLI.ShowScores, "Show heuristic scores next to recommendations")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.InfoLevel)
		log.SetReportTimestamp(false)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", activePath)
	}

	wordsPath := cfg.Data.WordsFile
	if *wordsFile != "" {
		wordsPath = *wordsFile
	}
	freqPath := cfg.Data.FrequenciesFile
	if *freqFile != "" {
		freqPath = *freqFile
	}

	oracle := loadOracle(freqPath)

	if *jumbleMode {
		words, err := dictionary.LoadWordList(wordsPath)
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		dict := jumble.NewDict(words)
		handler := cli.NewJumbleHandler(dict, oracle, cfg.CLI.JumbleRounds)
		if err := handler.Start(); err != nil {
			log.Fatalf("Jumble error: %v", err)
		}
		return
	}

	vocab, err := dictionary.LoadWordListLen(wordsPath, cfg.Solver.WordLength)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}
	log.Debugf("Vocabulary: %d words of length %d", len(vocab), cfg.Solver.WordLength)

	if *ipcMode {
		srv, err := server.NewServer(vocab, oracle)
		if err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	s, err := solver.New(vocab, oracle)
	if err != nil {
		log.Fatalf("Failed to build solver: %v", err)
	}
	handler := cli.NewGameHandler(s, cfg.Solver.MaxGuesses, *recCount, *showScores, cfg.CLI.Color)
	if err := handler.Start(); err != nil {
		log.Fatalf("Solver error: %v", err)
	}
}

// loadOracle loads the frequency file, falling back to an empty oracle so the
// solvers still run (letter frequency alone) when the data file is missing.
func loadOracle(path string) *freq.Oracle {
	oracle, err := freq.LoadOracle(path)
	if err != nil {
		log.Warnf("Frequency data unavailable (%v); ranking by letter frequency only", err)
		return freq.NewOracle(nil)
	}
	log.Debugf("Frequency oracle: %d words", oracle.Len())
	return oracle
}

// printVersion displays the version banner with the styled logger.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("[ PuzzleKit ] Word-puzzle solving tools")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
