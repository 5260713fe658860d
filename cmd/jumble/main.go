package main

import (
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/thomasdavis/jumble/internal/config"
	"github.com/thomasdavis/jumble/internal/dict"
	"github.com/thomasdavis/jumble/internal/solver"
	"github.com/thomasdavis/jumble/internal/storage"
	"github.com/thomasdavis/jumble/internal/tui"
	"github.com/thomasdavis/jumble/pkg/scrabble"
)

var (
	// Persistent flags
	configFile string
	dictFile   string
	seed       int64

	// Flags for the root (solve) command
	worstFirst bool

	// Flags for history command
	historyCount int
	historyBest  bool

	// Flags for lookup command
	lookupCount int
)

var rootCmd = &cobra.Command{
	Use:   "jumble [LETTERS]",
	Short: "Find dictionary words hidden in a jumble of letters",
	Long: `Finds dictionary words that can be spelled from a pool of letters and
ranks them by Scrabble score.

With no argument a random 6-letter jumble is drawn from an English
letter-frequency distribution.

Examples:
  jumble               # Solve a random jumble
  jumble tarps         # Solve the letters "tarps"
  jumble play          # Interactive solver
  jumble history -n 5  # Last five solves`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(cmd, args)
	},
}

var playCmd = &cobra.Command{
	Use:   "play [LETTERS]",
	Short: "Solve jumbles interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}
		return runPlay(cmd, arg)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past solves",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistory()
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup PATTERN",
	Short: "Fuzzy-search the dictionary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(args[0])
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score WORD...",
	Short: "Show the Scrabble score of one or more words",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, word := range args {
			fmt.Printf("%s (score: %d)\n", word, scrabble.Score(word))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (default ~/.config/jumble/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dictFile, "dict", "d", "", "Path to a newline-delimited word list")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for jumble generation (default: current time)")

	rootCmd.Flags().BoolVar(&worstFirst, "worst-first", false, "Print lowest scores first so the best word really lands at the bottom")

	historyCmd.Flags().IntVarP(&historyCount, "count", "n", 10, "Number of solves to show")
	historyCmd.Flags().BoolVar(&historyBest, "best", false, "Order by best score instead of recency")

	lookupCmd.Flags().IntVarP(&lookupCount, "count", "n", 10, "Number of matches to show")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(scoreCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		return config.Default()
	}
	if dictFile != "" {
		cfg.Dictionary.Paths = append([]string{dictFile}, cfg.Dictionary.Paths...)
	}
	return cfg
}

func loadWords(cfg config.Config) ([]string, error) {
	words, err := dict.Load(cfg.DictOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return words, nil
}

// newGenerator honors the --seed flag; without it each run gets a fresh
// time-based seed.
func newGenerator(cmd *cobra.Command) *scrabble.Generator {
	if cmd.Flags().Changed("seed") {
		return scrabble.NewGenerator(rand.New(rand.NewSource(seed)))
	}
	return scrabble.NewGenerator(nil)
}

// truncate bounds a user-supplied jumble the way the loader bounds words.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	words, err := loadWords(cfg)
	if err != nil {
		return err
	}

	// An explicit argument is the jumble, even when empty: an empty
	// pool is a valid (if trivial) solve, not a request for a random one.
	var jumble string
	if len(args) > 0 {
		jumble = truncate(args[0], cfg.Jumble.MaxLength)
	} else {
		jumble = newGenerator(cmd).Jumble(cfg.Jumble.Length)
	}

	matches := solver.New(words, cfg.Solver.MatchLimit).Solve(jumble)

	fmt.Printf("Jumble: %s\n", jumble)
	fmt.Println()
	fmt.Println("Best words (highest scoring at bottom):")

	// Matches arrive sorted by descending score. The header has always
	// promised the opposite order; --worst-first delivers it while the
	// default preserves the historical output.
	if worstFirst {
		for i := len(matches) - 1; i >= 0; i-- {
			fmt.Printf("%s (score: %d)\n", matches[i].Word, matches[i].Score)
		}
	} else {
		for _, m := range matches {
			fmt.Printf("%s (score: %d)\n", m.Word, m.Score)
		}
	}

	recordSolve(jumble, matches)
	return nil
}

// recordSolve appends to history. History is best-effort: a broken
// store must never fail a solve.
func recordSolve(jumble string, matches []solver.Match) {
	store, err := storage.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	bestWord, bestScore := "", 0
	if len(matches) > 0 {
		bestWord, bestScore = matches[0].Word, matches[0].Score
	}
	if err := store.RecordSolve(jumble, len(matches), bestWord, bestScore); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record solve: %v\n", err)
	}
}

func runPlay(cmd *cobra.Command, arg string) error {
	cfg := loadConfig()

	words, err := loadWords(cfg)
	if err != nil {
		return err
	}

	store, err := storage.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	jumble := truncate(arg, cfg.Jumble.MaxLength)
	model := tui.New(
		solver.New(words, cfg.Solver.MatchLimit),
		newGenerator(cmd),
		store,
		jumble,
		cfg.Jumble.Length,
		cfg.Jumble.MaxLength,
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runHistory() error {
	store, err := storage.New()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	var solves []storage.Solve
	if historyBest {
		solves, err = store.TopSolves(historyCount)
	} else {
		solves, err = store.RecentSolves(historyCount)
	}
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	for _, sv := range solves {
		best := "-"
		if sv.BestWord != "" {
			best = fmt.Sprintf("%s (score: %d)", sv.BestWord, sv.BestScore)
		}
		fmt.Printf("%s  %-20s %3d matches  best: %s\n",
			sv.Timestamp.Format("2006-01-02 15:04"), sv.Jumble, sv.Matches, best)
	}
	return nil
}

func runLookup(pattern string) error {
	cfg := loadConfig()

	words, err := loadWords(cfg)
	if err != nil {
		return err
	}

	matches := solver.New(words, cfg.Solver.MatchLimit).Lookup(pattern, lookupCount)
	if len(matches) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for _, m := range matches {
		fmt.Printf("%s (score: %d)\n", m.Word, m.Score)
	}
	return nil
}
