// match3 plays tile-matching puzzles in the terminal.
//
// Usage:
//
//	match3 list              - List available games
//	match3 play <game>       - Play a game
//	match3 menu              - Start menu to pick games interactively
//	match3 serve             - Start SSH server for remote play
//	match3 scores [game]     - Show high scores
//	match3 sim <game>        - Run headless random games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--config <path>     - Load board settings from a YAML file
//	--size <preset>     - Board size: small, classic, large
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/config"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/games/tiles"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSize     string
	flagLogLevel string
	flagLogFile  string
)

var (
	tilesConfig config.TilesConfig
	sizePreset  config.SizePreset
	logger      *log.Logger
	logFile     *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 and merge-3 puzzles in your terminal",
	Long: `match3 plays tile-matching puzzles directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run headless random games and check the board

Examples:
  match3 list
  match3 play match3
  match3 play merge3 --size large
  match3 menu
  match3 serve --ssh :2222
  match3 sim merge3 --games 100 --swaps 50`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tiles config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSize, "size", "", "Board size preset: small, classic, large")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup loads configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	// Full-screen commands must not write to the terminal they draw on.
	var out io.Writer = os.Stderr
	if cmd.Name() == "play" || cmd.Name() == "menu" {
		out = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}
	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "match3",
	})

	sizePreset, err = config.ParseSizePreset(flagSize)
	if err != nil {
		return err
	}
	if flagSize == "" {
		sizePreset = ""
	}

	tilesConfig, err = config.LoadTiles(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		"match", fmt.Sprintf("%dx%d", tilesConfig.Match.Rows, tilesConfig.Match.Cols),
		"merge", fmt.Sprintf("%dx%d", tilesConfig.Merge.Rows, tilesConfig.Merge.Cols),
	)

	tiles.SetDefaultConfig(tilesConfig)
	tiles.SetLogger(logger)
	return nil
}
