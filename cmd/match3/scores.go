package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Entemena/MATCH3PROTOTYPE/internal/registry"
	"github.com/Entemena/MATCH3PROTOTYPE/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for the specified game, or a summary of
every game when none is given.

Examples:
  match3 scores
  match3 scores match3
  match3 scores merge3
  match3 scores merge3 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores for the game")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func runScores(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runSummary()
	}
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'match3 list' to see available games)", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Scores for %s cleared.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Println(scoreTable(scores))

	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Printf("\nGames: %d  Best: %d  Avg: %.1f  Best level: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel)
	}
	return nil
}

func scoreTable(scores []storage.ScoreEntry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Cleared", "Swaps", "Level", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i, e := range scores {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Swaps),
			strconv.Itoa(e.MaxLevel),
			e.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return t.String()
}

// runSummary prints aggregate stats for every registered game.
func runSummary() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	all, err := store.AllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Game", "Games", "Best", "Avg", "Level", "Last played").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			t.Row(g.Title, "0", "-", "-", "-", "-")
			continue
		}
		t.Row(
			g.Title,
			strconv.Itoa(st.GamesCount),
			strconv.Itoa(st.HighScore),
			strconv.FormatFloat(st.AvgScore, 'f', 1, 64),
			strconv.Itoa(st.BestLevel),
			st.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.String())
	return nil
}
