package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndmitriev/pixelpole/internal/storage"
)

var (
	flagEpisodesLongest bool
	flagEpisodesSeed    int32
	flagEpisodesLimit   int
)

var episodesCmd = &cobra.Command{
	Use:   "episodes",
	Short: "Show recorded episode outcomes",
	Long: `Display episodes recorded by play and rollout.

Examples:
  pixelpole episodes
  pixelpole episodes --longest
  pixelpole episodes --seed 7`,
	Run: runEpisodes,
}

func init() {
	episodesCmd.Flags().BoolVar(&flagEpisodesLongest, "longest", false, "Sort by step count instead of recency")
	episodesCmd.Flags().Int32Var(&flagEpisodesSeed, "seed", 0, "Only episodes recorded for this seed")
	episodesCmd.Flags().IntVar(&flagEpisodesLimit, "limit", 10, "Maximum rows to show")
}

func runEpisodes(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening episode database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var entries []storage.EpisodeRecord
	switch {
	case cmd.Flags().Changed("seed"):
		entries, err = store.EpisodesBySeed(flagEpisodesSeed)
	case flagEpisodesLongest:
		entries, err = store.LongestEpisodes(flagEpisodesLimit)
	default:
		entries, err = store.RecentEpisodes(flagEpisodesLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving episodes: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No episodes recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pixelpole play' or 'pixelpole rollout' to record some.")
		return
	}

	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %-8s  %s\n", "Seed", "Steps", "Reward", "Cause", "Policy", "Date")
	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "------", "-----", "------", "----")
	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10d  %-6d  %-8.0f  %-8s  %-8s  %s\n", e.Seed, e.Steps, e.Reward, e.Cause, e.Policy, dateStr)
	}

	best, err := store.LongestRun()
	if err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Longest run: %d steps\n", best)
	}
}
