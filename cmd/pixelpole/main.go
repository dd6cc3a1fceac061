// pixelpole is a visual cart-pole environment: the classic control problem
// observed through a procedurally recolored 64x64 rendering instead of the
// raw state vector.
//
// Usage:
//
//	pixelpole play                 - Balance the pole interactively
//	pixelpole rollout              - Run headless episodes under a policy
//	pixelpole episodes             - Show recorded episode outcomes
//	pixelpole export               - Dump observation frames to PNG
//	pixelpole serve                - Stream frames to a browser
//
// Global flags:
//
//	--levels <n>        - 0 = random seed every episode, else fixed seeding
//	--start-level <s>   - Seed used when --levels is non-zero
//	--config <path>     - Custom environment config YAML
//	--db <path>         - Episode database (default: ~/.pixelpole/episodes.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndmitriev/pixelpole/internal/config"
)

var (
	// Global flags
	flagLevels     uint
	flagStartLevel int32
	flagConfig     string
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelpole",
	Short: "Visual cart-pole - balance a pole you can only see",
	Long: `pixelpole simulates the classic cart-pole control problem and exposes
its rendered image as the observable state. Every episode re-rolls the
scene colors from a seed, so agents must read the picture, not memorize
the palette.

Examples:
  pixelpole play
  pixelpole play --levels 1 --start-level 7
  pixelpole rollout --episodes 100 --policy random
  pixelpole episodes --longest
  pixelpole export --levels 1 --start-level 7 --out frames/
  pixelpole serve --addr :8080`,
}

func init() {
	rootCmd.PersistentFlags().UintVar(&flagLevels, "levels", 0, "0 = fresh random seed each episode, any other value = fixed seeding")
	rootCmd.PersistentFlags().Int32Var(&flagStartLevel, "start-level", 0, "Seed used when --levels is non-zero")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom environment config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pixelpole/episodes.db", "Path to episode database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rolloutCmd)
	rootCmd.AddCommand(episodesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the environment configuration from the config file
// search path, then applies the seeding flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("levels") {
		cfg.Seeding.NumLevels = flagLevels
	}
	if cmd.Flags().Changed("start-level") {
		cfg.Seeding.StartLevel = flagStartLevel
	}
	return cfg, nil
}
