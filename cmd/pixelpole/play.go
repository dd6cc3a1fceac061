package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ndmitriev/pixelpole/internal/env"
	"github.com/ndmitriev/pixelpole/internal/platform/tui"
	"github.com/ndmitriev/pixelpole/internal/storage"
)

var flagPlayFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Balance the pole interactively",
	Long: `Run an interactive episode in the terminal. The observation frame is
drawn with half-block characters, two pixel rows per line.

Controls:
  Left/Right (or a/d)  - Push direction, held until changed
  R                    - Reset after the episode ends
  Q/Ctrl+C             - Quit

Terminated episodes are recorded to the episode database.

Examples:
  pixelpole play
  pixelpole play --levels 1 --start-level 7 --fps 25`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayFPS, "fps", 50, "Simulation ticks per second")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The half-block frame needs 64 columns by 32 rows plus the HUD.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < 64 || h < 35 {
			fmt.Fprintf(os.Stderr, "Terminal %dx%d too small; need at least 64x35.\n", w, h)
			os.Exit(1)
		}
	}

	e := env.New(cfg)
	defer e.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open episode database: %v\n", err)
		// Continue without storage - play still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(e, store, flagPlayFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		os.Exit(1)
	}
}
