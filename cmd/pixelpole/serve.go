package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ndmitriev/pixelpole/internal/platform/web"
)

var (
	flagServeAddr string
	flagServeFPS  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Stream observation frames to a browser",
	Long: `Start an HTTP server with a live canvas view of the environment.
Each connected client gets its own environment instance driven by a
random policy; episodes reset automatically on termination.

Examples:
  pixelpole serve
  pixelpole serve --addr :9000 --fps 25
  pixelpole serve --levels 1 --start-level 7`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().IntVar(&flagServeFPS, "fps", 50, "Frames pushed per second")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server := web.NewServer(cfg, flagServeAddr, flagServeFPS, log.Default())
	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
