package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/hjkl/game"
	"github.com/ionut-t/hjkl/tui"
)

func main() {
	cfg := game.DefaultConfig()

	flag.StringVar(&cfg.FilePath, "file", "", "play on this .go file instead of a generated buffer")
	flag.Int64Var(&cfg.Seed, "seed", 0, "RNG seed, 0 seeds from the clock")
	flag.Parse()

	program := tea.NewProgram(tui.New(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hjkl: %v\n", err)
		os.Exit(1)
	}
}
