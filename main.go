package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/blockfall/internal/game"
	"github.com/hersh/blockfall/internal/tui"
)

func main() {
	cfg, err := game.LoadConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	playerName := flag.String("name", "", "Player name (defaults to OS username)")
	seed := flag.Int64("seed", cfg.Seed, "Piece randomizer seed (0 picks one from the clock)")
	logPath := flag.String("log", os.Getenv("BLOCKFALL_LOG"), "Append debug logs to this file")
	flag.Parse()

	name := *playerName
	if name == "" {
		if u, err := user.Current(); err == nil && u.Username != "" {
			name = u.Username
		} else {
			name = "Player"
		}
	}

	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// The alt screen owns stdout, so logs go to a file or nowhere.
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "blockfall")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		tui.NewModel(name, cfg),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
