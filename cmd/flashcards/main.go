package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tinytelemetry/flashcards/internal/deck"
	"github.com/tinytelemetry/flashcards/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	flags := newFlagSet()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if v, _ := flags.GetBool("version"); v {
		fmt.Printf("Flashcards - Console Flashcard Utility\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	configPath, _ := flags.GetString("config")
	cfg, err := loadConfig(configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}

	printBanner()

	cards, err := deck.Load(cfg.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	picker, err := deck.NewPicker(cards)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (%s)\n", err, cfg.File)
		os.Exit(1)
	}

	if err := runLoop(picker, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Println("===================")
	fmt.Printf("Flashcards    %s\n", version)
	fmt.Println("===================")
	fmt.Println()
}

func runLoop(picker *deck.Picker, cfg appConfig) error {
	model := tui.NewModel(picker, cfg.File, cfg.Wait)

	// No alt screen: cards accumulate in normal scrollback.
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("flashcards requires a real terminal")
		}
		return fmt.Errorf("error running display loop: %w", err)
	}
	return nil
}
