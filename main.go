package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"peakline/internal/config"
	"peakline/internal/logging"
	"peakline/internal/score"
	"peakline/internal/service"
	"peakline/internal/store"
	"peakline/internal/tui"
)

const version = "0.3.1"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	importPath := flag.String("import", "", "import activities from a JSON export file")
	var gpxPaths stringList
	flag.Var(&gpxPaths, "gpx", "import a GPX track file (repeatable)")
	recompute := flag.Bool("recompute", false, "rescore all activities and append a rating snapshot")
	writeTuning := flag.Bool("write-tuning", false, "write an example tuning file and exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("peakline %s\n", version)
		return nil
	}

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("Then import some runs:")
		fmt.Println("  peakline -import export.json")
		fmt.Println("  peakline -gpx morning-run.gpx")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	configDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	if *writeTuning {
		if err := config.WriteExampleTuning(cfg.Tuning.Path); err != nil {
			return fmt.Errorf("writing tuning file: %w", err)
		}
		fmt.Println("Wrote example tuning file. Edit it to adjust the scoring model.")
		return nil
	}

	// Engine tuning; an invalid file is a hard error, silent fallback
	// to defaults would make every score quietly wrong.
	tuning, err := config.LoadTuning(cfg.Tuning.Path)
	if err != nil {
		return fmt.Errorf("loading tuning: %w", err)
	}

	logger, syncLogs, err := logging.New(configDir, *debug)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer syncLogs()

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	scoreSvc := service.NewScoreService(db, tuning, logger)
	querySvc := service.NewQueryService(db, tuning)

	imported := false

	if *importPath != "" {
		n, skipped, err := scoreSvc.ImportExport(*importPath)
		if err != nil {
			return fmt.Errorf("importing %s: %w", *importPath, err)
		}
		fmt.Printf("Imported %d activities from %s (%d skipped)\n", n, *importPath, skipped)
		imported = true
	}

	if len(gpxPaths) > 0 {
		n, skipped, err := scoreSvc.ImportGPX(gpxPaths)
		if err != nil {
			return fmt.Errorf("importing gpx files: %w", err)
		}
		fmt.Printf("Imported %d GPX activities (%d skipped)\n", n, skipped)
		imported = true
	}

	// A fresh import invalidates the stored scores, so recompute then too.
	if *recompute || imported {
		rating, level, err := scoreSvc.Recompute()
		if errors.Is(err, score.ErrInsufficientData) {
			fmt.Println("No scoreable activities yet; nothing to rate.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("recomputing rating: %w", err)
		}
		fmt.Printf("Overall rating: %.0f (%s), based on your best %d activities\n",
			rating.Rating, level, rating.SampleCount)

		// Imports and recomputes are batch operations; skip the TUI.
		return nil
	}

	// Launch TUI
	units := tui.NewUnits(cfg.Display)
	app := tui.NewApp(db, querySvc, units)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// stringList collects repeated flag values
type stringList []string

func (s *stringList) String() string {
	return fmt.Sprint([]string(*s))
}

func (s *stringList) Set(value string) error {
	if _, err := os.Stat(value); err != nil {
		return err
	}
	*s = append(*s, value)
	return nil
}
