package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/victorhydecode/swipetabs/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var replayPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/swipetabs/config.yml)")
	flag.StringVar(&replayPath, "replay", "", "gesture replay script to feed into the demo")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("swipetabs demo\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if replayPath != "" {
		cfg.Replay = replayPath
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig) error {
	if err := tui.InitializeTheme(cfg.Skin, configDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load skin %q: %v (using default)\n", cfg.Skin, err)
	}

	var script *replayScript
	if cfg.Replay != "" {
		var err error
		script, err = loadReplayScript(cfg.Replay)
		if err != nil {
			return err
		}
	}

	model := buildContainer(cfg)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	if script != nil {
		g.Go(func() error {
			return feedReplay(gctx.Done(), p, script)
		})
	}

	if err := g.Wait(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("the demo requires a real terminal")
		}
		return fmt.Errorf("running demo: %w", err)
	}
	return nil
}

// buildContainer assembles the demo page set: two swipeable tabs, a
// wrapped tab, and a stats chart fed by the container's own counters.
func buildContainer(cfg cliConfig) *tui.ContainerModel {
	var m *tui.ContainerModel

	home := tui.NewTextPage("home", "Home",
		"Drag left from the right half of the window to swipe to Feed.\n\n"+
			"Keys: tab/shift+tab switch, b toggles the bar, s toggles swiping, q quits.")
	feed := tui.NewTextPage("feed", "Feed",
		"Drag right from the left half to swipe back to Home.\n\n"+
			"Release past the midpoint, or flick, to commit; otherwise the swipe rolls back.")
	about := tui.NewNavWrapper("about-nav", "about",
		tui.NewTextPage("about", "About", "A swipeable tab container for the terminal."))
	stats := tui.NewStatsPage("stats", "Stats", func() (int, int) {
		if m == nil {
			return 0, 0
		}
		return m.Stats()
	})

	m = tui.NewContainerModel(tui.Options{
		SwipeEnabled:         cfg.SwipeEnabled,
		DiagonalSwipeEnabled: cfg.DiagonalSwipe,
		BarHeight:            cfg.BarHeight,
		FPS:                  cfg.AnimationFPS,
	}, home, feed, about, stats)

	return m
}
