package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vizkit/explorer"
	"github.com/vizkit/explorer/config"
)

func main() {
	var (
		moduleID = flag.String("module", "", "Module id to activate at startup (overrides EXPLORER_MODULE)")
		logLevel = flag.String("log-level", "", "Log level: debug|info|warn|error (overrides EXPLORER_LOG_LEVEL)")
		width    = flag.Int("width", 0, "Window width in pixels (overrides EXPLORER_WINDOW_WIDTH)")
		height   = flag.Int("height", 0, "Window height in pixels (overrides EXPLORER_WINDOW_HEIGHT)")
		tui      = flag.Bool("tui", false, "Terminal inspector instead of the GUI shell")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *moduleID != "" {
		cfg.Module = *moduleID
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *width > 0 {
		cfg.WindowWidth = *width
	}
	if *height > 0 {
		cfg.WindowHeight = *height
	}
	if *tui {
		cfg.TUI = true
	}

	log, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	reg := explorer.Builtins()

	if cfg.TUI {
		if err := runInteractive(reg, cfg, log); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runWindow(reg, cfg, log)
}
