package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/vericheck/internal/api"
	"github.com/sadopc/vericheck/internal/app"
	"github.com/sadopc/vericheck/internal/config"
	"github.com/sadopc/vericheck/internal/core/histcache"
	"github.com/sadopc/vericheck/internal/logging"
	"github.com/sadopc/vericheck/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("vericheck %s (%s) built %s\n", version.Version, version.Commit, version.Date)
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `vericheck - Terminal dashboard for the VeriCheck scam-detection service

Usage:
  vericheck [flags]        Launch the dashboard
  vericheck version        Print version information
  vericheck help           Show this help message

Flags:
  --server <url>   VeriCheck server URL (default from config)
  --version        Print version and exit

Configuration is read from ~/.config/vericheck/config.yaml.
`)
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	serverFlag := flag.String("server", "", "VeriCheck server URL")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("vericheck %s (%s) built %s\n", version.Version, version.Commit, version.Date)
		os.Exit(0)
	}

	cfg := config.Load()
	if *serverFlag != "" {
		cfg.ServerURL = *serverFlag
	}

	dataDir := defaultDataDir()

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = filepath.Join(dataDir, "vericheck.log")
	}
	logger, err := logging.New(logPath)
	if err != nil {
		logger = logging.Nop()
	}
	defer logger.Sync()

	// A broken cache is not fatal: the dashboard just cold-starts.
	cache, err := histcache.NewStore(filepath.Join(dataDir, "history.db"))
	if err != nil {
		logger.Warn("history cache unavailable: " + err.Error())
		cache = nil
	} else {
		defer cache.Close()
	}

	client := api.New(cfg.ServerURL)
	client.SetTimeout(cfg.DefaultTimeout)

	model := app.New(cfg, client, cache, logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "vericheck")
}
