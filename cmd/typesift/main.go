/*
Package main implements the option filtering server and CLI [DBG] application.

Typesift ranks labeled options against an as-you-type query using normalized
text, subsequence scoring and a threshold heuristic tuned for typeahead
boxes. It can operate as a MessagePack IPC server for integration with
editors and pickers, or as a CLI application for testing and debugging.

Labels and queries are normalized the same way before scoring: case folded,
stripped of punctuation while keeping accented letters, and run through the
configured substitution rules in order.

# Usage

Start the server with an option set:

	typesift -options schools.toml

Use a custom config and enable debug mode:

	typesift -options schools.toml -config ./config.toml -d

Run in CLI mode for interactive testing:

	typesift -options schools.toml -c -limit 10 -scores

Option sets are TOML files with one [[options]] table per record, or msgpack
snapshots (.bin) exported by other tooling:

	[[options]]
	label = "Scoil Bhríde Primary School"
	value = "sb-01"

# Configuration

Runtime configuration is managed through a TOML file holding server
parameters, CLI defaults and the substitution rules applied during
normalization:

	[server]
	max_limit = 64
	min_query = 1
	max_query = 60

	[[rules]]
	pattern = "PH"
	replace = "F"

The config file is automatically created with defaults if it doesn't exist.
Rule order in the file is their application order; each rule's pattern is a
regular expression replaced globally over the output of the rules before it.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Filter requests
are processed synchronously with microsecond timing information included in
responses.

Send a filter request:

	{"id": "req1", "q": "waberg", "l": 20}

Receive ranked options:

	{"id": "req1", "s": [{"o": "Waberg High School", "v": "wab", "r": 1}], "c": 1, "t": 210}

Control requests allow runtime inspection and limit updates:

	{"id": "ctl1", "action": "get_info"}
	{"id": "ctl2", "action": "set_limits", "max_limit": 32}

# Filtering Engine

The core scoring lives in the match package and is pure and stateless; the
index package fronts it with a patricia trie over normalized labels so plain
prefix queries skip the scoring pass entirely.

	ix := index.New(rules)
	ix.AddAll(opts)
	ranked := ix.Filter("waberg", 24)

# Command Line Flags

The following flags control application behavior:

	-options string
	    Path to the option set file (.toml or .bin)
	-config string
	    Path to a custom config file
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of matches to return (default from config)
	-qmin int
	    Minimum query length
	-qmax int
	    Maximum query length
	-scores
	    Show similarity scores in CLI output
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/typesift/internal/cli"
	"github.com/bastiangx/typesift/internal/logger"
	"github.com/bastiangx/typesift/pkg/config"
	"github.com/bastiangx/typesift/pkg/index"
	"github.com/bastiangx/typesift/pkg/options"
	"github.com/bastiangx/typesift/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "typesift"
	gh      = "https://github.com/bastiangx/typesift"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	optionsPath := flag.String("options", "", "Path to the option set file (.toml or .bin)")
	configPath := flag.String("config", "", "Path to a custom config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of matches to return")
	minQuery := flag.Int("qmin", defaultConfig.Server.MinQuery, "Minimum query length (1 < n <= qmax)")
	maxQuery := flag.Int("qmax", defaultConfig.Server.MaxQuery, "Maximum query length")
	showScores := flag.Bool("scores", defaultConfig.CLI.ShowScores, "Show similarity scores next to each match (DBG only)")

	flag.Parse()

	if *showVersion {
		vlog := logger.Default("")

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		vlog.SetStyles(styles)

		vlog.Print("")
		vlog.Print("[ typesift ] Sifts labeled options as you type!")
		vlog.Print("", "version", Version)
		vlog.Print("")
		vlog.Print("use -h or --help to see available options")
		vlog.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activeConfigPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activeConfigPath))

	rules, err := appConfig.CompileRules()
	if err != nil {
		log.Fatalf("Failed to compile substitution rules: %v", err)
		os.Exit(1)
	}
	log.Debugf("Compiled %d substitution rule(s)", len(rules))

	ix := index.New(rules)
	if *optionsPath != "" {
		opts, err := options.LoadFile(*optionsPath)
		if err != nil {
			log.Fatalf("Failed to load option set: %v", err)
			os.Exit(1)
		}
		ix.AddAll(opts)
		log.Debugf("Loaded %d option(s) from %s", ix.Len(), *optionsPath)
	} else {
		log.Warn("No option set specified, running with an empty set...")
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minQuery", *minQuery,
			"maxQuery", *maxQuery,
			"limit", *limit,
			"showScores", *showScores)

		inputHandler := cli.NewInputHandler(ix, rules, *minQuery, *maxQuery, *limit, *showScores)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(ix, appConfig, activeConfigPath)

	showStartupInfo(ix.Len(), *optionsPath)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(optionCount int, optionsPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println(" typesift ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("options loaded: [ %d ]", optionCount)
	if optionsPath != "" {
		log.Infof("option set: ( %s )", optionsPath)
	}
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
