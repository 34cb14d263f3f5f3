package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanpaul/driftnotes/internal/config"
	"github.com/jeanpaul/driftnotes/internal/health"
	"github.com/jeanpaul/driftnotes/internal/note"
	"github.com/jeanpaul/driftnotes/internal/session"
	"github.com/jeanpaul/driftnotes/internal/store"
	"github.com/jeanpaul/driftnotes/internal/suggest"
	"github.com/jeanpaul/driftnotes/internal/transfer"
	"github.com/jeanpaul/driftnotes/internal/tui"
	"github.com/jeanpaul/driftnotes/internal/vault"
)

const version = "2.0.0"

func main() {
	dbFlag := flag.String("db", "", "Path to the notes database (overrides config)")
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Printf("driftnotes %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load config: %v", err)
	}
	if *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "export":
			if len(args) < 2 {
				fatal("usage: driftnotes export <file.json>")
			}
			cmdExport(cfg, args[1])
			return
		case "import":
			if len(args) < 2 {
				fatal("usage: driftnotes import <file.json>")
			}
			cmdImport(cfg, args[1])
			return
		case "clip":
			if len(args) < 2 {
				fatal("usage: driftnotes clip <file.html> [title]")
			}
			title := ""
			if len(args) > 2 {
				title = args[2]
			}
			cmdClip(cfg, args[1], title)
			return
		case "health":
			cmdHealth(cfg)
			return
		default:
			fatal("unknown command %q (try: export, import, clip, health)", args[0])
		}
	}

	runShell(cfg)
}

func runShell(cfg *config.Config) {
	st := store.NewFileStore(cfg.DBPath)
	db, err := st.Load()
	if err != nil {
		var cerr *store.CorruptStateError
		if errors.As(err, &cerr) {
			// Never overwrite unreadable state; leave the decision to
			// the user.
			fatal("%v\nFix or move the file and try again.", cerr)
		}
		fatal("Failed to load notes: %v", err)
	}

	gate := vault.NewGate(&db.Settings)
	sess := session.New(gate)

	var provider suggest.Provider
	var insights *suggest.GoogleProvider
	if cfg.AIConfigured() {
		insights = suggest.NewGoogle(cfg.GeminiAPIKey, cfg.Model, cfg.SuggestTimeout)
		provider = suggest.WithRetry(insights, cfg.MaxRetries)
	}

	m := tui.New(cfg, db, st, sess, provider, insights)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fatal("Shell error: %v", err)
	}
}

func cmdExport(cfg *config.Config, path string) {
	st := store.NewFileStore(cfg.DBPath)
	db, err := st.Load()
	if err != nil {
		fatal("Failed to load notes: %v", err)
	}
	data, err := transfer.Snapshot(db).Marshal()
	if err != nil {
		fatal("Export failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fatal("Export failed: %v", err)
	}
	fmt.Printf("Exported %d notes to %s\n", len(db.Notes), path)
}

func cmdImport(cfg *config.Config, path string) {
	st := store.NewFileStore(cfg.DBPath)
	db, err := st.Load()
	if err != nil {
		fatal("Failed to load notes: %v", err)
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		fatal("Import failed: %v", err)
	}
	count, err := transfer.Import(db, st, payload)
	if err != nil {
		fatal("Import failed: %v", err)
	}
	fmt.Printf("Imported %d notes!\n", count)
}

func cmdClip(cfg *config.Config, path, title string) {
	st := store.NewFileStore(cfg.DBPath)
	db, err := st.Load()
	if err != nil {
		fatal("Failed to load notes: %v", err)
	}
	html, err := os.ReadFile(path)
	if err != nil {
		fatal("Clip failed: %v", err)
	}
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	n, err := transfer.Clip(db, st, title, html)
	if err != nil {
		fatal("Clip failed: %v", err)
	}
	fmt.Printf("Clipped %q (%d words)\n", n.Title, note.WordCount(n.Content))
}

func cmdHealth(cfg *config.Config) {
	status := health.Check(context.Background(), cfg.GeminiAPIKey)
	if status.Reachable {
		fmt.Printf("AI Assistant: Active (%s)\n", status.Latency.Round(time.Millisecond))
		return
	}
	fmt.Printf("AI Assistant: Unavailable — %s\n", status.Error)
	os.Exit(1)
}

func showHelp() {
	fmt.Println(`driftnotes — a personal note vault with AI assistance

Usage:
  driftnotes [flags]                open the interactive shell
  driftnotes export <file.json>    export all notes
  driftnotes import <file.json>    merge notes from an export
  driftnotes clip <file.html> [title]   save an HTML page as a note
  driftnotes health                check the AI assistant

Flags:`)
	flag.PrintDefaults()
	fmt.Println(`
Configuration is read from config.yaml (., $XDG_CONFIG_HOME/driftnotes,
~/.config/driftnotes) and DRIFTNOTES_* environment variables. Set
GEMINI_API_KEY to enable AI suggestions.`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
