package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/perfwatch/quicktrace/internal/analytics"
	"github.com/perfwatch/quicktrace/internal/core/model"
	"github.com/perfwatch/quicktrace/internal/data/parser"
	"github.com/perfwatch/quicktrace/internal/data/scanner"
	"github.com/perfwatch/quicktrace/internal/presentation/formatter"
	"github.com/perfwatch/quicktrace/internal/presentation/interaction"
	"github.com/perfwatch/quicktrace/internal/store"
	"github.com/perfwatch/quicktrace/internal/update"
	"github.com/perfwatch/quicktrace/internal/util"
)

// Version is stamped at build time.
var Version = "dev"

var (
	// Logging related
	debug bool

	// Data input
	dataDir   string
	inputFile string

	// Output related
	outputFormat string
	sortField    string
	sortOrder    string
	limit        int
	quiet        bool

	rootCmd = &cobra.Command{
		Use:   "quicktrace [flags]",
		Short: "Trace navigation tool for monitoring event exports",
		Long: `quicktrace renders exported error/performance monitoring data in the
terminal: event tables, release artifacts, breadcrumb trails, and the
quick-trace strip around a single event.

Examples:
  quicktrace --dir ./exports                       # List events from all payloads
  quicktrace --file trace.json --output json       # One payload, JSON output
  quicktrace --sort duration --order desc          # Slowest events first
  quicktrace trace 4f2a... --payload trace.json    # Quick trace around an event
  quicktrace artifacts --file artifacts.json       # Release artifact listing`,
		RunE: runEvents,
	}
)

const (
	defaultLogFile  = "~/.quicktrace/logs/app.log"
	defaultStateDir = "~/.quicktrace/state"
	defaultDataDir  = "."
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", defaultDataDir,
		"Directory containing exported payload files")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"Suppress update notifications")

	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "",
		"Single payload file (.json trace document or .jsonl event stream)")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.Flags().StringVar(&sortField, "sort", "time",
		"Sort field (time, duration, errors)")
	rootCmd.Flags().StringVar(&sortOrder, "order", "desc",
		"Sort order (asc, desc)")
	rootCmd.Flags().IntVar(&limit, "limit", 0,
		"Limit result count (0 = unlimited)")
}

func runEvents(cmd *cobra.Command, args []string) error {
	initLogging()

	events, err := loadEvents()
	if err != nil {
		return err
	}

	sorter := interaction.NewEventSorter()
	field, err := interaction.ParseSortField(sortField)
	if err != nil {
		return err
	}
	order, err := interaction.ParseSortOrder(sortOrder)
	if err != nil {
		return err
	}
	sorter.SetField(field)
	sorter.SetOrder(order)
	sorter.Sort(events)

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}

	rows := formatter.RowsFromEvents(events)
	if err := formatRows(rows); err != nil {
		return err
	}

	maybeNotifyUpdate()
	return nil
}

func formatRows(rows []formatter.EventRow) error {
	switch outputFormat {
	case "table":
		return formatter.NewTableFormatter().Format(rows)
	case "json":
		return formatter.NewJSONFormatter().Format(rows)
	case "csv":
		return formatter.NewCSVFormatter().Format(rows)
	case "summary":
		return formatter.NewSummaryFormatter().Format(rows)
	default:
		return fmt.Errorf("unknown output format %q (expected table, json, csv, summary)", outputFormat)
	}
}

// loadEvents gathers events from --file, or from every payload under
// --dir when no single file is given.
func loadEvents() ([]model.Event, error) {
	p := parser.NewParser()

	if inputFile != "" {
		return loadEventsFromFile(p, expandPath(inputFile))
	}

	files, err := scanner.NewFileScanner(expandPath(dataDir)).Scan()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no payload files found under %s", dataDir)
	}

	var events []model.Event
	for _, file := range files {
		loaded, err := loadEventsFromFile(p, file)
		if err != nil {
			util.LogWarnf("Skipping %s: %v", file, err)
			continue
		}
		events = append(events, loaded...)
	}
	return events, nil
}

func loadEventsFromFile(p *parser.Parser, path string) ([]model.Event, error) {
	if strings.HasSuffix(strings.ToLower(path), ".jsonl") {
		return p.ParseEventsFile(path)
	}
	payload, err := p.ParseTraceFile(path)
	if err != nil {
		return nil, err
	}
	return payload.Events, nil
}

// maybeNotifyUpdate runs the prompt round trip after the main output.
// Any failure stays silent.
func maybeNotifyUpdate() {
	if quiet {
		return
	}

	st, err := openStateStore()
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	checker := update.NewChecker(Version, st, analytics.Nop())
	if prompt := checker.Check(ctx); prompt != nil {
		fmt.Fprintf(os.Stderr, "\nA new quicktrace release is available: %s (%s)\n",
			prompt.Version, prompt.URL)
	}
}

func openStateStore() (store.Store, error) {
	return store.NewFileStore(expandPath(defaultStateDir))
}

func initLogging() {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
