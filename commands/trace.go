package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/perfwatch/quicktrace/internal/analytics"
	"github.com/perfwatch/quicktrace/internal/data/parser"
	"github.com/perfwatch/quicktrace/internal/data/watcher"
	"github.com/perfwatch/quicktrace/internal/presentation/display"
	"github.com/perfwatch/quicktrace/internal/presentation/render"
	"github.com/perfwatch/quicktrace/internal/trace"
	"github.com/perfwatch/quicktrace/internal/util"
)

var (
	// Trace command flags
	tracePayload string
	traceOrg     string
	traceCap     int
	traceExpand  bool
	traceWatch   bool
	traceDismiss bool
)

var traceCmd = &cobra.Command{
	Use:   "trace <event-id>",
	Short: "Render the quick trace around one event",
	Long: `Renders the quick-trace strip for the given event: its root,
ancestors, parent, children and descendants, each collapsed into a
single link or a capped dropdown.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().StringVarP(&tracePayload, "payload", "p", "",
		"Trace payload document (required)")
	traceCmd.Flags().StringVar(&traceOrg, "org", "default",
		"Organization slug used in link targets")
	traceCmd.Flags().IntVar(&traceCap, "cap", trace.DefaultDropdownCap,
		"Dropdown item cap per category")
	traceCmd.Flags().BoolVarP(&traceExpand, "expand", "e", false,
		"Expand dropdown contents below the strip")
	traceCmd.Flags().BoolVarP(&traceWatch, "watch", "w", false,
		"Re-render when the payload file changes")
	traceCmd.Flags().BoolVar(&traceDismiss, "dismiss-missing-service", false,
		"Permanently dismiss the missing-service placeholder")
	traceCmd.MarkFlagRequired("payload")

	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	initLogging()

	currentID := args[0]
	path := expandPath(tracePayload)

	st, err := openStateStore()
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}

	sink := analytics.Sink(analytics.Nop())
	if debug {
		sink = analytics.NewLoggerSink(util.NewLogger("debug", "", true))
	}

	flag := trace.NewMissingServiceFlag(st, sink)
	if traceDismiss {
		flag.Dismiss()
	}

	p := parser.NewParser()
	renderer := render.NewRenderer()
	renderer.ShowDropdowns = traceExpand

	if !traceWatch {
		entries := assembleEntries(p, path, currentID, flag)
		fmt.Println(renderer.Render(entries))
		return nil
	}

	td := display.NewTerminalDisplay()
	td.EnterAlternateScreen()
	defer td.ExitAlternateScreen()

	renderOnce := func() {
		entries := assembleEntries(p, path, currentID, flag)
		td.Draw(renderer.Render(entries))
	}
	renderOnce()

	fw, err := watcher.NewFileWatcher([]string{path})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer fw.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case ev := <-fw.Events():
			util.LogDebugf("Payload changed (%s), re-rendering", ev.Operation)
			p.Forget(ev.Path)
			renderOnce()
		case <-sigCh:
			return nil
		}
	}
}

// assembleEntries maps every failure along the parse/partition path to
// the unknown marker; watch mode keeps running through bad
// intermediate states of the file.
func assembleEntries(p *parser.Parser, path, currentID string, flag *trace.MissingServiceFlag) []trace.Entry {
	reducer := trace.NewReducer(trace.PathResolver{Org: traceOrg}, "")
	reducer.Cap = traceCap
	assembler := trace.NewAssembler(reducer, flag)

	payload, err := p.ParseTraceFile(path)
	if err != nil {
		return assembler.AssembleFrom(nil, err)
	}
	reducer.TraceID = payload.TraceID

	buckets, err := trace.BuildBuckets(payload.Events, currentID)
	return assembler.AssembleFrom(buckets, err)
}
