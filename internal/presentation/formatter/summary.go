package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/perfwatch/quicktrace/internal/util"
)

// SummaryFormatter is responsible for formatting and outputting summary reports.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format formats and outputs the summary information of an event list.
func (f *SummaryFormatter) Format(rows []EventRow) error {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Trace Events Summary Report")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	if len(rows) == 0 {
		fmt.Println("No events to summarize")
		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		return nil
	}

	transactions := 0
	errorEvents := 0
	attachedErrors := 0
	var totalDuration, slowest float64
	slowestName := ""
	projects := make(map[string]int)

	for _, row := range rows {
		switch row.Type {
		case "transaction":
			transactions++
		case "error":
			errorEvents++
		}
		attachedErrors += row.ErrorCount
		totalDuration += row.DurationMs
		if row.DurationMs > slowest {
			slowest = row.DurationMs
			slowestName = row.Transaction
		}
		projects[row.Project]++
	}

	fmt.Println("Event Breakdown:")
	fmt.Printf("  Transactions: %s\n", util.FormatNumber(transactions))
	fmt.Printf("  Error Events: %s\n", util.FormatNumber(errorEvents))
	fmt.Printf("  Attached Errors: %s\n", util.FormatNumber(attachedErrors))
	fmt.Println()

	fmt.Println("Duration Breakdown:")
	fmt.Printf("  Combined: %s\n", util.FormatDurationMs(totalDuration, 2, false))
	if slowestName != "" {
		fmt.Printf("  Slowest: %s (%s)\n", slowestName, util.FormatDurationMs(slowest, 2, true))
	}
	fmt.Println()

	if len(projects) > 0 {
		fmt.Println("Projects:")
		fmt.Println(strings.Repeat("-", 60))

		var names []string
		for project := range projects {
			names = append(names, project)
		}
		sort.Strings(names)

		for _, project := range names {
			fmt.Printf("  %-30s %s\n", project, util.Pluralize(projects[project], "event", "events"))
		}
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))

	return nil
}
