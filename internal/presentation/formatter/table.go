package formatter

import (
	"fmt"
	"strings"

	"github.com/perfwatch/quicktrace/internal/util"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{
			"Event ID", "Type", "Transaction", "Project", "Duration", "Errors",
		},
	}
}

func (f *TableFormatter) Format(rows []EventRow) error {
	widths := f.calculateColumnWidths(rows)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")

	totalErrors := 0
	var totalDuration float64
	for _, row := range rows {
		f.printRow(f.rowValues(row), widths)
		totalErrors += row.ErrorCount
		totalDuration += row.DurationMs
	}

	f.printBorder(widths, "middle")
	f.printRow(f.totalValues(len(rows), totalDuration, totalErrors), widths)
	f.printBorder(widths, "bottom")

	return nil
}

func (f *TableFormatter) rowValues(row EventRow) []string {
	return []string{
		shortID(row.EventID),
		row.Type,
		util.Truncate(row.Transaction, 40),
		row.Project,
		util.FormatDurationMs(row.DurationMs, 2, true),
		fmt.Sprintf("%d", row.ErrorCount),
	}
}

func (f *TableFormatter) totalValues(count int, duration float64, errors int) []string {
	return []string{
		"Total",
		fmt.Sprintf("%d events", count),
		"",
		"",
		util.FormatDurationMs(duration, 2, true),
		fmt.Sprintf("%d", errors),
	}
}

// calculateColumnWidths determines optimal width for each column based on content
func (f *TableFormatter) calculateColumnWidths(rows []EventRow) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = len(header)
	}

	totalErrors := 0
	var totalDuration float64
	for _, row := range rows {
		for i, value := range f.rowValues(row) {
			if len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
		totalErrors += row.ErrorCount
		totalDuration += row.DurationMs
	}

	for i, value := range f.totalValues(len(rows), totalDuration, totalErrors) {
		if len(value) > widths[i] {
			widths[i] = len(value)
		}
	}

	// Minimum widths for readability
	for i := range widths {
		if widths[i] < 6 {
			widths[i] = 6
		}
	}

	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right, separator string

	switch borderType {
	case "top":
		left, middle, right, separator = "┌", "┬", "┐", "─"
	case "middle":
		left, middle, right, separator = "├", "┼", "┤", "─"
	case "bottom":
		left, middle, right, separator = "└", "┴", "┘", "─"
	}

	fmt.Print(left)
	for i, width := range widths {
		fmt.Print(strings.Repeat(separator, width+2))
		if i < len(widths)-1 {
			fmt.Print(middle)
		}
	}
	fmt.Println(right)
}

// printRow prints a data row with proper alignment
func (f *TableFormatter) printRow(values []string, widths []int) {
	fmt.Print("│")
	for i, value := range values {
		if i <= 3 {
			// Identifier and name columns are left-aligned
			fmt.Printf(" %-*s │", widths[i], value)
		} else {
			// Numeric columns are right-aligned
			fmt.Printf(" %*s │", widths[i], value)
		}
	}
	fmt.Println()
}

// shortID keeps event IDs readable in fixed-width columns.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
