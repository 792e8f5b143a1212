package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/perfwatch/quicktrace/internal/core/model"
	"github.com/perfwatch/quicktrace/internal/util"
)

// ArtifactFormatter renders release artifact rows (source maps,
// bundles, debug files) as a table sorted by name.
type ArtifactFormatter struct{}

func NewArtifactFormatter() *ArtifactFormatter {
	return &ArtifactFormatter{}
}

func (f *ArtifactFormatter) Format(artifacts []model.Artifact) error {
	sorted := make([]model.Artifact, len(artifacts))
	copy(sorted, artifacts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	headers := []string{"Name", "Dist", "Size", "Created"}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	rows := make([][]string, 0, len(sorted))
	var totalSize int64
	for _, a := range sorted {
		dist := a.Dist
		if dist == "" {
			dist = "none"
		}
		row := []string{
			util.Truncate(a.Name, 50),
			dist,
			util.FormatBytes(a.SizeBytes),
			a.DateCreated,
		}
		for i, value := range row {
			if len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
		rows = append(rows, row)
		totalSize += a.SizeBytes
	}

	totalRow := []string{
		util.Pluralize(len(rows), "artifact", "artifacts"), "",
		util.FormatBytes(totalSize), "",
	}
	for i, value := range totalRow {
		if len(value) > widths[i] {
			widths[i] = len(value)
		}
	}

	printLine := func(values []string) {
		fmt.Print("│")
		for i, value := range values {
			if i == 2 {
				fmt.Printf(" %*s │", widths[i], value)
			} else {
				fmt.Printf(" %-*s │", widths[i], value)
			}
		}
		fmt.Println()
	}
	printBorder := func(left, middle, right string) {
		fmt.Print(left)
		for i, width := range widths {
			fmt.Print(strings.Repeat("─", width+2))
			if i < len(widths)-1 {
				fmt.Print(middle)
			}
		}
		fmt.Println(right)
	}

	printBorder("┌", "┬", "┐")
	printLine(headers)
	printBorder("├", "┼", "┤")
	for _, row := range rows {
		printLine(row)
	}
	printBorder("├", "┼", "┤")
	printLine(totalRow)
	printBorder("└", "┴", "┘")

	return nil
}
