package formatter

import (
	"encoding/csv"
	"fmt"
	"os"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(rows []EventRow) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	headers := []string{
		"Event ID", "Type", "Transaction", "Project", "Timestamp", "Duration (ms)", "Errors",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.EventID,
			row.Type,
			row.Transaction,
			row.Project,
			row.Timestamp,
			fmt.Sprintf("%.2f", row.DurationMs),
			fmt.Sprintf("%d", row.ErrorCount),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
