package commands

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/perfwatch/quicktrace/internal/core/model"
	"github.com/perfwatch/quicktrace/internal/presentation/formatter"
)

var (
	breadcrumbsFile  string
	breadcrumbsLimit int
)

var breadcrumbsCmd = &cobra.Command{
	Use:   "breadcrumbs",
	Short: "Show the breadcrumb trail from an event export",
	RunE:  runBreadcrumbs,
}

func init() {
	breadcrumbsCmd.Flags().StringVarP(&breadcrumbsFile, "file", "f", "",
		"Breadcrumbs JSON document (required)")
	breadcrumbsCmd.Flags().IntVar(&breadcrumbsLimit, "limit", formatter.DefaultBreadcrumbLimit,
		"Rows shown before the tail collapses")
	breadcrumbsCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(breadcrumbsCmd)
}

func runBreadcrumbs(cmd *cobra.Command, args []string) error {
	initLogging()

	data, err := os.ReadFile(expandPath(breadcrumbsFile))
	if err != nil {
		return err
	}

	var crumbs []model.Breadcrumb
	if err := sonic.Unmarshal(data, &crumbs); err != nil {
		return fmt.Errorf("malformed breadcrumbs document: %w", err)
	}

	f := formatter.NewBreadcrumbFormatter()
	f.Limit = breadcrumbsLimit
	return f.Format(crumbs)
}
