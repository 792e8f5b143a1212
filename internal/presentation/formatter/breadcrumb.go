package formatter

import (
	"fmt"

	"github.com/perfwatch/quicktrace/internal/core/model"
	"github.com/perfwatch/quicktrace/internal/util"
)

// DefaultBreadcrumbLimit bounds how many trail entries are printed
// before the tail collapses into a single count line.
const DefaultBreadcrumbLimit = 10

// BreadcrumbFormatter renders the activity trail recorded before an
// event as aligned summary rows, newest first.
type BreadcrumbFormatter struct {
	Limit int
}

func NewBreadcrumbFormatter() *BreadcrumbFormatter {
	return &BreadcrumbFormatter{Limit: DefaultBreadcrumbLimit}
}

func (f *BreadcrumbFormatter) Format(crumbs []model.Breadcrumb) error {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultBreadcrumbLimit
	}

	fmt.Println(util.FormatSectionTitle("Breadcrumbs"))

	if len(crumbs) == 0 {
		fmt.Println("  (none recorded)")
		return nil
	}

	shown := crumbs
	if len(shown) > limit {
		shown = shown[:limit]
	}

	for _, crumb := range shown {
		level := crumb.Level
		if level == "" {
			level = model.LevelInfo
		}
		color := util.ColorForLevel(level)
		fmt.Printf("  %s%-8s%s %-20s %s %s%s%s\n",
			color, level, util.ColorReset,
			util.Truncate(crumb.Category, 20),
			util.Truncate(crumb.Message, 60),
			util.ColorDim, crumb.Timestamp, util.ColorReset)
	}

	if hidden := len(crumbs) - limit; hidden > 0 {
		fmt.Printf("  %s… %s not shown%s\n",
			util.ColorDim, util.Pluralize(hidden, "breadcrumb", "breadcrumbs"), util.ColorReset)
	}

	return nil
}
