package todo

import (
	"fmt"
	"strings"

	"github.com/lmartens/dayflow/internal/docsource"
	"github.com/lmartens/dayflow/internal/domain"
)

// defaultExcludedTabs are tab titles skipped during derivation. The
// aggregated "todo" tab is a rendering of the derived list, not a
// source of tasks.
var defaultExcludedTabs = []string{"todo"}

// Derive extracts the tasks of one document: for each non-excluded tab
// with a discovered task list, every parseable task line becomes a
// task tagged with the tab title as its section. Tabs without a task
// list and lines with malformed metadata are skipped; both are
// reported as warnings so sync can surface them without aborting.
func Derive(doc docsource.Document, excludeTabs []string) ([]domain.Task, []string) {
	if excludeTabs == nil {
		excludeTabs = defaultExcludedTabs
	}
	excluded := make(map[string]struct{}, len(excludeTabs))
	for _, title := range excludeTabs {
		excluded[strings.ToLower(strings.TrimSpace(title))] = struct{}{}
	}

	var tasks []domain.Task
	var warnings []string

	for _, tab := range doc.Tabs {
		title := strings.TrimSpace(tab.Title)
		if _, skip := excluded[strings.ToLower(title)]; skip {
			continue
		}
		if tab.TaskListID == "" {
			warnings = append(warnings, fmt.Sprintf(
				"tab %q has no task list: add a checkbox line reading %q", title, docsource.TaskListIdentifier))
			continue
		}

		for _, p := range tab.Paragraphs {
			task, err := ParseTaskLine(p, tab.TaskListID)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("tab %q: %v", title, err))
				continue
			}
			if task == nil {
				continue
			}
			task.Section = title
			tasks = append(tasks, *task)
		}
	}
	return tasks, warnings
}
