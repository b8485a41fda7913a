package todo

import (
	"testing"

	"github.com/lmartens/dayflow/internal/docsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docWith(tabs ...docsource.Tab) docsource.Document {
	return docsource.Document{ID: "doc-1", Title: "Project", Tabs: tabs}
}

func workTab(title string, paragraphs ...docsource.Paragraph) docsource.Tab {
	all := append([]docsource.Paragraph{taskLine(docsource.TaskListIdentifier, "list-1", false)}, paragraphs...)
	return docsource.Tab{Title: title, TaskListID: "list-1", Paragraphs: all}
}

func TestDerive_TagsTasksWithTabSection(t *testing.T) {
	doc := docWith(workTab("deep work",
		taskLine("Write essay ::: 2hours; -; -", "list-1", false),
		taskLine("Review notes ::: 30minutes; -; -", "list-1", false),
	))

	tasks, warnings := Derive(doc, nil)
	require.Len(t, tasks, 2)
	assert.Empty(t, warnings)
	assert.Equal(t, "deep work", tasks[0].Section)
	assert.Equal(t, "deep work", tasks[1].Section)
}

func TestDerive_ExcludesTodoTabByDefault(t *testing.T) {
	doc := docWith(
		workTab("Todo", taskLine("Aggregated view ::: 1hours; -; -", "list-1", false)),
		workTab("work", taskLine("Real task ::: 1hours; -; -", "list-1", false)),
	)

	tasks, _ := Derive(doc, nil)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Real task", tasks[0].Title)
}

func TestDerive_CustomExclusionIsCaseInsensitive(t *testing.T) {
	doc := docWith(
		workTab("Archive", taskLine("Old ::: 1hours; -; -", "list-1", false)),
		workTab("todo", taskLine("From todo tab ::: 1hours; -; -", "list-1", false)),
	)

	tasks, _ := Derive(doc, []string{"ARCHIVE"})
	require.Len(t, tasks, 1)
	assert.Equal(t, "From todo tab", tasks[0].Title, "custom exclusions replace the default")
}

func TestDerive_TabWithoutTaskListWarns(t *testing.T) {
	doc := docWith(docsource.Tab{
		Title:      "notes",
		Paragraphs: []docsource.Paragraph{taskLine("Looks like a task ::: 1hours; -; -", "list-1", false)},
	})

	tasks, warnings := Derive(doc, nil)
	assert.Empty(t, tasks)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"notes"`)
	assert.Contains(t, warnings[0], "no task list")
}

func TestDerive_SkipsMalformedLinesWithWarning(t *testing.T) {
	doc := docWith(workTab("work",
		taskLine("Good ::: 1hours; -; -", "list-1", false),
		taskLine("Bad ::: 3days; -; -", "list-1", false),
		taskLine("Also good ::: 30minutes; -; -", "list-1", false),
	))

	tasks, warnings := Derive(doc, nil)
	require.Len(t, tasks, 2)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "duration")
}

func TestDerive_NonTaskParagraphsIgnoredSilently(t *testing.T) {
	doc := docWith(workTab("work",
		docsource.Paragraph{Text: "Section heading", Style: "HEADING_1"},
		docsource.Paragraph{Text: "Free-form notes"},
		taskLine("Task ::: 1hours; -; -", "list-1", false),
	))

	tasks, warnings := Derive(doc, nil)
	assert.Len(t, tasks, 1)
	assert.Empty(t, warnings)
}
