package todo

import (
	"testing"
	"time"

	"github.com/lmartens/dayflow/internal/docsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskLine(text, listID string, struck bool) docsource.Paragraph {
	return docsource.Paragraph{
		Text:   text,
		Style:  "NORMAL_TEXT",
		Bullet: &docsource.Bullet{ListID: listID, Strikethrough: struck},
	}
}

func TestParseTaskLine_FullMetadata(t *testing.T) {
	p := taskLine("Write report ::: 2hours; 2026-01-09T12:00+01:00; 2026-01-08T18:00", "list-1", false)

	task, err := ParseTaskLine(p, "list-1")
	require.NoError(t, err)
	require.NotNil(t, task)

	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, 2*time.Hour, task.EstimatedDuration)
	assert.NotEmpty(t, task.ID, "tasks get generated ids")
	assert.False(t, task.Completed)

	require.NotNil(t, task.DeadlineExternal)
	assert.True(t, task.DeadlineExternal.Equal(time.Date(2026, 1, 9, 11, 0, 0, 0, time.UTC)))
	require.NotNil(t, task.DeadlineUser)
	assert.True(t, task.DeadlineUser.Equal(time.Date(2026, 1, 8, 18, 0, 0, 0, time.UTC)),
		"deadlines without an offset are UTC")
}

func TestParseTaskLine_MinutesAndAbsentDeadlines(t *testing.T) {
	task, err := ParseTaskLine(taskLine("Quick fix ::: 45minutes; -; -", "list-1", false), "list-1")
	require.NoError(t, err)
	require.NotNil(t, task)

	assert.Equal(t, 45*time.Minute, task.EstimatedDuration)
	assert.Nil(t, task.DeadlineExternal)
	assert.Nil(t, task.DeadlineUser)
}

func TestParseTaskLine_StrikethroughMeansCompleted(t *testing.T) {
	task, err := ParseTaskLine(taskLine("Done ::: 1hours; -; -", "list-1", true), "list-1")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.True(t, task.Completed)
}

func TestParseTaskLine_NotATaskLine(t *testing.T) {
	cases := map[string]struct {
		p      docsource.Paragraph
		listID string
	}{
		"no bullet":          {docsource.Paragraph{Text: "Plain text ::: 1hours; -; -"}, "list-1"},
		"wrong list":         {taskLine("Other list ::: 1hours; -; -", "list-2", false), "list-1"},
		"no discovered list": {taskLine("Task ::: 1hours; -; -", "list-1", false), ""},
		"identifier line":    {taskLine(docsource.TaskListIdentifier, "list-1", false), "list-1"},
		"no metadata marker": {taskLine("Shopping list item", "list-1", false), "list-1"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			task, err := ParseTaskLine(tc.p, tc.listID)
			assert.NoError(t, err)
			assert.Nil(t, task)
		})
	}
}

func TestParseTaskLine_MetadataErrors(t *testing.T) {
	cases := map[string]struct {
		text  string
		field string
	}{
		"two fields":        {"Task ::: 1hours; -", "metadata"},
		"four fields":       {"Task ::: 1hours; -; -; extra", "metadata"},
		"dash duration":     {"Task ::: -; -; -", "duration"},
		"bad duration unit": {"Task ::: 3days; -; -", "duration"},
		"zero duration":     {"Task ::: 0minutes; -; -", "duration"},
		"bad external":      {"Task ::: 1hours; tomorrow; -", "external_deadline"},
		"bad user":          {"Task ::: 1hours; -; 01/09/2026", "user_deadline"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTaskLine(taskLine(tc.text, "list-1", false), "list-1")
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.field, parseErr.Field)
			assert.Equal(t, tc.text, parseErr.RawText)
		})
	}
}

func TestParseTaskLine_CaseInsensitiveDurationUnits(t *testing.T) {
	task, err := ParseTaskLine(taskLine("Task ::: 1Hour; -; -", "list-1", false), "list-1")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, time.Hour, task.EstimatedDuration)
}

func TestParseError_FormatsContext(t *testing.T) {
	err := &ParseError{
		Message: "invalid duration",
		Field:   "duration",
		Value:   "3days",
		RawText: "Task ::: 3days; -; -",
	}
	msg := err.Error()
	assert.Contains(t, msg, "invalid duration")
	assert.Contains(t, msg, "field: duration")
	assert.Contains(t, msg, `"3days"`)
	assert.Contains(t, msg, "Task ::: 3days")
}

func TestParseError_TruncatesLongRawText(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "abcdefgh "
	}
	err := &ParseError{Message: "boom", RawText: long}
	assert.Contains(t, err.Error(), "...")
	assert.Less(t, len(err.Error()), len(long))
}
