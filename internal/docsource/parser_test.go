package docsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"
)

func textRun(content string) *docs.ParagraphElement {
	return &docs.ParagraphElement{TextRun: &docs.TextRun{Content: content}}
}

func struckRun(content string) *docs.ParagraphElement {
	return &docs.ParagraphElement{TextRun: &docs.TextRun{
		Content:   content,
		TextStyle: &docs.TextStyle{Strikethrough: true},
	}}
}

func para(listID string, elements ...*docs.ParagraphElement) *docs.StructuralElement {
	p := &docs.Paragraph{Elements: elements}
	if listID != "" {
		p.Bullet = &docs.Bullet{ListId: listID}
	}
	return &docs.StructuralElement{Paragraph: p}
}

func tabOf(id, title string, index int64, content ...*docs.StructuralElement) *docs.Tab {
	return &docs.Tab{
		TabProperties: &docs.TabProperties{TabId: id, Title: title, Index: index},
		DocumentTab:   &docs.DocumentTab{Body: &docs.Body{Content: content}},
	}
}

func TestParseDocument_TabsAndTaskListDiscovery(t *testing.T) {
	doc := &docs.Document{
		DocumentId: "doc-1",
		Title:      "Project Alpha",
		Tabs: []*docs.Tab{
			tabOf("t1", "work", 0,
				para("", textRun("Some intro\n")),
				para("list-9", textRun(TaskListIdentifier+"\n")),
				para("list-9", textRun("Write report ::: 2hours; -; 2026-01-09T12:00\n")),
			),
		},
	}

	got := ParseDocument(doc)

	assert.Equal(t, "doc-1", got.ID)
	assert.Equal(t, "Project Alpha", got.Title)
	require.Len(t, got.Tabs, 1)

	tab := got.Tabs[0]
	assert.Equal(t, "work", tab.Title)
	assert.Equal(t, "list-9", tab.TaskListID)
	require.Len(t, tab.Paragraphs, 3)
	assert.Nil(t, tab.Paragraphs[0].Bullet)
	assert.Equal(t, "list-9", tab.Paragraphs[2].Bullet.ListID)
}

func TestParseDocument_NoIdentifierLeavesTaskListEmpty(t *testing.T) {
	doc := &docs.Document{
		DocumentId: "doc-1",
		Tabs: []*docs.Tab{
			tabOf("t1", "notes", 0, para("list-1", textRun("Just a bullet\n"))),
		},
	}

	got := ParseDocument(doc)
	require.Len(t, got.Tabs, 1)
	assert.Empty(t, got.Tabs[0].TaskListID)
}

func TestParseDocument_ConcatenatesRunsAndSkipsSuggestions(t *testing.T) {
	suggestion := &docs.ParagraphElement{TextRun: &docs.TextRun{
		Content:               "NOT YET ACCEPTED",
		SuggestedInsertionIds: []string{"s1"},
	}}
	doc := &docs.Document{
		Tabs: []*docs.Tab{
			tabOf("t1", "work", 0,
				para("", textRun("Hello "), suggestion, textRun("world\n")),
			),
		},
	}

	got := ParseDocument(doc)
	require.Len(t, got.Tabs[0].Paragraphs, 1)
	assert.Equal(t, "Hello world", got.Tabs[0].Paragraphs[0].Text)
}

func TestParseDocument_StrikethroughMarksBullet(t *testing.T) {
	doc := &docs.Document{
		Tabs: []*docs.Tab{
			tabOf("t1", "work", 0,
				para("list-1", struckRun("Done task ::: 1hours; -; -\n")),
				para("list-1", textRun("Open task ::: 1hours; -; -\n")),
			),
		},
	}

	got := ParseDocument(doc)
	paras := got.Tabs[0].Paragraphs
	require.Len(t, paras, 2)
	assert.True(t, paras[0].Bullet.Strikethrough)
	assert.False(t, paras[1].Bullet.Strikethrough)
}

func TestParseDocument_EmptyParagraphsDropped(t *testing.T) {
	doc := &docs.Document{
		Tabs: []*docs.Tab{
			tabOf("t1", "work", 0,
				para("", textRun("\n")),
				para("", textRun("   \n")),
				para("", textRun("Real content\n")),
			),
		},
	}

	got := ParseDocument(doc)
	require.Len(t, got.Tabs[0].Paragraphs, 1)
	assert.Equal(t, "Real content", got.Tabs[0].Paragraphs[0].Text)
}

func TestParseDocument_FlattensTables(t *testing.T) {
	table := &docs.StructuralElement{Table: &docs.Table{
		TableRows: []*docs.TableRow{{
			TableCells: []*docs.TableCell{{
				Content: []*docs.StructuralElement{para("", textRun("In a cell\n"))},
			}},
		}},
	}}
	doc := &docs.Document{
		Tabs: []*docs.Tab{tabOf("t1", "work", 0, table, para("", textRun("After table\n")))},
	}

	got := ParseDocument(doc)
	require.Len(t, got.Tabs[0].Paragraphs, 2)
	assert.Equal(t, "In a cell", got.Tabs[0].Paragraphs[0].Text)
}

func TestParseDocument_LegacyBodyFallback(t *testing.T) {
	doc := &docs.Document{
		DocumentId: "old-doc",
		Body: &docs.Body{Content: []*docs.StructuralElement{
			para("list-2", textRun(TaskListIdentifier+"\n")),
			para("list-2", textRun("Legacy task ::: 30minutes; -; -\n")),
		}},
	}

	got := ParseDocument(doc)
	require.Len(t, got.Tabs, 1)
	assert.Equal(t, "legacy", got.Tabs[0].ID)
	assert.Empty(t, got.Tabs[0].Title)
	assert.Equal(t, "list-2", got.Tabs[0].TaskListID)
	assert.Len(t, got.Tabs[0].Paragraphs, 2)
}

func TestParseDocument_HeadingStyleCarried(t *testing.T) {
	heading := &docs.StructuralElement{Paragraph: &docs.Paragraph{
		Elements:       []*docs.ParagraphElement{textRun("Section A\n")},
		ParagraphStyle: &docs.ParagraphStyle{NamedStyleType: "HEADING_1"},
	}}
	doc := &docs.Document{Tabs: []*docs.Tab{tabOf("t1", "work", 0, heading)}}

	got := ParseDocument(doc)
	require.Len(t, got.Tabs[0].Paragraphs, 1)
	assert.Equal(t, "HEADING_1", got.Tabs[0].Paragraphs[0].Style)
}
