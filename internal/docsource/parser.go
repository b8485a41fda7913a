package docsource

import (
	"strings"

	"google.golang.org/api/docs/v1"
)

// ParseDocument extracts the structural content dayflow cares about
// from a docs API response: per-tab paragraphs with concatenated text
// runs, bullet metadata with strikethrough, and the discovered task
// list id. Documents without tabs fall back to a single unnamed tab
// built from the legacy body.
func ParseDocument(doc *docs.Document) Document {
	out := Document{
		ID:    doc.DocumentId,
		Title: doc.Title,
	}

	if len(doc.Tabs) > 0 {
		for _, tab := range doc.Tabs {
			out.Tabs = append(out.Tabs, parseTab(tab))
		}
		return out
	}

	if doc.Body != nil && len(doc.Body.Content) > 0 {
		legacy := Tab{ID: "legacy"}
		collectElements(doc.Body.Content, &legacy)
		legacy.TaskListID = discoverTaskListID(legacy.Paragraphs)
		out.Tabs = append(out.Tabs, legacy)
	}
	return out
}

func parseTab(tab *docs.Tab) Tab {
	out := Tab{}
	if tab.TabProperties != nil {
		out.ID = tab.TabProperties.TabId
		out.Title = tab.TabProperties.Title
		out.Index = int(tab.TabProperties.Index)
	}
	if tab.DocumentTab != nil && tab.DocumentTab.Body != nil {
		collectElements(tab.DocumentTab.Body.Content, &out)
	}
	out.TaskListID = discoverTaskListID(out.Paragraphs)
	return out
}

// collectElements walks structural elements in order, flattening table
// cells into the surrounding paragraph stream. Section breaks carry no
// text and are skipped.
func collectElements(elements []*docs.StructuralElement, tab *Tab) {
	for _, el := range elements {
		switch {
		case el.Paragraph != nil:
			if p, ok := parseParagraph(el.Paragraph); ok {
				tab.Paragraphs = append(tab.Paragraphs, p)
			}
		case el.Table != nil:
			for _, row := range el.Table.TableRows {
				for _, cell := range row.TableCells {
					collectElements(cell.Content, tab)
				}
			}
		}
	}
}

func parseParagraph(p *docs.Paragraph) (Paragraph, bool) {
	var text strings.Builder
	strike := false
	for _, el := range p.Elements {
		run := el.TextRun
		if run == nil {
			continue
		}
		// Pending suggestions are not part of the accepted document.
		if len(run.SuggestedInsertionIds) > 0 || len(run.SuggestedDeletionIds) > 0 {
			continue
		}
		text.WriteString(run.Content)
		if run.TextStyle != nil && run.TextStyle.Strikethrough {
			strike = true
		}
	}

	combined := strings.TrimSpace(text.String())
	if combined == "" {
		return Paragraph{}, false
	}

	out := Paragraph{Text: combined, Style: "NORMAL_TEXT"}
	if p.ParagraphStyle != nil && p.ParagraphStyle.NamedStyleType != "" {
		out.Style = p.ParagraphStyle.NamedStyleType
	}
	if p.Bullet != nil {
		bullet := &Bullet{
			ListID:        p.Bullet.ListId,
			NestingLevel:  int(p.Bullet.NestingLevel),
			Strikethrough: strike,
		}
		if p.Bullet.TextStyle != nil && p.Bullet.TextStyle.Strikethrough {
			bullet.Strikethrough = true
		}
		out.Bullet = bullet
	}
	return out, true
}

// discoverTaskListID finds the bullet list whose identifier line marks
// it as the task list. Returns the empty string when no paragraph
// matches.
func discoverTaskListID(paragraphs []Paragraph) string {
	for _, p := range paragraphs {
		if p.Bullet == nil {
			continue
		}
		if p.Text == TaskListIdentifier {
			return p.Bullet.ListID
		}
	}
	return ""
}
