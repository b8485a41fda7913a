package docsource

// TaskListIdentifier is the exact line that marks a tab's checkbox
// list as the task list. The bullet list it belongs to becomes the
// tab's task list id.
const TaskListIdentifier = "TASKS ::: duration; external_deadline; user_deadline"

// Document is the structural content extracted from one Google Doc.
type Document struct {
	ID    string
	Title string
	Tabs  []Tab
}

// Tab is one document tab with its paragraphs in reading order.
// TaskListID is empty when the tab carries no identifier line.
type Tab struct {
	ID         string
	Title      string
	Index      int
	Paragraphs []Paragraph
	TaskListID string
}

// Paragraph is a single non-empty paragraph: its concatenated text,
// named style, and bullet metadata when it is a list item.
type Paragraph struct {
	Text   string
	Style  string
	Bullet *Bullet
}

// Bullet describes list membership of a paragraph.
type Bullet struct {
	ListID        string
	NestingLevel  int
	Strikethrough bool
}
