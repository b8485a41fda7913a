package formatter

import "strings"

// FormatShellWelcome renders the shell banner.
func FormatShellWelcome() string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("dayflow shell"))
	b.WriteString("\n")
	b.WriteString(Dim("type a command, `help` for the list, `exit` to leave"))
	b.WriteString("\n")
	return b.String()
}

// FormatShellHelp renders the shell command reference.
func FormatShellHelp() string {
	rows := []struct{ cmd, desc string }{
		{"sync", "fetch task documents and refresh the snapshot"},
		{"today", "schedule for the rest of today"},
		{"plan [days]", "multi-day schedule (default 3)"},
		{"explain <id>", "task details and queue position"},
		{"config", "show the active configuration"},
		{"help", "this list"},
		{"exit", "leave the shell"},
	}

	var b strings.Builder
	b.WriteString(Header("Commands"))
	for _, r := range rows {
		b.WriteString("\n  ")
		b.WriteString(StyleBlue.Render(padRight(r.cmd, 14)))
		b.WriteString(Dim(r.desc))
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
