package formatter

import (
	"fmt"
	"strings"

	"github.com/lmartens/dayflow/internal/service"
)

// FormatSyncResult renders the per-project outcome of a sync run.
func FormatSyncResult(res *service.SyncResult) string {
	var b strings.Builder
	b.WriteString(Header("Synced"))

	for _, p := range res.Projects {
		open := p.TaskCount - p.DoneCount
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s %s",
			StyleGreen.Render("✓"),
			Bold(p.Name),
			Dim(fmt.Sprintf("%d tasks (%d open, %d done)", p.TaskCount, open, p.DoneCount))))
	}

	for _, f := range res.Failures {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s %s",
			StyleRed.Render("✗"),
			Bold(f.DocumentID),
			StyleRed.Render(f.Err.Error())))
	}

	for _, w := range res.Warnings {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("  ! " + w))
	}

	return b.String()
}
