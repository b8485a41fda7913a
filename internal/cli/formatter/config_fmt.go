package formatter

import (
	"fmt"
	"strings"

	"github.com/lmartens/dayflow/internal/config"
)

// FormatConfig renders the active configuration.
func FormatConfig(cfg *config.Config, path string) string {
	var b strings.Builder
	b.WriteString(Header("Configuration"))
	b.WriteString("\n")
	writeField(&b, "file", Dim(path))
	writeField(&b, "work hours", fmt.Sprintf("%s–%s", cfg.Scheduling.WorkStart, cfg.Scheduling.WorkEnd))
	writeField(&b, "timezone", cfg.Scheduling.Timezone)
	writeField(&b, "default estimate", fmt.Sprintf("%dm", cfg.Scheduling.DefaultTaskMinutes))
	writeField(&b, "auth method", cfg.Google.AuthMethod)
	writeField(&b, "documents", fmt.Sprintf("%d configured", len(cfg.Google.DocumentIDs)))

	writeRules(&b, "sleep", cfg.Scheduling.Sleep)
	writeRules(&b, "break", cfg.Scheduling.Break)
	writeRules(&b, "meeting", cfg.Scheduling.Meeting)
	return b.String()
}

func writeRules(b *strings.Builder, kind string, rules []config.BlockRule) {
	for _, r := range rules {
		days := "every day"
		if len(r.Days) > 0 {
			days = strings.Join(r.Days, ", ")
		}
		label := r.Label
		if label == "" {
			label = kind
		}
		writeField(b, kind, fmt.Sprintf("%s–%s %s %s", r.Start, r.End, Bold(label), Dim("("+days+")")))
	}
}
