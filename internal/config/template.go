package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultTemplate is the starter config written by `dayflow config
// init`. Commented entries show the full schema without activating it.
const defaultTemplate = `[scheduling]
work_start = "09:00"
work_end = "18:00"
timezone = "UTC"
default_task_minutes = 60

# Recurring blocked intervals. Omit "days" to apply every day.
#
# [[scheduling.sleep]]
# start = "23:00"
# end = "07:00"
# label = "Sleep"
#
# [[scheduling.break]]
# start = "12:00"
# end = "13:00"
# label = "Lunch"
# days = ["monday", "tuesday", "wednesday", "thursday", "friday"]
#
# [[scheduling.meeting]]
# start = "09:30"
# end = "10:00"
# label = "Standup"
# days = ["monday", "wednesday", "friday"]

[google]
auth_method = "oauth"
# credentials_path = "~/.config/dayflow/credentials.json"
# token_path = "~/.config/dayflow/token.json"
document_ids = []
`

// WriteStarter writes the starter config file at path, creating parent
// directories as needed. Existing files are overwritten; callers are
// expected to confirm first.
func WriteStarter(path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultTemplate), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Exists reports whether a config file is present at path (the default
// path when empty).
func Exists(path string) (bool, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return false, err
		}
	}
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
