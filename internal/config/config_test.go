package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[scheduling]
work_start = "08:30"
work_end = "17:00"
timezone = "Europe/Amsterdam"
default_task_minutes = 45

[[scheduling.sleep]]
start = "23:00"
end = "07:00"
label = "Sleep"

[[scheduling.break]]
start = "12:00"
end = "13:00"
label = "Lunch"
days = ["monday", "friday"]

[google]
auth_method = "service_account"
credentials_path = "/tmp/creds.json"
document_ids = ["doc-a", "doc-b"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "08:30", cfg.Scheduling.WorkStart)
	assert.Equal(t, "Europe/Amsterdam", cfg.Scheduling.Timezone)
	assert.Equal(t, 45, cfg.Scheduling.DefaultTaskMinutes)
	require.Len(t, cfg.Scheduling.Sleep, 1)
	assert.Equal(t, "Sleep", cfg.Scheduling.Sleep[0].Label)
	require.Len(t, cfg.Scheduling.Break, 1)
	assert.Equal(t, []string{"monday", "friday"}, cfg.Scheduling.Break[0].Days)
	assert.Equal(t, "service_account", cfg.Google.AuthMethod)
	assert.Equal(t, "/tmp/creds.json", cfg.Google.CredentialsPath)
	assert.Equal(t, []string{"doc-a", "doc-b"}, cfg.Google.DocumentIDs)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Scheduling.WorkStart, cfg.Scheduling.WorkStart)
	assert.Equal(t, def.Scheduling.WorkEnd, cfg.Scheduling.WorkEnd)
	assert.Equal(t, def.Scheduling.Timezone, cfg.Scheduling.Timezone)
	assert.Equal(t, def.Scheduling.DefaultTaskMinutes, cfg.Scheduling.DefaultTaskMinutes)
	assert.NotEmpty(t, cfg.Google.CredentialsPath, "credential paths are derived when absent")
	assert.NotEmpty(t, cfg.Google.TokenPath)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DAYFLOW_SCHEDULING_TIMEZONE", "America/New_York")
	t.Setenv("DAYFLOW_SCHEDULING_DEFAULT_TASK_MINUTES", "30")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", cfg.Scheduling.Timezone)
	assert.Equal(t, 30, cfg.Scheduling.DefaultTaskMinutes)
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "[scheduling\nwork_start = ")
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate_ReportsAllProblemsAtOnce(t *testing.T) {
	cfg := Default()
	cfg.Scheduling.WorkStart = "18:00"
	cfg.Scheduling.WorkEnd = "09:00"
	cfg.Scheduling.Timezone = "Mars/Olympus"
	cfg.Scheduling.Break = []BlockRule{{Start: "12:00", End: "12:00", Days: []string{"caturday"}}}
	cfg.Google.AuthMethod = "password"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "work_start must be before")
	assert.Contains(t, err.Error(), "Mars/Olympus")
	assert.Contains(t, err.Error(), "start and end must differ")
	assert.Contains(t, err.Error(), "caturday")
	assert.Contains(t, err.Error(), "auth_method")
}

func TestValidate_RejectsBadClockFormat(t *testing.T) {
	cfg := Default()
	cfg.Scheduling.WorkStart = "9am"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"9am"`)
}

func TestWriteStarter_ProducesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, WriteStarter(path))

	ok, err := Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "09:00", cfg.Scheduling.WorkStart)
	assert.Equal(t, "oauth", cfg.Google.AuthMethod)
	assert.Empty(t, cfg.Google.DocumentIDs)
}
