package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "DAYFLOW"

const clockLayout = "15:04"

// ErrInvalid marks configuration rejected by Validate.
var ErrInvalid = errors.New("invalid configuration")

var validWeekdays = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

// BlockRule is one recurring blocked interval: a daily clock window that
// applies on the listed weekdays. An empty Days list means every day.
// An end clock at or before the start wraps past midnight into the
// following day, as a 23:00-07:00 sleep window does.
type BlockRule struct {
	Start string   `mapstructure:"start"`
	End   string   `mapstructure:"end"`
	Label string   `mapstructure:"label"`
	Days  []string `mapstructure:"days"`
}

type SchedulingConfig struct {
	WorkStart          string      `mapstructure:"work_start"`
	WorkEnd            string      `mapstructure:"work_end"`
	Timezone           string      `mapstructure:"timezone"`
	DefaultTaskMinutes int         `mapstructure:"default_task_minutes"`
	Sleep              []BlockRule `mapstructure:"sleep"`
	Break              []BlockRule `mapstructure:"break"`
	Meeting            []BlockRule `mapstructure:"meeting"`
}

type GoogleConfig struct {
	AuthMethod      string   `mapstructure:"auth_method"`
	CredentialsPath string   `mapstructure:"credentials_path"`
	TokenPath       string   `mapstructure:"token_path"`
	DocumentIDs     []string `mapstructure:"document_ids"`
}

// Config is the full dayflow configuration.
type Config struct {
	Scheduling SchedulingConfig `mapstructure:"scheduling"`
	Google     GoogleConfig     `mapstructure:"google"`
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		Scheduling: SchedulingConfig{
			WorkStart:          "09:00",
			WorkEnd:            "18:00",
			Timezone:           "UTC",
			DefaultTaskMinutes: 60,
		},
		Google: GoogleConfig{
			AuthMethod: "oauth",
		},
	}
}

// DefaultPath returns ~/.config/dayflow/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "dayflow", "config.toml"), nil
}

// Dir returns the directory holding the config file and its siblings
// (token cache, sync snapshot).
func Dir() (string, error) {
	path, err := DefaultPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// Load reads the TOML file at path (the default path when path is
// empty), applies DAYFLOW_* environment overrides, and validates the
// result. A missing file yields the defaults rather than an error.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	applyDerivedDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("scheduling.work_start", def.Scheduling.WorkStart)
	v.SetDefault("scheduling.work_end", def.Scheduling.WorkEnd)
	v.SetDefault("scheduling.timezone", def.Scheduling.Timezone)
	v.SetDefault("scheduling.default_task_minutes", def.Scheduling.DefaultTaskMinutes)
	v.SetDefault("google.auth_method", def.Google.AuthMethod)
	v.SetDefault("google.credentials_path", "")
	v.SetDefault("google.token_path", "")
}

// applyDerivedDefaults fills the credential paths that depend on the
// user's home directory. Failure to resolve the home directory is left
// for the first credential use to report.
func applyDerivedDefaults(cfg *Config) {
	dir, err := Dir()
	if err != nil {
		return
	}
	if cfg.Google.CredentialsPath == "" {
		cfg.Google.CredentialsPath = filepath.Join(dir, "credentials.json")
	}
	if cfg.Google.TokenPath == "" {
		cfg.Google.TokenPath = filepath.Join(dir, "token.json")
	}
}

// Validate checks clock windows, weekday names, the timezone and the
// auth method. All findings are joined so a broken file is reported in
// one pass.
func (c *Config) Validate() error {
	var problems []string

	ws, errStart := parseClock(c.Scheduling.WorkStart)
	we, errEnd := parseClock(c.Scheduling.WorkEnd)
	if errStart != nil {
		problems = append(problems, fmt.Sprintf("scheduling.work_start: %v", errStart))
	}
	if errEnd != nil {
		problems = append(problems, fmt.Sprintf("scheduling.work_end: %v", errEnd))
	}
	if errStart == nil && errEnd == nil && !ws.before(we) {
		problems = append(problems, "scheduling.work_start must be before scheduling.work_end")
	}

	if c.Scheduling.DefaultTaskMinutes < 1 {
		problems = append(problems, "scheduling.default_task_minutes must be at least 1")
	}

	if _, err := time.LoadLocation(c.Scheduling.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("scheduling.timezone: unknown timezone %q", c.Scheduling.Timezone))
	}

	for group, rules := range map[string][]BlockRule{
		"sleep": c.Scheduling.Sleep, "break": c.Scheduling.Break, "meeting": c.Scheduling.Meeting,
	} {
		for i, rule := range rules {
			problems = append(problems, rule.problems(fmt.Sprintf("scheduling.%s[%d]", group, i))...)
		}
	}

	switch c.Google.AuthMethod {
	case "oauth", "service_account":
	default:
		problems = append(problems, fmt.Sprintf("google.auth_method must be oauth or service_account, got %q", c.Google.AuthMethod))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}

func (r BlockRule) problems(prefix string) []string {
	var out []string

	start, errStart := parseClock(r.Start)
	end, errEnd := parseClock(r.End)
	if errStart != nil {
		out = append(out, fmt.Sprintf("%s.start: %v", prefix, errStart))
	}
	if errEnd != nil {
		out = append(out, fmt.Sprintf("%s.end: %v", prefix, errEnd))
	}
	// An end at or before the start wraps to the next day (overnight
	// sleep), so only a zero-length window is rejected.
	if errStart == nil && errEnd == nil && start == end {
		out = append(out, fmt.Sprintf("%s: start and end must differ", prefix))
	}

	for _, day := range r.Days {
		if _, ok := validWeekdays[strings.ToLower(day)]; !ok {
			out = append(out, fmt.Sprintf("%s.days: unknown weekday %q", prefix, day))
		}
	}
	return out
}

// clock is a wall-clock time of day.
type clock struct {
	hour, min int
}

func (c clock) before(other clock) bool {
	return c.hour < other.hour || (c.hour == other.hour && c.min < other.min)
}

func parseClock(s string) (clock, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return clock{}, fmt.Errorf("expected HH:MM, got %q", s)
	}
	return clock{hour: t.Hour(), min: t.Minute()}, nil
}

// coversDay reports whether the rule applies on the given weekday. An
// empty Days list covers the whole week.
func (r BlockRule) coversDay(day time.Weekday) bool {
	if len(r.Days) == 0 {
		return true
	}
	name := strings.ToLower(day.String())
	for _, d := range r.Days {
		if strings.ToLower(d) == name {
			return true
		}
	}
	return false
}
