// Package config loads juju settings from an optional YAML file and JUJU_*
// environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/alexanderramin/juju/internal/timeutil"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	KeyDBPath     = "db_path"
	KeyLogLevel   = "log.level"
	KeyLogEnabled = "log.enabled"
	KeyWeekStart  = "week_start"

	EnvPrefix = "JUJU"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// LogConfig controls the use-case event log.
type LogConfig struct {
	Level   string `yaml:"level"`
	Enabled bool   `yaml:"enabled"`
}

type Config struct {
	DBPath    string    `yaml:"db_path"`
	WeekStart string    `yaml:"week_start"`
	Log       LogConfig `yaml:"log"`

	// File is the config file that was read, empty when none was found.
	File string `yaml:"-"`
}

// dirFunc returns the juju state directory, replaceable in tests.
var dirFunc = defaultDir

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".juju"), nil
}

// Dir returns the directory holding the default config file and database.
func Dir() (string, error) {
	return dirFunc()
}

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDBPath, filepath.Join(dir, "juju.db"))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogEnabled, false)
	v.SetDefault(KeyWeekStart, "monday")
	return v
}

// Load resolves the effective configuration. An explicit cfgFile must exist;
// the default ~/.juju/config.yaml is optional.
func Load(cfgFile string) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	v := newViper(dir)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{
		DBPath:    expandHome(v.GetString(KeyDBPath)),
		WeekStart: strings.ToLower(strings.TrimSpace(v.GetString(KeyWeekStart))),
		Log: LogConfig{
			Level:   strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
			Enabled: v.GetBool(KeyLogEnabled),
		},
		File: v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "db_path must not be empty")
	}
	if c.WeekStart != "monday" && c.WeekStart != "sunday" {
		problems = append(problems, fmt.Sprintf("week_start %q must be monday or sunday", c.WeekStart))
	}
	if !validLogLevels[c.Log.Level] {
		problems = append(problems, fmt.Sprintf("log.level %q must be one of debug|info|warn|error", c.Log.Level))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Weekday returns WeekStart as a time.Weekday.
func (c *Config) Weekday() time.Weekday {
	d, _ := timeutil.ParseWeekday(c.WeekStart)
	return d
}

// YAML renders the effective configuration.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return string(out), nil
}

const configTemplate = `# juju configuration
# Every key can be overridden with a JUJU_ environment variable,
# e.g. JUJU_DB_PATH or JUJU_LOG_LEVEL.

# SQLite database path
# db_path: {{ .DBPath }}

# First day of the week for this-week filters: monday | sunday
week_start: {{ .WeekStart }}

log:
  # Write service events to stderr
  enabled: {{ .Log.Enabled }}
  # debug | info | warn | error
  level: {{ .Log.Level }}
`

// WriteDefault creates a commented config file at path. It refuses to
// overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}
	dir, err := Dir()
	if err != nil {
		return err
	}
	defaults := Config{
		DBPath:    filepath.Join(dir, "juju.db"),
		WeekStart: "monday",
		Log:       LogConfig{Level: "info"},
	}

	tmpl := template.Must(template.New("config").Parse(configTemplate))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, defaults); err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
