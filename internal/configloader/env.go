package configloader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/mdpad/pkg/config"
)

// envVarPrefix is the prefix for all mdpad environment variables.
const envVarPrefix = "MDPAD_"

// envVar binds one variable to a config field.
type envVar struct {
	suffix string
	usage  string
	apply  func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{"THEME", "Theme ID or name", func(c *config.Config, v string) error {
		c.Theme = v
		return nil
	}},
	{"VIEW_MODE", "View mode: blog, wiki or portfolio", func(c *config.Config, v string) error {
		c.ViewMode = v
		return nil
	}},
	{"AUTOSAVE_INTERVAL", "Autosave interval (e.g. 30s)", func(c *config.Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q", v)
		}
		c.AutosaveInterval = d
		return nil
	}},
	{"READING_SPEED", "Words per minute for reading time", func(c *config.Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer %q", v)
		}
		c.ReadingSpeed = n
		return nil
	}},
	{"TOC_DEDUPE", "De-duplicate TOC anchors: true or false", boolSetter(func(c *config.Config) **bool { return &c.TOC.Dedupe })},
	{"STORAGE_BACKEND", "State backend: file or sqlite", func(c *config.Config, v string) error {
		c.Storage.Backend = v
		return nil
	}},
	{"STORAGE_PATH", "State directory or database file", func(c *config.Config, v string) error {
		c.Storage.Path = v
		return nil
	}},
	{"EXPORT_DIR", "Default export directory", func(c *config.Config, v string) error {
		c.Export.Dir = v
		return nil
	}},
	{"EXPORT_BACKUPS", "Back up files before overwriting: true or false", boolSetter(func(c *config.Config) **bool { return &c.Export.Backups })},
	{"RENDER_EXTENSIONS", "Comma-separated goldmark extensions", func(c *config.Config, v string) error {
		c.Render.Extensions = parseSliceValue(v)
		return nil
	}},
	{"RENDER_UNSAFE_HTML", "Pass raw HTML through: true or false", boolSetter(func(c *config.Config) **bool { return &c.Render.UnsafeHTML })},
	{"RENDER_GLAMOUR_STYLE", "Preview style: auto, dark, light, notty or a file", func(c *config.Config, v string) error {
		c.Render.GlamourStyle = v
		return nil
	}},
	{"COLOR", "Color output: auto, always or never", func(c *config.Config, v string) error {
		c.Color = v
		return nil
	}},
	{"JOBS", "Number of parallel workers (0 = auto)", func(c *config.Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer %q", v)
		}
		c.Jobs = n
		return nil
	}},
}

func boolSetter(field func(*config.Config) **bool) func(*config.Config, string) error {
	return func(c *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", v)
		}
		*field(c) = config.Bool(b)
		return nil
	}
}

// LoadFromEnv applies MDPAD_* overrides to cfg. Empty variables are ignored.
func LoadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for _, ev := range envVars {
		name := envVarPrefix + ev.suffix
		value := getenv(name)
		if value == "" {
			continue
		}
		if err := ev.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a trimmed slice.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns every supported variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for _, ev := range envVars {
		out[envVarPrefix+ev.suffix] = ev.usage
	}
	return out
}
