package configloader

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/yaklabco/mdpad/pkg/config"
	"github.com/yaklabco/mdpad/pkg/render"
	"github.com/yaklabco/mdpad/pkg/theme"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// minAutosaveInterval keeps autosave from hammering the store.
const minAutosaveInterval = time.Second

// maxReadingSpeed rejects values that are clearly not words per minute.
const maxReadingSpeed = 5000

// ValidationError represents a configuration validation failure.
type ValidationError struct {
	// Field is the dotted path to the invalid field (e.g., "storage.backend").
	Field string

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3) //nolint:mnd // file, field, message
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks a configuration and returns every problem, sorted by field.
func Validate(cfg *config.Config) []ValidationError {
	if cfg == nil {
		return nil
	}

	var out []ValidationError
	collect := func(prefix string, err error) {
		var verrs validation.Errors
		if !errors.As(err, &verrs) {
			if err != nil {
				out = append(out, ValidationError{Field: strings.TrimSuffix(prefix, "."), Message: err.Error()})
			}
			return
		}
		for field, ferr := range verrs {
			out = append(out, ValidationError{Field: prefix + snakeCase(field), Message: ferr.Error()})
		}
	}

	viewModes := make([]any, 0, len(theme.ViewModes()))
	for _, m := range theme.ViewModes() {
		viewModes = append(viewModes, string(m))
	}

	collect("", validation.ValidateStruct(cfg,
		validation.Field(&cfg.Theme, validation.By(validTheme)),
		validation.Field(&cfg.ViewMode, validation.In(viewModes...).Error("must be one of: blog, wiki, portfolio")),
		validation.Field(&cfg.AutosaveInterval, validation.Min(minAutosaveInterval).Error("must be at least 1s")),
		validation.Field(&cfg.ReadingSpeed, validation.Min(1), validation.Max(maxReadingSpeed)),
		validation.Field(&cfg.Color, validation.In("auto", "always", "never")),
		validation.Field(&cfg.Jobs, validation.Min(0)),
	))

	collect("storage.", validation.ValidateStruct(&cfg.Storage,
		validation.Field(&cfg.Storage.Backend, validation.In(config.BackendFile, config.BackendSQLite)),
	))

	collect("render.", validation.ValidateStruct(&cfg.Render,
		validation.Field(&cfg.Render.Extensions, validation.Each(validation.By(validExtension))),
	))

	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func validTheme(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, ok := theme.Lookup(s); ok {
		return nil
	}
	ids := make([]string, 0, len(theme.IDs()))
	for _, id := range theme.IDs() {
		ids = append(ids, string(id))
	}
	return fmt.Errorf("unknown theme %q; must be one of: %s", s, strings.Join(ids, ", "))
}

func validExtension(value any) error {
	s, _ := value.(string)
	if render.IsExtension(s) {
		return nil
	}
	return fmt.Errorf("unknown extension %q", s)
}

// snakeCase maps Go field names to their YAML keys ("ViewMode" to "view_mode").
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
