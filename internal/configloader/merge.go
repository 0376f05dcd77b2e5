package configloader

import "github.com/yaklabco/mdpad/pkg/config"

// merge combines two configurations, with override taking precedence.
//   - Scalars: override wins when non-zero
//   - Optional booleans: override wins when set, so files can turn them off
//   - Slices: override replaces base when non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	setString(&result.Theme, override.Theme)
	setString(&result.ViewMode, override.ViewMode)
	setString(&result.Storage.Backend, override.Storage.Backend)
	setString(&result.Storage.Path, override.Storage.Path)
	setString(&result.Export.Dir, override.Export.Dir)
	setString(&result.Render.GlamourStyle, override.Render.GlamourStyle)
	setString(&result.Color, override.Color)

	if override.AutosaveInterval != 0 {
		result.AutosaveInterval = override.AutosaveInterval
	}
	if override.ReadingSpeed != 0 {
		result.ReadingSpeed = override.ReadingSpeed
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	setBool(&result.TOC.Dedupe, override.TOC.Dedupe)
	setBool(&result.Export.Backups, override.Export.Backups)
	setBool(&result.Render.UnsafeHTML, override.Render.UnsafeHTML)

	if override.Render.Extensions != nil {
		result.Render.Extensions = append([]string(nil), override.Render.Extensions...)
	}

	return result
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst **bool, v *bool) {
	if v != nil {
		*dst = config.Bool(*v)
	}
}
