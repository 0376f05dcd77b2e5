// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants keeps keys consistent across commands and the editor.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldTheme    = "theme"
	FieldViewMode = "view_mode"
	FieldBackend  = "backend"
	FieldInterval = "interval"
	FieldDryRun   = "dry_run"
	FieldJobs     = "jobs"

	// Document fields.
	FieldKey      = "key"
	FieldWords    = "words"
	FieldChars    = "chars"
	FieldHeadings = "headings"
	FieldQuery    = "query"
	FieldMatches  = "matches"
	FieldFormat   = "format"
	FieldBytes    = "bytes"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesFailed     = "files_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
