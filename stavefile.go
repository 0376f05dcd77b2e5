//go:build stave

package main

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"i":   Install,
	"fmt": Lint.Fmt,
	"bn":  Test.Bench,
	"s":   Smoke,
}

// Namespace types group related targets.
type (
	Test st.Namespace
	Lint st.Namespace
	CI   st.Namespace
)

// cgoEnv is set on every build; the sqlite state backend needs cgo.
var cgoEnv = map[string]string{"CGO_ENABLED": "1"}

// ---------------------------------------------------------------------------
// Top-level targets
// ---------------------------------------------------------------------------

// Build compiles the mdpad binary with version info.
// Skips recompilation when source files have not changed.
func Build() error {
	rebuild, err := target.Dir("bin/mdpad", "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println("bin/mdpad is up to date")
		return nil
	}
	fmt.Println("Building mdpad...")
	return sh.RunWithV(cgoEnv, "go", "build", "-ldflags", ldflags(), "-o", "bin/mdpad", "./cmd/mdpad")
}

// Check runs format, lint, test and the smoke checks.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default, Smoke)
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Install installs mdpad to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing mdpad...")
	return sh.RunWithV(cgoEnv, "go", "install", "-ldflags", ldflags(), "./cmd/mdpad")
}

// ---------------------------------------------------------------------------
// Test namespace
// ---------------------------------------------------------------------------

// Default runs all tests using gotestsum with race detection and coverage.
func (Test) Default() error {
	fmt.Println("Running tests...")
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunWithV(cgoEnv, "go",
		"tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-race",
		"-p", nCores,
		"-parallel", nCores,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

// Bench runs the language detection benchmarks.
func (Test) Bench() error {
	fmt.Println("Running benchmarks...")
	return sh.RunWithV(cgoEnv, "go", "test", "-run=^$", "-bench=.", "-benchmem", "./pkg/langdetect/")
}

// ---------------------------------------------------------------------------
// Lint namespace
// ---------------------------------------------------------------------------

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	fmt.Println("Running linters...")
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	fmt.Println("Formatting code...")
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck verifies code formatting without modifying files.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt check failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nRun 'stave lint:fmt' to fix", out)
	}
	fmt.Println("✓ Code formatting OK")
	return nil
}

// ---------------------------------------------------------------------------
// CI namespace
// ---------------------------------------------------------------------------

// Gate runs the checks CI requires before merge.
func (CI) Gate() error {
	fmt.Println("Running CI gate checks...")
	st.SerialDeps(Lint.FmtCheck, CI.Lint, Build, Test.Default, Smoke)
	fmt.Println("\n✓ All CI gate checks passed!")
	return nil
}

// Lint runs golangci-lint without auto-fix.
func (CI) Lint() error {
	fmt.Println("Running linters (CI mode)...")
	return sh.RunV("golangci-lint", "run", "./...")
}

// ---------------------------------------------------------------------------
// Smoke target
// ---------------------------------------------------------------------------

// Smoke builds mdpad and runs the scripting commands against a sample
// document, once per state backend.
func Smoke() error {
	st.Deps(Build)
	fmt.Println("Running mdpad smoke checks...")

	dir, err := os.MkdirTemp("", "mdpad-smoke-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	doc := filepath.Join(dir, "sample.md")
	sample := "# Sample\n\n## Usage\n\nmdpad keeps one document.\n"
	if err := os.WriteFile(doc, []byte(sample), 0o600); err != nil {
		return fmt.Errorf("write sample: %w", err)
	}

	commands := [][]string{
		{"stats", doc},
		{"toc", doc},
		{"search", "--count", "mdpad", doc},
		{"export", "--format", "html", "-o", "-", doc},
		{"template", "apply", "blog-post"},
		{"state", "show"},
		{"template", "list"},
	}
	for _, backend := range []string{"file", "sqlite"} {
		env := map[string]string{
			"MDPAD_STORAGE_BACKEND": backend,
			"MDPAD_STORAGE_PATH":    filepath.Join(dir, backend),
		}
		for _, args := range commands {
			if _, err := sh.OutputWith(env, "bin/mdpad", args...); err != nil {
				return fmt.Errorf("%s backend: mdpad %s: %w", backend, strings.Join(args, " "), err)
			}
		}
	}
	fmt.Println("✓ Smoke checks passed")
	return nil
}

// ---------------------------------------------------------------------------
// Helpers (unexported — not targets)
// ---------------------------------------------------------------------------

// gitOutput runs a git command and returns trimmed stdout, or empty on error.
func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags returns the linker flags for version injection.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		version, commit, date,
	)
}
