package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdpad/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"shebang bash", "#!/bin/bash\necho hello", "bash"},
		{"shebang python", "#!/usr/bin/env python3\nprint('hello')", "python"},
		{"go code", "package main\n\nfunc main() {}\n", "go"},
		{"python code", "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()", "python"},
		{"javascript code", "const x = () => 42;\nconsole.log(x());", "javascript"},
		{"json object", `{"key": "value", "number": 123}`, "json"},
		{"rust code", "fn main() {\n    println!(\"Hello\");\n}", "rust"},
		{"sql query", "SELECT * FROM users WHERE id = 1;", "sql"},
		{"html document", "<!DOCTYPE html>\n<html><body></body></html>", "html"},
		{"dockerfile", "FROM golang:1.25\nWORKDIR /app\nCOPY . .", "dockerfile"},
		{"empty", "", langdetect.Text},
		{"whitespace", "   \n\t", langdetect.Text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, langdetect.Detect([]byte(tt.content)))
		})
	}
}

func TestDetect_ShebangTakesPrecedence(t *testing.T) {
	t.Parallel()

	got := langdetect.Detect([]byte("#!/bin/bash\ndef foo():\n    pass"))
	if got != "bash" {
		t.Errorf("Detect() = %q, want %q (shebang should take precedence)", got, "bash")
	}
}

func TestDetectFile_NameWins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "go", langdetect.DetectFile("cmd/main.go", []byte("// just a comment")))
	assert.Equal(t, "dockerfile", langdetect.DetectFile("Dockerfile", []byte("# comment only")))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		content  []byte
		wantKind langdetect.Kind
		wantLang string
	}{
		{"markdown", "notes.md", []byte("# Notes\n"), langdetect.KindMarkdown, ""},
		{"markdown long ext", "notes.markdown", []byte("# Notes\n"), langdetect.KindMarkdown, ""},
		{"plain text", "todo.txt", []byte("buy milk\n"), langdetect.KindText, ""},
		{"no extension", "README", []byte("hello\n"), langdetect.KindText, ""},
		{"go source", "main.go", []byte("package main\n"), langdetect.KindCode, "go"},
		{"image", "photo.png", []byte("\x89PNG\r\n\x1a\n"), langdetect.KindImage, ""},
		{"binary", "blob.md", []byte{0x00, 0x01, 0x02, 0xff}, langdetect.KindBinary, ""},
		{"invalid utf8", "latin1.txt", []byte("caf\xe9"), langdetect.KindBinary, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.Classify(tt.filename, tt.content)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantLang, got.Language)
		})
	}
}

func BenchmarkDetect(b *testing.B) {
	code := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Hello\")\n}\n")
	for b.Loop() {
		langdetect.Detect(code)
	}
}
