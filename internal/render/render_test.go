package render

import (
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Title\n\nSome **bold** text.", DefaultOptions())
	if err != nil {
		t.Fatalf("Markdown() returned error: %v", err)
	}
	if out == "" {
		t.Error("Markdown() returned empty output")
	}
	if !strings.Contains(out, "Title") {
		t.Errorf("Markdown() output missing heading text: %q", out)
	}
}

func TestMarkdownWithWidth(t *testing.T) {
	long := strings.Repeat("word ", 50)
	out, err := MarkdownWithWidth(long, 40)
	if err != nil {
		t.Fatalf("MarkdownWithWidth() returned error: %v", err)
	}

	// Rendered lines carry ANSI escapes, so only sanity-check that
	// wrapping produced multiple lines
	if len(strings.Split(strings.TrimSpace(out), "\n")) < 2 {
		t.Errorf("expected wrapped output, got %q", out)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Style != "dark" {
		t.Errorf("Style = %q, want dark", opts.Style)
	}
	if opts.Width != 80 {
		t.Errorf("Width = %d, want 80", opts.Width)
	}

	narrow := opts.WithWidth(40)
	if narrow.Width != 40 {
		t.Errorf("WithWidth(40).Width = %d", narrow.Width)
	}
	if opts.Width != 80 {
		t.Error("WithWidth should not mutate the receiver")
	}
}

func TestLoadOptionsFromConfig_NoConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := LoadOptionsFromConfig(72)
	if opts.Width != 72 {
		t.Errorf("Width = %d, want 72", opts.Width)
	}
	if opts.Style != "dark" {
		t.Errorf("Style = %q, want dark default", opts.Style)
	}
}
