// Package render wraps glamour for terminal markdown output.
package render

import (
	"github.com/charmbracelet/glamour"

	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/config"
)

// Options configures markdown rendering
type Options struct {
	Style string // "dark", "light", or "auto"
	Width int
}

// DefaultOptions returns the default rendering options
func DefaultOptions() Options {
	return Options{
		Style: "dark",
		Width: 80,
	}
}

// WithWidth returns a copy of the options with the given word-wrap width
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// LoadOptionsFromConfig builds rendering options from the user config
func LoadOptionsFromConfig(width int) Options {
	opts := DefaultOptions().WithWidth(width)

	cfg, err := config.LoadConfig()
	if err != nil {
		return opts
	}
	if cfg.MarkdownStyle != "" {
		opts.Style = cfg.MarkdownStyle
	}
	return opts
}

// Markdown renders markdown content for terminal display
func Markdown(content string, opts Options) (string, error) {
	styleOpt := glamour.WithStandardStyle(opts.Style)
	if opts.Style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(opts.Width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return "", err
	}

	return renderer.Render(content)
}

// MarkdownWithWidth is a convenience function for rendering with specific width
func MarkdownWithWidth(content string, width int) (string, error) {
	return Markdown(content, DefaultOptions().WithWidth(width))
}
