package core

import (
	"context"
	"html/template"
	"io"
)

type PageOptions struct {
	Title string
}

// Fragment is page markup inserted into the shell without escaping.
type Fragment = template.HTML

type FragmentBuilder func(ctx context.Context, w io.Writer) error

// StaticFragment returns a builder that always writes markup.
func StaticFragment(markup string) FragmentBuilder {
	return func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	}
}

type PageConfig struct {
	Pattern string
	Options PageOptions
	Builder FragmentBuilder
}

type PageOption func(*PageConfig)

func WithTitle(title string) PageOption {
	return func(c *PageConfig) {
		c.Options.Title = title
	}
}

func WithBuilder(build FragmentBuilder) PageOption {
	return func(c *PageConfig) {
		c.Builder = build
	}
}

func NewPageConfig(pattern string, opts ...PageOption) PageConfig {
	config := PageConfig{Pattern: NormalizePath(pattern)}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}
