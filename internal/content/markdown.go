package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/openspades/website/internal/core"
)

// Page sources are written by the site maintainers, so raw HTML inside them is
// passed through.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		meta.Meta,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		),
	),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

type Document struct {
	Title string
	Body  string
	Meta  map[string]any
}

func Render(src []byte) (Document, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext()
	if err := markdown.Convert(src, &buf, parser.WithContext(ctx)); err != nil {
		return Document{}, err
	}

	data := meta.Get(ctx)
	doc := Document{Body: buf.String(), Meta: data}
	if title, ok := data["title"].(string); ok {
		doc.Title = title
	}
	return doc, nil
}

func Load(fsys fs.FS, name string) (Document, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	doc, err := Render(src)
	if err != nil {
		return Document{}, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return doc, nil
}

// MarkdownFile reads and renders name on every build, so edits show up without
// a restart when fsys is backed by disk.
func MarkdownFile(fsys fs.FS, name string) core.FragmentBuilder {
	return func(_ context.Context, w io.Writer) error {
		doc, err := Load(fsys, name)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, doc.Body)
		return err
	}
}
