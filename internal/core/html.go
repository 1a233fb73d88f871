package core

import (
	"bytes"
	"context"
	"html/template"
	"io"
)

const SiteSuffix = " - OpenSpades"

var Stylesheets = []string{
	"css/base.css",
	"css/pages.css",
}

type NavItem struct {
	Label string
	Href  string
	Class string
}

// Navigation is the global menu. Every section except downloads still points at
// the top page until those sections exist.
var Navigation = []NavItem{
	{Label: "Top", Href: "/"},
	{Label: "Media", Href: "/"},
	{Label: "Community", Href: "/"},
	{Label: "Development", Href: "/"},
	{Label: "Download Now!", Href: "/download.php", Class: "download"},
}

type shellData struct {
	Title       string
	Stylesheets []string
	Navigation  []NavItem
	Body        template.HTML
}

var shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html>
    <head>
        <title>{{.Title}}` + SiteSuffix + `</title>
        <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
{{- range .Stylesheets}}
        <link rel="stylesheet" type="text/css" href="{{.}}">
{{- end}}
    </head>
    <body>
        <header id="header-wrapper">
            <div id="header">
            </div>
        </header>
        <nav id="global-nav-wrapper">
            <div id="global-nav">
                <ul>
{{- range .Navigation}}
                    <li{{if .Class}} class="{{.Class}}"{{end}}><a href="{{.Href}}">{{.Label}}</a></li>
{{- end}}
                </ul>
            </div>
        </nav>
        <main>{{.Body}}</main>
    </body>
</html>
`))

// RenderPage builds the fragment inside a fresh Composition and wraps it in the
// site shell. Nothing is returned unless the whole document rendered.
func RenderPage(ctx context.Context, opts *PageOptions, build FragmentBuilder) (string, error) {
	if err := checkComposition(opts != nil, build != nil); err != nil {
		return "", err
	}

	c := NewComposition()
	if err := c.Begin(*opts); err != nil {
		return "", err
	}
	if err := build(ctx, c); err != nil {
		return "", err
	}
	if err := c.End(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.Finalize(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WritePage is RenderPage for callers holding a stream.
func WritePage(ctx context.Context, w io.Writer, opts *PageOptions, build FragmentBuilder) error {
	html, err := RenderPage(ctx, opts, build)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}

func renderShell(opts PageOptions, body Fragment) (string, error) {
	var buf bytes.Buffer
	if err := shellTemplate.Execute(&buf, shellData{
		Title:       opts.Title,
		Stylesheets: Stylesheets,
		Navigation:  Navigation,
		Body:        template.HTML(body),
	}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
