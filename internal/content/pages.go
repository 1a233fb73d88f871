package content

import (
	"context"
	"html/template"
	"io"
	"io/fs"

	"github.com/openspades/website/internal/core"
)

type Page struct {
	Pattern string
	Title   string
	Builder core.FragmentBuilder
}

type Release struct {
	Platform string
	Version  string
	URL      string
}

var Releases = []Release{
	{Platform: "Windows", Version: "0.1.3", URL: "https://github.com/yvt/openspades/releases/download/v0.1.3/OpenSpades-0.1.3-Windows.zip"},
	{Platform: "macOS", Version: "0.1.3", URL: "https://github.com/yvt/openspades/releases/download/v0.1.3/OpenSpades-0.1.3-macOS.zip"},
	{Platform: "Source", Version: "0.1.3", URL: "https://github.com/yvt/openspades/archive/v0.1.3.tar.gz"},
}

var downloadTemplate = template.Must(template.New("download").Parse(`<div class="downloads">
<h2>Download OpenSpades</h2>
<ul>
{{- range .Releases}}
<li><a href="{{.URL}}">{{.Platform}}</a> <span class="version">{{.Version}}</span></li>
{{- end}}
</ul>
</div>
{{.Instructions}}`))

// Download lists the release archives followed by the build instructions from
// download.md.
func Download(fsys fs.FS) core.FragmentBuilder {
	return func(_ context.Context, w io.Writer) error {
		doc, err := Load(fsys, "pages/download.md")
		if err != nil {
			return err
		}
		return downloadTemplate.Execute(w, map[string]any{
			"Releases":     Releases,
			"Instructions": template.HTML(doc.Body),
		})
	}
}

// Pages returns the site's pages. Titles come from each source's front matter.
func Pages(fsys fs.FS) ([]Page, error) {
	sources := []struct {
		pattern string
		name    string
		build   core.FragmentBuilder
	}{
		{pattern: "/", name: "pages/index.md"},
		{pattern: "/about", name: "pages/about.md"},
		{pattern: "/download.php", name: "pages/download.md", build: Download(fsys)},
	}

	pages := make([]Page, 0, len(sources))
	for _, src := range sources {
		doc, err := Load(fsys, src.name)
		if err != nil {
			return nil, err
		}

		build := src.build
		if build == nil {
			build = MarkdownFile(fsys, src.name)
		}

		pages = append(pages, Page{
			Pattern: src.pattern,
			Title:   doc.Title,
			Builder: build,
		})
	}
	return pages, nil
}
