package website

import (
	"embed"
	"io/fs"
)

//go:embed all:public
var embeddedPublic embed.FS

// PublicFS holds the stylesheets and images served next to the pages.
var PublicFS = mustSub(embeddedPublic, "public")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
