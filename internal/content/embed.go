package content

import "embed"

//go:embed pages
var FS embed.FS
