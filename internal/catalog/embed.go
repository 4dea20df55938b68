package catalog

import "embed"

// dataFS embeds the default template catalog at build time.
//
//go:embed *.json
var dataFS embed.FS
